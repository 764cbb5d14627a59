package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Event represents a fight event
type Event struct {
	ID        string         `json:"id" gorm:"primaryKey;size:36"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	Name      string     `json:"name" gorm:"not null;index"`
	City      string     `json:"city,omitempty"`
	Country   string     `json:"country,omitempty"`
	StartAt   *time.Time `json:"start_at,omitempty" gorm:"index"`
	PosterURL string     `json:"poster_url,omitempty"`
}

// BeforeCreate generates a UUID before creating a new event
func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return nil
}

// TableName returns the table name for the Event model
func (Event) TableName() string {
	return "events"
}
