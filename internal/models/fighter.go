package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Fighter represents a fighter profile
type Fighter struct {
	ID        string         `json:"id" gorm:"primaryKey;size:36"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	Name        string `json:"name" gorm:"not null;index"`
	Nickname    string `json:"nickname,omitempty"`
	Country     string `json:"country,omitempty" gorm:"index"`
	WeightClass string `json:"weight_class,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

// BeforeCreate generates a UUID before creating a new fighter
func (f *Fighter) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	return nil
}

// TableName returns the table name for the Fighter model
func (Fighter) TableName() string {
	return "fighters"
}
