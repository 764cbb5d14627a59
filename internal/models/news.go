package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// News represents a published news article
type News struct {
	ID        string         `json:"id" gorm:"primaryKey;size:36"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	Title      string     `json:"title" gorm:"not null;index"`
	Excerpt    string     `json:"excerpt,omitempty"`
	Content    string     `json:"content,omitempty"`
	Category   string     `json:"category,omitempty" gorm:"index"`
	AuthorName string     `json:"author_name,omitempty"`
	PublishAt  *time.Time `json:"publish_at,omitempty" gorm:"index"`
	ImageURL   string     `json:"image_url,omitempty"`
}

// BeforeCreate generates a UUID before creating a new article
func (n *News) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	return nil
}

// TableName returns the table name for the News model
func (News) TableName() string {
	return "news"
}
