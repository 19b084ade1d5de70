package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Destination struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Name         string    `gorm:"uniqueIndex;size:200" json:"name"`
	Image        string    `gorm:"size:1024" json:"image"`
	Description  string    `gorm:"type:text" json:"description"`
	TravelReason string    `gorm:"type:text" json:"travel_reason"`
	Price        string    `gorm:"size:100" json:"price"` // Free text such as "From $1,299"
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (d *Destination) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
