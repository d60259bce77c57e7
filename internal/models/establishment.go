package models

import "time"

type Establishment struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	OwnerID uint   `json:"owner_id"`
	Name    string `gorm:"size:100;not null" json:"name"`
	Phone   string `gorm:"size:20" json:"phone"`
	Address string `gorm:"size:255" json:"address"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
