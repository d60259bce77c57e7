package models

import "time"

// Unit is a bookable physical resource (a field or court) belonging to
// an establishment.
type Unit struct {
	ID              uint          `gorm:"primaryKey" json:"id"`
	EstablishmentID uint          `json:"establishment_id"`
	Establishment   Establishment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Name   string `gorm:"size:100;not null" json:"name"`
	Sport  string `gorm:"size:50" json:"sport"`
	Active bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
