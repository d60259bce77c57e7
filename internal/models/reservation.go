package models

import "time"

type Reservation struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index" json:"user_id"`

	// Calendar date only; stored as a date column, normalized to UTC
	// midnight in Go.
	ReservationDate time.Time `gorm:"type:date;index" json:"reservation_date"`

	Status string `gorm:"size:20;default:'CONFIRMED'" json:"status"`

	Slots []ReservationSlot `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"slots"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ReservationSlot links a reservation to one of its slots. Rows are
// written once at reservation creation and never mutated.
type ReservationSlot struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	ReservationID uint `gorm:"index" json:"reservation_id"`
	SlotID        uint `gorm:"index" json:"slot_id"`

	CreatedAt time.Time `json:"created_at"`
}
