package models

import "time"

// Slot is a recurring weekly availability window of a unit. Times are
// stored as minutes since midnight so that overlap checks stay plain
// integer comparisons; the "HH:MM" wire form lives in the dto package.
type Slot struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UnitID uint `gorm:"index:idx_slots_unit_day" json:"unit_id"`

	// Sunday=0 ... Saturday=6, matching time.Weekday.
	DayOfWeek int `gorm:"index:idx_slots_unit_day" json:"day_of_week"`

	OpenMinute  int `json:"-"`
	CloseMinute int `json:"-"`

	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
