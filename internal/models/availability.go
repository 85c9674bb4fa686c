package models

import "time"

// BreakWindow is a pause inside a work block, "HH:MM" times.
type BreakWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type WorkBlock struct {
	Start  string        `json:"start"`
	End    string        `json:"end"`
	Breaks []BreakWindow `json:"breaks,omitempty"`
}

// WeekSchedule maps weekday names ("Monday"...) to ordered work blocks.
type WeekSchedule map[string][]WorkBlock

type SpecialDate struct {
	Date        time.Time `json:"date"`
	IsAvailable bool      `json:"is_available"`
	Reason      string    `json:"reason,omitempty"`
	StartTime   string    `json:"start_time,omitempty"`
	EndTime     string    `json:"end_time,omitempty"`
}

type Availability struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BarberID uint `gorm:"uniqueIndex;not null" json:"barber_id"`

	Schedule     WeekSchedule  `gorm:"serializer:json;type:text" json:"schedule"`
	SpecialDates []SpecialDate `gorm:"serializer:json;type:text" json:"special_dates"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
