package models

import "time"

const (
	BarberStatusPending  = "pending"
	BarberStatusApproved = "approved"
	BarberStatusRejected = "rejected"
)

// Barber is the shop profile owned by exactly one barber account.
type Barber struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	ShopName    string `gorm:"size:100;uniqueIndex;not null" json:"shop_name"`
	Address     string `gorm:"size:255" json:"address"`
	Phone       string `gorm:"size:20" json:"phone"`
	Description string `gorm:"size:500" json:"description"`

	ProfileImage string     `gorm:"size:255" json:"profile_image"`
	Photos       StringList `gorm:"serializer:json;type:text" json:"photos"`

	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`

	Services     []Service     `json:"services"`
	Availability *Availability `json:"availability"`

	// Derived from the review set, never written directly by handlers.
	AverageRating float64 `gorm:"default:0" json:"average_rating"`
	NumReviews    int     `gorm:"default:0" json:"num_reviews"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type StringList []string
