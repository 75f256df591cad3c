package domain

import "time"

// Car represents a rentable unit in the inventory
type Car struct {
	ID     int64
	Name   string
	Brand  string
	Model  string
	Seats  int

	// DailyRate rental price per calendar day, 2 decimal places
	DailyRate float64

	// Exactly one of ImageURL / ImagePath is set:
	// ImageURL is a remote image URL, ImagePath an uploaded-file reference
	ImageURL  *string
	ImagePath *string

	// Available is true while the car may be the subject of a new booking.
	// Revoked when a payment completes a booking against the car or
	// an admin marks it unavailable by hand.
	Available bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasUploadedImage returns true if the car image is an uploaded file
func (c *Car) HasUploadedImage() bool {
	return c.ImagePath != nil && *c.ImagePath != ""
}

// ImageSource describes where the car image comes from ("URL", "Upload" or "None")
func (c *Car) ImageSource() string {
	switch {
	case c.ImageURL != nil && *c.ImageURL != "":
		return "URL"
	case c.HasUploadedImage():
		return "Upload"
	default:
		return "None"
	}
}

// AvailabilityFilter restricts a car listing by the availability flag
type AvailabilityFilter string

const (
	// AvailabilityAll включает и доступные, и забронированные автомобили
	AvailabilityAll AvailabilityFilter = ""

	// AvailabilityAvailable только автомобили, доступные для бронирования
	AvailabilityAvailable AvailabilityFilter = "available"

	// AvailabilityBooked только занятые автомобили
	AvailabilityBooked AvailabilityFilter = "booked"
)

// CarFilter фильтр каталога автомобилей
type CarFilter struct {
	// SearchTerm подстрока для поиска по названию, модели и марке (без учета регистра)
	SearchTerm string

	// Seats точное количество мест; значение SeatsEightPlus означает "8 и больше"
	Seats *int

	Availability AvailabilityFilter
}
