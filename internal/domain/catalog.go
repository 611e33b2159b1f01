package domain

import "time"

// GroomingService is an item of the service catalog (bath, haircut, ...)
type GroomingService struct {
	ID          int64
	Title       string
	Description string
	PriceCents  int64
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Perk is a promotional "mimo" that can be attached to a booking
type Perk struct {
	ID          int64
	Title       string
	Description string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DogBreed is a reference breed
type DogBreed struct {
	ID   int64
	Name string
}

// Dashboard aggregates counters for a single day
type Dashboard struct {
	Date           time.Time
	TotalBookings  int
	ByStatus       []StatusCount
	CustomersCount int
	PetsCount      int
}
