package domain

import "time"

// Customer is a pet owner
type Customer struct {
	ID        int64
	Name      string
	Phone     string
	Email     string
	Address   string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Pet belongs to exactly one customer
type Pet struct {
	ID         int64
	CustomerID int64
	Name       string
	Species    string
	BreedID    *int64
	Breed      string // свободный текст, если порода не из справочника
	Size       string
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Label returns "Name (Breed)" or just the name
func (p *Pet) Label() string {
	if p == nil {
		return ""
	}
	if p.Breed != "" {
		return p.Name + " (" + p.Breed + ")"
	}
	return p.Name
}
