package domain

import (
	"errors"
	"strings"
)

// ErrUnknownStatus is returned when a string does not name a booking status
var ErrUnknownStatus = errors.New("domain: unknown booking status")

// BookingStatus is the closed set of booking lifecycle states.
// The constant values are the only serialized form, both in storage and in the API.
type BookingStatus string

const (
	StatusScheduled BookingStatus = "agendado"
	StatusConfirmed BookingStatus = "confirmado"
	StatusReceived  BookingStatus = "recebido"
	StatusInService BookingStatus = "em_servico"
	StatusCompleted BookingStatus = "concluido"
	StatusDelivered BookingStatus = "entregue"
	StatusCancelled BookingStatus = "cancelado"
)

// AllStatuses in happy-path order, cancelled last
var AllStatuses = []BookingStatus{
	StatusScheduled,
	StatusConfirmed,
	StatusReceived,
	StatusInService,
	StatusCompleted,
	StatusDelivered,
	StatusCancelled,
}

var statusLabels = map[BookingStatus]string{
	StatusScheduled: "Agendado",
	StatusConfirmed: "Confirmado",
	StatusReceived:  "Recebido",
	StatusInService: "Em serviço",
	StatusCompleted: "Concluído",
	StatusDelivered: "Entregue",
	StatusCancelled: "Cancelado",
}

// Старые формы, встречающиеся во вводе: "em servico", "Em serviço", "EM-SERVICO", "concluído"
var statusInputReplacer = strings.NewReplacer(
	" ", "_",
	"-", "_",
	"ç", "c",
	"í", "i",
	"é", "e",
	"ú", "u",
	"ã", "a",
)

// ParseBookingStatus maps user or legacy input onto the canonical status
func ParseBookingStatus(raw string) (BookingStatus, error) {
	normalized := statusInputReplacer.Replace(strings.ToLower(strings.TrimSpace(raw)))
	s := BookingStatus(normalized)
	if !s.IsValid() {
		return "", ErrUnknownStatus
	}
	return s, nil
}

// IsValid reports whether s is one of the known statuses
func (s BookingStatus) IsValid() bool {
	_, ok := statusLabels[s]
	return ok
}

// IsActive returns true for every status except cancelled
func (s BookingStatus) IsActive() bool {
	return s != StatusCancelled
}

// Label returns the display name
func (s BookingStatus) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

func (s BookingStatus) String() string {
	return string(s)
}
