package list_bookings

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/m04kA/SMC-GroomingService/internal/api/handlers"
	"github.com/m04kA/SMC-GroomingService/internal/service/bookings/models"
)

// ToServiceRequest формирует фильтр из query параметров.
// date задаёт один день; from/to задают период и игнорируются при наличии date.
func ToServiceRequest(query url.Values) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{
		IncludeCancelled: handlers.ParseBool(query.Get("includeCancelled")),
	}

	if date, err := handlers.ParseOptionalDate(query.Get("date")); err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	} else if date != nil {
		req.StartDate, req.EndDate = date, date
	} else {
		if req.StartDate, err = handlers.ParseOptionalDate(query.Get("from")); err != nil {
			return nil, fmt.Errorf("invalid from: %w", err)
		}
		if req.EndDate, err = handlers.ParseOptionalDate(query.Get("to")); err != nil {
			return nil, fmt.Errorf("invalid to: %w", err)
		}
	}

	customerID, err := handlers.ParseOptionalID(query.Get("customerId"))
	if err != nil {
		return nil, err
	}
	req.CustomerID = customerID

	if status := strings.TrimSpace(query.Get("status")); status != "" {
		req.Status = &status
	}

	return req, nil
}
