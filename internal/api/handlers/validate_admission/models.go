package validate_admission

import (
	"github.com/m04kA/SMC-GroomingService/internal/api/handlers"
	validateAdmission "github.com/m04kA/SMC-GroomingService/internal/usecase/validate_admission"
)

// AdmissionRequest HTTP request model
type AdmissionRequest struct {
	Date             string `json:"date"`
	Time             string `json:"time"`
	ExcludeBookingID *int64 `json:"excludeBookingId,omitempty"`
}

// AdmissionResponse {ok:true} или {ok:false, reason}
type AdmissionResponse struct {
	OK     bool   `json:"ok"`
	Reason string `json:"reason,omitempty"`
	Time   string `json:"time,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *AdmissionRequest) ToUseCaseRequest() (*validateAdmission.Request, error) {
	date, err := handlers.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}
	return &validateAdmission.Request{
		Date:             date,
		Time:             r.Time,
		ExcludeBookingID: r.ExcludeBookingID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *validateAdmission.Response) *AdmissionResponse {
	return &AdmissionResponse{
		OK:     resp.OK,
		Reason: resp.Reason,
		Time:   resp.Time.String(),
	}
}
