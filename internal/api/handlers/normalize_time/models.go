package normalize_time

// NormalizeTimeResponse скорректированное время; time пустое для закрытого дня
type NormalizeTimeResponse struct {
	Closed bool   `json:"closed"`
	Time   string `json:"time,omitempty"`
}
