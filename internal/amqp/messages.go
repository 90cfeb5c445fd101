package amqp

import (
	"encoding/json"
	"fmt"
	"time"
)

// Report kinds accepted over the queue.
const (
	KindFinancial = "financial"
	KindCashback  = "cashback"
	KindSpending  = "spending"
)

// ReportRequest asks the worker to generate one report and persist it.
// Filename may be empty; the persistence layer then derives a timestamped
// name.
type ReportRequest struct {
	Kind       string    `json:"kind"`
	TargetDate string    `json:"target_date,omitempty"` // financial: "2006-01-02 15:04:05"
	Year       int       `json:"year,omitempty"`        // cashback
	Month      int       `json:"month,omitempty"`       // cashback
	Category   string    `json:"category,omitempty"`    // spending
	Date       string    `json:"date,omitempty"`        // spending reference date, "2006-01-02"
	Filename   string    `json:"filename,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// NewReportRequest creates a request stamped with the current time.
func NewReportRequest(kind string) *ReportRequest {
	return &ReportRequest{Kind: kind, Timestamp: time.Now()}
}

// Validate checks that the request carries what its kind needs.
func (r *ReportRequest) Validate() error {
	switch r.Kind {
	case KindFinancial:
		if r.TargetDate == "" {
			return fmt.Errorf("financial report request needs a target date")
		}
	case KindCashback:
		if r.Year == 0 || r.Month < 1 || r.Month > 12 {
			return fmt.Errorf("cashback report request needs a year and a month 1-12, got %d-%d", r.Year, r.Month)
		}
	case KindSpending:
		if r.Category == "" {
			return fmt.Errorf("spending report request needs a category")
		}
	default:
		return fmt.Errorf("unknown report kind %q", r.Kind)
	}
	return nil
}

// ToJSON converts the request to JSON bytes.
func (r *ReportRequest) ToJSON() ([]byte, error) {
	return json.Marshal(r)
}

// ReportRequestFromJSON creates a request from JSON bytes.
func ReportRequestFromJSON(data []byte) (*ReportRequest, error) {
	var req ReportRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, err
	}
	return &req, nil
}
