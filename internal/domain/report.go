package domain

import "context"

// EventSummary is the per-event reporting view: scheduling fields plus
// current registration counts and conflict state.
// swagger:model EventSummary
type EventSummary struct {
	EventID    string   `json:"event_id"`
	Title      string   `json:"title"`
	Date       string   `json:"date"`
	StartTime  string   `json:"start_time"`
	EndTime    string   `json:"end_time"`
	Venue      string   `json:"venue"`
	MaxSeats   int      `json:"max_seats"`
	Confirmed  int      `json:"confirmed"`
	Waitlisted int      `json:"waitlisted"`
	IsValid    bool     `json:"is_valid"`
	Violations []string `json:"violations"`
}

// ConflictEntry pairs an invalid event with the ordered ids of the
// earlier events it overlaps.
// swagger:model ConflictEntry
type ConflictEntry struct {
	EventID    string   `json:"event_id"`
	Violations []string `json:"violations"`
}

// RequestExample is a short (id, category) sample used in the request
// status report.
type RequestExample struct {
	RequestID string `json:"request_id"`
	Category  string `json:"category"`
}

// RequestStatusReport summarizes service requests by status. Counts are
// zero-filled for all three labels; Examples holds up to three requests
// per status for quick inspection.
// swagger:model RequestStatusReport
type RequestStatusReport struct {
	Counts   map[string]int              `json:"counts"`
	Examples map[string][]RequestExample `json:"examples"`
}

// ReportService defines read-only aggregations over the current store
// state. Reports are recomputed on every call; nothing is cached.
type ReportService interface {
	EventSummary(ctx context.Context, eventID string) (*EventSummary, error)
	EventSummaries(ctx context.Context) ([]*EventSummary, error)
	ConflictReport(ctx context.Context) ([]*ConflictEntry, error)
	RequestStatusReport(ctx context.Context) (*RequestStatusReport, error)
}
