package models

// Statistics is the aggregate dashboard payload from
// GET /dashboard/statistics. StatusDistribution maps ticket status to
// count; older backend versions omit the flattened closed_tickets field.
type Statistics struct {
	TotalTickets       int            `json:"total_tickets"`
	ActiveTickets      int            `json:"active_tickets"`
	ResolvedTickets    int            `json:"resolved_tickets"`
	ClosedTickets      int            `json:"closed_tickets"`
	AvgResolutionTime  float64        `json:"avg_resolution_time,omitempty"`
	StatusDistribution map[string]int `json:"status_distribution,omitempty"`
}

// FillClosedTickets back-fills ClosedTickets from the status
// distribution when the backend omits the flattened field. An explicit
// non-zero value is never overwritten.
func (s *Statistics) FillClosedTickets() {
	if s == nil || s.ClosedTickets != 0 || s.StatusDistribution == nil {
		return
	}
	s.ClosedTickets = s.StatusDistribution[TicketStatusClosed]
}
