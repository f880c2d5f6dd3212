package models

import (
	"net/url"
	"strconv"
	"time"
)

// Ticket status values used by the backend.
const (
	TicketStatusOpen     = "open"
	TicketStatusOnGoing  = "on_going"
	TicketStatusResolved = "resolved"
	TicketStatusRejected = "rejected"
	TicketStatusClosed   = "closed"
)

// Ticket is a support ticket record. Code is the unique identifier used
// in URLs; the numeric ID is internal to the backend.
type Ticket struct {
	ID             int           `json:"id"`
	Code           string        `json:"code"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	Status         string        `json:"status"`
	Priority       string        `json:"priority,omitempty"`
	User           *User         `json:"user,omitempty"`
	TicketReplies  []TicketReply `json:"ticket_replies,omitempty"`
	CreatedAt      *time.Time    `json:"created_at,omitempty"`
	UpdatedAt      *time.Time    `json:"updated_at,omitempty"`
	CompletedAt    *time.Time    `json:"completed_at,omitempty"`
	AttachmentPath string        `json:"attachment_path,omitempty"`
}

// TicketReply is a single reply on a ticket's thread.
type TicketReply struct {
	ID        int        `json:"id"`
	Content   string     `json:"content"`
	User      *User      `json:"user,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// CreateTicketRequest is the payload for POST /ticket.
type CreateTicketRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority,omitempty"`
}

// TicketReplyRequest is the payload for POST /ticket-reply/{code}.
type TicketReplyRequest struct {
	Content string `json:"content"`
}

// UpdateStatusRequest is the payload for the status-update endpoint.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// TicketListParams are the query parameters accepted by GET /ticket.
// Zero values are omitted from the query string.
type TicketListParams struct {
	Page     int
	PerPage  int
	Status   string
	Priority string
	Search   string
}

// Values encodes the parameters as a URL query.
func (p TicketListParams) Values() url.Values {
	v := url.Values{}
	if p.Page > 0 {
		v.Set("page", strconv.Itoa(p.Page))
	}
	if p.PerPage > 0 {
		v.Set("per_page", strconv.Itoa(p.PerPage))
	}
	if p.Status != "" {
		v.Set("status", p.Status)
	}
	if p.Priority != "" {
		v.Set("priority", p.Priority)
	}
	if p.Search != "" {
		v.Set("search", p.Search)
	}
	return v
}
