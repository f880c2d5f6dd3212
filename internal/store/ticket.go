package store

import (
	"context"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"

	"github.com/rafiaprilian/wifiq-client/internal/client"
	"github.com/rafiaprilian/wifiq-client/internal/models"
)

// statusUpdateMethod is the verb for /ticket/{code}/status. The backend
// accepts both POST and PUT; PUT is the documented contract.
const statusUpdateMethod = http.MethodPut

// TicketStore fetches, paginates, creates, replies to, updates, and
// deletes support tickets.
type TicketStore struct {
	state

	client *client.Client
	nav    Navigator
	logger *logrus.Logger

	tickets    []models.Ticket
	pagination models.Pagination
}

// NewTicketStore creates a TicketStore. nav may be nil when the caller
// does not care about navigation.
func NewTicketStore(c *client.Client, nav Navigator, logger *logrus.Logger) *TicketStore {
	if nav == nil {
		nav = nopNavigator
	}
	return &TicketStore{
		client: c,
		nav:    nav,
		logger: logger,
		pagination: models.Pagination{
			CurrentPage: 1,
			LastPage:    1,
			PerPage:     10,
		},
	}
}

// Tickets returns the last fetched ticket page.
func (s *TicketStore) Tickets() []models.Ticket {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tickets
}

// Pagination returns the current pagination metadata.
func (s *TicketStore) Pagination() models.Pagination {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pagination
}

// FetchTickets loads a page of tickets from GET /ticket. When the
// response omits pagination metadata the prior value is kept rather
// than reset.
func (s *TicketStore) FetchTickets(ctx context.Context, params models.TicketListParams) error {
	return s.run(func() error {
		env, err := s.client.Call(ctx, http.MethodGet, "/ticket", params.Values(), nil)
		if err != nil {
			return err
		}

		var tickets []models.Ticket
		if err := env.DecodeData(&tickets); err != nil {
			return err
		}

		s.mu.Lock()
		s.tickets = tickets
		if env.Meta != nil {
			s.pagination = *env.Meta
		}
		s.mu.Unlock()

		s.logger.WithFields(logrus.Fields{
			"count": len(tickets),
			"page":  s.Pagination().CurrentPage,
		}).Debug("Ticket page loaded")
		return nil
	})
}

// FetchTicket loads one ticket from GET /ticket/{code} and returns it
// to the caller without touching the list state.
func (s *TicketStore) FetchTicket(ctx context.Context, code string) (*models.Ticket, error) {
	var ticket models.Ticket
	err := s.run(func() error {
		env, err := s.client.Call(ctx, http.MethodGet, "/ticket/"+url.PathEscape(code), nil, nil)
		if err != nil {
			return err
		}
		return env.DecodeData(&ticket)
	})
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

// CreateTicket submits POST /ticket, records the backend's success
// message, and navigates to the dashboard.
func (s *TicketStore) CreateTicket(ctx context.Context, req models.CreateTicketRequest) error {
	return s.run(func() error {
		env, err := s.client.Call(ctx, http.MethodPost, "/ticket", nil, req)
		if err != nil {
			return err
		}

		s.setSuccess(env.Message)
		s.nav.Push(RouteAppDashboard)
		return nil
	})
}

// CreateTicketReply submits POST /ticket-reply/{code} and returns the
// created reply.
func (s *TicketStore) CreateTicketReply(
	ctx context.Context,
	code string,
	req models.TicketReplyRequest,
) (*models.TicketReply, error) {
	var reply models.TicketReply
	err := s.run(func() error {
		env, err := s.client.Call(ctx, http.MethodPost, "/ticket-reply/"+url.PathEscape(code), nil, req)
		if err != nil {
			return err
		}
		if err := env.DecodeData(&reply); err != nil {
			return err
		}

		s.setSuccess(env.Message)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &reply, nil
}

// UpdateTicketStatus changes a ticket's status via
// /ticket/{code}/status and returns the updated ticket.
func (s *TicketStore) UpdateTicketStatus(
	ctx context.Context,
	code string,
	req models.UpdateStatusRequest,
) (*models.Ticket, error) {
	var ticket models.Ticket
	err := s.run(func() error {
		env, err := s.client.Call(ctx, statusUpdateMethod, "/ticket/"+url.PathEscape(code)+"/status", nil, req)
		if err != nil {
			return err
		}
		if err := env.DecodeData(&ticket); err != nil {
			return err
		}

		s.setSuccess(env.Message)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

// DeleteTicket removes a ticket via DELETE /ticket/{code} and records
// the backend's success message.
func (s *TicketStore) DeleteTicket(ctx context.Context, code string) error {
	return s.run(func() error {
		env, err := s.client.Call(ctx, http.MethodDelete, "/ticket/"+url.PathEscape(code), nil, nil)
		if err != nil {
			return err
		}

		s.setSuccess(env.Message)
		return nil
	})
}
