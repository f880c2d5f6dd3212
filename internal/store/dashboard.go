package store

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/rafiaprilian/wifiq-client/internal/client"
	"github.com/rafiaprilian/wifiq-client/internal/models"
)

// DashboardStore fetches and holds the aggregate statistics shown on
// the dashboard.
type DashboardStore struct {
	state

	client *client.Client
	logger *logrus.Logger

	statistics *models.Statistics
}

// NewDashboardStore creates a DashboardStore.
func NewDashboardStore(c *client.Client, logger *logrus.Logger) *DashboardStore {
	return &DashboardStore{
		client: c,
		logger: logger,
	}
}

// Statistics returns the last fetched statistics, or nil before the
// first successful fetch.
func (s *DashboardStore) Statistics() *models.Statistics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.statistics
}

// FetchStatistics loads GET /dashboard/statistics. The closed_tickets
// field is back-filled from the status distribution when the backend
// omits it.
func (s *DashboardStore) FetchStatistics(ctx context.Context) error {
	return s.run(func() error {
		env, err := s.client.Call(ctx, http.MethodGet, "/dashboard/statistics", nil, nil)
		if err != nil {
			return err
		}

		var stats models.Statistics
		if err := env.DecodeData(&stats); err != nil {
			return err
		}
		stats.FillClosedTickets()

		s.mu.Lock()
		s.statistics = &stats
		s.mu.Unlock()

		s.logger.WithField("total_tickets", stats.TotalTickets).Debug("Dashboard statistics refreshed")
		return nil
	})
}
