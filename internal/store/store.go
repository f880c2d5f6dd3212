// Package store contains the state containers backing the ticketing
// UI: session, dashboard, and ticket stores. Every store action runs
// under the same bracket — set loading, perform the request, normalize
// any failure into a display message, always clear loading.
package store

import (
	"sync"

	"github.com/rafiaprilian/wifiq-client/internal/apierr"
)

// Route names the UI destinations a store can navigate to after an
// action. The names match the frontend router.
type Route string

const (
	// RouteLogin is the login page.
	RouteLogin Route = "login"
	// RouteAppDashboard is the general user dashboard.
	RouteAppDashboard Route = "app.dashboard"
	// RouteAdminDashboard is the admin dashboard.
	RouteAdminDashboard Route = "admin.dashboard"
)

// Navigator receives navigation requests triggered by store actions.
// The UI layer supplies an implementation; stores never render.
type Navigator interface {
	// Push navigates to the named route.
	Push(route Route)
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(Route)

// Push implements Navigator.
func (f NavigatorFunc) Push(route Route) {
	f(route)
}

// nopNavigator is used when no Navigator is supplied.
var nopNavigator Navigator = NavigatorFunc(func(Route) {})

// state holds the reactive flags every store exposes. Actions are not
// mutually exclusive: two concurrent invocations race on shared state
// and the last response wins, exactly as in the browser frontend.
type state struct {
	mu      sync.RWMutex
	loading bool
	err     string
	success string
}

// Loading reports whether an action is currently in flight.
func (s *state) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Error returns the normalized message of the last failed action, or
// empty if the last action succeeded.
func (s *state) Error() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Success returns the backend's success message from the last
// mutating action, or empty.
func (s *state) Success() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.success
}

// run executes one store action under the uniform bracket. The
// returned error is also normalized into the store's error state so
// the UI and the caller see the same outcome; loading is cleared on
// every path.
func (s *state) run(fn func() error) error {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.success = ""
	s.mu.Unlock()

	err := fn()

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.err = apierr.Message(err)
	}
	s.mu.Unlock()

	return err
}

// setSuccess records the backend's success message. Called from inside
// an action, after run has cleared the previous value.
func (s *state) setSuccess(message string) {
	s.mu.Lock()
	s.success = message
	s.mu.Unlock()
}
