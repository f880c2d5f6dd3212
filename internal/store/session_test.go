package store_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafiaprilian/wifiq-client/internal/client"
	"github.com/rafiaprilian/wifiq-client/internal/credentials"
	"github.com/rafiaprilian/wifiq-client/internal/models"
	"github.com/rafiaprilian/wifiq-client/internal/store"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	return logger
}

// navRecorder captures navigation requests from store actions.
type navRecorder struct {
	mu     sync.Mutex
	routes []store.Route
}

func (n *navRecorder) Push(route store.Route) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.routes = append(n.routes, route)
}

func (n *navRecorder) last() store.Route {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.routes) == 0 {
		return ""
	}
	return n.routes[len(n.routes)-1]
}

func newSessionStore(t *testing.T, handler http.Handler) (*store.SessionStore, *credentials.MemoryStore, *navRecorder) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	creds := credentials.NewMemoryStore()
	api := client.New(server.URL, "", 10*time.Second, creds, testLogger())
	nav := &navRecorder{}
	return store.NewSessionStore(api, creds, nav, testLogger()), creds, nav
}

func sessionBackend(role string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"token":"t1"}}`))
	})
	mux.HandleFunc("/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer t1" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"Unauthenticated."}`))
			return
		}
		w.Write([]byte(`{"data":{"id":1,"name":"Tester","email":"tester@example.com","role":"` + role + `"}}`))
	})
	return mux
}

func TestSessionStore_Login_AdminNavigatesToAdminDashboard(t *testing.T) {
	session, creds, nav := newSessionStore(t, sessionBackend("admin"))

	err := session.Login(context.Background(), models.LoginRequest{
		Email:    "admin@example.com",
		Password: "secret",
	})
	require.NoError(t, err)

	token, err := creds.Token()
	require.NoError(t, err)
	assert.Equal(t, "t1", token)

	require.NotNil(t, session.User())
	assert.Equal(t, "admin", session.User().Role)
	assert.Equal(t, store.RouteAdminDashboard, nav.last())
	assert.True(t, session.IsAuthenticated())
	assert.False(t, session.Loading())
	assert.Empty(t, session.Error())
}

func TestSessionStore_Login_CustomerNavigatesToAppDashboard(t *testing.T) {
	session, _, nav := newSessionStore(t, sessionBackend("customer"))

	err := session.Login(context.Background(), models.LoginRequest{
		Email:    "customer@example.com",
		Password: "secret",
	})
	require.NoError(t, err)

	assert.Equal(t, store.RouteAppDashboard, nav.last())
}

func TestSessionStore_Login_FailureIsNormalized(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid credentials."}`))
	})
	session, creds, nav := newSessionStore(t, handler)

	err := session.Login(context.Background(), models.LoginRequest{
		Email:    "wrong@example.com",
		Password: "wrong",
	})
	require.Error(t, err)

	assert.Equal(t, "Invalid credentials.", session.Error())
	assert.False(t, session.Loading())
	assert.False(t, creds.HasToken())
	assert.Nil(t, session.User())
	assert.Empty(t, nav.last())
}

func TestSessionStore_Register(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/register", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"data":{"token":"t1"}}`))
	})
	mux.HandleFunc("/me", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"data":{"id":2,"name":"New User","role":"customer"}}`))
	})
	session, creds, nav := newSessionStore(t, mux)

	err := session.Register(context.Background(), models.RegisterRequest{
		Name:                 "New User",
		Email:                "new@example.com",
		Password:             "secret",
		PasswordConfirmation: "secret",
	})
	require.NoError(t, err)

	assert.True(t, creds.HasToken())
	require.NotNil(t, session.User())
	assert.Equal(t, "New User", session.User().Name)
	assert.Equal(t, store.RouteAppDashboard, nav.last())
}

func TestSessionStore_CheckAuth_FailureClearsCredential(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Unauthenticated."}`))
	})
	session, creds, _ := newSessionStore(t, handler)

	// Any prior credential value must be removed on failure.
	require.NoError(t, creds.SetToken("stale-token"))

	session.CheckAuth(context.Background())

	assert.False(t, creds.HasToken())
	assert.Nil(t, session.User())
	assert.False(t, session.IsAuthenticated())
}

func TestSessionStore_Logout_ClearsLocallyEvenWhenServerFails(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"boom"}`))
	})
	session, creds, nav := newSessionStore(t, handler)

	require.NoError(t, creds.SetToken("t1"))

	err := session.Logout(context.Background())
	require.NoError(t, err)

	assert.False(t, creds.HasToken())
	assert.Nil(t, session.User())
	assert.Equal(t, store.RouteLogin, nav.last())
	assert.Empty(t, session.Error())
	assert.False(t, session.Loading())
}

func TestSessionStore_IsAuthenticated_ReadsStorageFresh(t *testing.T) {
	session, creds, _ := newSessionStore(t, http.NotFoundHandler())

	assert.False(t, session.IsAuthenticated())

	// A token written directly to the store must be visible without
	// any session action in between.
	require.NoError(t, creds.SetToken("t1"))
	assert.True(t, session.IsAuthenticated())
	assert.Equal(t, "t1", session.Token())

	require.NoError(t, creds.Clear())
	assert.False(t, session.IsAuthenticated())
	assert.Empty(t, session.Token())
}

func TestSessionStore_LoadingDuringPendingRequest(t *testing.T) {
	received := make(chan struct{})
	release := make(chan struct{})
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		close(received)
		<-release
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid credentials."}`))
	})
	session, _, _ := newSessionStore(t, handler)

	done := make(chan error, 1)
	go func() {
		done <- session.Login(context.Background(), models.LoginRequest{Email: "a@b.c", Password: "x"})
	}()

	<-received
	assert.True(t, session.Loading(), "loading must be true while the request is pending")

	close(release)
	err := <-done
	require.Error(t, err)
	assert.False(t, session.Loading(), "loading must be false after the request resolves")
}
