package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/tasknotes/internal/client/api"
	"github.com/dmitrijs2005/tasknotes/internal/client/models"
	"github.com/dmitrijs2005/tasknotes/internal/client/resources"
	"github.com/dmitrijs2005/tasknotes/internal/logging"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- fakes ----

type fakeSession struct {
	mu       sync.Mutex
	username string
	token    string

	tokenErr error
	saveErr  error
	clearErr error

	saves, clears int
}

func (s *fakeSession) Token(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.tokenErr
}

func (s *fakeSession) Username(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.username, nil
}

func (s *fakeSession) Save(_ context.Context, username, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves++
	if s.saveErr != nil {
		return s.saveErr
	}
	s.username, s.token = username, token
	return nil
}

func (s *fakeSession) Clear(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clears++
	if s.clearErr != nil {
		return s.clearErr
	}
	s.username, s.token = "", ""
	return nil
}

// fakeServer emulates the auth endpoints and records the Authorization
// header of the last /tasks/ request.
type fakeServer struct {
	*httptest.Server

	mu         sync.Mutex
	lastAuth   string
	loggedOut  bool
	logoutCode int
}

func newFakeServer(t *testing.T) *fakeServer {
	t.Helper()
	fs := &fakeServer{logoutCode: http.StatusOK}
	fs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fs.mu.Lock()
		defer fs.mu.Unlock()

		switch r.URL.Path {
		case "/api/auth/login":
			var c models.Credentials
			_ = json.NewDecoder(r.Body).Decode(&c)
			if c.Password != "secret" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			_ = json.NewEncoder(w).Encode(models.TokenResponse{Token: "tok-" + c.Username})
		case "/api/auth/logout":
			fs.loggedOut = true
			w.WriteHeader(fs.logoutCode)
		case "/api/tasks/":
			fs.lastAuth = r.Header.Get("Authorization")
			_, _ = w.Write([]byte(`[]`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(fs.Close)
	return fs
}

func (fs *fakeServer) wasLoggedOut() bool {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.loggedOut
}

func (fs *fakeServer) auth() string {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.lastAuth
}

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func testCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func newReadyFacade(t *testing.T, srv *fakeServer, sess *fakeSession) *api.Facade {
	t.Helper()
	f := api.New(
		api.WithRoot(srv.URL+"/api"),
		api.WithHTTPClient(srv.Client()),
		api.WithHandshaker(api.StubHandshaker{}),
		api.WithTokenSource(sess),
		api.WithLogger(discardLogger()),
	)
	require.NoError(t, f.Initialize(testCtx(t)))
	return f
}

func listTasks(t *testing.T, f *api.Facade) {
	t.Helper()
	res, err := f.Resources()
	require.NoError(t, err)
	_, err = res.Tasks.List(testCtx(t), nil)
	require.NoError(t, err)
}

func signedToken(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return s
}

// ---- TESTS ----

func TestLogin_StoresTokenAndRefreshesHeader(t *testing.T) {
	srv := newFakeServer(t)
	sess := &fakeSession{}
	f := newReadyFacade(t, srv, sess)
	svc := NewAuthService(f, sess, discardLogger())

	listTasks(t, f)
	assert.Empty(t, srv.auth(), "no token before login")

	require.NoError(t, svc.Login(testCtx(t), "alice", []byte("secret")))
	assert.Equal(t, "tok-alice", sess.token)
	assert.Equal(t, "alice", sess.username)

	listTasks(t, f)
	assert.Equal(t, "Bearer tok-alice", srv.auth())
}

func TestLogin_WrongPassword(t *testing.T) {
	srv := newFakeServer(t)
	sess := &fakeSession{}
	f := newReadyFacade(t, srv, sess)
	svc := NewAuthService(f, sess, discardLogger())

	err := svc.Login(testCtx(t), "alice", []byte("nope"))
	require.ErrorIs(t, err, resources.ErrUnauthorized)
	assert.Zero(t, sess.saves)
}

func TestLogin_SaveFailure(t *testing.T) {
	srv := newFakeServer(t)
	sess := &fakeSession{saveErr: errors.New("disk full")}
	f := newReadyFacade(t, srv, sess)
	svc := NewAuthService(f, sess, discardLogger())

	err := svc.Login(testCtx(t), "alice", []byte("secret"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session saving error")
	assert.Contains(t, err.Error(), "disk full")
}

func TestLogin_FacadeNotReady(t *testing.T) {
	sess := &fakeSession{}
	f := api.New(api.WithHandshaker(api.StubHandshaker{}), api.WithLogger(discardLogger()))
	svc := NewAuthService(f, sess, discardLogger())

	err := svc.Login(testCtx(t), "alice", []byte("secret"))
	require.ErrorIs(t, err, api.ErrUninitializedAccess)
}

func TestLogout_ClearsTokenAndHeader(t *testing.T) {
	srv := newFakeServer(t)
	sess := &fakeSession{username: "alice", token: "tok-alice"}
	f := newReadyFacade(t, srv, sess)
	svc := NewAuthService(f, sess, discardLogger())

	listTasks(t, f)
	assert.Equal(t, "Bearer tok-alice", srv.auth())

	require.NoError(t, svc.Logout(testCtx(t)))
	assert.True(t, srv.wasLoggedOut())
	assert.Empty(t, sess.token)

	listTasks(t, f)
	assert.Empty(t, srv.auth())
}

func TestLogout_ServerErrors(t *testing.T) {
	tests := []struct {
		name    string
		code    int
		wantErr bool
	}{
		{name: "already revoked", code: http.StatusUnauthorized, wantErr: false},
		{name: "server failure", code: http.StatusInternalServerError, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newFakeServer(t)
			srv.logoutCode = tt.code
			sess := &fakeSession{username: "alice", token: "tok-alice"}
			f := newReadyFacade(t, srv, sess)
			svc := NewAuthService(f, sess, discardLogger())

			err := svc.Logout(testCtx(t))
			if tt.wantErr {
				require.Error(t, err)
				var se *resources.StatusError
				require.ErrorAs(t, err, &se)
				assert.Equal(t, tt.code, se.Code)
			} else {
				require.NoError(t, err)
			}

			assert.Equal(t, 1, sess.clears, "local session is cleared either way")
			h, err := f.Headers()
			require.NoError(t, err)
			assert.False(t, h.Has("Authorization"))
		})
	}
}

func TestLogout_ClearFailure(t *testing.T) {
	srv := newFakeServer(t)
	sess := &fakeSession{token: "tok", clearErr: errors.New("locked")}
	f := newReadyFacade(t, srv, sess)
	svc := NewAuthService(f, sess, discardLogger())

	err := svc.Logout(testCtx(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session clearing error")
}

func TestStatus(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(time.Hour)
	past := now.Add(-time.Hour)

	tests := []struct {
		name  string
		sess  *fakeSession
		check func(t *testing.T, st *Status)
	}{
		{
			name: "logged out",
			sess: &fakeSession{},
			check: func(t *testing.T, st *Status) {
				assert.Equal(t, &Status{}, st)
			},
		},
		{
			name: "opaque token",
			sess: &fakeSession{username: "bob", token: "9944b09199c62bcf9418ad846dd0e4bbdfc6ee4b"},
			check: func(t *testing.T, st *Status) {
				assert.Equal(t, &Status{LoggedIn: true, Username: "bob", Opaque: true}, st)
			},
		},
		{
			name: "valid jwt",
			sess: &fakeSession{username: "carol", token: signedToken(t, jwt.RegisteredClaims{
				Subject:   "42",
				ExpiresAt: jwt.NewNumericDate(future),
			})},
			check: func(t *testing.T, st *Status) {
				assert.True(t, st.LoggedIn)
				assert.Equal(t, "carol", st.Username)
				assert.Equal(t, "42", st.Subject)
				require.NotNil(t, st.ExpiresAt)
				assert.True(t, st.ExpiresAt.Equal(future))
				assert.False(t, st.Expired)
				assert.False(t, st.Opaque)
			},
		},
		{
			name: "expired jwt is still decoded",
			sess: &fakeSession{username: "dave", token: signedToken(t, jwt.RegisteredClaims{
				Subject:   "7",
				ExpiresAt: jwt.NewNumericDate(past),
			})},
			check: func(t *testing.T, st *Status) {
				assert.Equal(t, "7", st.Subject)
				assert.True(t, st.Expired)
			},
		},
		{
			name: "jwt without expiry",
			sess: &fakeSession{username: "erin", token: signedToken(t, jwt.RegisteredClaims{Subject: "8"})},
			check: func(t *testing.T, st *Status) {
				assert.Nil(t, st.ExpiresAt)
				assert.False(t, st.Expired)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &authService{session: tt.sess, logger: discardLogger(), now: func() time.Time { return now }}
			st, err := svc.Status(context.Background())
			require.NoError(t, err)
			tt.check(t, st)
		})
	}
}

func TestStatus_StorageError(t *testing.T) {
	svc := NewAuthService(nil, &fakeSession{tokenErr: errors.New("io")}, discardLogger())
	_, err := svc.Status(context.Background())
	require.Error(t, err)
}
