package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/tasknotes/internal/client/payload"
	"github.com/dmitrijs2005/tasknotes/internal/client/resources"
	"github.com/dmitrijs2005/tasknotes/internal/common"
	"github.com/dmitrijs2005/tasknotes/internal/logging"
	"github.com/google/uuid"
)

// State is the lifecycle phase of a Facade.
type State int32

const (
	Uninitialized State = iota
	Initializing
	Ready
	Failed
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Initializing:
		return "initializing"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// TokenSource reads the bearer token from persistent storage. An absent
// token is ("", nil).
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

type noTokens struct{}

func (noTokens) Token(context.Context) (string, error) { return "", nil }

// Resources holds every resource handle. It is published as a whole once
// initialization succeeds.
type Resources struct {
	User       *resources.User
	Tasks      *resources.Tasks
	Notes      *resources.Notes
	Tags       *resources.Tags
	Categories *resources.Categories
}

// DefaultRoot is used when no WithRoot option is given.
const DefaultRoot = "http://127.0.0.1:8080/api"

// Facade owns the shared headers and gates every resource handle behind a
// single initialization.
type Facade struct {
	id               string
	root             string
	client           *http.Client
	handshaker       Handshaker
	tokens           TokenSource
	logger           logging.Logger
	handshakeTimeout time.Duration

	startOnce sync.Once
	done      chan struct{}

	mu      sync.RWMutex
	state   State
	headers *payload.Headers
	res     *Resources
	initErr error
}

// Option configures a Facade.
type Option func(*Facade)

// WithRoot sets the API root URL, e.g. "https://notes.example.com/api".
func WithRoot(root string) Option {
	return func(f *Facade) { f.root = strings.TrimRight(root, "/") }
}

// WithHTTPClient sets the client used by the handshake and every handle.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Facade) { f.client = c }
}

// WithHandshaker replaces the default HTTPHandshaker.
func WithHandshaker(h Handshaker) Option {
	return func(f *Facade) { f.handshaker = h }
}

// WithTokenSource sets where UpdateHeader reads the bearer token from.
func WithTokenSource(ts TokenSource) Option {
	return func(f *Facade) { f.tokens = ts }
}

func WithLogger(l logging.Logger) Option {
	return func(f *Facade) { f.logger = l }
}

// WithHandshakeTimeout bounds the handshake. Zero means no bound.
func WithHandshakeTimeout(d time.Duration) Option {
	return func(f *Facade) { f.handshakeTimeout = d }
}

// New builds an Uninitialized facade. It performs no I/O.
func New(opts ...Option) *Facade {
	f := &Facade{
		id:     uuid.NewString(),
		root:   DefaultRoot,
		tokens: noTokens{},
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = http.DefaultClient
	}
	if f.logger == nil {
		f.logger = logging.NewSlogLogger(slog.Default())
	}
	f.logger = f.logger.With("facade_id", f.id)

	if f.handshaker == nil {
		f.handshaker = NewHTTPHandshaker(f.client, f.URL("settings"))
	}
	return f
}

// Open builds a facade and starts its initialization.
func Open(ctx context.Context, opts ...Option) *Facade {
	f := New(opts...)
	f.Start(ctx)
	return f
}

// ID identifies this facade instance in logs.
func (f *Facade) ID() string {
	return f.id
}

// State returns the current lifecycle phase.
func (f *Facade) State() State {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.state
}

// Start launches initialization in the background. Only the first call has
// an effect. ctx only carries values: its cancellation does not reach the
// handshake, which is bounded by WithHandshakeTimeout alone.
func (f *Facade) Start(ctx context.Context) {
	f.startOnce.Do(func() {
		f.mu.Lock()
		f.state = Initializing
		f.mu.Unlock()

		f.logger.Debug(ctx, "facade initializing", "root", f.root)
		go f.initialize(context.WithoutCancel(ctx))
	})
}

// Initialized waits for initialization to settle and returns its result.
// Every call returns the same result; the handshake runs once.
// If ctx ends first, ctx.Err() is returned and initialization carries on.
func (f *Facade) Initialized(ctx context.Context) error {
	if f.State() == Uninitialized {
		return ErrUninitializedAccess
	}

	select {
	case <-f.done:
	case <-ctx.Done():
		return ctx.Err()
	}

	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.initErr
}

// Initialize starts initialization if needed and waits for it.
func (f *Facade) Initialize(ctx context.Context) error {
	f.Start(ctx)
	return f.Initialized(ctx)
}

func (f *Facade) initialize(ctx context.Context) {
	defer close(f.done)

	hctx := ctx
	if f.handshakeTimeout > 0 {
		var cancel context.CancelFunc
		hctx, cancel = context.WithTimeout(ctx, f.handshakeTimeout)
		defer cancel()
	}

	csrf, err := f.handshaker.Handshake(hctx)
	if err != nil {
		f.mu.Lock()
		f.state = Failed
		f.initErr = err
		f.mu.Unlock()

		f.logger.Error(ctx, "facade initialization failed", "error", err)
		return
	}

	headers := payload.NewHeaders(map[string]string{common.CSRFHeaderName: csrf})
	f.applyAuthorization(ctx, headers)

	res := &Resources{
		User:       resources.NewUser(f),
		Tasks:      resources.NewTasks(f),
		Notes:      resources.NewNotes(f),
		Tags:       resources.NewTags(f),
		Categories: resources.NewCategories(f),
	}

	f.mu.Lock()
	f.headers = headers
	f.res = res
	f.state = Ready
	f.mu.Unlock()

	f.logger.Info(ctx, "facade ready", "authenticated", headers.Has(common.AuthorizationHeaderName))
}

// notReady must be called with f.mu held.
func (f *Facade) notReady() error {
	if f.state == Failed {
		return fmt.Errorf("%w: %w", ErrUninitializedAccess, f.initErr)
	}
	return fmt.Errorf("%w (state %s)", ErrUninitializedAccess, f.state)
}

// Headers returns the shared header mapping. Callers must treat it as
// read-only; only UpdateHeader mutates it.
func (f *Facade) Headers() (*payload.Headers, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.state != Ready {
		return nil, f.notReady()
	}
	return f.headers, nil
}

// Resources returns the resource handles.
func (f *Facade) Resources() (*Resources, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.state != Ready {
		return nil, f.notReady()
	}
	return f.res, nil
}

// ToJSON encodes data as an application/json body paired with the shared
// headers (by reference).
func (f *Facade) ToJSON(data any) (*payload.Bundle, error) {
	headers, err := f.Headers()
	if err != nil {
		return nil, err
	}
	return payload.NewJSONBundle(data, headers)
}

// UpdateHeader re-reads the stored token and sets or clears the
// Authorization header accordingly.
func (f *Facade) UpdateHeader(ctx context.Context) error {
	headers, err := f.Headers()
	if err != nil {
		return err
	}
	f.applyAuthorization(ctx, headers)
	return nil
}

// A storage failure counts as "no token".
func (f *Facade) applyAuthorization(ctx context.Context, headers *payload.Headers) {
	token, err := f.tokens.Token(ctx)
	if err != nil {
		f.logger.Warn(ctx, "token read failed, continuing unauthenticated", "error", err)
		token = ""
	}

	if token == "" {
		headers.Delete(common.AuthorizationHeaderName)
		return
	}
	headers.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
}

// URL joins parts under the API root and appends a trailing slash.
func (f *Facade) URL(parts ...string) string {
	var b strings.Builder
	b.WriteString(f.root)
	for _, p := range parts {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(p))
	}
	b.WriteByte('/')
	return b.String()
}

// HTTPClient returns the client shared by the handshake and every handle.
func (f *Facade) HTTPClient() *http.Client {
	return f.client
}

var _ resources.Backend = (*Facade)(nil)
