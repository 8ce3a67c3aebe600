package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/tasknotes/internal/client/api"
	"github.com/dmitrijs2005/tasknotes/internal/client/services"
	"github.com/dmitrijs2005/tasknotes/internal/logging"
)

// Gateway is the part of api.Facade the CLI needs.
type Gateway interface {
	Initialized(ctx context.Context) error
	Resources() (*api.Resources, error)
}

// App holds the CLI session. Prompts, command output and errors are all
// written to out.
type App struct {
	gateway     Gateway
	authService services.AuthService
	logger      logging.Logger
	reader      *bufio.Reader
	out         io.Writer
	userName    string
}

// NewApp builds an App reading from stdin and writing to stdout.
func NewApp(g Gateway, as services.AuthService, l logging.Logger) *App {
	return &App{
		gateway:     g,
		authService: as,
		logger:      l,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
	}
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.userName)
}

func (a *App) resources() (*api.Resources, error) {
	return a.gateway.Resources()
}

// restoreSession picks up a login left over from a previous run.
func (a *App) restoreSession(ctx context.Context) {
	st, err := a.authService.Status(ctx)
	if err != nil {
		a.logger.Warn(ctx, "cannot read stored session", "error", err)
		return
	}
	if st.LoggedIn {
		a.userName = st.Username
	}
}

// Run waits for the facade to become ready, then serves the REPL until the
// user exits or input ends.
func (a *App) Run(ctx context.Context) error {
	if err := a.gateway.Initialized(ctx); err != nil {
		return fmt.Errorf("api initialization failed: %w", err)
	}

	a.restoreSession(ctx)

	fmt.Fprintln(a.out, "Welcome to tasknotes CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader, a.out)
	return nil
}
