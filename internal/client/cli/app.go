package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/integrasalud/affiliate-client/internal/client/config"
	"github.com/integrasalud/affiliate-client/internal/client/models"
	"github.com/integrasalud/affiliate-client/internal/client/services"
	"github.com/integrasalud/affiliate-client/internal/logging"
)

type Screen string

const (
	ScreenLogin Screen = "login"
	ScreenHome  Screen = "home"
)

type avatarResolver interface {
	Resolve(ctx context.Context, ref string) (string, error)
}

type linkOpener interface {
	Open(url string) error
}

type App struct {
	config      *config.Config
	logger      logging.Logger
	authService services.AuthService
	avatars     avatarResolver
	opener      linkOpener

	form        models.LoginForm
	screen      Screen
	user        *models.UserRecord
	lastSession *services.PersistedSession

	reader *bufio.Reader
	out    io.Writer
}

// NewApp builds the backends selected by c and returns an App on the login
// screen.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	b, err := buildBackends(ctx, c, logger)
	if err != nil {
		return nil, err
	}

	a := &App{
		config:  c,
		logger:  logger,
		avatars: b.avatars,
		opener:  b.opener,
		screen:  ScreenLogin,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}

	a.authService = services.NewAuthService(services.Dependencies{
		Directory: b.directory,
		Identity:  b.identity,
		Store:     b.store,
		Navigator: a,
		Logger:    logger,
		Timeout:   c.RequestTimeout,
	})

	return a, nil
}

// Navigate implements services.Navigator.
func (a *App) Navigate(ctx context.Context, dest services.Destination, user *models.UserRecord) {
	if dest != services.DestinationHome {
		a.logger.Warn(ctx, "unknown destination", "destination", string(dest))
		return
	}
	a.user = user
	a.screen = ScreenHome
	a.form = models.LoginForm{}
	fmt.Fprintf(a.out, "Bienvenido/a, %s\n", user.Email)
}

// Run loads the stored session and drives the REPL until exit.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.authService.Close(ctx); err != nil {
			a.logger.Warn(ctx, "close failed", "error", err)
		}
	}()

	a.mount(ctx)

	fmt.Fprintln(a.out, "Integra Salud (escribí 'help' para ver los comandos)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

// mount reads the persisted session. A stored session is remembered for the
// status command only: the user still signs in on every start.
func (a *App) mount(ctx context.Context) {
	s, err := a.authService.LoadPersisted(ctx)
	if err != nil {
		a.logger.Warn(ctx, "stored session ignored", "kind", services.Kind(err).String(), "error", err)
		return
	}
	a.lastSession = s
	if s != nil {
		a.logger.Debug(ctx, "stored session found", "saved_at", s.SavedAt)
	}
}

func (a *App) loggedIn() bool {
	return a.screen == ScreenHome && a.user != nil
}

func (a *App) getStatus() string {
	if a.loggedIn() {
		return fmt.Sprintf("(%s %s)", ScreenHome, a.user.Email)
	}
	return fmt.Sprintf("(%s)", ScreenLogin)
}
