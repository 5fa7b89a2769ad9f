package server

import (
	"context"
	"errors"
	"net"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	bm "github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"

	"github.com/jenkinpan/teaform/internal/config"
	"github.com/jenkinpan/teaform/internal/tui"
)

// Runtime serves the UI to ssh clients. Every session gets its own
// model, so state never leaks between clients.
type Runtime struct {
	cfg config.Config
	srv *ssh.Server
}

// New builds the ssh server for cfg. The host key is created on first
// use if none exists at the configured path.
func New(cfg config.Config) (*Runtime, error) {
	rt := &Runtime{cfg: cfg}

	srv, err := wish.NewServer(
		wish.WithAddress(net.JoinHostPort(cfg.SSH.Host, strconv.Itoa(cfg.SSH.Port))),
		wish.WithHostKeyPath(cfg.SSH.HostKeyPath),
		wish.WithIdleTimeout(cfg.SSH.IdleTimeout),
		wish.WithMiddleware(
			bm.Middleware(rt.teaHandler),
			activeterm.Middleware(),
			logging.Middleware(),
		),
	)
	if err != nil {
		return nil, err
	}

	rt.srv = srv
	return rt, nil
}

// Addr returns the address the server binds to.
func (r *Runtime) Addr() string {
	return r.srv.Addr
}

// teaHandler builds a fresh session model sized to the client's pty.
func (r *Runtime) teaHandler(s ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := s.Pty()

	model := tui.NewAppModel(tui.Options{
		Theme:    r.cfg.Theme,
		Title:    r.cfg.Title,
		Renderer: bm.MakeRenderer(s),
		Width:    pty.Window.Width,
		Height:   pty.Window.Height,
	})
	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

// Run serves until ctx is canceled, then drains open sessions.
func (r *Runtime) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- r.srv.ListenAndServe()
	}()

	log.Info("ssh server listening", "addr", r.Addr())

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down ssh server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := r.srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return err
	}
	return nil
}
