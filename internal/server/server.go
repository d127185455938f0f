package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	wishlogging "github.com/charmbracelet/wish/logging"

	"github.com/bilalayas/takipcim/internal/adapters/sound"
	"github.com/bilalayas/takipcim/internal/config"
	"github.com/bilalayas/takipcim/internal/logging"
	"github.com/bilalayas/takipcim/internal/services"
	"github.com/bilalayas/takipcim/internal/tracker"
	"github.com/bilalayas/takipcim/internal/ui"
)

const shutdownTimeout = 30 * time.Second

// Config describes where the server listens and which keys it trusts
type Config struct {
	AuthorizedKeysPath string
	Host               string
	HostKeyPath        string
	Port               string
	SettingsPath       string
}

// Server serves the tracker TUI over SSH. All sessions drive the same
// tracker, one session at a time, so a timer keeps running across reconnects.
type Server struct {
	active         sync.Mutex // held while a session is attached
	cfg            Config
	settings       *config.Settings
	summaryService *services.SummaryService
	taskService    *services.TaskService
	tracker        *tracker.Tracker
	wishServer     *ssh.Server
}

// NewServer creates the SSH server. The host key is generated on first start.
func NewServer(
	cfg Config,
	tr *tracker.Tracker,
	taskService *services.TaskService,
	summaryService *services.SummaryService,
	settings *config.Settings,
) (*Server, error) {
	s := &Server{
		cfg:            cfg,
		settings:       settings,
		summaryService: summaryService,
		taskService:    taskService,
		tracker:        tr,
	}

	if err := os.MkdirAll(filepath.Dir(cfg.HostKeyPath), 0700); err != nil {
		return nil, fmt.Errorf("failed to create SSH directory: %w", err)
	}

	// middleware runs last to first
	wishServer, err := wish.NewServer(
		wish.WithAddress(net.JoinHostPort(cfg.Host, cfg.Port)),
		wish.WithHostKeyPath(cfg.HostKeyPath),
		wish.WithPublicKeyAuth(s.authorize),
		wish.WithMiddleware(
			bubbletea.Middleware(s.teaHandler),
			activeterm.Middleware(),
			s.singleSession(),
			wishlogging.Middleware(),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH server: %w", err)
	}

	s.wishServer = wishServer
	return s, nil
}

// Addr returns the configured listen address
func (s *Server) Addr() string {
	return s.wishServer.Addr
}

// Start serves until ctx is cancelled or the process is interrupted
func (s *Server) Start(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logging.Logger.Info("Starting SSH server", "address", s.Addr())
		errCh <- s.wishServer.ListenAndServe()
	}()
	fmt.Printf("SSH server listening on %s\n", s.Addr())

	select {
	case err := <-errCh:
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("SSH server failed: %w", err)
	case <-ctx.Done():
	}

	logging.Logger.Info("Shutting down SSH server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.wishServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown SSH server: %w", err)
	}

	logging.Logger.Info("SSH server stopped")
	return nil
}

// singleSession turns away a second terminal while one is attached
func (s *Server) singleSession() wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			if !s.active.TryLock() {
				logging.Logger.Warn("Rejected SSH session, another one is attached",
					"user", sess.User(),
					"remote_addr", sess.RemoteAddr().String())
				wish.Fatalln(sess, "takipcim is already open in another session")
				return
			}
			defer s.active.Unlock()
			next(sess)
		}
	}
}

// teaHandler builds the TUI for an attached session
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	logging.Logger.Info("New SSH session",
		"user", sess.User(),
		"remote_addr", sess.RemoteAddr().String(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	model := ui.NewModel(s.tracker, s.taskService, s.summaryService, s.settings, ui.Options{
		Notifier:     sound.NewBell(sess),
		SettingsPath: s.cfg.SettingsPath,
	})
	return model, []tea.ProgramOption{tea.WithAltScreen()}
}
