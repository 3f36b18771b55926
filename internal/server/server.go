// Package server es el Lifecycle Manager: dueño único del listener HTTP y del
// handle de base de datos. Stopped → Starting → Running → Stopped.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/obra-offline/internal/infrastructure/sqlstore"
	"github.com/jhoicas/obra-offline/pkg/config"
	"github.com/jhoicas/obra-offline/pkg/logger"
)

// State estado del ciclo de vida.
type State int32

const (
	StateStopped State = iota
	StateStarting
	StateRunning
)

func (s State) String() string {
	switch s {
	case StateStarting:
		return "starting"
	case StateRunning:
		return "running"
	default:
		return "stopped"
	}
}

// PortBindError el listener no pudo abrir la dirección (ocupada, sin permisos
// o tiempo de bind agotado).
type PortBindError struct {
	Addr string
	Err  error
}

func (e *PortBindError) Error() string {
	return fmt.Sprintf("no se pudo escuchar en %s: %v", e.Addr, e.Err)
}

func (e *PortBindError) Unwrap() error { return e.Err }

// Server agrupa listener, aplicación Fiber y Store como una sola unidad.
// Cada instancia es independiente; no hay estado global.
type Server struct {
	cfg *config.Config
	log *logger.Logger

	mu    sync.Mutex // serializa Start/Stop
	state atomic.Int32

	store *sqlstore.Store
	app   *fiber.App
	ln    net.Listener
	done  chan struct{}
}

// New construye un servidor detenido.
func New(cfg *config.Config, log *logger.Logger) *Server {
	if log == nil {
		log = logger.Nop()
	}
	return &Server{cfg: cfg, log: log.Component("server")}
}

// Start abre el almacén, ejecuta migraciones y siembra, arma las rutas y
// empieza a escuchar. Si ya está Running no hace nada.
// Un fallo de bind devuelve *PortBindError y deja el estado en Stopped.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.State() == StateRunning {
		s.log.Info().Str("addr", s.ln.Addr().String()).Msg("servidor ya en ejecución")
		return nil
	}
	s.state.Store(int32(StateStarting))

	store, err := sqlstore.Open(ctx, s.cfg.DB)
	if err != nil {
		s.state.Store(int32(StateStopped))
		return fmt.Errorf("abrir base de datos: %w", err)
	}
	if err := store.Initialize(ctx); err != nil {
		_ = store.Close()
		s.state.Store(int32(StateStopped))
		return fmt.Errorf("inicializar esquema: %w", err)
	}

	ln, err := s.listen(ctx)
	if err != nil {
		_ = store.Close()
		s.state.Store(int32(StateStopped))
		return err
	}

	app := s.buildApp(store)
	done := make(chan struct{})
	s.store, s.app, s.ln, s.done = store, app, ln, done
	s.state.Store(int32(StateRunning))

	go func() {
		defer close(done)
		if err := app.Listener(ln); err != nil {
			s.log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()
	s.log.Info().
		Str("addr", ln.Addr().String()).
		Str("db", store.Driver()).
		Msg("servidor offline iniciado")
	return nil
}

func (s *Server) listen(ctx context.Context) (net.Listener, error) {
	addr := s.cfg.HTTP.Addr()
	timeout := s.cfg.HTTP.BindTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	bindCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var lc net.ListenConfig
	ln, err := lc.Listen(bindCtx, "tcp", addr)
	if err != nil {
		return nil, &PortBindError{Addr: addr, Err: err}
	}
	return ln, nil
}

// Stop cierra el listener y el handle de base de datos y marca Stopped,
// aunque ya estuviera detenido.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			errs = append(errs, fmt.Errorf("apagar HTTP: %w", err))
		}
		// Si Serve aún no registró el listener, Shutdown no lo cierra y Accept
		// quedaría bloqueado; cerrarlo aquí libera el puerto y termina Serve.
		if err := s.ln.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			errs = append(errs, fmt.Errorf("cerrar listener: %w", err))
		}
		select {
		case <-s.done:
		case <-ctx.Done():
			errs = append(errs, ctx.Err())
		}
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			errs = append(errs, fmt.Errorf("cerrar base de datos: %w", err))
		}
	}
	wasRunning := s.app != nil
	s.store, s.app, s.ln, s.done = nil, nil, nil, nil
	s.state.Store(int32(StateStopped))

	if wasRunning {
		s.log.Info().Msg("servidor offline detenido")
	}
	return errors.Join(errs...)
}

// State estado actual. Seguro para llamar desde handlers mientras Start/Stop
// tienen el lock.
func (s *Server) State() State { return State(s.state.Load()) }

// IsRunning true solo en estado Running.
func (s *Server) IsRunning() bool { return s.State() == StateRunning }

// Addr dirección real de escucha (resuelve el puerto 0); la configurada si está detenido.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln != nil {
		return s.ln.Addr().String()
	}
	return s.cfg.HTTP.Addr()
}

// BaseURL URL base que usa el frontend y el health probe.
func (s *Server) BaseURL() string { return "http://" + s.Addr() }
