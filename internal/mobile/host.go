// Package mobile integra el servidor embebido con el ciclo de vida del
// dispositivo: arranque, reanudación con health check y reinicio acotado,
// deep links y botón atrás.
package mobile

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/jhoicas/obra-offline/internal/application/dto"
	"github.com/jhoicas/obra-offline/pkg/config"
	"github.com/jhoicas/obra-offline/pkg/logger"
)

// Textos mostrados por el host (la UI es árabe por defecto).
const (
	ToastReady        = "التطبيق جاهز للعمل بدون اتصال"
	ExitConfirmTitle  = "الخروج من التطبيق"
	ExitConfirmPrompt = "هل تريد الخروج من التطبيق؟"
)

// Rutas del frontend (hash router).
const (
	RouteFinancial = "#/financial"
	routeProjects  = "#/projects/"
)

var projectLink = regexp.MustCompile(`^/projects/([A-Za-z0-9_-]+)/?$`)

// Options política del watchdog.
type Options struct {
	MaxRestarts int
	Backoff     time.Duration
	MaxBackoff  time.Duration
}

// OptionsFrom traduce la configuración del watchdog.
func OptionsFrom(cfg config.WatchdogConfig) Options {
	return Options{MaxRestarts: cfg.MaxRestarts, Backoff: cfg.Backoff, MaxBackoff: cfg.MaxBackoff}
}

// RestartError el servidor siguió sin responder tras agotar los reintentos.
type RestartError struct {
	Attempts int
	Err      error
}

func (e *RestartError) Error() string {
	return fmt.Sprintf("servidor sin respuesta tras %d reinicios: %v", e.Attempts, e.Err)
}

func (e *RestartError) Unwrap() error { return e.Err }

// Host puente entre eventos del sistema operativo y el Lifecycle Manager.
type Host struct {
	server EmbeddedServer
	device Device
	ui     UI
	probe  HealthProbe
	opts   Options
	log    *logger.Logger

	sleep func(ctx context.Context, d time.Duration) error
}

// NewHost construye el host. log nil = sin logs.
func NewHost(server EmbeddedServer, device Device, ui UI, probe HealthProbe, opts Options, log *logger.Logger) *Host {
	if log == nil {
		log = logger.Nop()
	}
	log = log.Component("mobile")
	if opts.MaxRestarts < 1 {
		opts.MaxRestarts = 1
	}
	if opts.Backoff <= 0 {
		opts.Backoff = 500 * time.Millisecond
	}
	if opts.MaxBackoff < opts.Backoff {
		opts.MaxBackoff = opts.Backoff
	}
	return &Host{
		server: server,
		device: device,
		ui:     ui,
		probe:  probe,
		opts:   opts,
		log:    log,
		sleep:  sleepCtx,
	}
}

// Init arranque de la app: dirección según locale, servidor, splash y aviso.
func (h *Host) Init(ctx context.Context) error {
	info, err := h.device.Info(ctx)
	if err != nil {
		h.log.Warn().Err(err).Msg("no se pudo leer la información del dispositivo")
	}
	dir := DirectionFor(info.Locale)
	h.ui.SetDirection(dir)
	h.log.Info().
		Str("platform", info.Platform).
		Str("model", info.Model).
		Str("locale", info.Locale).
		Str("direction", string(dir)).
		Msg("dispositivo")

	if err := h.server.Start(ctx); err != nil {
		h.ui.ReportFailure(err)
		return fmt.Errorf("iniciar servidor: %w", err)
	}
	h.ui.HideSplash()
	h.ui.Toast(ToastReady)
	return nil
}

// OnResume la app vuelve a primer plano: health check y, si falla, reinicio
// con backoff exponencial hasta MaxRestarts intentos. Si se agotan, se
// informa a la UI y se devuelve *RestartError.
func (h *Host) OnResume(ctx context.Context) error {
	err := h.healthy(ctx)
	if err == nil {
		return nil
	}
	h.log.Warn().Err(err).Msg("health check fallido, reiniciando servidor")

	backoff := h.opts.Backoff
	var lastErr error
	for attempt := 1; attempt <= h.opts.MaxRestarts; attempt++ {
		if err := h.server.Stop(ctx); err != nil {
			h.log.Warn().Err(err).Int("attempt", attempt).Msg("error deteniendo servidor")
		}
		lastErr = h.server.Start(ctx)
		if lastErr == nil {
			lastErr = h.healthy(ctx)
		}
		if lastErr == nil {
			h.log.Info().Int("attempt", attempt).Msg("servidor reiniciado")
			return nil
		}
		h.log.Warn().Err(lastErr).Int("attempt", attempt).Msg("reinicio fallido")

		if attempt == h.opts.MaxRestarts {
			break
		}
		if err := h.sleep(ctx, backoff); err != nil {
			return err
		}
		backoff *= 2
		if backoff > h.opts.MaxBackoff {
			backoff = h.opts.MaxBackoff
		}
	}

	failure := &RestartError{Attempts: h.opts.MaxRestarts, Err: lastErr}
	h.log.Error().Err(failure).Msg("servidor offline no disponible")
	h.ui.ReportFailure(failure)
	return failure
}

func (h *Host) healthy(ctx context.Context) error {
	status, err := h.probe.Check(ctx, h.server.BaseURL())
	if err != nil {
		return err
	}
	if status != dto.HealthStatusHealthy {
		return fmt.Errorf("estado %q", status)
	}
	return nil
}

// OnDeepLink navega según el enlace: /projects/{id} → #/projects/{id},
// /financial → #/financial. Cualquier otro enlace se ignora (false).
// Acepta esquemas propios ("obra://projects/5") y URLs http(s).
func (h *Host) OnDeepLink(raw string) (string, bool) {
	route, ok := RouteForLink(raw)
	if !ok {
		h.log.Debug().Str("url", raw).Msg("deep link ignorado")
		return "", false
	}
	h.ui.Navigate(route)
	return route, true
}

// RouteForLink traduce un deep link a la ruta del frontend.
func RouteForLink(raw string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", false
	}
	path := u.Path
	if u.Scheme != "" && u.Scheme != "http" && u.Scheme != "https" && u.Host != "" {
		// obra://projects/5 → host "projects", path "/5"
		path = "/" + u.Host + u.Path
	}
	if m := projectLink.FindStringSubmatch(path); m != nil {
		return routeProjects + m[1], true
	}
	if strings.TrimSuffix(path, "/") == "/financial" {
		return RouteFinancial, true
	}
	return "", false
}

// OnBackButton con historial navega hacia atrás; sin historial pide
// confirmación y sale si el usuario acepta.
func (h *Host) OnBackButton(ctx context.Context, canGoBack bool) {
	if canGoBack {
		h.ui.GoBack()
		return
	}
	if h.ui.Confirm(ctx, ExitConfirmTitle, ExitConfirmPrompt) {
		h.ui.Exit()
	}
}

// Shutdown detiene el servidor (la app pasa a terminada).
func (h *Host) Shutdown(ctx context.Context) error {
	return h.server.Stop(ctx)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
