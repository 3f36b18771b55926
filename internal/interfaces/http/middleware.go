package http

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// Claves de c.Locals.
const (
	LocalRequestID = "request_id"
	LocalLogger    = "logger"
)

// HeaderRequestID cabecera de correlación.
const HeaderRequestID = "X-Request-ID"

// RequestID asigna un id a cada petición (respeta el que envíe el cliente) y
// guarda un sub-logger con ese id en locals.
func RequestID(base zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(HeaderRequestID, id)
		c.Locals(LocalRequestID, id)
		c.Locals(LocalLogger, base.With().Str(LocalRequestID, id).Logger())
		return c.Next()
	}
}

// requestLogger devuelve el sub-logger de la petición o uno mudo.
func requestLogger(c *fiber.Ctx) zerolog.Logger {
	if l, ok := c.Locals(LocalLogger).(zerolog.Logger); ok {
		return l
	}
	return zerolog.Nop()
}

// Metrics contadores HTTP con registro propio por servidor (sin promauto global),
// de modo que varios servidores puedan convivir en el mismo proceso.
type Metrics struct {
	Registry        *prometheus.Registry
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewMetrics registra las métricas bajo el prefijo indicado.
func NewMetrics(prefix string) *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
	}
	m.Registry.MustRegister(m.requestsTotal, m.requestDuration)
	return m
}

// Handler middleware que mide cada petición. El path es la ruta registrada
// (":id" sin expandir) para no crear series por cada id.
func (m *Metrics) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var ferr *fiber.Error
			if errors.As(err, &ferr) {
				status = ferr.Code
			}
		}
		path := c.Route().Path
		labels := []string{c.Method(), path, strconv.Itoa(status)}
		m.requestsTotal.WithLabelValues(labels...).Inc()
		m.requestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
		return err
	}
}
