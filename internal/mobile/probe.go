package mobile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/obra-offline/internal/application/dto"
)

// HTTPProbe health check real contra el servidor embebido (cliente de Fiber).
type HTTPProbe struct {
	Timeout time.Duration
}

// NewHTTPProbe construye el probe; timeout <= 0 usa 2s.
func NewHTTPProbe(timeout time.Duration) *HTTPProbe {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &HTTPProbe{Timeout: timeout}
}

// Check GET {baseURL}/api/health. Respuesta distinta de 200 o cuerpo ilegible = error.
func (p *HTTPProbe) Check(ctx context.Context, baseURL string) (string, error) {
	timeout := p.Timeout
	if dl, ok := ctx.Deadline(); ok {
		if left := time.Until(dl); left < timeout {
			timeout = left
		}
	}
	if timeout <= 0 {
		return "", context.DeadlineExceeded
	}

	a := fiber.Get(baseURL + "/api/health")
	a.Timeout(timeout)

	var out dto.HealthResponse
	code, _, errs := a.Struct(&out)
	if len(errs) > 0 {
		return "", fmt.Errorf("health check: %w", errors.Join(errs...))
	}
	if code != fiber.StatusOK {
		return "", fmt.Errorf("health check: status HTTP %d", code)
	}
	return out.Status, nil
}
