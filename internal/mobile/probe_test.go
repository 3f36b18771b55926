package mobile

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/obra-offline/internal/application/dto"
)

func TestHTTPProbe(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/health" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"healthy","server":"embedded-offline","offline":true}`))
	}))
	defer ts.Close()

	status, err := NewHTTPProbe(time.Second).Check(context.Background(), ts.URL)
	require.NoError(t, err)
	assert.Equal(t, dto.HealthStatusHealthy, status)
}

func TestHTTPProbe_StatusNoOK(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	_, err := NewHTTPProbe(time.Second).Check(context.Background(), ts.URL)
	assert.Error(t, err)
}

func TestHTTPProbe_SinServidor(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	_, err := NewHTTPProbe(300*time.Millisecond).Check(context.Background(), url)
	assert.Error(t, err)
}
