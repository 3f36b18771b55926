package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/obra-offline/internal/application/dto"
	"github.com/jhoicas/obra-offline/internal/infrastructure/sqlstore"
	"github.com/jhoicas/obra-offline/internal/mobile"
	"github.com/jhoicas/obra-offline/pkg/config"
	"github.com/jhoicas/obra-offline/pkg/logger"
)

func TestRootCommand_Subcomandos(t *testing.T) {
	root := newRootCommand()
	require.NotNil(t, root.Action, "sin subcomando se ejecuta serve")

	names := make([]string, 0, len(root.Commands))
	for _, c := range root.Commands {
		names = append(names, c.Name)
	}
	assert.ElementsMatch(t, []string{"serve", "health", "init-db"}, names)
}

func TestHealthCommand_Sano(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"healthy","server":"embedded-offline","offline":true}`))
	}))
	defer ts.Close()

	var out bytes.Buffer
	root := newRootCommand()
	root.Writer = &out

	require.NoError(t, root.Run(context.Background(), []string{"obra-offline", "health", "--url", ts.URL}))
	assert.Equal(t, dto.HealthStatusHealthy, strings.TrimSpace(out.String()))
}

func TestInitDBCommand_ArchivoSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "obra.db")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", path)
	t.Setenv("APP_ENV", "test")
	t.Setenv("LOG_LEVEL", "error")

	require.NoError(t, newRootCommand().Run(context.Background(), []string{"obra-offline", "init-db"}))
	require.NoError(t, newRootCommand().Run(context.Background(), []string{"obra-offline", "init-db"}))

	ctx := context.Background()
	store, err := sqlstore.Open(ctx, config.DBConfig{Driver: config.DriverSQLite, Path: path})
	require.NoError(t, err)
	defer store.Close()

	companies, err := sqlstore.NewCompanyRepository(store).List(ctx)
	require.NoError(t, err)
	assert.Len(t, companies, 1)
}

func TestConfigDevice(t *testing.T) {
	d := configDevice{cfg: config.DeviceConfig{Locale: "ar-SA", Platform: "desktop"}}
	info, err := d.Info(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ar-SA", info.Locale)
	assert.Equal(t, "desktop", info.Platform)
	assert.Equal(t, mobile.DirectionRTL, mobile.DirectionFor(info.Locale))
}

func TestConsoleUI(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ui := &consoleUI{log: logger.Nop(), exit: cancel}

	assert.False(t, ui.Confirm(ctx, mobile.ExitConfirmTitle, mobile.ExitConfirmPrompt))
	ui.Navigate("#/financial")
	ui.Exit()
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}
