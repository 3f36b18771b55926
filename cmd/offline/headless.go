package main

import (
	"context"

	"github.com/jhoicas/obra-offline/internal/mobile"
	"github.com/jhoicas/obra-offline/pkg/config"
	"github.com/jhoicas/obra-offline/pkg/logger"
)

// configDevice toma los datos del dispositivo de la configuración cuando el
// proceso corre sin host nativo (escritorio, CI).
type configDevice struct {
	cfg config.DeviceConfig
}

func (d configDevice) Info(context.Context) (mobile.DeviceInfo, error) {
	return mobile.DeviceInfo{Platform: d.cfg.Platform, Locale: d.cfg.Locale}, nil
}

// consoleUI registra en el log lo que una UI nativa mostraría.
type consoleUI struct {
	log  *logger.Logger
	exit context.CancelFunc
}

func (u *consoleUI) SetDirection(dir mobile.Direction) {
	u.log.Info().Str("direction", string(dir)).Msg("dirección de la interfaz")
}

func (u *consoleUI) HideSplash() {}

func (u *consoleUI) Toast(message string) {
	u.log.Info().Str("toast", message).Msg("aviso")
}

func (u *consoleUI) Navigate(route string) {
	u.log.Info().Str("route", route).Msg("navegar")
}

func (u *consoleUI) GoBack() {}

// Confirm sin pantalla no hay a quién preguntar: se responde que no.
func (u *consoleUI) Confirm(context.Context, string, string) bool { return false }

func (u *consoleUI) ReportFailure(err error) {
	u.log.Error().Err(err).Msg("fallo del servidor offline")
}

func (u *consoleUI) Exit() { u.exit() }
