package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/jhoicas/obra-offline/internal/application/dto"
	"github.com/jhoicas/obra-offline/internal/infrastructure/sqlstore"
	"github.com/jhoicas/obra-offline/internal/mobile"
	"github.com/jhoicas/obra-offline/internal/server"
	"github.com/jhoicas/obra-offline/pkg/config"
	"github.com/jhoicas/obra-offline/pkg/logger"
)

func main() {
	if err := newRootCommand().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCommand sin subcomando equivale a "serve".
func newRootCommand() *cli.Command {
	return &cli.Command{
		Name:  "obra-offline",
		Usage: "Servidor de datos embebido para el dashboard de obra en modo offline",
		Commands: []*cli.Command{
			serveCommand(),
			healthCommand(),
			initDBCommand(),
		},
		Action: serveAction,
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:   "serve",
		Usage:  "Inicia el servidor y el host (SIGHUP = health check, SIGINT/SIGTERM = detener)",
		Action: serveAction,
	}
}

func serveAction(ctx context.Context, _ *cli.Command) error {
	return runServe(ctx)
}

func healthCommand() *cli.Command {
	return &cli.Command{
		Name:  "health",
		Usage: "Consulta /api/health de un servidor en ejecución",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "url", Usage: "URL base (por defecto la configurada)"},
			&cli.DurationFlag{Name: "timeout", Value: 2 * time.Second},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			base := c.String("url")
			if base == "" {
				base = "http://" + cfg.HTTP.Addr()
			}
			status, err := mobile.NewHTTPProbe(c.Duration("timeout")).Check(ctx, base)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.Root().Writer, status)
			if status != dto.HealthStatusHealthy {
				return cli.Exit("servidor no saludable", 1)
			}
			return nil
		},
	}
}

func initDBCommand() *cli.Command {
	return &cli.Command{
		Name:  "init-db",
		Usage: "Crea el esquema y la siembra en la base configurada (DB_PATH o DATABASE_URL)",
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := newLogger(cfg)
			store, err := sqlstore.Open(ctx, cfg.DB)
			if err != nil {
				return err
			}
			defer store.Close()
			if err := store.Initialize(ctx); err != nil {
				return err
			}
			log.Info().Str("driver", store.Driver()).Msg("base de datos inicializada")
			return nil
		},
	}
}

func newLogger(cfg *config.Config) *logger.Logger {
	return logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		App:     cfg.App.Name,
		Version: cfg.App.Version,
	})
}

func runServe(parent context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	log := newLogger(cfg)
	log.Info().
		Str("app", cfg.App.Name).
		Str("env", cfg.App.Env).
		Str("db", cfg.DB.Driver).
		Msg("iniciando")

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	srv := server.New(cfg, log)
	host := mobile.NewHost(
		srv,
		configDevice{cfg: cfg.Device},
		&consoleUI{log: log, exit: cancel},
		mobile.NewHTTPProbe(cfg.Watchdog.HealthTimeout),
		mobile.OptionsFrom(cfg.Watchdog),
		log,
	)

	if err := host.Init(ctx); err != nil {
		return err
	}

	events := make(chan mobile.Event, 1)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigCh)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case sig := <-sigCh:
				if sig == syscall.SIGHUP {
					select {
					case events <- mobile.Event{Kind: mobile.EventResume}:
					case <-ctx.Done():
						return
					}
					continue
				}
				log.Info().Str("signal", sig.String()).Msg("señal de apagado recibida, cerrando servidor...")
				cancel()
				return
			}
		}
	}()

	_ = host.Run(ctx, events)

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := host.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	log.Info().Msg("aplicación detenida")
	return nil
}
