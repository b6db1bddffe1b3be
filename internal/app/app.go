package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/amaumene/responder/internal/config"
	"github.com/amaumene/responder/internal/handler"
	log "github.com/sirupsen/logrus"
)

const (
	shutdownTimeout = 10 * time.Second
	readTimeout     = 30 * time.Second
	writeTimeout    = 30 * time.Second
	idleTimeout     = 60 * time.Second
)

type App struct {
	cfg      *config.Config
	server   *http.Server
	listener net.Listener
}

func New(cfg *config.Config) *App {
	httpHandler := handler.NewHTTPHandler(cfg)

	return &App{
		cfg: cfg,
		server: &http.Server{
			Addr:         cfg.ServerAddr,
			Handler:      httpHandler.Routes(),
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
			IdleTimeout:  idleTimeout,
		},
	}
}

// Listen binds the server address. It is called by Run when the listener
// has not been opened yet.
func (a *App) Listen() error {
	ln, err := net.Listen("tcp", a.cfg.ServerAddr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", a.cfg.ServerAddr, err)
	}
	a.listener = ln
	return nil
}

// Addr reports the bound address, or nil before Listen.
func (a *App) Addr() net.Addr {
	if a.listener == nil {
		return nil
	}
	return a.listener.Addr()
}

func (a *App) Run(ctx context.Context) error {
	if a.listener == nil {
		if err := a.Listen(); err != nil {
			return err
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	serveErr := make(chan error, 1)
	go a.startServer(serveErr)

	return a.waitForShutdown(ctx, serveErr)
}

func (a *App) startServer(serveErr chan<- error) {
	log.WithFields(log.Fields{
		"component": "server",
		"address":   a.listener.Addr().String(),
		"version":   a.cfg.Version,
	}).Info("http server listening")

	if err := a.server.Serve(a.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		serveErr <- fmt.Errorf("serving http: %w", err)
	}
	close(serveErr)
}

func (a *App) waitForShutdown(ctx context.Context, serveErr <-chan error) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case <-ctx.Done():
		log.WithField("reason", "context_cancelled").Info("initiating graceful shutdown")
	case sig := <-sigChan:
		log.WithField("signal", sig).Info("received shutdown signal")
	case err, ok := <-serveErr:
		if ok {
			log.WithFields(log.Fields{
				"component": "server",
				"error":     err,
			}).Error("http server stopped unexpectedly")
			return err
		}
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	log.Info("graceful shutdown started")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		log.WithFields(log.Fields{
			"component": "server",
			"error":     err,
		}).Error("http server shutdown failed")
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("graceful shutdown completed")
	return nil
}
