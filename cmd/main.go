package main

//
//  @title           stockprice API
//  @version         1.0
//  @description     Stock price listing with filtering, sorting and pagination over RapidAPI.
//  @termsOfService  https://github.com/guttosm/stockprice
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/stockprice
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        prices
//  @tag.description Filtered, sorted and paginated stock prices
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/stockprice/config"
	_ "github.com/guttosm/stockprice/docs" // swagger docs
	"github.com/guttosm/stockprice/internal/app"
	"github.com/guttosm/stockprice/internal/logger"
)

const shutdownTimeout = 10 * time.Second

// newServer builds the HTTP server with the timeouts used in production.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized (not yet listening) HTTP server instance.
func newServer(router http.Handler, port string) *http.Server {
	return &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

// run serves on ln until ctx is canceled, then shuts the server down
// gracefully and calls cleanup.
//
// Parameters:
//   - ctx (context.Context): Canceled on SIGINT / SIGTERM.
//   - server (*http.Server): The server to run.
//   - ln (net.Listener): Listener the server accepts on.
//   - cleanup (func()): Releases resources (idle upstream connections).
//
// Returns:
//   - error: a serve failure, or a shutdown that did not finish in time.
func run(ctx context.Context, server *http.Server, ln net.Listener, cleanup func()) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.L().Info().Str("addr", ln.Addr().String()).Msg("server starting")
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.L().Info().Msg("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		defer cleanup()

		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.L().Info().Msg("server exited gracefully")
	return nil
}

// signalContext is canceled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// main is the entry point of the stockprice API server.
//
// Flags:
//   - --port: Port for the API server. Defaults to value from config (SERVER_PORT).
func main() {
	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	port := flag.String("port", config.AppConfig.Server.Port, "Port for the API server")
	flag.Parse()

	ctx, stop := signalContext()
	defer stop()

	router, cleanup, err := app.InitializeApp()
	if err != nil {
		logger.L().Fatal().Err(err).Msg("app init error")
	}

	server := newServer(router, *port)
	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		logger.L().Fatal().Err(err).Str("addr", server.Addr).Msg("listen failed")
	}

	if err := run(ctx, server, ln, cleanup); err != nil {
		logger.L().Fatal().Err(err).Msg("server stopped with error")
	}
}
