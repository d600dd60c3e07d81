package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Bipul-Dubey/number-classifier/config"
	"github.com/Bipul-Dubey/number-classifier/handlers"
	"github.com/Bipul-Dubey/number-classifier/routes"
	"github.com/Bipul-Dubey/number-classifier/services"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

var (
	flagDebug bool
	flagHost  string
	flagPort  int
)

var rootCmd = &cobra.Command{
	Use:          "number-classifier",
	Short:        "HTTP service that classifies the mathematical properties of an integer",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("debug") {
			cfg.Debug = flagDebug
		}
		if cmd.Flags().Changed("host") {
			cfg.Host = flagHost
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = flagPort
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		return run(cmd.Context(), cfg)
	},
}

func init() {
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "enable debug mode (overrides FLASK_DEBUG)")
	rootCmd.Flags().StringVar(&flagHost, "host", "0.0.0.0", "address to bind (overrides HOST)")
	rootCmd.Flags().IntVar(&flagPort, "port", 5000, "port to bind (overrides PORT)")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	logger, err := config.NewLogger(cfg.Debug)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	numbersClient := config.NewNumbersAPIClient(cfg.NumbersAPIURL, cfg.NumbersAPITimeout)
	defer numbersClient.CloseIdleConnections()

	// Create service manager with all dependencies
	serviceManager := services.NewServiceManager(numbersClient, logger)

	// Create handler manager with service manager
	handlerManager := handlers.NewHandlerManager(serviceManager)

	r := routes.SetupRoutes(handlerManager, logger)

	handler := serverHandler(cfg, r)

	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.Addr(), err)
	}

	return serve(ctx, cfg, ln, handler, logger)
}

// serverHandler wraps h for HTTP/2 cleartext when H2C is enabled.
func serverHandler(cfg *config.Config, h http.Handler) http.Handler {
	if cfg.H2CEnabled {
		return h2c.NewHandler(h, &http2.Server{})
	}
	return h
}

// serve runs the HTTP server on ln until ctx is cancelled, then drains
// in-flight requests for at most cfg.ShutdownTimeout.
func serve(ctx context.Context, cfg *config.Config, ln net.Listener, handler http.Handler, logger *zap.Logger) error {
	srv := &http.Server{
		Handler: handler,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Number classifier starting",
			zap.String("addr", ln.Addr().String()),
			zap.Bool("debug", cfg.Debug),
			zap.Bool("h2c", cfg.H2CEnabled),
		)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server failed: %w", err)
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down", zap.Duration("timeout", cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
