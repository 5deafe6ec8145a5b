package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/billsplit/internal/config"
	"github.com/mmynk/billsplit/internal/metrics"
	"github.com/mmynk/billsplit/internal/middleware"
	"github.com/mmynk/billsplit/internal/service"
	"github.com/mmynk/billsplit/internal/web"
	"github.com/mmynk/billsplit/internal/widget"
	"github.com/mmynk/billsplit/pkg/logging"
	"github.com/mmynk/billsplit/pkg/proto/protoconnect"
)

var addr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the widget in the browser, plus the Connect API and metrics",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides BILLSPLIT_ADDR)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Addr = addr
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	logging.SetupWithLevel(cfg.LogLevel)

	handler, err := newServeHandler(cfg)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr: cfg.Addr,
		// Wrap with h2c for HTTP/2 without TLS (Connect clients may use it)
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server starting", "address", cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newServeHandler wires the widget page, the Connect API and /metrics onto
// one controller.
func newServeHandler(cfg config.Config) (http.Handler, error) {
	m := metrics.New()
	ctrl := newController(cfg, widget.WithRecorder(m))
	ctrl.Subscribe(func(s widget.Snapshot) {
		selected := ""
		if s.Selected != nil {
			selected = s.Selected.ID
		}
		slog.Debug("State changed",
			"friends", len(s.Friends),
			"selected", selected,
			"add_form_open", s.ShowAddFriend,
		)
	})

	mux := http.NewServeMux()

	path, apiHandler := protoconnect.NewFriendServiceHandler(
		service.NewFriendService(ctrl),
		connect.WithInterceptors(middleware.LoggingInterceptor()),
	)
	mux.Handle(path, middleware.CORS(apiHandler))
	mux.Handle("GET /metrics", m.Handler())

	page, err := web.New(ctrl)
	if err != nil {
		return nil, err
	}
	page.Register(mux)

	return middleware.Logging(mux), nil
}
