package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/lwch/logging"
	"github.com/teatak/transfer/bootstrap"
	"github.com/teatak/transfer/config"
	"github.com/teatak/transfer/server"
	"go.uber.org/fx"
)

func main() {
	// * main fx application
	fx.New(
		bootstrap.Option(),
		bootstrap.Module,
		fx.Provide(
			server.New,
		),
		fx.Invoke(
			invoke,
		),
	).Run()
}

func invoke(lifecycle fx.Lifecycle, shutdowner fx.Shutdowner, cfg *config.Config, handler *server.Handler) {
	srv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logging.Info("server started on %s", ln.Addr())

			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logging.Error("serve: %v", err)
					_ = shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logging.Info("server stopping")
			return srv.Shutdown(ctx)
		},
	})
}
