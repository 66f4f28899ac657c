package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	httpadapter "svw.info/sokoban/internal/adapters/http"
)

var (
	addr string

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve the level API over HTTP",
		RunE:  runServe,
	}
)

func init() {
	serveCmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := setupLogging(cmd, os.Stdout)
	if err != nil {
		return err
	}
	defer a.Close()

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), httpadapter.RequestLogger(a.logger))
	httpadapter.New(a.uc).Register(router)

	srv := &http.Server{
		Addr:              a.cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	a.logger.Info("listening", "addr", a.cfg.Server.Addr, "storage", a.cfg.Storage.Kind,
		"persist", a.cfg.Storage.Path, "seed", a.cfg.Generator.Seed)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		a.logger.Error("server error", "err", err)
		return err
	}
	return nil
}
