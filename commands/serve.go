package commands

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"blogly/routes"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var (
	port            string
	shutdownTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, db, err := openDB()
		if err != nil {
			return err
		}

		if port != "" {
			cfg.Port = port
		}

		gin.SetMode(cfg.GinMode)
		router, err := routes.Setup(db, cfg)
		if err != nil {
			return err
		}

		srv := &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      30 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			log.Printf("Server starting on port %s", cfg.Port)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}

		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
		Success("Server stopped")
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides PORT)")
	serveCmd.Flags().DurationVar(&shutdownTimeout, "shutdown-timeout", 10*time.Second, "Time allowed for in-flight requests on shutdown")
	rootCmd.AddCommand(serveCmd)
}
