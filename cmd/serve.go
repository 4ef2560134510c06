// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/canonical/ops-console/internal/config"
	"github.com/canonical/ops-console/internal/db"
	"github.com/canonical/ops-console/internal/logging"
	"github.com/canonical/ops-console/internal/monitoring/prometheus"
	"github.com/canonical/ops-console/internal/remotedb"
	"github.com/canonical/ops-console/internal/storage"
	"github.com/canonical/ops-console/internal/tracing"
	"github.com/canonical/ops-console/internal/vault"
	"github.com/canonical/ops-console/pkg/access"
	"github.com/canonical/ops-console/pkg/authentication"
	"github.com/canonical/ops-console/pkg/diagnostics"
	"github.com/canonical/ops-console/pkg/entitlements"
	"github.com/canonical/ops-console/pkg/requests"
	"github.com/canonical/ops-console/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("ops-console", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	// A bad master key must stop the process before it serves traffic.
	v, err := vault.NewVault(specs.VaultMasterKey, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize credential vault: %v", err)
	}

	authService := authentication.NewService(s, specs.SessionLifetime, tracer, monitor, logger)
	entitlementsService := entitlements.NewService(s, tracer, monitor, logger)
	requestsService := requests.NewService(s, entitlementsService, s, v, dbClient, tracer, monitor, logger)
	accessService := access.NewService(s, v, tracer, monitor, logger)
	diagnosticsService := diagnostics.NewService(
		s,
		accessService,
		v,
		remotedb.NewConnector(logger),
		specs.FanoutConcurrency,
		specs.RemoteConnTimeout,
		tracer,
		monitor,
		logger,
	)

	router := web.NewRouter(
		web.RouterConfig{
			SessionLifetime: specs.SessionLifetime,
			CookieSecure:    specs.CookieSecure,
		},
		authService,
		entitlementsService,
		requestsService,
		accessService,
		diagnosticsService,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}
