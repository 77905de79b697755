// Package httpserver runs an http.Server with graceful shutdown wired to
// OS signals and context cancellation.
//
// Run blocks until the context is canceled, SIGINT/SIGTERM arrives, or the
// listener fails; in-flight requests get the configured shutdown timeout to
// finish. Configuration comes either from functional options or from an
// environment-driven Config:
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil { ... }
//
// HealthCheckHandler provides probe endpoints for deployment environments.
package httpserver
