// Package httpserver runs an http.Handler with sane timeouts and graceful
// shutdown.
//
// Run binds the listener first, then fires start hooks, so callers (and
// tests using "127.0.0.1:0") can read Addr as soon as a start hook runs. It
// returns when the context is cancelled or Shutdown is called; in-flight
// requests get the configured shutdown timeout to drain. Signal handling is
// left to the caller, typically via signal.NotifyContext.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, api.Routes()); err != nil {
//	    return err
//	}
//
// Start and shutdown failures wrap ErrStart and ErrShutdown.
//
// HealthCheckHandler serves liveness (no checks) or readiness (all checks
// pass) probes.
package httpserver
