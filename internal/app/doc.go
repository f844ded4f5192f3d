// Package app wires the vitals dashboard API: telemetry, services, router
// and HTTP server.
//
// # Initialization Flow
//
//	1. The caller loads configuration and builds the logger
//	2. NewApplication initializes OpenTelemetry and the pipeline metrics
//	3. Services are created for the configured readings file
//	4. Handlers and middleware are mounted on a chi router
//	5. Run serves until the context is cancelled or SIGINT/SIGTERM arrives
//
// # Graceful Shutdown
//
// Stop lets in-flight requests finish within Server.ShutdownTimeout and then
// flushes pending spans and metrics.
//
// # Error Handling
//
// All initialization errors are returned to the caller. The package never
// calls os.Exit.
package app
