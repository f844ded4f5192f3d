// Package services implements the business logic layer between the HTTP
// handlers, the CLI and the screening pipeline.
//
// # Available Services
//
//	- ReadingsService: runs the parse, impute and classify pipeline over the
//	  readings file or over submitted readings, with a span per stage and
//	  run metrics
//	- HealthService: liveness, readiness and version information
//
// # Error Handling
//
// Services return the pipeline's errors unchanged so callers can match them:
//
//	- errors.ErrInputNotFound when the readings file is missing
//	- PARSING AppErrors for malformed input
//	- dataprocessing.ErrMissingColumn and ErrColumnAllMissing for unusable tables
//
// # Concurrency
//
// A ReadingsService is safe for concurrent use. Every call is an independent
// run over its own copy of the data.
package services
