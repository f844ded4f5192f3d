// Package http implements the HTTP handlers of the vitals dashboard API.
// Handlers stay thin: they decode and validate requests, delegate to the
// services package and render the result.
//
// # Routes
//
//	GET  /api/summary             summary document for the configured readings file
//	GET  /api/readings/latest     newest reading with per-biomarker trends
//	POST /api/readings/classify   impute and classify submitted readings
//	GET  /api/health[/ready|/live]
//	GET  /api/version
//
// # Error Handling
//
// All errors follow RFC 7807 Problem Details and are rendered by
// errors.ErrorHandler:
//
//	{
//	    "type": "/errors/readings/input-not-found",
//	    "title": "Readings Not Found",
//	    "status": 404,
//	    "detail": "sensor_readings.csv not found",
//	    "instance": "/api/summary",
//	    "trace_id": "..."
//	}
//
// A missing readings file is a 404, an unparsable or unscreenable one a 422
// and an invalid classify body a 400.
package http
