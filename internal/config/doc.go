// Package config provides centralized configuration management for vitalscli.
// It handles loading configuration from multiple sources, validation, and provides
// a type-safe API for accessing configuration values throughout the application.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//	1. Environment variables (highest priority)
//	2. YAML configuration file
//	3. Default values (lowest priority)
//
// # Environment Variables
//
// All environment variables follow the pattern VITALS_<SECTION>_<FIELD>:
//
//	VITALS_INPUT_PATH=data/sensor_readings.csv
//	VITALS_SERVER_PORT=8080
//	VITALS_LOGGING_LEVEL=debug
//	VITALS_EXPORT_XLSX_PATH=reports/screening.xlsx
//	VITALS_TELEMETRY_TRACE_EXPORTER=stdout
//
// VITALS_CONFIG_FILE points at an explicit YAML file; otherwise config.yaml
// and configs/config.yaml are tried in order.
//
// # Thresholds
//
// The screening thresholds are fixed in the domain package and are not part
// of the configuration.
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
package config
