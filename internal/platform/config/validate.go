package config

import (
	"errors"
	"fmt"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Store.validate(),
		c.Onboarding.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (s *StoreConfig) validate() error {
	var errs []error

	if s.BaseURL == "" {
		errs = append(errs, errors.New("store.base_url must not be empty"))
	}
	if s.Timeout <= 0 {
		errs = append(errs, errors.New("store.timeout must be positive"))
	}
	if s.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("store.retry.max_attempts must be >= 1, got %d", s.Retry.MaxAttempts))
	}
	if s.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("store.retry.multiplier must be positive, got %f", s.Retry.Multiplier))
	}
	if s.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("store.circuit_breaker.max_failures must be >= 1, got %d",
			s.CircuitBreaker.MaxFailures))
	}
	if s.RateLimit.RequestsPerSecond <= 0 {
		errs = append(errs, fmt.Errorf("store.rate_limit.requests_per_second must be positive, got %f",
			s.RateLimit.RequestsPerSecond))
	}
	if s.RateLimit.Burst < 1 {
		errs = append(errs, fmt.Errorf("store.rate_limit.burst must be >= 1, got %d", s.RateLimit.Burst))
	}

	return errors.Join(errs...)
}

func (o *OnboardingConfig) validate() error {
	var errs []error

	if o.SessionTTL <= 0 {
		errs = append(errs, errors.New("onboarding.session_ttl must be positive"))
	}
	if o.PersonWriteConcurrency < 1 {
		errs = append(errs, fmt.Errorf("onboarding.person_write_concurrency must be >= 1, got %d",
			o.PersonWriteConcurrency))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}
