package config

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gsiscaler/autoscaler/circuitbreaker"
	"github.com/gsiscaler/autoscaler/db"
	"github.com/gsiscaler/autoscaler/helpers"
	"github.com/gsiscaler/autoscaler/models"

	"github.com/caarlos0/env/v6"
	"gopkg.in/yaml.v3"
)

const (
	DefaultCheckInterval     = 5 * time.Minute
	DefaultLookbackPeriod    = 5 * time.Minute
	DefaultRequestTimeout    = 10 * time.Second
	DefaultAPICallsPerSecond = 5
	DefaultLockSize          = 32
	DefaultHistoryRetention  = 7 * 24 * time.Hour
)

var defaultLoggingConfig = helpers.LoggingConfig{
	Level: "info",
}

var defaultServerConfig = helpers.ServerConfig{
	Port: 8080,
}

var defaultHealthConfig = models.HealthConfig{
	Port: 8081,
}

var defaultAWSConfig = models.AWSConfig{
	Region:            "us-east-1",
	RequestTimeout:    DefaultRequestTimeout,
	APICallsPerSecond: DefaultAPICallsPerSecond,
}

var defaultCircuitBreakerConfig = circuitbreaker.Config{
	Timeout:          circuitbreaker.DefaultTimeout,
	FailureThreshold: circuitbreaker.DefaultFailureThreshold,
}

type DBConfig struct {
	ScalingHistoryDB db.DatabaseConfig `yaml:"scaling_history_db"`
}

type Config struct {
	Logging          helpers.LoggingConfig `yaml:"logging"`
	Server           helpers.ServerConfig  `yaml:"server"`
	Health           models.HealthConfig   `yaml:"health"`
	AWS              models.AWSConfig      `yaml:"aws"`
	CircuitBreaker   circuitbreaker.Config `yaml:"circuit_breaker"`
	DB               DBConfig              `yaml:"db"`
	CheckInterval    time.Duration         `yaml:"check_interval" env:"GSISCALER_CHECK_INTERVAL"`
	LookbackPeriod   time.Duration         `yaml:"lookback_period"`
	DryRun           bool                  `yaml:"dry_run" env:"GSISCALER_DRY_RUN"`
	LockSize         int                   `yaml:"lock_size"`
	HistoryRetention time.Duration         `yaml:"history_retention"`
	Tables           []TableConfig         `yaml:"tables"`
}

// LoadConfig decodes reader on top of the defaults and applies environment
// overrides afterwards, so the environment always wins.
func LoadConfig(reader io.Reader) (*Config, error) {
	conf := &Config{
		Logging:          defaultLoggingConfig,
		Server:           defaultServerConfig,
		Health:           defaultHealthConfig,
		AWS:              defaultAWSConfig,
		CircuitBreaker:   defaultCircuitBreakerConfig,
		CheckInterval:    DefaultCheckInterval,
		LookbackPeriod:   DefaultLookbackPeriod,
		LockSize:         DefaultLockSize,
		HistoryRetention: DefaultHistoryRetention,
	}

	dec := yaml.NewDecoder(reader)
	dec.KnownFields(true)
	err := dec.Decode(conf)
	if err != nil && err != io.EOF {
		return nil, err
	}

	if err := env.Parse(conf); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	conf.Logging.Level = strings.ToLower(conf.Logging.Level)
	for i := range conf.Tables {
		conf.Tables[i].applyDefaults()
	}

	return conf, nil
}

func (c *Config) Validate() error {
	if c.AWS.Region == "" {
		return fmt.Errorf("Configuration error: aws.region is empty")
	}

	if c.AWS.RequestTimeout <= time.Duration(0) {
		return fmt.Errorf("Configuration error: aws.request_timeout is less-equal than 0")
	}

	if c.AWS.APICallsPerSecond < 0 {
		return fmt.Errorf("Configuration error: aws.api_calls_per_second is less than 0")
	}

	if c.CheckInterval < time.Second {
		return fmt.Errorf("Configuration error: check_interval is less than 1s")
	}

	if c.LookbackPeriod < time.Minute {
		return fmt.Errorf("Configuration error: lookback_period is less than 1m")
	}

	if c.LockSize <= 0 {
		return fmt.Errorf("Configuration error: lock_size is less than or equal to 0")
	}

	if c.HistoryRetention < 0 {
		return fmt.Errorf("Configuration error: history_retention is less than 0")
	}

	if err := c.CircuitBreaker.Validate(); err != nil {
		return err
	}

	if err := c.Health.Validate(); err != nil {
		return err
	}

	if ba := c.Server.BasicAuth; ba.Enabled() && ((ba.Username == "" && ba.UsernameHash == "") || (ba.Password == "" && ba.PasswordHash == "")) {
		return fmt.Errorf("Configuration error: server.basic_auth needs both a username and a password")
	}

	if len(c.Tables) == 0 {
		return fmt.Errorf("Configuration error: no tables configured")
	}

	if _, err := NewPolicyStore(c.Tables); err != nil {
		return err
	}

	return nil
}
