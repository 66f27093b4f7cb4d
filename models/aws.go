package models

import "time"

// AWSConfig selects the account and endpoint the autoscaler talks to. Every
// field can be overridden from the environment.
type AWSConfig struct {
	Region            string        `yaml:"region" json:"region" env:"AWS_REGION"`
	Endpoint          string        `yaml:"endpoint" json:"endpoint" env:"AWS_ENDPOINT_URL"`
	AccessKeyID       string        `yaml:"access_key_id" json:"access_key_id" env:"AWS_ACCESS_KEY_ID"`
	SecretAccessKey   string        `yaml:"secret_access_key" json:"secret_access_key" env:"AWS_SECRET_ACCESS_KEY"`
	RequestTimeout    time.Duration `yaml:"request_timeout" json:"request_timeout" env:"GSISCALER_AWS_REQUEST_TIMEOUT"`
	APICallsPerSecond float64       `yaml:"api_calls_per_second" json:"api_calls_per_second" env:"GSISCALER_AWS_API_CALLS_PER_SECOND"`
}
