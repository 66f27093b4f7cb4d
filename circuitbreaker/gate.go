// Package circuitbreaker gates all scaling activity on an external health URL.
package circuitbreaker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/gsiscaler/autoscaler/helpers"

	"code.cloudfoundry.org/lager/v3"
	"github.com/hashicorp/go-retryablehttp"
	circuit "github.com/rubyist/circuitbreaker"
)

const (
	DefaultTimeout          = 10 * time.Second
	DefaultFailureThreshold = 3
)

type Config struct {
	URL              string        `yaml:"url" json:"url"`
	Timeout          time.Duration `yaml:"timeout" json:"timeout"`
	Retries          int           `yaml:"retries" json:"retries"`
	FailureThreshold int64         `yaml:"failure_threshold" json:"failure_threshold"`
}

func (c Config) Enabled() bool {
	return c.URL != ""
}

func (c Config) Validate() error {
	if !c.Enabled() {
		return nil
	}
	u, err := url.Parse(c.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("Configuration error: circuit_breaker.url is not a valid url")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("Configuration error: circuit_breaker.timeout is less-equal than 0")
	}
	if c.Retries < 0 {
		return fmt.Errorf("Configuration error: circuit_breaker.retries is less than 0")
	}
	if c.FailureThreshold <= 0 {
		return fmt.Errorf("Configuration error: circuit_breaker.failure_threshold is less-equal than 0")
	}
	return nil
}

type Gate interface {
	IsOpen(ctx context.Context) bool
}

type httpGate struct {
	logger  lager.Logger
	conf    Config
	client  *retryablehttp.Client
	breaker *circuit.Breaker
}

var errGateOpen = errors.New("circuit breaker endpoint reported open")

// NewGate returns a gate that is always closed when conf has no URL. Otherwise
// the gate is closed only while the URL answers 200 OK. Repeated failures to
// reach the URL trip a local breaker; while it is tripped the gate reports open
// without calling the URL.
func NewGate(logger lager.Logger, conf Config) Gate {
	if !conf.Enabled() {
		return closedGate{}
	}

	logger = logger.Session("circuit-breaker", lager.Data{"host": hostOf(conf.URL)})
	return &httpGate{
		logger:  logger,
		conf:    conf,
		client:  helpers.CreateRetryableHTTPClient(logger, conf.Timeout, conf.Retries),
		breaker: circuit.NewConsecutiveBreaker(conf.FailureThreshold),
	}
}

func (g *httpGate) IsOpen(ctx context.Context) bool {
	if g.breaker.Tripped() {
		g.logger.Info("local-breaker-tripped", lager.Data{"consecutive-failures": g.breaker.ConsecFailures()})
	}

	err := g.breaker.Call(func() error { return g.check(ctx) }, 0)
	if err != nil {
		g.logger.Info("circuit-breaker-open", lager.Data{"reason": err.Error()})
		return true
	}

	g.logger.Debug("circuit-breaker-closed")
	return false
}

func (g *httpGate) check(ctx context.Context) error {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, g.conf.URL, nil)
	if err != nil {
		return err
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status code %d", errGateOpen, resp.StatusCode)
	}
	return nil
}

type closedGate struct{}

func (closedGate) IsOpen(context.Context) bool {
	return false
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}
