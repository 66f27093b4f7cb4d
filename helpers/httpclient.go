package helpers

import (
	"net"
	"net/http"
	"time"

	"code.cloudfoundry.org/lager/v3"
	"github.com/hashicorp/go-retryablehttp"
)

// CreateRetryableHTTPClient returns a client that retries connection errors
// and 5xx answers up to retries times, each attempt bounded by timeout.
func CreateRetryableHTTPClient(logger lager.Logger, timeout time.Duration, retries int) *retryablehttp.Client {
	client := retryablehttp.NewClient()
	client.RetryMax = retries
	client.RetryWaitMin = 100 * time.Millisecond
	client.RetryWaitMax = time.Second
	client.Logger = nil
	client.RequestLogHook = func(_ retryablehttp.Logger, req *http.Request, attempt int) {
		if attempt > 0 {
			logger.Debug("retrying-request", lager.Data{"url": req.URL.String(), "attempt": attempt})
		}
	}

	transport := client.HTTPClient.Transport.(*http.Transport)
	transport.DialContext = (&net.Dialer{
		Timeout: 30 * time.Second,
	}).DialContext
	transport.IdleConnTimeout = 5 * time.Second
	client.HTTPClient.Timeout = timeout

	return client
}
