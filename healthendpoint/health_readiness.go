package healthendpoint

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

type (
	Pinger interface {
		Ping() error
	}

	ReadinessCheck struct {
		Name   string `json:"name"`
		Type   string `json:"type"`
		Status string `json:"status"`
	}
	readinessResponse struct {
		OverallStatus string           `json:"overall_status"`
		Checks        []ReadinessCheck `json:"checks"`
	}
	Checker func() ReadinessCheck
)

const (
	statusUp   = "UP"
	statusDown = "DOWN"

	readinessCacheKey = "readiness"
)

// ReadinessCacheDuration is how long a readiness result is served before the
// checks run again.
const ReadinessCacheDuration = 30 * time.Second

// NewReadinessCache returns the cache NewHealthRouter expects.
func NewReadinessCache() *cache.Cache {
	return cache.New(ReadinessCacheDuration, 2*ReadinessCacheDuration)
}

func readiness(checkers []Checker, responseCache *cache.Cache) http.HandlerFunc {
	// serializes refreshes so concurrent misses run the checks once
	var refresh sync.Mutex

	load := func() ([]byte, error) {
		if response, found := responseCache.Get(readinessCacheKey); found {
			return response.([]byte), nil
		}

		refresh.Lock()
		defer refresh.Unlock()
		if response, found := responseCache.Get(readinessCacheKey); found {
			return response.([]byte), nil
		}

		checks := make([]ReadinessCheck, 0, len(checkers))
		overallStatus := statusUp
		for _, checker := range checkers {
			check := checker()
			checks = append(checks, check)
			if check.Status == statusDown {
				overallStatus = statusDown
			}
		}
		response, err := json.Marshal(readinessResponse{OverallStatus: overallStatus, Checks: checks})
		if err != nil {
			return nil, err
		}
		responseCache.Set(readinessCacheKey, response, cache.DefaultExpiration)
		return response, nil
	}

	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response, err := load()
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"Internal error"}`))
			return
		}
		_, _ = w.Write(response)
	}
}

func DbChecker(dbName string, pinger Pinger) Checker {
	if pinger != nil {
		return func() ReadinessCheck {
			status := statusUp
			err := pinger.Ping()
			if err != nil {
				status = statusDown
			}
			return ReadinessCheck{Name: dbName, Type: "database", Status: status}
		}
	} else {
		return func() ReadinessCheck {
			return ReadinessCheck{Name: dbName, Type: "database", Status: statusUp}
		}
	}
}
