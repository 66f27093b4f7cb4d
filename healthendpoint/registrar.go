package healthendpoint

import (
	"errors"
	"fmt"

	"code.cloudfoundry.org/lager/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// RegisterCollectors registers every collector, optionally preceded by the
// process and go runtime collectors. All registration failures are returned.
func RegisterCollectors(registrar prometheus.Registerer, cols []prometheus.Collector, includeDefault bool, logger lager.Logger) error {
	if includeDefault {
		cols = append([]prometheus.Collector{
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewGoCollector(),
		}, cols...)
	}

	var errs []error
	for i, c := range cols {
		if err := registrar.Register(c); err != nil {
			logger.Error("failed-to-register-collector", err, lager.Data{"position": i})
			errs = append(errs, fmt.Errorf("collector %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}
