package provisioner

import (
	"context"
	"os"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
)

type Operator interface {
	Operate(ctx context.Context)
}

// OperatorRunner calls its operator once at start and then on every tick.
// Calls never overlap: a tick that fires during a long call is coalesced.
type OperatorRunner struct {
	operator Operator
	interval time.Duration
	clock    clock.Clock
	logger   lager.Logger
}

func NewOperatorRunner(operator Operator, interval time.Duration, clock clock.Clock, logger lager.Logger) *OperatorRunner {
	return &OperatorRunner{
		operator: operator,
		interval: interval,
		clock:    clock,
		logger:   logger,
	}
}

func (opr *OperatorRunner) Run(signals <-chan os.Signal, ready chan<- struct{}) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	close(ready)
	ticker := opr.clock.NewTicker(opr.interval)
	defer ticker.Stop()

	opr.logger.Info("started", lager.Data{"refresh_interval": opr.interval})

	for {
		done := make(chan struct{})
		go func() {
			defer close(done)
			opr.operator.Operate(ctx)
		}()

		select {
		case <-signals:
			cancel()
			<-done
			opr.logger.Info("stopped")
			return nil
		case <-done:
		}

		select {
		case <-signals:
			opr.logger.Info("stopped")
			return nil
		case <-ticker.C():
		}
	}
}
