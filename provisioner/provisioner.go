package provisioner

import (
	"context"
	"errors"
	"fmt"

	"github.com/gsiscaler/autoscaler/scalingengine"

	"code.cloudfoundry.org/lager/v3"
)

type TableLister interface {
	ListTables(ctx context.Context) ([]string, error)
}

type TableFilter interface {
	ManagesTable(tableName string) bool
}

var _ Operator = &Provisioner{}

// Provisioner resolves the configured tables on every pass, so tables created
// after startup are picked up, and evaluates them one at a time.
type Provisioner struct {
	tables TableLister
	filter TableFilter
	engine scalingengine.ScalingEngine
	logger lager.Logger
}

func NewProvisioner(tables TableLister, filter TableFilter, engine scalingengine.ScalingEngine, logger lager.Logger) *Provisioner {
	return &Provisioner{
		tables: tables,
		filter: filter,
		engine: engine,
		logger: logger.Session("provisioner"),
	}
}

func (p *Provisioner) Operate(ctx context.Context) {
	_ = p.RunOnce(ctx)
}

// RunOnce evaluates every configured table. A failing table does not stop the
// evaluation of the others; all errors are returned together.
func (p *Provisioner) RunOnce(ctx context.Context) error {
	logger := p.logger.Session("provisioning-tables")
	logger.Info("starting")
	defer logger.Info("completed")

	tableNames, err := p.tables.ListTables(ctx)
	if err != nil {
		logger.Error("failed-to-list-tables", err)
		return fmt.Errorf("failed to list tables: %w", err)
	}

	var errs []error
	evaluated := 0
	for _, tableName := range tableNames {
		if ctx.Err() != nil {
			logger.Info("cancelled", lager.Data{"evaluated": evaluated})
			errs = append(errs, ctx.Err())
			break
		}
		if !p.filter.ManagesTable(tableName) {
			continue
		}
		evaluated++
		err := p.engine.EnsureProvisioning(ctx, tableName)
		if err != nil {
			logger.Error("failed-to-ensure-provisioning", err, lager.Data{"table": tableName})
			errs = append(errs, fmt.Errorf("table %s: %w", tableName, err))
		}
	}
	if evaluated == 0 {
		logger.Info("no-configured-tables-found", lager.Data{"tables": len(tableNames)})
	}
	return errors.Join(errs...)
}
