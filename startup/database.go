package startup

import (
	"context"

	"github.com/gsiscaler/autoscaler/db"
	"github.com/gsiscaler/autoscaler/db/sqldb"

	"code.cloudfoundry.org/lager/v3"
)

// DatabaseConnection manages a database connection with cleanup
type DatabaseConnection[T any] struct {
	DB     T
	Closer func() error
}

// CreateScalingHistoryDB connects to the scaling history database. Without a
// configured URL histories are discarded.
func CreateScalingHistoryDB(ctx context.Context, dbConfig db.DatabaseConfig, logger lager.Logger) *DatabaseConnection[db.ScalingHistoryDB] {
	if dbConfig.URL == "" {
		logger.Info("scaling-history-db-not-configured")
		noop := db.NoopScalingHistoryDB{}
		return &DatabaseConnection[db.ScalingHistoryDB]{DB: noop, Closer: noop.Close}
	}

	historyDB, err := sqldb.NewScalingHistorySQLDB(ctx, dbConfig, logger.Session("scaling-history-db"))
	ExitOnError(err, logger, "failed to connect scaling history database", lager.Data{"dbConfig": dbConfig})
	return &DatabaseConnection[db.ScalingHistoryDB]{
		DB:     historyDB,
		Closer: historyDB.Close,
	}
}
