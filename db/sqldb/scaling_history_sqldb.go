package sqldb

import (
	"context"
	"database/sql"
	"time"

	"github.com/gsiscaler/autoscaler/db"
	"github.com/gsiscaler/autoscaler/models"

	"code.cloudfoundry.org/lager/v3"
	"github.com/cenkalti/backoff/v4"
	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const (
	connectAttempts        = 5
	connectInitialInterval = 500 * time.Millisecond
)

const createScalingHistoryTable = `CREATE TABLE IF NOT EXISTS gsi_scaling_history (
	tablename VARCHAR(255) NOT NULL,
	indexname VARCHAR(255) NOT NULL,
	timestamp BIGINT NOT NULL,
	status INT NOT NULL,
	oldreadunits BIGINT NOT NULL,
	oldwriteunits BIGINT NOT NULL,
	newreadunits BIGINT NOT NULL,
	newwriteunits BIGINT NOT NULL,
	reason VARCHAR(1024),
	message VARCHAR(1024),
	error VARCHAR(1024)
)`

type ScalingHistorySQLDB struct {
	dbConfig db.DatabaseConfig
	logger   lager.Logger
	sqldb    *sqlx.DB
}

var _ db.ScalingHistoryDB = &ScalingHistorySQLDB{}

// NewScalingHistorySQLDB connects to the configured database, retrying the
// first ping with exponential backoff, and creates the history table when it
// does not exist yet.
func NewScalingHistorySQLDB(ctx context.Context, dbConfig db.DatabaseConfig, logger lager.Logger) (*ScalingHistorySQLDB, error) {
	database, err := db.GetConnection(dbConfig.URL)
	if err != nil {
		return nil, err
	}

	sqldb, err := sqlx.Open(database.DriverName, database.DataSourceName)
	if err != nil {
		logger.Error("open-scaling-history-db", err, lager.Data{"dbConfig": dbConfig})
		return nil, err
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = connectInitialInterval
	err = backoff.RetryNotify(func() error {
		return sqldb.PingContext(ctx)
	}, backoff.WithContext(backoff.WithMaxRetries(policy, connectAttempts-1), ctx), func(err error, wait time.Duration) {
		logger.Info("ping-scaling-history-db-failed-retrying", lager.Data{"error": err.Error(), "wait": wait.String()})
	})
	if err != nil {
		_ = sqldb.Close()
		logger.Error("ping-scaling-history-db", err, lager.Data{"dbConfig": dbConfig})
		return nil, err
	}

	sqldb.SetConnMaxLifetime(dbConfig.ConnectionMaxLifetime)
	sqldb.SetMaxIdleConns(dbConfig.MaxIdleConnections)
	sqldb.SetMaxOpenConns(dbConfig.MaxOpenConnections)
	sqldb.SetConnMaxIdleTime(dbConfig.ConnectionMaxIdleTime)

	if _, err := sqldb.ExecContext(ctx, createScalingHistoryTable); err != nil {
		_ = sqldb.Close()
		logger.Error("create-scaling-history-table", err)
		return nil, err
	}

	return &ScalingHistorySQLDB{
		dbConfig: dbConfig,
		logger:   logger,
		sqldb:    sqldb,
	}, nil
}

func (sdb *ScalingHistorySQLDB) Close() error {
	err := sdb.sqldb.Close()
	if err != nil {
		sdb.logger.Error("close-scaling-history-db", err, lager.Data{"dbConfig": sdb.dbConfig})
		return err
	}
	return nil
}

func (sdb *ScalingHistorySQLDB) Ping() error {
	return sdb.sqldb.Ping()
}

func (sdb *ScalingHistorySQLDB) GetDBStatus() sql.DBStats {
	return sdb.sqldb.Stats()
}

func (sdb *ScalingHistorySQLDB) SaveScalingHistory(history *models.ScalingHistory) error {
	query := sdb.sqldb.Rebind("INSERT INTO gsi_scaling_history" +
		"(tablename, indexname, timestamp, status, oldreadunits, oldwriteunits, newreadunits, newwriteunits, reason, message, error) " +
		" VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)")
	_, err := sdb.sqldb.Exec(query, history.TableName, history.IndexName, history.Timestamp, history.Status,
		history.OldReadUnits, history.OldWriteUnits, history.NewReadUnits, history.NewWriteUnits,
		history.Reason, history.Message, history.Error)

	if err != nil {
		sdb.logger.Error("save-scaling-history", err, lager.Data{"query": query, "history": history})
	}
	return err
}

func (sdb *ScalingHistorySQLDB) RetrieveScalingHistories(ctx context.Context, q db.HistoryQuery) ([]*models.ScalingHistory, error) {
	end := q.End
	if end < 0 {
		end = time.Now().UnixNano()
	}

	query := "SELECT tablename, indexname, timestamp, status, oldreadunits, oldwriteunits, newreadunits, newwriteunits, reason, message, error" +
		" FROM gsi_scaling_history WHERE tablename = ? AND timestamp >= ? AND timestamp <= ?"
	args := []interface{}{q.TableName, q.Start, end}
	if q.IndexName != "" {
		query += " AND indexname = ?"
		args = append(args, q.IndexName)
	}
	query += " ORDER BY timestamp " + q.Order.String()
	if q.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, q.Limit)
	}
	query = sdb.sqldb.Rebind(query)

	rows, err := sdb.sqldb.QueryContext(ctx, query, args...)
	if err != nil {
		sdb.logger.Error("retrieve-scaling-histories", err, lager.Data{"query": query, "args": args})
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	histories := []*models.ScalingHistory{}
	for rows.Next() {
		var (
			history                 models.ScalingHistory
			reason, message, errMsg sql.NullString
		)
		if err := rows.Scan(&history.TableName, &history.IndexName, &history.Timestamp, &history.Status,
			&history.OldReadUnits, &history.OldWriteUnits, &history.NewReadUnits, &history.NewWriteUnits,
			&reason, &message, &errMsg); err != nil {
			sdb.logger.Error("retrieve-scaling-history-scan", err)
			return nil, err
		}
		history.Reason = reason.String
		history.Message = message.String
		history.Error = errMsg.String
		histories = append(histories, &history)
	}
	return histories, rows.Err()
}

func (sdb *ScalingHistorySQLDB) PruneScalingHistories(ctx context.Context, before int64) error {
	query := sdb.sqldb.Rebind("DELETE FROM gsi_scaling_history WHERE timestamp <= ?")
	_, err := sdb.sqldb.ExecContext(ctx, query, before)
	if err != nil {
		sdb.logger.Error("prune-scaling-histories", err, lager.Data{"query": query, "before": before})
	}
	return err
}
