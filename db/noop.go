package db

import (
	"context"
	"database/sql"

	"github.com/gsiscaler/autoscaler/models"
)

// NoopScalingHistoryDB is used when no scaling history database is configured.
type NoopScalingHistoryDB struct{}

var _ ScalingHistoryDB = NoopScalingHistoryDB{}

func (NoopScalingHistoryDB) GetDBStatus() sql.DBStats { return sql.DBStats{} }
func (NoopScalingHistoryDB) Ping() error            { return nil }
func (NoopScalingHistoryDB) Close() error           { return nil }

func (NoopScalingHistoryDB) SaveScalingHistory(*models.ScalingHistory) error { return nil }

func (NoopScalingHistoryDB) RetrieveScalingHistories(context.Context, HistoryQuery) ([]*models.ScalingHistory, error) {
	return []*models.ScalingHistory{}, nil
}

func (NoopScalingHistoryDB) PruneScalingHistories(context.Context, int64) error { return nil }
