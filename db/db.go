package db

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/gsiscaler/autoscaler/healthendpoint"
	"github.com/gsiscaler/autoscaler/models"
)

const (
	PostgresDriverName = "postgres"
	MysqlDriverName    = "mysql"
	ScalingHistoryDb   = "scaling_history_db"
)

type OrderType uint8

const (
	DESC OrderType = iota
	ASC
)

const (
	DESCSTR string = "DESC"
	ASCSTR  string = "ASC"
)

func (o OrderType) String() string {
	if o == ASC {
		return ASCSTR
	}
	return DESCSTR
}

func ParseOrderType(s string) (OrderType, error) {
	switch s {
	case "", "desc", DESCSTR:
		return DESC, nil
	case "asc", ASCSTR:
		return ASC, nil
	default:
		return DESC, fmt.Errorf("invalid order type %q", s)
	}
}

type DatabaseConfig struct {
	URL                   string        `yaml:"url" env:"GSISCALER_DB_URL"`
	MaxOpenConnections    int           `yaml:"max_open_connections"`
	MaxIdleConnections    int           `yaml:"max_idle_connections"`
	ConnectionMaxLifetime time.Duration `yaml:"connection_max_lifetime"`
	ConnectionMaxIdleTime time.Duration `yaml:"connection_max_idletime"`
}

// HistoryQuery selects the scaling histories of one table, optionally narrowed
// to one index. Timestamps are unix nanoseconds; End < 0 means now.
type HistoryQuery struct {
	TableName string
	IndexName string
	Start     int64
	End       int64
	Order     OrderType
	Limit     int
}

type ScalingHistoryDB interface {
	healthendpoint.DatabaseStatus
	healthendpoint.Pinger
	SaveScalingHistory(history *models.ScalingHistory) error
	RetrieveScalingHistories(ctx context.Context, query HistoryQuery) ([]*models.ScalingHistory, error)
	PruneScalingHistories(ctx context.Context, before int64) error
	io.Closer
}
