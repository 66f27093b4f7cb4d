package models

import "fmt"

const IndexStatusActive = "ACTIVE"

// Index identifies a global secondary index of a table.
type Index struct {
	TableName string `json:"table_name"`
	IndexName string `json:"index_name"`
}

func (i Index) String() string {
	return fmt.Sprintf("%s/%s", i.TableName, i.IndexName)
}

// ProvisionedCapacity is the read/write capacity recorded for an index, or the
// capacity a decision proposes for it.
type ProvisionedCapacity struct {
	ReadUnits  int64 `json:"read_units"`
	WriteUnits int64 `json:"write_units"`
}

func (c ProvisionedCapacity) String() string {
	return fmt.Sprintf("%d read units, %d write units", c.ReadUnits, c.WriteUnits)
}
