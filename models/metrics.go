package models

// ConsumptionMetrics is a point-in-time observation of consumed capacity as a
// percentage of the provisioned capacity.
type ConsumptionMetrics struct {
	ConsumedReadPercent  float64 `json:"consumed_read_percent"`
	ConsumedWritePercent float64 `json:"consumed_write_percent"`
}
