package models

type UpdateStatus int

const (
	UpdateStatusPending UpdateStatus = iota
	UpdateStatusSkippedNotActive
	UpdateStatusSkippedWindow
	UpdateStatusSkippedUnchanged
	UpdateStatusDryRun
	UpdateStatusApplied
	UpdateStatusRejectedRetried
	UpdateStatusRejectedTerminal
	UpdateStatusFailed
)

var updateStatusNames = map[UpdateStatus]string{
	UpdateStatusPending:          "PENDING",
	UpdateStatusSkippedNotActive: "SKIPPED_NOT_ACTIVE",
	UpdateStatusSkippedWindow:    "SKIPPED_WINDOW",
	UpdateStatusSkippedUnchanged: "SKIPPED_UNCHANGED",
	UpdateStatusDryRun:           "DRY_RUN",
	UpdateStatusApplied:          "APPLIED",
	UpdateStatusRejectedRetried:  "REJECTED_RETRIED",
	UpdateStatusRejectedTerminal: "REJECTED_TERMINAL",
	UpdateStatusFailed:           "FAILED",
}

func (s UpdateStatus) String() string {
	if name, ok := updateStatusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// Terminal reports whether no further remote call follows this state within the
// same update attempt.
func (s UpdateStatus) Terminal() bool {
	return s != UpdateStatusPending && s != UpdateStatusRejectedRetried
}

type ScalingHistory struct {
	TableName     string       `json:"table_name"`
	IndexName     string       `json:"index_name"`
	Timestamp     int64        `json:"timestamp"`
	Status        UpdateStatus `json:"status"`
	OldReadUnits  int64        `json:"old_read_units"`
	OldWriteUnits int64        `json:"old_write_units"`
	NewReadUnits  int64        `json:"new_read_units"`
	NewWriteUnits int64        `json:"new_write_units"`
	Reason        string       `json:"reason"`
	Message       string       `json:"message"`
	Error         string       `json:"error"`
}
