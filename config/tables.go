package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gsiscaler/autoscaler/maintenance"
	"github.com/gsiscaler/autoscaler/models"
)

type TableConfig struct {
	// Key is a regular expression that must match the whole table name.
	Key  string      `yaml:"key"`
	GSIs []GSIConfig `yaml:"gsis"`
}

type GSIConfig struct {
	// Key is a regular expression that must match the whole index name.
	Key string `yaml:"key"`

	ReadsUpperThreshold             float64 `yaml:"reads_upper_threshold"`
	ReadsLowerThreshold             float64 `yaml:"reads_lower_threshold"`
	IncreaseReadsWith               float64 `yaml:"increase_reads_with"`
	IncreaseReadsUnit               string  `yaml:"increase_reads_unit"`
	DecreaseReadsWith               float64 `yaml:"decrease_reads_with"`
	DecreaseReadsUnit               string  `yaml:"decrease_reads_unit"`
	MinProvisionedReads             int64   `yaml:"min_provisioned_reads"`
	MaxProvisionedReads             int64   `yaml:"max_provisioned_reads"`
	AllowScalingDownReadsOn0Percent bool    `yaml:"allow_scaling_down_reads_on_0_percent"`

	WritesUpperThreshold             float64 `yaml:"writes_upper_threshold"`
	WritesLowerThreshold             float64 `yaml:"writes_lower_threshold"`
	IncreaseWritesWith               float64 `yaml:"increase_writes_with"`
	IncreaseWritesUnit               string  `yaml:"increase_writes_unit"`
	DecreaseWritesWith               float64 `yaml:"decrease_writes_with"`
	DecreaseWritesUnit               string  `yaml:"decrease_writes_unit"`
	MinProvisionedWrites             int64   `yaml:"min_provisioned_writes"`
	MaxProvisionedWrites             int64   `yaml:"max_provisioned_writes"`
	AllowScalingDownWritesOn0Percent bool    `yaml:"allow_scaling_down_writes_on_0_percent"`

	AlwaysDecreaseRWTogether bool   `yaml:"always_decrease_rw_together"`
	MaintenanceWindows       string `yaml:"maintenance_windows"`
}

func (t *TableConfig) applyDefaults() {
	for i := range t.GSIs {
		g := &t.GSIs[i]
		for _, unit := range []*string{&g.IncreaseReadsUnit, &g.DecreaseReadsUnit, &g.IncreaseWritesUnit, &g.DecreaseWritesUnit} {
			if *unit == "" {
				*unit = string(models.AdjustmentPercent)
			}
		}
	}
}

func (g GSIConfig) ScalingPolicy() models.ScalingPolicy {
	return models.ScalingPolicy{
		Reads: models.DimensionPolicy{
			UpperThreshold:       g.ReadsUpperThreshold,
			LowerThreshold:       g.ReadsLowerThreshold,
			Increase:             models.Adjustment{Kind: models.AdjustmentKind(g.IncreaseReadsUnit), Amount: g.IncreaseReadsWith},
			Decrease:             models.Adjustment{Kind: models.AdjustmentKind(g.DecreaseReadsUnit), Amount: g.DecreaseReadsWith},
			Min:                  g.MinProvisionedReads,
			Max:                  g.MaxProvisionedReads,
			AllowScaleDownAtZero: g.AllowScalingDownReadsOn0Percent,
		},
		Writes: models.DimensionPolicy{
			UpperThreshold:       g.WritesUpperThreshold,
			LowerThreshold:       g.WritesLowerThreshold,
			Increase:             models.Adjustment{Kind: models.AdjustmentKind(g.IncreaseWritesUnit), Amount: g.IncreaseWritesWith},
			Decrease:             models.Adjustment{Kind: models.AdjustmentKind(g.DecreaseWritesUnit), Amount: g.DecreaseWritesWith},
			Min:                  g.MinProvisionedWrites,
			Max:                  g.MaxProvisionedWrites,
			AllowScaleDownAtZero: g.AllowScalingDownWritesOn0Percent,
		},
		AlwaysDecreaseRWTogether: g.AlwaysDecreaseRWTogether,
		MaintenanceWindows:       g.MaintenanceWindows,
	}
}

func validateScalingPolicy(p models.ScalingPolicy) error {
	if err := validateDimension("reads", p.Reads); err != nil {
		return err
	}
	if err := validateDimension("writes", p.Writes); err != nil {
		return err
	}
	if strings.TrimSpace(p.MaintenanceWindows) == "" {
		return nil
	}
	_, err := maintenance.ParseWindows(p.MaintenanceWindows)
	return err
}

func validateDimension(name string, d models.DimensionPolicy) error {
	switch {
	case d.UpperThreshold < 0 || d.UpperThreshold > 100:
		return fmt.Errorf("%w: %s_upper_threshold must be between 0 and 100", models.ErrConfiguration, name)
	case d.LowerThreshold < 0 || d.LowerThreshold > 100:
		return fmt.Errorf("%w: %s_lower_threshold must be between 0 and 100", models.ErrConfiguration, name)
	case d.LowerThreshold >= d.UpperThreshold:
		return fmt.Errorf("%w: %s_lower_threshold must be less than %s_upper_threshold", models.ErrConfiguration, name, name)
	case !d.Increase.Kind.Valid():
		return fmt.Errorf("%w: increase_%s_unit %q is neither percent nor units", models.ErrConfiguration, name, d.Increase.Kind)
	case !d.Decrease.Kind.Valid():
		return fmt.Errorf("%w: decrease_%s_unit %q is neither percent nor units", models.ErrConfiguration, name, d.Decrease.Kind)
	case d.Increase.Amount <= 0:
		return fmt.Errorf("%w: increase_%s_with must be greater than 0", models.ErrConfiguration, name)
	case d.Decrease.Amount <= 0:
		return fmt.Errorf("%w: decrease_%s_with must be greater than 0", models.ErrConfiguration, name)
	case d.Min < 0:
		return fmt.Errorf("%w: min_provisioned_%s is less than 0", models.ErrConfiguration, name)
	case d.Max <= 0:
		return fmt.Errorf("%w: max_provisioned_%s must be greater than 0", models.ErrConfiguration, name)
	case d.Min > d.Max:
		return fmt.Errorf("%w: min_provisioned_%s is greater than max_provisioned_%s", models.ErrConfiguration, name, name)
	}
	return nil
}

type indexRule struct {
	key    *regexp.Regexp
	policy models.ScalingPolicy
}

type tableRule struct {
	key     *regexp.Regexp
	indexes []indexRule
}

// PolicyStore resolves the scaling policy of an index from the configured
// table and index keys. The first matching table key wins, and within it the
// first matching index key.
type PolicyStore struct {
	tables []tableRule
}

func NewPolicyStore(tables []TableConfig) (*PolicyStore, error) {
	store := &PolicyStore{}
	for i, t := range tables {
		tableKey, err := compileKey(t.Key)
		if err != nil {
			return nil, fmt.Errorf("Configuration error: tables[%d].key %q: %w", i, t.Key, err)
		}
		rule := tableRule{key: tableKey}
		for j, g := range t.GSIs {
			indexKey, err := compileKey(g.Key)
			if err != nil {
				return nil, fmt.Errorf("Configuration error: tables[%d].gsis[%d].key %q: %w", i, j, g.Key, err)
			}
			policy := g.ScalingPolicy()
			if err := validateScalingPolicy(policy); err != nil {
				return nil, fmt.Errorf("Configuration error: tables[%d].gsis[%d]: %w", i, j, err)
			}
			rule.indexes = append(rule.indexes, indexRule{key: indexKey, policy: policy})
		}
		store.tables = append(store.tables, rule)
	}
	return store, nil
}

// compileKey anchors key at both ends, so "orders" never matches "orders_archive".
func compileKey(key string) (*regexp.Regexp, error) {
	return regexp.Compile(`^(?:` + key + `)$`)
}

func (s *PolicyStore) ManagesTable(tableName string) bool {
	_, ok := s.findTable(tableName)
	return ok
}

func (s *PolicyStore) GetIndexPolicy(index models.Index) (models.ScalingPolicy, bool) {
	table, ok := s.findTable(index.TableName)
	if !ok {
		return models.ScalingPolicy{}, false
	}
	for _, rule := range table.indexes {
		if rule.key.MatchString(index.IndexName) {
			return rule.policy, true
		}
	}
	return models.ScalingPolicy{}, false
}

func (s *PolicyStore) findTable(tableName string) (tableRule, bool) {
	for _, rule := range s.tables {
		if rule.key.MatchString(tableName) {
			return rule, true
		}
	}
	return tableRule{}, false
}
