package schedule

import (
	"fmt"

	"github.com/cemc-oper/takler-util/config"
	"github.com/cemc-oper/takler-util/models"
)

const (
	// DefaultDateVariable is the repeat variable name used when the caller
	// does not provide one.
	DefaultDateVariable = "TAKLER_DATE"

	// dates are handed to the engine as fixed-width YYYYMMDD strings
	repeatDateLayout = "20060102"
)

// SetScheduling attaches the recurring schedule described by cfg to the
// node. variableName overrides the repeat variable, TAKLER_DATE by default.
// A failed call leaves the node untouched.
func SetScheduling(node models.Node, cfg config.SchedulingConfig, variableName string) error {
	if variableName == "" {
		variableName = DefaultDateVariable
	}
	switch cfg.SchedulingType {
	case config.SchedulingTypeRepeatDate:
		if cfg.StartDate.IsZero() || cfg.EndDate.IsZero() {
			return models.ErrDateRangeRequired
		}
		node.AddRepeat(models.NewRepeatDate(
			variableName,
			cfg.StartDate.Format(repeatDateLayout),
			cfg.EndDate.Format(repeatDateLayout),
		))
		return nil
	case config.SchedulingTypeRepeatDay:
		return models.ErrRepeatDayNotImplemented
	default:
		return fmt.Errorf("%s: %w", cfg.SchedulingType, models.ErrUnsupportedSchedulingType)
	}
}
