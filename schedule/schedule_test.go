package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cemc-oper/takler-util/config"
	"github.com/cemc-oper/takler-util/mock"
	"github.com/cemc-oper/takler-util/models"
	"github.com/cemc-oper/takler-util/schedule"
)

func TestSetScheduling(t *testing.T) {
	t.Run("should attach repeat date with default variable name", func(t *testing.T) {
		node := new(mock.Node)
		node.On("AddRepeat", models.NewRepeatDate("TAKLER_DATE", "20240101", "20240131")).Once()

		err := schedule.SetScheduling(node, config.SchedulingConfig{
			SchedulingType: config.SchedulingTypeRepeatDate,
			StartDate:      config.NewDate(2024, time.January, 1),
			EndDate:        config.NewDate(2024, time.January, 31),
		}, "")

		assert.Nil(t, err)
		node.AssertExpectations(t)
	})

	t.Run("should attach repeat date with given variable name", func(t *testing.T) {
		node := new(mock.Node)
		node.On("AddRepeat", models.NewRepeatDate("FORECAST_DATE", "20240601", "20240630")).Once()

		err := schedule.SetScheduling(node, config.SchedulingConfig{
			SchedulingType: config.SchedulingTypeRepeatDate,
			StartDate:      config.NewDate(2024, time.June, 1),
			EndDate:        config.NewDate(2024, time.June, 30),
		}, "FORECAST_DATE")

		assert.Nil(t, err)
		node.AssertExpectations(t)
	})

	t.Run("should reject repeat date without a full date range", func(t *testing.T) {
		node := new(mock.Node)

		err := schedule.SetScheduling(node, config.SchedulingConfig{
			SchedulingType: config.SchedulingTypeRepeatDate,
			StartDate:      config.NewDate(2024, time.January, 1),
		}, "")

		assert.ErrorIs(t, err, models.ErrDateRangeRequired)
		assert.Empty(t, node.Calls)
	})

	t.Run("should fail for repeat day", func(t *testing.T) {
		node := new(mock.Node)

		err := schedule.SetScheduling(node, config.SchedulingConfig{
			SchedulingType: config.SchedulingTypeRepeatDay,
			StartDate:      config.NewDate(2024, time.January, 1),
			EndDate:        config.NewDate(2024, time.January, 31),
		}, "")

		assert.ErrorIs(t, err, models.ErrRepeatDayNotImplemented)
		assert.Empty(t, node.Calls)
	})

	t.Run("should fail for unknown scheduling type", func(t *testing.T) {
		node := new(mock.Node)

		err := schedule.SetScheduling(node, config.SchedulingConfig{
			SchedulingType: "RepeatMonth",
		}, "")

		assert.ErrorIs(t, err, models.ErrUnsupportedSchedulingType)
		assert.Contains(t, err.Error(), "RepeatMonth")
		assert.Empty(t, node.Calls)
	})
}
