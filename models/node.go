package models

import "errors"

var (
	ErrUnsupportedRuntimeType    = errors.New("runtime type is not supported")
	ErrUnsupportedJobType        = errors.New("job type for slurm is not supported")
	ErrUnsupportedSchedulingType = errors.New("scheduling type is not supported")
	ErrRepeatDayNotImplemented   = errors.New("RepeatDay scheduling is not implemented")
	ErrNodesRequired             = errors.New("nodes is required for a parallel slurm job")
	ErrDateRangeRequired         = errors.New("start date and end date are required for RepeatDate scheduling")
)

// Node is a unit of work in the workflow suite's execution graph. This
// package only attaches parameters and repeat triggers to it; building and
// running the graph belongs to the takler engine.
type Node interface {
	// AddParameter merges the given key/value parameters into the node's
	// parameter store. Existing keys are overwritten.
	AddParameter(params map[string]string)

	// AddRepeat attaches a recurrence trigger to the node.
	AddRepeat(repeat RepeatDate)
}

// RepeatDate is a bounded daily recurrence over a calendar date range.
// StartDate and EndDate are fixed-width YYYYMMDD strings; the engine steps
// the variable through the range one day at a time.
type RepeatDate struct {
	Variable  string
	StartDate string
	EndDate   string
}

func NewRepeatDate(variable, startDate, endDate string) RepeatDate {
	return RepeatDate{
		Variable:  variable,
		StartDate: startDate,
		EndDate:   endDate,
	}
}
