package config

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Validate checks that the selected runtime/job type combination is
// supported and that the fields it consults are usable. Fields irrelevant
// to the combination are not rejected.
func (c RuntimeConfig) Validate() error {
	isSlurm := c.RuntimeType == RuntimeTypeSlurm
	isParallel := isSlurm && c.JobType == JobTypeParallel
	return validation.ValidateStruct(&c,
		validation.Field(&c.RuntimeType,
			validation.Required,
			validation.In(RuntimeTypeShell, RuntimeTypeSlurm),
		),
		validation.Field(&c.JobType,
			validation.When(isSlurm,
				validation.Required,
				validation.In(JobTypeSerial, JobTypeParallel),
			),
		),
		validation.Field(&c.Nodes,
			validation.When(isParallel, validation.Required, validation.Min(1)),
		),
		validation.Field(&c.TasksPerNode, validation.Min(0)),
	)
}

func (c SchedulingConfig) Validate() error {
	isRepeatDate := c.SchedulingType == SchedulingTypeRepeatDate
	return validation.ValidateStruct(&c,
		validation.Field(&c.SchedulingType,
			validation.Required,
			validation.In(SchedulingTypeRepeatDate, SchedulingTypeRepeatDay),
		),
		validation.Field(&c.StartDate, validation.When(isRepeatDate, validation.By(dateRequired))),
		validation.Field(&c.EndDate, validation.When(isRepeatDate, validation.By(dateRequired))),
	)
}

// ozzo's Required only recognizes time.Time zero values, not wrapper types
func dateRequired(value interface{}) error {
	date, ok := value.(Date)
	if !ok || date.IsZero() {
		return errors.New("cannot be blank")
	}
	return nil
}

func (c NodeConfig) Validate() error {
	if c.Runtime != nil {
		if err := c.Runtime.Validate(); err != nil {
			return err
		}
	}
	if c.Scheduling != nil {
		if err := c.Scheduling.Validate(); err != nil {
			return err
		}
	}
	return nil
}
