package config

const (
	RuntimeTypeShell RuntimeType = "shell"
	RuntimeTypeSlurm RuntimeType = "slurm"

	JobTypeSerial   JobType = "serial"
	JobTypeParallel JobType = "parallel"

	SchedulingTypeRepeatDate SchedulingType = "RepeatDate"
	SchedulingTypeRepeatDay  SchedulingType = "RepeatDay"
)

type RuntimeType string

func (t RuntimeType) String() string {
	return string(t)
}

type JobType string

func (t JobType) String() string {
	return string(t)
}

type SchedulingType string

func (t SchedulingType) String() string {
	return string(t)
}

// RuntimeConfig describes how a node's job should be run. Only the fields
// relevant to the selected runtime/job type combination are consulted;
// the rest are ignored.
type RuntimeConfig struct {
	RuntimeType RuntimeType `yaml:"runtime_type" mapstructure:"runtime_type"`

	// JobType is meaningful only when RuntimeType is slurm
	JobType JobType `yaml:"job_type" mapstructure:"job_type"`

	// JobClass is the scheduler partition/queue name; empty picks the
	// backend default ("serial" or "normal")
	JobClass string `yaml:"job_class" mapstructure:"job_class"`

	// Nodes is required for parallel slurm jobs
	Nodes int `yaml:"nodes" mapstructure:"nodes"`

	// TasksPerNode defaults to 32 for parallel jobs when unset
	TasksPerNode int `yaml:"tasks_per_node" mapstructure:"tasks_per_node"`

	// WorkloadKey is an accounting key passed to the scheduler as WCKEY;
	// empty means the key is not emitted at all
	WorkloadKey string `yaml:"workload_key" mapstructure:"workload_key"`
}

// SchedulingConfig describes a node's recurring schedule. StartDate and
// EndDate are required when SchedulingType is RepeatDate.
type SchedulingConfig struct {
	SchedulingType SchedulingType `yaml:"scheduling_type" mapstructure:"scheduling_type"`
	StartDate      Date           `yaml:"start_date" mapstructure:"start_date"`
	EndDate        Date           `yaml:"end_date" mapstructure:"end_date"`
}

// NodeConfig groups the declarative blocks for one node so a suite
// definition can carry both in a single document. Either block may be
// absent.
type NodeConfig struct {
	Runtime    *RuntimeConfig    `yaml:"runtime" mapstructure:"runtime"`
	Scheduling *SchedulingConfig `yaml:"scheduling" mapstructure:"scheduling"`

	// DateVariable overrides the repeat variable name, TAKLER_DATE by default
	DateVariable string `yaml:"date_variable" mapstructure:"date_variable"`
}
