package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/cemc-oper/takler-util/config"
)

const (
	runtimeYaml = `
runtime_type: slurm
job_type: parallel
job_class: normal
nodes: 4
tasks_per_node: 16
workload_key: acct1
`
	schedulingYaml = `
scheduling_type: RepeatDate
start_date: 2024-01-01
end_date: 2024-01-31
`
	nodeYaml = `
runtime:
  runtime_type: slurm
  job_type: serial
  job_class: fast
scheduling:
  scheduling_type: RepeatDate
  start_date: 2024-06-01
  end_date: 2024-06-30
date_variable: FORECAST_DATE
`
)

type YamlTestSuite struct {
	suite.Suite
}

func TestYaml(t *testing.T) {
	suite.Run(t, &YamlTestSuite{})
}

func (s *YamlTestSuite) TestRuntimeConfigFromYAML() {
	s.Run("should decode a valid runtime block", func() {
		cfg, err := config.RuntimeConfigFromYAML([]byte(runtimeYaml))
		s.NoError(err)
		s.Equal(config.RuntimeTypeSlurm, cfg.RuntimeType)
		s.Equal(config.JobTypeParallel, cfg.JobType)
		s.Equal(4, cfg.Nodes)
		s.Equal(16, cfg.TasksPerNode)
		s.Equal("acct1", cfg.WorkloadKey)
	})

	s.Run("should reject unknown keys", func() {
		_, err := config.RuntimeConfigFromYAML([]byte("runtime_type: shell\nqueue: serial\n"))
		s.Error(err)
	})

	s.Run("should reject invalid runtime type", func() {
		_, err := config.RuntimeConfigFromYAML([]byte("runtime_type: shelll\n"))
		s.Error(err)
	})
}

func (s *YamlTestSuite) TestSchedulingConfigFromYAML() {
	s.Run("should decode calendar dates", func() {
		cfg, err := config.SchedulingConfigFromYAML([]byte(schedulingYaml))
		s.NoError(err)
		s.Equal(config.SchedulingTypeRepeatDate, cfg.SchedulingType)
		s.Equal(config.NewDate(2024, time.January, 1), cfg.StartDate)
		s.Equal(config.NewDate(2024, time.January, 31), cfg.EndDate)
	})

	s.Run("should reject malformed dates", func() {
		_, err := config.SchedulingConfigFromYAML([]byte(
			"scheduling_type: RepeatDate\nstart_date: 01/01/2024\nend_date: 2024-01-31\n"))
		s.Error(err)
	})
}

func (s *YamlTestSuite) TestNodeConfigFromYAML() {
	cfg, err := config.NodeConfigFromYAML([]byte(nodeYaml))
	s.NoError(err)
	s.NotNil(cfg.Runtime)
	s.Equal(config.JobTypeSerial, cfg.Runtime.JobType)
	s.Equal("fast", cfg.Runtime.JobClass)
	s.NotNil(cfg.Scheduling)
	s.Equal(config.NewDate(2024, time.June, 1), cfg.Scheduling.StartDate)
	s.Equal("FORECAST_DATE", cfg.DateVariable)
}
