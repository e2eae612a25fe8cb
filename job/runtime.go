package job

import (
	"fmt"
	"strconv"

	"github.com/cemc-oper/takler-util/config"
	"github.com/cemc-oper/takler-util/models"
)

const (
	slurmJobCmd  = "sbatch {{ TAKLER_JOB }}"
	slurmKillCmd = "scancel {{ TAKLER_RID }}"

	defaultSerialClass   = "serial"
	defaultParallelClass = "normal"
	defaultTasksPerNode  = 32
)

// SetRuntime attaches the runtime parameters described by cfg to the node.
// The full parameter set is built before anything is attached, so a failed
// call leaves the node untouched.
func SetRuntime(node models.Node, cfg config.RuntimeConfig) error {
	switch cfg.RuntimeType {
	case config.RuntimeTypeShell:
		node.AddParameter(ShellJob())
		return nil
	case config.RuntimeTypeSlurm:
		switch cfg.JobType {
		case config.JobTypeSerial:
			node.AddParameter(SlurmSerialJob(cfg.JobClass, cfg.WorkloadKey))
			return nil
		case config.JobTypeParallel:
			if cfg.Nodes <= 0 {
				return models.ErrNodesRequired
			}
			node.AddParameter(SlurmParallelJob(
				cfg.Nodes, cfg.TasksPerNode, cfg.JobClass, cfg.WorkloadKey))
			return nil
		default:
			return fmt.Errorf("%s: %w", cfg.JobType, models.ErrUnsupportedJobType)
		}
	default:
		return fmt.Errorf("%s: %w", cfg.RuntimeType, models.ErrUnsupportedRuntimeType)
	}
}

// ShellJob returns the parameters to run a node's job directly with the
// engine's shell task runner.
func ShellJob() map[string]string {
	return map[string]string{
		models.ParamShellJobCmd:  models.DefaultShellJobCmd,
		models.ParamShellKillCmd: models.DefaultShellKillCmd,
	}
}

// SlurmSerialJob returns the parameters to submit a node's job to slurm as
// a serial job. An empty className picks the "serial" partition; WCKEY is
// emitted only when workloadKey is set.
func SlurmSerialJob(className, workloadKey string) map[string]string {
	if className == "" {
		className = defaultSerialClass
	}
	params := map[string]string{
		models.ParamShellJobCmd:  slurmJobCmd,
		models.ParamShellKillCmd: slurmKillCmd,
		models.ParamPartition:    className,
	}
	if workloadKey != "" {
		params[models.ParamWorkloadKey] = workloadKey
	}
	return params
}

// SlurmParallelJob returns the parameters to submit a node's job to slurm
// across the given node count. tasksPerNode defaults to 32 when unset and
// an empty className picks the "normal" partition.
func SlurmParallelJob(nodes, tasksPerNode int, className, workloadKey string) map[string]string {
	if tasksPerNode <= 0 {
		tasksPerNode = defaultTasksPerNode
	}
	if className == "" {
		className = defaultParallelClass
	}
	params := map[string]string{
		models.ParamShellJobCmd:  slurmJobCmd,
		models.ParamShellKillCmd: slurmKillCmd,
		models.ParamPartition:    className,
		models.ParamNodes:        strconv.Itoa(nodes),
		models.ParamTasksPerNode: strconv.Itoa(tasksPerNode),
	}
	if workloadKey != "" {
		params[models.ParamWorkloadKey] = workloadKey
	}
	return params
}
