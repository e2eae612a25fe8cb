package models

const (
	// the parameter keys consumed by the execution engine at submit time

	// ParamShellJobCmd is the command template used to submit a node's job
	ParamShellJobCmd = "TAKLER_SHELL_JOB_CMD"
	// ParamShellKillCmd is the command template used to kill a running job
	ParamShellKillCmd = "TAKLER_SHELL_KILL_CMD"
	// ParamPartition is the scheduler partition/queue the job is dispatched into
	ParamPartition = "PARTITION"
	// ParamNodes is the node count requested for a parallel job
	ParamNodes = "NODES"
	// ParamTasksPerNode is the task count per allocated node
	ParamTasksPerNode = "TASKS_PER_NODE"
	// ParamWorkloadKey is the accounting key passed to the scheduler
	ParamWorkloadKey = "WCKEY"
)

const (
	// default commands of the engine's shell task runner, emitted verbatim;
	// the {{ ... }} placeholders are substituted by the engine at submit and
	// kill time, never here
	DefaultShellJobCmd  = "bash {{ TAKLER_JOB }}"
	DefaultShellKillCmd = "kill -9 {{ TAKLER_RID }}"
)
