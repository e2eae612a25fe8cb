package suite

import (
	"github.com/cemc-oper/takler-util/config"
	"github.com/cemc-oper/takler-util/job"
	"github.com/cemc-oper/takler-util/models"
	"github.com/cemc-oper/takler-util/schedule"
)

// ConfigureNode applies a node's declarative runtime and scheduling blocks
// in one call. Either block may be nil; the first failure aborts and later
// blocks are left unapplied.
func ConfigureNode(node models.Node, cfg config.NodeConfig) error {
	if cfg.Runtime != nil {
		if err := job.SetRuntime(node, *cfg.Runtime); err != nil {
			return err
		}
	}
	if cfg.Scheduling != nil {
		if err := schedule.SetScheduling(node, *cfg.Scheduling, cfg.DateVariable); err != nil {
			return err
		}
	}
	return nil
}
