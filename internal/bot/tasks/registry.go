package tasks

import (
	"context"

	"github.com/edgard/tmdbot/internal/config"
)

// ScheduledTaskFunc is the signature of every scheduled task. The context is
// cancelled when the scheduler shuts down.
type ScheduledTaskFunc func(ctx context.Context) error

// RegisterAllTasks returns every task keyed by the name used under
// scheduler.tasks in the configuration.
func RegisterAllTasks(deps TaskDeps) map[string]ScheduledTaskFunc {
	tasks := make(map[string]ScheduledTaskFunc)

	tasks[config.HealthTaskName] = newTMDBHealthTask(deps)

	deps.Logger.Info("Initialized scheduled tasks", "count", len(tasks))
	return tasks
}
