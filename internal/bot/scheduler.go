package bot

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/edgard/tmdbot/internal/bot/tasks"
	"github.com/edgard/tmdbot/internal/config"
)

// Scheduler runs the registered tasks that are enabled in the configuration
// on their cron schedules.
type Scheduler struct {
	scheduler gocron.Scheduler
	logger    *slog.Logger
	cfg       *config.SchedulerConfig
	taskMap   map[string]tasks.ScheduledTaskFunc
	mu        sync.Mutex
	running   bool
	scheduled []string
}

// NewScheduler creates a scheduler for taskMap configured by cfg.
func NewScheduler(logger *slog.Logger, cfg *config.SchedulerConfig, taskMap map[string]tasks.ScheduledTaskFunc) (*Scheduler, error) {
	if logger == nil {
		logger = slog.Default()
	}

	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create gocron scheduler: %w", err)
	}

	return &Scheduler{
		scheduler: s,
		logger:    logger.With("component", "scheduler"),
		cfg:       cfg,
		taskMap:   taskMap,
	}, nil
}

// Start schedules every enabled task and starts the scheduler. Tasks receive
// ctx, so they are cancelled together with it. Misconfigured tasks are logged
// and skipped.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return fmt.Errorf("scheduler is already running")
	}

	var names []string
	if s.cfg != nil {
		for name := range s.cfg.Tasks {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	if len(names) == 0 {
		s.logger.Warn("No scheduler tasks configured.")
	}

	for _, taskName := range names {
		taskConfig := s.cfg.Tasks[taskName]
		if !taskConfig.Enabled {
			s.logger.Info("Skipping disabled task", "task_name", taskName)
			continue
		}

		taskFunc, exists := s.taskMap[taskName]
		if !exists {
			s.logger.Warn("Scheduled task configured but not registered, skipping", "task_name", taskName)
			continue
		}

		if taskConfig.Schedule == "" {
			s.logger.Warn("Scheduled task enabled but has empty schedule, skipping", "task_name", taskName)
			continue
		}

		_, err := s.scheduler.NewJob(
			gocron.CronJob(taskConfig.Schedule, true),
			gocron.NewTask(s.wrap(taskName, taskFunc), ctx),
			gocron.WithName(taskName),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
		)
		if err != nil {
			s.logger.Error("Failed to schedule task", "task_name", taskName, "schedule", taskConfig.Schedule, "error", err)
			continue
		}

		s.logger.Info("Scheduled task", "task_name", taskName, "schedule", taskConfig.Schedule)
		s.scheduled = append(s.scheduled, taskName)
	}

	s.scheduler.Start()
	s.running = true
	s.logger.Info("Scheduler started", "tasks_scheduled", len(s.scheduled))

	return nil
}

func (s *Scheduler) wrap(name string, taskFunc tasks.ScheduledTaskFunc) func(ctx context.Context) {
	return func(ctx context.Context) {
		s.logger.DebugContext(ctx, "Running scheduled task", "task_name", name)
		startTime := time.Now()
		if err := taskFunc(ctx); err != nil {
			s.logger.ErrorContext(ctx, "Scheduled task failed", "task_name", name, "error", err)
			return
		}
		s.logger.DebugContext(ctx, "Finished scheduled task", "task_name", name, "duration", time.Since(startTime))
	}
}

// ScheduledTasks returns the names of the tasks Start scheduled, sorted.
func (s *Scheduler) ScheduledTasks() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.scheduled...)
}

// Stop shuts the scheduler down, waiting for running tasks to complete.
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return nil
	}

	err := s.scheduler.Shutdown()
	if err != nil {
		s.logger.Error("Error during scheduler shutdown", "error", err)
	} else {
		s.logger.Info("Scheduler stopped gracefully.")
	}

	s.running = false
	s.scheduled = nil
	return err
}
