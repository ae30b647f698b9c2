package scheduler

import (
	"fmt"

	"github.com/go-co-op/gocron/v2"
	"github.com/robfig/cron/v3"
)

// Scheduler reruns the pipeline on a cron schedule. One job, one task; each
// firing is a full fetch-score-emit pass.
type Scheduler struct {
	s        gocron.Scheduler
	cronSpec string
	run      func()
}

func NewScheduler(cronSpec string, run func()) (*Scheduler, error) {
	// Validate the expression up front so a bad schedule fails at startup
	// rather than at first fire.
	if _, err := cron.ParseStandard(cronSpec); err != nil {
		return nil, fmt.Errorf("invalid cron expression %q: %w", cronSpec, err)
	}

	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{s: s, cronSpec: cronSpec, run: run}, nil
}

func (s *Scheduler) Start() error {
	_, err := s.s.NewJob(
		gocron.CronJob(s.cronSpec, false),
		gocron.NewTask(s.run),
	)
	if err != nil {
		return fmt.Errorf("failed to create pipeline job: %w", err)
	}

	s.s.Start()
	return nil
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}
