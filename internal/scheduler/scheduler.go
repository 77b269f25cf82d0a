// Package scheduler runs the reminder scans on cron schedules.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"healthcare-management-system/config"
	"healthcare-management-system/internal/service"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

// jobTimeout bounds a single scan
const jobTimeout = 5 * time.Minute

type scan func(ctx context.Context) (service.ReminderResult, error)

type Scheduler struct {
	cron     *gocron.Scheduler
	log      *logrus.Logger
	reminder service.ReminderService
}

// New registers the three reminder scans. Nothing runs until Start.
func New(cfg config.ReminderConfig, loc *time.Location, log *logrus.Logger, reminder service.ReminderService) (*Scheduler, error) {
	s := &Scheduler{
		cron:     gocron.NewScheduler(loc),
		log:      log,
		reminder: reminder,
	}
	// Runs of the same scan never overlap
	s.cron.SingletonModeAll()

	jobs := []struct {
		name string
		expr string
		run  scan
	}{
		{service.JobPrescriptionEnding, cfg.PrescriptionCron, reminder.RemindEndingPrescriptions},
		{service.JobAppointmentWeekly, cfg.WeeklyCron, reminder.RemindWeeklyAppointments},
		{service.JobAppointmentHourly, cfg.HourlyCron, reminder.RemindImminentAppointments},
	}

	for _, job := range jobs {
		j, err := s.cron.Cron(job.expr).Do(s.runner(job.name, job.run))
		if err != nil {
			return nil, fmt.Errorf("failed to schedule %s with %q: %w", job.name, job.expr, err)
		}
		j.Tag(job.name)
	}

	return s, nil
}

func (s *Scheduler) runner(name string, run scan) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		s.log.WithField("job", name).Info("Reminder job started")
		if _, err := run(ctx); err != nil {
			s.log.WithField("job", name).Errorf("Reminder job failed: %v", err)
		}
	}
}

// Jobs returns the tags of the registered jobs
func (s *Scheduler) Jobs() []string {
	tags := make([]string, 0, s.cron.Len())
	for _, j := range s.cron.Jobs() {
		tags = append(tags, j.Tags()...)
	}
	return tags
}

func (s *Scheduler) Start() {
	s.cron.StartAsync()
	s.log.Info("Reminder scheduler started")
}

// Stop waits for running jobs to finish
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.log.Info("Reminder scheduler stopped")
}
