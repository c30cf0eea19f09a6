package background

import (
	"context"
	"log"
	"time"

	"stockpwa/internal/jobs"

	"github.com/go-co-op/gocron/v2"
)

// JobScheduler manages background jobs for the inventory process
type JobScheduler struct {
	scheduler gocron.Scheduler
	alertsSvc *jobs.LowStockAlertService
	interval  time.Duration
}

// NewJobScheduler creates a new job scheduler
func NewJobScheduler(alertsSvc *jobs.LowStockAlertService, alertInterval time.Duration) (*JobScheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	js := &JobScheduler{
		scheduler: scheduler,
		alertsSvc: alertsSvc,
		interval:  alertInterval,
	}

	js.registerJobs()

	return js, nil
}

// Start starts the job scheduler
func (js *JobScheduler) Start() error {
	log.Printf("Starting background job scheduler")
	js.scheduler.Start()
	return nil
}

// Stop stops the job scheduler
func (js *JobScheduler) Stop() error {
	log.Printf("Stopping background job scheduler")
	return js.scheduler.Shutdown()
}

// registerJobs registers all background jobs
func (js *JobScheduler) registerJobs() {
	_, err := js.scheduler.NewJob(
		gocron.DurationJob(js.interval),
		gocron.NewTask(js.alertsSvc.ScheduledLowStockCheck, context.Background()),
		gocron.WithName("low-stock-alerts"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		log.Printf("Failed to create low stock alerts job: %v", err)
		return
	}

	log.Printf("Registered low stock alerts job (every %s)", js.interval)
}
