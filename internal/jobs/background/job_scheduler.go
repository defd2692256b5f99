package background

import (
	"context"
	"sync"
	"time"

	"martstore/internal/jobs"

	"github.com/go-co-op/gocron/v2"
	"github.com/sirupsen/logrus"
)

// JobScheduler owns the gocron scheduler and the registered background jobs.
type JobScheduler struct {
	scheduler     gocron.Scheduler
	lowStockSvc   *jobs.LowStockAlertService
	lowStockEvery time.Duration
	registered    map[string]gocron.Job
	mu            sync.RWMutex
}

func NewJobScheduler(lowStockSvc *jobs.LowStockAlertService, lowStockEvery time.Duration) (*JobScheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	js := &JobScheduler{
		scheduler:     scheduler,
		lowStockSvc:   lowStockSvc,
		lowStockEvery: lowStockEvery,
		registered:    make(map[string]gocron.Job),
	}
	js.registerJobs()
	return js, nil
}

func (js *JobScheduler) Start() {
	logrus.Info("starting background job scheduler")
	js.scheduler.Start()
}

func (js *JobScheduler) Stop() error {
	logrus.Info("stopping background job scheduler")
	return js.scheduler.Shutdown()
}

func (js *JobScheduler) registerJobs() {
	js.mu.Lock()
	defer js.mu.Unlock()

	lowStockJob, err := js.scheduler.NewJob(
		gocron.DurationJob(js.lowStockEvery),
		gocron.NewTask(js.lowStockSvc.ScheduledLowStockCheck, context.Background()),
		gocron.WithName("low-stock-alerts"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		logrus.WithError(err).Error("failed to register low-stock alerts job")
		return
	}
	js.registered["low-stock-alerts"] = lowStockJob

	logrus.Infof("registered %d background jobs", len(js.registered))
}
