package scheduler

import (
	"log"
	"time"

	"github.com/go-co-op/gocron"
)

// Evictor is the piece of the forecast service the scheduler drives.
type Evictor interface {
	EvictCaches()
}

// Scheduler clears the forecast caches in bulk on a fixed interval,
// independent of request traffic. The feed republishes twice a day, so
// the default interval is 12 hours.
type Scheduler struct {
	scheduler *gocron.Scheduler
	evictor   Evictor
	interval  time.Duration
}

// New creates a new Scheduler.
func New(interval time.Duration, evictor Evictor) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		evictor:   evictor,
		interval:  interval,
	}
}

// Start schedules the periodic eviction job and starts the underlying
// scheduler.
func (s *Scheduler) Start() error {
	hours := int(s.interval.Hours())
	if hours <= 0 {
		hours = 12
	}

	_, err := s.scheduler.Every(hours).Hours().Do(func() {
		log.Println("scheduler: running bulk cache eviction")
		s.evictor.EvictCaches()
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
