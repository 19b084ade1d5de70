// Package scheduler runs recurring jobs on cron schedules.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/mikestefanello/backlite"
	"github.com/robfig/cron/v3"

	"github.com/mrlokans/wayfarer/internal/tasks"
)

var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// ValidateSchedule checks a standard five-field cron expression.
func ValidateSchedule(schedule string) error {
	_, err := cronParser.Parse(schedule)
	return err
}

// NextRunTime returns the first activation of schedule after from.
func NextRunTime(schedule string, from time.Time) (time.Time, error) {
	parsed, err := cronParser.Parse(schedule)
	if err != nil {
		return time.Time{}, err
	}
	return parsed.Next(from), nil
}

// Enqueuer stores background tasks.
type Enqueuer interface {
	Enqueue(ctx context.Context, tasks ...backlite.Task) ([]string, error)
}

// DigestScheduler enqueues the booking digest task on a cron schedule. The
// task queue does the actual work, so a slow mail server never blocks cron.
type DigestScheduler struct {
	queue    Enqueuer
	schedule string
	now      func() time.Time

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.Mutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

// NewDigestScheduler creates a new scheduler instance
func NewDigestScheduler(queue Enqueuer, schedule string) *DigestScheduler {
	return &DigestScheduler{
		queue:    queue,
		schedule: schedule,
		now:      time.Now,
		cron:     cron.New(cron.WithParser(cronParser)),
	}
}

// Start registers the digest job and begins the cron loop. The scheduler
// stops by itself when ctx is cancelled.
func (s *DigestScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if err := ValidateSchedule(s.schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", s.schedule, err)
	}

	jobCtx, cancel := context.WithCancel(ctx)
	entryID, err := s.cron.AddFunc(s.schedule, func() {
		if err := s.RunNow(jobCtx); err != nil {
			log.Printf("Digest scheduler: %v", err)
		}
	})
	if err != nil {
		cancel()
		return fmt.Errorf("failed to schedule digest job: %w", err)
	}
	s.entryID = entryID
	s.cancelFunc = cancel

	s.cron.Start()
	s.isRunning = true

	nextRun, _ := NextRunTime(s.schedule, s.now())
	log.Printf("Digest scheduler: started with schedule '%s'. Next run: %v", s.schedule, nextRun)

	go func() {
		<-jobCtx.Done()
		s.Stop()
	}()

	return nil
}

// RunNow enqueues a digest immediately.
func (s *DigestScheduler) RunNow(ctx context.Context) error {
	if _, err := s.queue.Enqueue(ctx, tasks.BookingDigestTask{ScheduledAt: s.now()}); err != nil {
		return fmt.Errorf("failed to enqueue digest: %w", err)
	}
	log.Printf("Digest scheduler: digest enqueued")
	return nil
}

// Stop gracefully stops the scheduler
func (s *DigestScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	// Stop accepting new jobs and wait for running jobs to complete
	ctx := s.cron.Stop()
	<-ctx.Done()

	s.cron.Remove(s.entryID)
	if s.cancelFunc != nil {
		s.cancelFunc()
		s.cancelFunc = nil
	}
	s.isRunning = false

	log.Printf("Digest scheduler: stopped")
}

// IsRunning reports whether the cron loop is active.
func (s *DigestScheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isRunning
}
