// Package scheduler runs the periodic overdue-loan sweep. The sweep reads
// every loaned copy whose due date has passed and logs a report, giving
// librarians a daily view of outstanding returns without opening the app.
package scheduler

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/locallibrary/catalog/internal/entities"
)

// OverdueLister is the slice of the instance repository the sweep needs.
type OverdueLister interface {
	GetOverdue(now time.Time) ([]entities.BookInstance, error)
}

// OverdueSweeper periodically reports loaned copies past their due date.
type OverdueSweeper struct {
	instances OverdueLister
	schedule  string

	cron      *cron.Cron
	entryID   cron.EntryID
	mu        sync.RWMutex
	isRunning bool
}

// NewOverdueSweeper creates a sweeper with a standard five-field cron schedule.
func NewOverdueSweeper(instances OverdueLister, schedule string) *OverdueSweeper {
	return &OverdueSweeper{
		instances: instances,
		schedule:  schedule,
		cron:      cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start schedules the sweep. Calling Start on a running sweeper is a no-op.
func (s *OverdueSweeper) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	entryID, err := s.cron.AddFunc(s.schedule, func() {
		s.runSweep()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule overdue sweep: %w", err)
	}
	s.entryID = entryID

	s.cron.Start()
	s.isRunning = true

	log.Info().Str("schedule", s.schedule).Msg("overdue sweep scheduled")
	return nil
}

// Stop halts the schedule and waits for a running sweep to finish.
func (s *OverdueSweeper) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()
	s.isRunning = false

	log.Info().Msg("overdue sweep stopped")
}

// RunNow triggers an immediate sweep without waiting for the schedule.
func (s *OverdueSweeper) RunNow() {
	go s.runSweep()
}

// IsRunning reports whether the sweep is scheduled.
func (s *OverdueSweeper) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// NextRunTime returns when the next sweep will fire, or nil when stopped.
func (s *OverdueSweeper) NextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}
	for _, entry := range s.cron.Entries() {
		if entry.ID == s.entryID {
			t := entry.Next
			return &t
		}
	}
	return nil
}

func (s *OverdueSweeper) runSweep() {
	overdue, err := s.instances.GetOverdue(time.Now())
	if err != nil {
		log.Error().Err(err).Msg("overdue sweep failed")
		return
	}

	if len(overdue) == 0 {
		log.Info().Msg("overdue sweep: no overdue copies")
		return
	}

	log.Info().Int("count", len(overdue)).Msg("overdue sweep: copies past due")
	for _, inst := range overdue {
		log.Info().
			Uint("instance_id", inst.ID).
			Str("book", inst.Book.Title).
			Str("imprint", inst.Imprint).
			Str("due_back", inst.DueBackFormatted()).
			Msg("overdue copy")
	}
}
