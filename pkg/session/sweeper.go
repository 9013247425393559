package session

import (
	"log"
	"sync"
	"time"

	"github.com/jasonlvhit/gocron"
)

// Sweeper periodically runs cleanup jobs such as MemoryStore.Sweep.
type Sweeper struct {
	scheduler *gocron.Scheduler
	jobs      []func() int
	names     []string
	every     uint64
	stop      chan bool
	once      sync.Once
}

func NewSweeper(every time.Duration) *Sweeper {
	minutes := uint64(every / time.Minute)
	if minutes == 0 {
		minutes = 1
	}
	return &Sweeper{scheduler: gocron.NewScheduler(), every: minutes}
}

// Add registers a cleanup job; fn reports how many items it removed.
func (s *Sweeper) Add(name string, fn func() int) {
	s.jobs = append(s.jobs, fn)
	s.names = append(s.names, name)
}

// RunOnce executes every job immediately.
func (s *Sweeper) RunOnce() {
	for i, fn := range s.jobs {
		if n := fn(); n > 0 {
			log.Printf("sweep %s: removed %d", s.names[i], n)
		}
	}
}

// Start schedules RunOnce on the configured cadence.
func (s *Sweeper) Start() error {
	if err := s.scheduler.Every(s.every).Minutes().Do(s.RunOnce); err != nil {
		return err
	}
	s.stop = s.scheduler.Start()
	return nil
}

func (s *Sweeper) Stop() {
	s.once.Do(func() {
		if s.stop != nil {
			s.stop <- true
		}
		s.scheduler.Clear()
	})
}
