package animate

import "time"

// Scheduler runs a callback once after a delay. The returned stop function
// reports true when it prevented the callback from running.
type Scheduler interface {
	ScheduleOnce(delay time.Duration, fn func()) (stop func() bool)
}

// TimerScheduler schedules callbacks on the wall clock.
type TimerScheduler struct{}

func (TimerScheduler) ScheduleOnce(delay time.Duration, fn func()) func() bool {
	return time.AfterFunc(delay, fn).Stop
}

// ImmediateScheduler runs callbacks back to back without sleeping and keeps
// the total delay that would have elapsed. Callbacks scheduled from inside a
// callback are queued, so the call stack stays flat. A queued callback cannot
// be stopped.
type ImmediateScheduler struct {
	queue   []func()
	running bool
	elapsed time.Duration
	calls   int
}

func (s *ImmediateScheduler) ScheduleOnce(delay time.Duration, fn func()) func() bool {
	s.elapsed += delay
	s.calls++
	s.queue = append(s.queue, fn)
	if s.running {
		return noStop
	}
	s.running = true
	defer func() { s.running = false }()
	for len(s.queue) > 0 {
		next := s.queue[0]
		s.queue = s.queue[1:]
		next()
	}
	return noStop
}

func noStop() bool { return false }

// Elapsed is the sum of all requested delays.
func (s *ImmediateScheduler) Elapsed() time.Duration { return s.elapsed }

// Calls is the number of callbacks scheduled so far.
func (s *ImmediateScheduler) Calls() int { return s.calls }
