package game

import "time"

// Scheduler defers fn by at least delay. fn must run once, asynchronously,
// and never before the caller returns.
type Scheduler interface {
	ScheduleNextUpdate(delay time.Duration, fn func())
}

// TimerScheduler runs callbacks on runtime timers.
type TimerScheduler struct{}

func (TimerScheduler) ScheduleNextUpdate(delay time.Duration, fn func()) {
	time.AfterFunc(delay, fn)
}

// SchedulerFunc adapts a function to Scheduler.
type SchedulerFunc func(delay time.Duration, fn func())

func (f SchedulerFunc) ScheduleNextUpdate(delay time.Duration, fn func()) {
	f(delay, fn)
}
