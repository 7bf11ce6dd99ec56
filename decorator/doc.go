// Package decorator wraps functions to change how often and when they run.
//
// Once and Memoize cache results. Delay and Throttle defer work onto a
// timer.Scheduler, the shared timer.Default loop unless WithScheduler says
// otherwise, so tests can drive them with a timer.Virtual clock:
//
//	clock := timer.NewVirtual(time.Now())
//	save := decorator.Throttle(flush, 100*time.Millisecond, decorator.WithScheduler(clock))
//	save()                              // runs flush
//	save()                              // schedules one trailing flush
//	clock.Advance(100 * time.Millisecond) // runs it
package decorator
