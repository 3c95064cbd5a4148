// Package scheduler implements the Step Scheduler: a cooperative driver that
// invokes a step function repeatedly, one call per delay, until the function
// reports that no work remains.
//
// Exactly one drive is active at a time. Start supersedes (cancels) any drive
// in progress, Cancel stops the pending timer, and every armed timer carries a
// generation number so a callback that lost a race with Cancel does nothing.
// The step function is never called while the scheduler's lock is held.
//
// Time is abstracted behind Clock; FakeClock advances manually for tests.
package scheduler
