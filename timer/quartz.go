/*
 * MIT License
 *
 * Copyright (c) 2022-2025 Arsene Tochemey Gandote
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package timer

import (
	"context"
	"sync"
	"time"

	"github.com/reugn/go-quartz/job"
	quartzlogger "github.com/reugn/go-quartz/logger"
	"github.com/reugn/go-quartz/quartz"
)

// QuartzDriver is the default Driver implementation, backed by
// github.com/reugn/go-quartz, the same scheduling library the teacher
// library uses for its own message scheduler.
type QuartzDriver struct {
	mu        sync.Mutex
	scheduler quartz.Scheduler
	fire      func(id string)
	started   bool
}

var _ Driver = (*QuartzDriver)(nil)

// NewQuartzDriver creates a QuartzDriver. fire is invoked, on the quartz
// scheduler's own worker goroutine, whenever a previously-armed timer elapses
// without having been cancelled first.
func NewQuartzDriver(fire func(id string)) *QuartzDriver {
	sched, _ := quartz.NewStdScheduler(quartz.WithLogger(quartzlogger.NewSimpleLogger(nil, quartzlogger.LevelOff)))
	d := &QuartzDriver{
		scheduler: sched,
		fire:      fire,
	}
	d.scheduler.Start(context.Background())
	d.started = true
	return d
}

// StartTimer arms a one-shot timer under id.
func (d *QuartzDriver) StartTimer(id string, dur time.Duration) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	runJob := job.NewFunctionJob(func(context.Context) (bool, error) {
		d.fire(id)
		return true, nil
	})
	detail := quartz.NewJobDetail(runJob, quartz.NewJobKey(id))
	return d.scheduler.ScheduleJob(detail, quartz.NewRunOnceTrigger(dur))
}

// CancelTimer cancels the timer under id. It is a silent no-op if id is
// unknown or has already fired.
func (d *QuartzDriver) CancelTimer(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	_ = d.scheduler.DeleteJob(quartz.NewJobKey(id))
}

// Stop releases the underlying quartz scheduler. Call during shutdown of the
// supervisor owning this driver.
func (d *QuartzDriver) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.started {
		return
	}
	_ = d.scheduler.Clear()
	d.scheduler.Stop()
	d.started = false
}
