package timer

import "time"

// Clock 返回单调递增的毫秒时间戳
type Clock interface {
	Now() int64
}

type systemClock struct {
	epoch time.Time
}

// SystemClock 基于 time.Since，读数来自单调时钟，不受系统时间调整影响
func SystemClock() Clock {
	return &systemClock{epoch: time.Now()}
}

func (c *systemClock) Now() int64 {
	return time.Since(c.epoch).Milliseconds()
}

// Round 记录一轮题目的开始时间，并与时长比较判断是否超时
type Round struct {
	clock    Clock
	start    int64
	duration time.Duration
}

func NewRound(clock Clock, d time.Duration) *Round {
	r := &Round{clock: clock, duration: d}
	r.Reset()
	return r
}

func (r *Round) Reset() {
	r.start = r.clock.Now()
}

// ResetWith 同时更新时长，混合模式下每一轮的时长可能不同
func (r *Round) ResetWith(d time.Duration) {
	r.duration = d
	r.Reset()
}

func (r *Round) Duration() time.Duration {
	return r.duration
}

func (r *Round) Elapsed() time.Duration {
	return time.Duration(r.clock.Now()-r.start) * time.Millisecond
}

func (r *Round) Remaining() time.Duration {
	left := r.duration - r.Elapsed()
	if left < 0 {
		return 0
	}
	return left
}

func (r *Round) Expired() bool {
	return r.Elapsed() >= r.duration
}
