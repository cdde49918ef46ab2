package perf

import "time"

// StopWatch is a time.Time with stopping methods
type StopWatch struct {
	t time.Time
}

// Start returns a newly started stopwatch
func Start() StopWatch {
	return StopWatch{time.Now()}
}

// StopGetNano returns the nanoseconds from the stopwatch start
func (sw StopWatch) StopGetNano() int64 {
	return time.Since(sw.t).Nanoseconds()
}

// StopRecordAverage folds the elapsed time into the named average metric.
func (sw StopWatch) StopRecordAverage(key string) {
	RecordAverageTime(key, sw.StopGetNano())
}
