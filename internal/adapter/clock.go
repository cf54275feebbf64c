package adapter

import "time"

// HongKong is the Observatory's local zone. Hong Kong does not observe DST.
var HongKong = time.FixedZone("HKT", 8*60*60)

// Clock supplies the current instant to date-relative validation rules.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in Hong Kong time.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time { return time.Now().In(HongKong) }

// FixedClock always reports the same instant.
type FixedClock time.Time

// Now implements Clock.
func (c FixedClock) Now() time.Time { return time.Time(c).In(HongKong) }

func startOfDay(t time.Time) time.Time {
	t = t.In(HongKong)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, HongKong)
}
