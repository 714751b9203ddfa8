package checklist

import "time"

type options struct {
	loc *time.Location
	now func() time.Time
}

// Option configures a Selector or a Recorder.
type Option func(*options)

// WithLocation sets the zone used to resolve the day and format timestamps.
func WithLocation(loc *time.Location) Option {
	return func(o *options) {
		if loc != nil {
			o.loc = loc
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

func applyOptions(opts []Option) options {
	o := options{loc: time.Local, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
