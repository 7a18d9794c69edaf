package pacer

import (
	"time"

	"github.com/lukehollenback/toribank/constants"
)

//
// Pacer pads out remote calls so that each one takes at least a minimum amount of wall-clock time.
// Because the client issues its requests synchronously, this keeps consecutive calls at least that
// far apart and thus keeps the caller under the remote service's rate limit.
//
// NOTE ~> The pacing is based on the local clock only. It offers no protection against clock drift
//  or against other processes sharing the same remote account.
//
type Pacer struct {
	min    time.Duration
	margin time.Duration

	now   func() time.Time
	sleep func(time.Duration)
}

//
// New instantiates a pacer that guarantees each call takes at least the specified minimum
// duration. Whenever a call has to be padded, the provided margin is slept on top of the remaining
// time.
//
func New(min time.Duration, margin time.Duration) *Pacer {
	return &Pacer{
		min:    min,
		margin: margin,
		now:    time.Now,
		sleep:  time.Sleep,
	}
}

//
// Default instantiates a pacer configured for the market's rate limit.
//
func Default() *Pacer {
	return New(constants.MinRequestDuration, constants.RequestMargin)
}

//
// Do invokes the provided function and returns its error once the minimum duration has elapsed.
// Failed calls are paced exactly like successful ones.
//
func (o *Pacer) Do(fn func() error) error {
	_, err := Call(o, func() (struct{}, error) {
		return struct{}{}, fn()
	})

	return err
}

//
// Call invokes the provided function through the provided pacer and returns its result once the
// minimum duration has elapsed.
//
func Call[T any](o *Pacer, fn func() (T, error)) (T, error) {
	start := o.now()

	result, err := fn()

	//
	// Pad the call out if it came back too quickly.
	//
	if elapsed := o.now().Sub(start); elapsed <= o.min {
		o.sleep(o.min - elapsed + o.margin)
	}

	return result, err
}
