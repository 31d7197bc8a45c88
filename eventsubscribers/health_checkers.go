package eventsubscribers

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/etherlabsio/healthcheck/v2"
)

type Pingable interface {
	Ping() error
}

func DatabaseChecker(connection Pingable) healthcheck.CheckerFunc {
	return func(ctx context.Context) error {
		done := make(chan error)
		go func() {
			done <- connection.Ping()
		}()

		select {
		case <-ctx.Done():
			return errors.New("check timeout")
		case err := <-done:
			return err
		}
	}
}

// StylistApiChecker reports the error of the most recent stylist call for the
// given operation. The error resets after resetDuration, a single failed call
// should not keep the app unhealthy forever.
func StylistApiChecker(dispatcher Subscriber, op string, resetDuration time.Duration) healthcheck.CheckerFunc {
	var mutex sync.Mutex
	var lastCallErr error
	var expireTimer *time.Timer
	dispatcher.Subscribe("stylist:"+op+":after_call", func(err error) {
		mutex.Lock()
		defer mutex.Unlock()

		lastCallErr = err
		if expireTimer != nil {
			expireTimer.Stop()
		}

		expireTimer = time.AfterFunc(resetDuration, func() {
			mutex.Lock()
			lastCallErr = nil
			mutex.Unlock()
		})
	})

	return func(ctx context.Context) error {
		mutex.Lock()
		defer mutex.Unlock()

		return lastCallErr
	}
}
