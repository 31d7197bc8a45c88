package eventsubscribers

import (
	"net"
	"net/url"
	"syscall"

	"github.com/mono83/slf"
	"github.com/mono83/slf/wd"

	"github.com/lokafit/lokafit/api/stylist"
	"github.com/lokafit/lokafit/dispatcher"
	"github.com/lokafit/lokafit/session"
	"github.com/lokafit/lokafit/supabase"
)

type Subscriber interface {
	Subscribe(topic string, fn interface{})
}

type Logger struct {
	slf.Logger
}

func (l *Logger) ConfigureWithDispatcher(d dispatcher.Subscriber) {
	d.Subscribe("store:persist:error", l.handleStorePersistError)
	d.Subscribe("session:resolved", l.handleSessionResolved)
	d.Subscribe("session:resolve:error", l.createErrorHandler("session resolution"))
	d.Subscribe("session:profile:error", l.createErrorHandler("profile lookup"))
	d.Subscribe("session:profile:create_failed", l.createErrorHandler("profile creation"))
	d.Subscribe(supabase.TopicAuthStateChanged, l.handleAuthStateChanged)
	d.Subscribe("closet:error", l.createErrorHandler("closet"))

	d.Subscribe("stylist:scan_accurate:after_call", l.createStylistErrorHandler("scan_accurate"))
	d.Subscribe("stylist:scan_quick:after_call", l.createStylistErrorHandler("scan_quick"))
	d.Subscribe("stylist:skin_tone:after_call", l.createStylistErrorHandler("skin_tone"))
	d.Subscribe("stylist:instant_match:after_call", l.createStylistErrorHandler("instant_match"))
	d.Subscribe("stylist:weekly_plan:after_call", l.createStylistErrorHandler("weekly_plan"))
}

func (l *Logger) handleStorePersistError(err error) {
	l.Error("Unable to persist the store snapshot: :err", wd.ErrParam(err))
}

func (l *Logger) handleSessionResolved(state session.State) {
	l.Info("Session resolved as :state", wd.StringParam("state", string(state)))
}

func (l *Logger) handleAuthStateChanged(user *supabase.SessionUser) {
	if user == nil {
		l.Info("Auth state changed: signed out")
		return
	}

	l.Info("Auth state changed: signed in as :id", wd.StringParam("id", user.ID))
}

func (l *Logger) createErrorHandler(scope string) func(err error) {
	scopeParam := wd.NameParam(scope)
	return func(err error) {
		l.Error(":name: :err", scopeParam, wd.ErrParam(err))
	}
}

func (l *Logger) createStylistErrorHandler(op string) func(err error) {
	opParam := wd.NameParam(op)
	return func(err error) {
		if err == nil {
			return
		}

		errParam := wd.ErrParam(err)

		l.Debug("Stylist "+op+" call resulted an error :err", errParam)

		switch err.(type) {
		case *stylist.RequestFailedError:
			l.Warning(":name: :err", opParam, errParam)
			return
		case net.Error:
			if err.(net.Error).Timeout() {
				return
			}

			if _, ok := err.(*url.Error); ok {
				return
			}

			if opErr, ok := err.(*net.OpError); ok && (opErr.Op == "dial" || opErr.Op == "read") {
				return
			}

			if err == syscall.ECONNREFUSED {
				return
			}
		}

		l.Error(":name: Unexpected stylist response error: :err", opParam, errParam)
	}
}
