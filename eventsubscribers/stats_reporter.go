package eventsubscribers

import (
	"net/http"
	"strings"

	"github.com/mono83/slf"

	"github.com/lokafit/lokafit/dispatcher"
	"github.com/lokafit/lokafit/supabase"
)

type StatsReporter struct {
	slf.StatsReporter
}

func (s *StatsReporter) ConfigureWithDispatcher(d dispatcher.Subscriber) {
	// Per request events
	d.Subscribe("closet:before_request", s.handleBeforeRequest)
	d.Subscribe("closet:after_request", s.handleAfterRequest)

	// Session events
	d.Subscribe(supabase.TopicAuthStateChanged, func(user *supabase.SessionUser) {
		if user == nil {
			s.IncCounter("auth.signed_out", 1)
		} else {
			s.IncCounter("auth.signed_in", 1)
		}
	})
	d.Subscribe("session:resolve:error", s.incCounterHandler("session.resolve_failed"))
	d.Subscribe("session:profile:create_failed", s.incCounterHandler("session.profile_create_failed"))

	// Store events
	d.Subscribe("store:persist:error", s.incCounterHandler("store.persist_failed"))

	// Stylist api events
	d.Subscribe("stylist:scan_accurate:after_call", s.stylistCallHandler("scan.accurate"))
	d.Subscribe("stylist:scan_quick:after_call", s.stylistCallHandler("scan.quick"))
	d.Subscribe("stylist:skin_tone:after_call", s.stylistCallHandler("skin_tone"))
	d.Subscribe("stylist:instant_match:after_call", s.stylistCallHandler("recommend.instant"))
	d.Subscribe("stylist:weekly_plan:after_call", s.stylistCallHandler("recommend.weekly"))
}

func (s *StatsReporter) handleBeforeRequest(req *http.Request) {
	var key string
	m := req.Method
	p := req.URL.Path
	if m == http.MethodGet && p == "/wardrobe" {
		key = "closet.wardrobe.request"
	} else if m == http.MethodPost && p == "/capture" {
		key = "closet.capture.request"
	} else if m == http.MethodPost && strings.HasPrefix(p, "/capture/") && strings.HasSuffix(p, "/confirm") {
		key = "closet.capture.confirm.request"
	} else if m == http.MethodPost && p == "/skin-tone" {
		key = "closet.skin_tone.request"
	} else if m == http.MethodPost && strings.HasPrefix(p, "/recommend/") {
		key = "closet.recommend.request"
	} else if m == http.MethodPost && strings.HasPrefix(p, "/auth/") {
		key = "closet.auth.request"
	} else {
		return
	}

	s.IncCounter(key, 1)
}

func (s *StatsReporter) handleAfterRequest(req *http.Request, code int) {
	var key string
	m := req.Method
	p := req.URL.Path
	if m == http.MethodPost && strings.HasSuffix(p, "/confirm") && code == http.StatusCreated {
		key = "closet.capture.confirm.success"
	} else if m == http.MethodPost && strings.HasSuffix(p, "/confirm") && code >= http.StatusBadRequest {
		key = "closet.capture.confirm.failed"
	} else if m == http.MethodPost && strings.HasPrefix(p, "/auth/") && code == http.StatusOK {
		key = "closet.auth.success"
	} else if m == http.MethodPost && strings.HasPrefix(p, "/auth/") && code == http.StatusUnauthorized {
		key = "closet.auth.failed"
	} else {
		return
	}

	s.IncCounter(key, 1)
}

func (s *StatsReporter) incCounterHandler(name string) func(...interface{}) {
	return func(...interface{}) {
		s.IncCounter(name, 1)
	}
}

func (s *StatsReporter) stylistCallHandler(name string) func(err error) {
	return func(err error) {
		s.IncCounter("stylist."+name+".request", 1)
		if err != nil {
			s.IncCounter("stylist."+name+".failed", 1)
		}
	}
}
