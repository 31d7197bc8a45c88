package di

import (
	"github.com/defval/di"
	"github.com/mono83/slf"

	stylistApi "github.com/lokafit/lokafit/api/stylist"
	d "github.com/lokafit/lokafit/dispatcher"
	"github.com/lokafit/lokafit/eventsubscribers"
	"github.com/lokafit/lokafit/http"
	"github.com/lokafit/lokafit/store"
)

var dispatcher = di.Options(
	di.Provide(newDispatcher,
		di.As(new(d.Emitter)),
		di.As(new(d.Subscriber)),
		di.As(new(http.Emitter)),
		di.As(new(store.Emitter)),
		di.As(new(stylistApi.Emitter)),
	),
	di.Invoke(enableEventsHandlers),
)

func newDispatcher() d.Dispatcher {
	return d.New()
}

func enableEventsHandlers(
	dispatcher d.Subscriber,
	logger slf.Logger,
	statsReporter slf.StatsReporter,
) {
	(&eventsubscribers.Logger{Logger: logger}).ConfigureWithDispatcher(dispatcher)
	if statsReporter != nil {
		(&eventsubscribers.StatsReporter{StatsReporter: statsReporter}).ConfigureWithDispatcher(dispatcher)
	}
}
