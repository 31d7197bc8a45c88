package di

import (
	"net/http"
	"time"

	"github.com/defval/di"
	"github.com/spf13/viper"

	stylistApi "github.com/lokafit/lokafit/api/stylist"
	"github.com/lokafit/lokafit/eventsubscribers"
	hooksModule "github.com/lokafit/lokafit/hooks"
)

var stylist = di.Options(
	di.Provide(newStylist, di.As(new(hooksModule.Stylist))),
	di.Provide(newStylistHealthChecker),
)

func newStylist(config *viper.Viper, emitter stylistApi.Emitter) *stylistApi.Stylist {
	config.SetDefault("stylist.url", "http://localhost:8000")
	config.SetDefault("stylist.timeout", 60)

	client := &http.Client{
		Timeout: time.Duration(config.GetInt("stylist.timeout")) * time.Second,
	}

	api := stylistApi.New(client, config.GetString("stylist.url"))
	api.Emitter = emitter

	return api
}

func newStylistHealthChecker(api *stylistApi.Stylist) *namedHealthChecker {
	return &namedHealthChecker{
		Name:    "stylist-api",
		Checker: eventsubscribers.DatabaseChecker(api),
	}
}
