package di

import (
	"errors"
	"net/http"
	"time"

	"github.com/defval/di"
	"github.com/spf13/viper"

	d "github.com/lokafit/lokafit/dispatcher"
	hooksModule "github.com/lokafit/lokafit/hooks"
	httpLayer "github.com/lokafit/lokafit/http"
	sessionModule "github.com/lokafit/lokafit/session"
	supabaseApi "github.com/lokafit/lokafit/supabase"
)

var supabase = di.Options(
	di.Provide(newSupabaseClient,
		di.As(new(sessionModule.Sessions)),
		di.As(new(sessionModule.ProfilesRepository)),
		di.As(new(hooksModule.GarmentsGateway)),
		di.As(new(hooksModule.ProfilesGateway)),
		di.As(new(hooksModule.ObjectsGateway)),
		di.As(new(httpLayer.Auth)),
	),
)

func newSupabaseClient(
	config *viper.Viper,
	sessions supabaseApi.SessionsStorage,
	bus d.Dispatcher,
) (*supabaseApi.Client, error) {
	url := config.GetString("supabase.url")
	publicKey := config.GetString("supabase.public_key")
	if url == "" || publicKey == "" {
		return nil, errors.New("supabase.url and supabase.public_key must be set")
	}

	client := &http.Client{
		Timeout: 30 * time.Second,
	}

	return supabaseApi.New(client, url, publicKey, sessions, bus)
}
