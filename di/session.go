package di

import (
	"github.com/defval/di"

	d "github.com/lokafit/lokafit/dispatcher"
	httpLayer "github.com/lokafit/lokafit/http"
	sessionModule "github.com/lokafit/lokafit/session"
	"github.com/lokafit/lokafit/store"
)

var session = di.Options(
	di.Provide(newBootstrap, di.As(new(httpLayer.Session))),
)

func newBootstrap(
	emitter d.Emitter,
	sessions sessionModule.Sessions,
	profiles sessionModule.ProfilesRepository,
	clientStore *store.Store,
) *sessionModule.Bootstrap {
	return sessionModule.New(emitter, sessions, profiles, clientStore)
}
