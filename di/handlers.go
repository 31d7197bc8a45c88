package di

import (
	"net/http"

	"github.com/defval/di"
	"github.com/etherlabsio/healthcheck/v2"
	"github.com/gorilla/mux"

	httpLayer "github.com/lokafit/lokafit/http"
	"github.com/lokafit/lokafit/store"
)

var handlers = di.Options(
	di.Provide(newCloset),
	di.Provide(newHandlerFactory, di.As(new(http.Handler))),
)

func newCloset(
	emitter httpLayer.Emitter,
	session httpLayer.Session,
	auth httpLayer.Auth,
	scanner httpLayer.Scanner,
	skinTone httpLayer.SkinToneAnalyzer,
	recommender httpLayer.Recommender,
	wardrobe httpLayer.Wardrobe,
	clientStore *store.Store,
) *httpLayer.Closet {
	return &httpLayer.Closet{
		Emitter:     emitter,
		Session:     session,
		Auth:        auth,
		Scanner:     scanner,
		SkinTone:    skinTone,
		Recommender: recommender,
		Wardrobe:    wardrobe,
		Store:       clientStore,
		Captures:    httpLayer.NewCapturesRegistry(),
	}
}

func newHandlerFactory(
	container *di.Container,
	closet *httpLayer.Closet,
	emitter httpLayer.Emitter,
) (*mux.Router, error) {
	router := closet.Handler()
	router.StrictSlash(true)

	requestEventsMiddleware := httpLayer.CreateRequestEventsMiddleware(emitter, "closet")
	router.Use(requestEventsMiddleware)
	// NotFoundHandler doesn't call for registered middlewares, so we must wrap it manually.
	// See https://github.com/gorilla/mux/issues/416#issuecomment-600079279
	router.NotFoundHandler = requestEventsMiddleware(http.HandlerFunc(httpLayer.NotFoundHandler))

	// Resolve health checkers last, because all the services required by the application
	// must first be initialized and each of them can publish its own checkers
	var healthCheckers []*namedHealthChecker
	if has, _ := container.Has(&healthCheckers); has {
		if err := container.Resolve(&healthCheckers); err != nil {
			return nil, err
		}

		var checkersOptions []healthcheck.Option
		for _, checker := range healthCheckers {
			if checker == nil {
				continue
			}

			checkersOptions = append(checkersOptions, healthcheck.WithChecker(checker.Name, checker.Checker))
		}

		router.Handle("/healthcheck", healthcheck.Handler(checkersOptions...)).Methods("GET")
	}

	return router, nil
}

type namedHealthChecker struct {
	Name    string
	Checker healthcheck.Checker
}
