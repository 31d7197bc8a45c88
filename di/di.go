package di

import "github.com/defval/di"

func New() (*di.Container, error) {
	container, err := di.New(
		config,
		dispatcher,
		logger,
		db,
		stylist,
		supabase,
		session,
		hooks,
		handlers,
		server,
	)
	if err != nil {
		return nil, err
	}

	return container, nil
}
