package di

import (
	"context"
	"fmt"

	"github.com/defval/di"
	"github.com/spf13/viper"

	"github.com/lokafit/lokafit/db/fs"
	"github.com/lokafit/lokafit/db/redis"
	"github.com/lokafit/lokafit/eventsubscribers"
	"github.com/lokafit/lokafit/store"
	supabaseApi "github.com/lokafit/lokafit/supabase"
)

var db = di.Options(
	di.Provide(newSnapshotsRepository),
	di.Provide(newStoreHealthChecker),
	di.Provide(newSessionsStorage, di.As(new(supabaseApi.SessionsStorage))),
	di.Provide(newStore),
)

func newSnapshotsRepository(config *viper.Viper) (store.SnapshotsRepository, error) {
	config.SetDefault("storage.backend", "filesystem")
	config.SetDefault("storage.filesystem.basePath", "data")
	config.SetDefault("storage.redis.host", "localhost")
	config.SetDefault("storage.redis.port", 6379)
	config.SetDefault("storage.redis.poolSize", 10)

	backend := config.GetString("storage.backend")
	switch backend {
	case "redis":
		address := fmt.Sprintf(
			"%s:%d",
			config.GetString("storage.redis.host"),
			config.GetInt("storage.redis.port"),
		)

		return redis.New(context.Background(), address, config.GetInt("storage.redis.poolSize"))
	case "filesystem":
		return fs.New(config.GetString("storage.filesystem.basePath"))
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}

func newStoreHealthChecker(repo store.SnapshotsRepository) *namedHealthChecker {
	pingable, ok := repo.(eventsubscribers.Pingable)
	if !ok {
		return nil
	}

	return &namedHealthChecker{
		Name:    "snapshots-storage",
		Checker: eventsubscribers.DatabaseChecker(pingable),
	}
}

func newSessionsStorage(config *viper.Viper) (*supabaseApi.FileSessionsStorage, error) {
	config.SetDefault("storage.filesystem.basePath", "data")

	return supabaseApi.NewFileSessionsStorage(config.GetString("storage.filesystem.basePath"))
}

func newStore(repo store.SnapshotsRepository, emitter store.Emitter) (*store.Store, error) {
	return store.New(repo, emitter)
}
