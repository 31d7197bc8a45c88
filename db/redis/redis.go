package redis

import (
	"context"

	"github.com/mediocregopher/radix/v4"

	"github.com/lokafit/lokafit/store"
)

// Redis keeps the store snapshot under the namespace key. Useful when several
// kiosk clients should share one wardrobe cache.
type Redis struct {
	client  radix.Client
	context context.Context
}

func New(ctx context.Context, addr string, poolSize int) (*Redis, error) {
	client, err := (radix.PoolConfig{Size: poolSize}).New(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}

	return &Redis{
		client:  client,
		context: ctx,
	}, nil
}

func (r *Redis) Load() ([]byte, error) {
	var blob []byte
	err := r.client.Do(r.context, radix.Cmd(&blob, "GET", store.Namespace))
	if err != nil {
		return nil, err
	}

	return blob, nil
}

func (r *Redis) Save(blob []byte) error {
	return r.client.Do(r.context, radix.FlatCmd(nil, "SET", store.Namespace, blob))
}

func (r *Redis) Ping() error {
	return r.client.Do(r.context, radix.Cmd(nil, "PING"))
}
