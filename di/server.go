package di

import (
	"fmt"
	"net/http"

	"github.com/defval/di"
	"github.com/spf13/viper"

	httpLayer "github.com/lokafit/lokafit/http"
)

var server = di.Options(
	di.Provide(newServer),
)

func newServer(config *viper.Viper, handler http.Handler) *http.Server {
	config.SetDefault("server.host", "localhost")
	config.SetDefault("server.port", 3000)

	address := fmt.Sprintf("%s:%d", config.GetString("server.host"), config.GetInt("server.port"))

	return httpLayer.NewServer(address, handler)
}
