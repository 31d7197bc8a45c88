package di

import (
	"github.com/defval/di"

	hooksModule "github.com/lokafit/lokafit/hooks"
	httpLayer "github.com/lokafit/lokafit/http"
)

var hooks = di.Options(
	di.Provide(hooksModule.NewHttpFetcher, di.As(new(hooksModule.RemoteFetcher))),
	di.Provide(hooksModule.NewScanner, di.As(new(httpLayer.Scanner))),
	di.Provide(hooksModule.NewSkinToneAnalyzer, di.As(new(httpLayer.SkinToneAnalyzer))),
	di.Provide(hooksModule.NewRecommender, di.As(new(httpLayer.Recommender))),
	di.Provide(hooksModule.NewWardrobeLoader, di.As(new(httpLayer.Wardrobe))),
)
