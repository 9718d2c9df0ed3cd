//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/google/wire"
	"go.uber.org/zap"

	"github.com/abey79/rusteroid/config"
	"github.com/abey79/rusteroid/render"
)

// InitializeApp wires the application graph for a configured session
func InitializeApp(cfg *config.Config, logger *zap.Logger, screen tcell.Screen) (*App, error) {
	wire.Build(
		ProvideWorld,
		ProvideAudio,
		ProvideExporter,
		render.NewRenderer,
		NewApp,
	)
	return nil, nil
}
