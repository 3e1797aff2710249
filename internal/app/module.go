package app

import (
	"context"
	"log/slog"
	"os"

	"github.com/shandysiswandi/snowid/internal/snowflake"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.snowflake.enabled") {
		closer, err := snowflake.New(snowflake.Dependency{
			Config:    a.config,
			Router:    a.router,
			Goroutine: a.goroutine,
			Context:   a.ctx,
			Generator: a.generator,
		})
		if err != nil {
			slog.Error("failed to init module snowflake", "error", err)
			os.Exit(1)
		}
		if closer != nil {
			if a.closerFn == nil {
				a.closerFn = map[string]func(context.Context) error{}
			}
			a.closerFn["Snowflake"] = closer
		}
	}
}
