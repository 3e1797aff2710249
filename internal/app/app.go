package app

import (
	"context"
	"net/http"

	"github.com/shandysiswandi/snowid/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/snowid/internal/pkg/pkglog"
	"github.com/shandysiswandi/snowid/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/snowid/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/snowid/internal/pkg/pkguid"
	"github.com/shandysiswandi/snowid/internal/snowflake/generator"
)

// Options carries startup knobs supplied on the command line. Negative
// identity values mean "use the configuration file".
type Options struct {
	ConfigPath   string
	WorkerID     int64
	DatacenterID int64
}

type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	opts Options

	// configuration
	config pkgconfig.Config

	// libraries
	uuid      pkguid.StringID
	goroutine *pkgroutine.Manager
	generator *generator.Generator

	// server
	router     *pkgrouter.Router
	httpServer *http.Server

	//
	closerFn map[string]func(context.Context) error
}

func New(opts Options) *App {
	pkglog.InitLogging()

	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
		opts:   opts,
	}

	app.initConfig()
	app.initLibraries()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
