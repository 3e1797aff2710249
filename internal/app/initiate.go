package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/rs/cors"
	"github.com/shandysiswandi/snowid/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/snowid/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/snowid/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/snowid/internal/pkg/pkguid"
	"github.com/shandysiswandi/snowid/internal/snowflake/generator"
)

func (a *App) initConfig() {
	path := a.opts.ConfigPath
	if path == "" {
		path = "/config/config.yaml"
		if os.Getenv("LOCAL") == "true" {
			path = "./config/config.yaml"
		}
	}

	cfg, err := pkgconfig.NewViper(path)
	if err != nil {
		slog.Error("failed to init config", "error", err)
		os.Exit(1)
	}

	//nolint:errcheck,gosec // ignore error
	os.Setenv("TZ", cfg.GetString("tz"))

	a.config = cfg
}

func (a *App) initLibraries() {
	a.goroutine = pkgroutine.NewManager(100)
	a.uuid = pkguid.NewUUID()

	workerID := a.config.GetInt("snowflake.worker_id")
	if a.opts.WorkerID >= 0 {
		workerID = a.opts.WorkerID
	}

	datacenterID := a.config.GetInt("snowflake.datacenter_id")
	if a.opts.DatacenterID >= 0 {
		datacenterID = a.opts.DatacenterID
	}

	gen, err := generator.New(generator.Config{
		WorkerID:     workerID,
		DatacenterID: datacenterID,
	})
	if err != nil {
		slog.Error("failed to init id generator",
			"error", err,
			"worker_id", workerID,
			"datacenter_id", datacenterID,
		)
		os.Exit(1)
	}

	a.generator = gen
}

func (a *App) initHTTPServer() {
	a.router = pkgrouter.NewRouter(a.uuid)

	origins := a.config.GetArray("server.cors.origins")
	if len(origins) == 0 || origins[0] == "" {
		origins = []string{"*"}
	}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	readHeaderTimeout := a.config.GetDuration("server.timeout.read_header")
	if readHeaderTimeout <= 0 {
		readHeaderTimeout = 10 * time.Second
	}

	a.httpServer = &http.Server{
		Addr:              a.config.GetString("server.address.http"),
		Handler:           corsHandler.Handler(a.router),
		ReadHeaderTimeout: readHeaderTimeout,
	}
}

//nolint:unparam // is always nil
func (a *App) initClosers() {
	if a.closerFn == nil {
		a.closerFn = map[string]func(context.Context) error{}
	}

	a.closerFn["HTTP Server"] = func(ctx context.Context) error {
		return a.httpServer.Shutdown(ctx)
	}
	a.closerFn["Config"] = func(context.Context) error {
		return a.config.Close()
	}
}
