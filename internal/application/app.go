// Package application wires the domain services, the browser registry and
// the command/query buses into one runnable application.
package application

import (
	"context"
	"fmt"
	"io/fs"
	"time"

	"webapps-manager/internal/appdirs"
	"webapps-manager/internal/application/command/delete_webapp"
	"webapps-manager/internal/application/command/repair_webapps"
	"webapps-manager/internal/application/command/reset_config"
	"webapps-manager/internal/application/command/save_webapp"
	"webapps-manager/internal/application/command/update_webapps"
	"webapps-manager/internal/application/query/get_browsers"
	"webapps-manager/internal/application/query/get_webapps"
	"webapps-manager/internal/assets"
	"webapps-manager/internal/config"
	"webapps-manager/internal/domain/service/webapp"
	"webapps-manager/internal/infra/browsers"
	"webapps-manager/pkg/cqrs"
	"webapps-manager/pkg/probes"
)

// App bundles everything a front end needs to drive the application.
type App struct {
	Dirs     *appdirs.AppDirs
	Config   *config.Config
	Registry *browsers.Registry
	Manager  *webapp.Manager

	CommandBus cqrs.CommandBus
	QueryBus   cqrs.QueryBus
}

// New resolves the directory layout, extracts the embedded assets, loads the
// browser registry and registers every command and query handler.
func New(ctx context.Context, cfg *config.Config, assetsFS fs.FS) (*App, error) {
	dirs, err := appdirs.New()
	if err != nil {
		return nil, err
	}

	if err := assets.Sync(assetsFS, dirs); err != nil {
		return nil, err
	}

	prober := probes.NewCommandProber(
		time.Duration(cfg.ProbeTimeoutSeconds)*time.Second,
		time.Duration(cfg.ProbeCacheSeconds)*time.Second,
	)

	registry, err := browsers.Load(ctx, dirs, prober)
	if err != nil {
		return nil, err
	}

	manager := webapp.NewManager(dirs, registry, cfg.ApplicationsDir)

	app := &App{
		Dirs:     dirs,
		Config:   cfg,
		Registry: registry,
		Manager:  manager,
	}

	if err := app.registerHandlers(ctx, assetsFS); err != nil {
		return nil, err
	}
	return app, nil
}

func (a *App) registerHandlers(ctx context.Context, assetsFS fs.FS) error {
	commandBus := cqrs.NewCommandBus(ctx)
	queryBus := cqrs.NewQueryBus()

	commandHandlers := []interface{}{
		save_webapp.NewSaveWebAppCommandHandler(a.Manager, a.Dirs),
		delete_webapp.NewDeleteWebAppCommandHandler(a.Manager),
		update_webapps.NewUpdateWebAppsCommandHandler(a.Manager),
		repair_webapps.NewRepairWebAppsCommandHandler(a.Manager),
		reset_config.NewResetConfigCommandHandler(assetsFS, a.Dirs),
	}
	for _, handler := range commandHandlers {
		if err := commandBus.Register(handler); err != nil {
			return fmt.Errorf("failed to register command handler: %w", err)
		}
	}

	queryHandlers := []interface{}{
		get_browsers.NewGetBrowsersQueryHandler(a.Registry),
		get_webapps.NewGetWebAppsQueryHandler(a.Manager),
	}
	for _, handler := range queryHandlers {
		if err := queryBus.Register(handler); err != nil {
			return fmt.Errorf("failed to register query handler: %w", err)
		}
	}

	a.CommandBus = commandBus
	a.QueryBus = queryBus
	return nil
}

// Shutdown drains the command bus.
func (a *App) Shutdown() {
	a.CommandBus.Shutdown()
	a.CommandBus.WaitForCompletion()
}
