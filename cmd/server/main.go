package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vandaszabo/mintaprojekt/internal/server"
	"github.com/vandaszabo/mintaprojekt/modules"
	"github.com/vandaszabo/mintaprojekt/modules/core/seed"
	coreservices "github.com/vandaszabo/mintaprojekt/modules/core/services"
	"github.com/vandaszabo/mintaprojekt/pkg/application"
	"github.com/vandaszabo/mintaprojekt/pkg/composables"
	"github.com/vandaszabo/mintaprojekt/pkg/configuration"
	"github.com/vandaszabo/mintaprojekt/pkg/eventbus"
	"github.com/vandaszabo/mintaprojekt/pkg/schema"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			configuration.Use().Unload()
			log.Println(r)
			debug.PrintStack()
			os.Exit(1)
		}
	}()

	conf := configuration.Use()
	logger := conf.Logger()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	pool, err := pgxpool.New(ctx, conf.Database.Opts)
	if err != nil {
		panic(err)
	}
	defer pool.Close()

	app := application.New(&application.ApplicationOptions{
		Pool:     pool,
		EventBus: eventbus.NewEventPublisher(logger),
	})
	if err := modules.Load(app, modules.BuiltInModules...); err != nil {
		log.Fatalf("failed to load modules: %v", err)
	}

	if err := schema.Migrate(ctx, conf.Database.Opts, app.Schemas()...); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	seedCtx := composables.WithPool(context.Background(), pool)
	roleService := app.Service(coreservices.RoleService{}).(*coreservices.RoleService)
	if err := seed.Roles(seedCtx, roleService); err != nil {
		log.Fatalf("failed to seed roles: %v", err)
	}

	serverInstance, err := server.Default(&server.DefaultOptions{
		Logger:        logger,
		Configuration: conf,
		Application:   app,
		Pool:          pool,
	})
	if err != nil {
		log.Fatalf("failed to create server: %v", err)
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("Listening on: %s\n", conf.SocketAddress)
	if err := serverInstance.Start(runCtx, conf.SocketAddress); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
	conf.Unload()
}
