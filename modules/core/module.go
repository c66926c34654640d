package core

import (
	"embed"

	"github.com/vandaszabo/mintaprojekt/modules/core/infrastructure/persistence"
	"github.com/vandaszabo/mintaprojekt/modules/core/presentation/controllers"
	"github.com/vandaszabo/mintaprojekt/modules/core/services"
	"github.com/vandaszabo/mintaprojekt/pkg/application"
	"github.com/vandaszabo/mintaprojekt/pkg/schema"
)

//go:embed infrastructure/persistence/schema/*.sql
var MigrationFiles embed.FS

func NewModule() application.Module {
	return &Module{}
}

type Module struct {
}

func (m *Module) Register(app application.Application) error {
	app.RegisterSchema(schema.Schema{
		FS:    MigrationFiles,
		Dir:   "infrastructure/persistence/schema",
		Table: "goose_db_version_core",
	})

	roleRepo := persistence.NewRoleRepository()
	userRepo := persistence.NewUserRepository()
	app.RegisterServices(
		services.NewRoleService(roleRepo),
		services.NewUserService(userRepo, roleRepo, app.EventPublisher()),
	)
	app.RegisterControllers(
		controllers.NewRoleController(app),
		controllers.NewUserController(app),
	)
	return nil
}

func (m *Module) Name() string {
	return "core"
}
