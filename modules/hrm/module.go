package hrm

import (
	"embed"

	"github.com/vandaszabo/mintaprojekt/modules/hrm/infrastructure/persistence"
	"github.com/vandaszabo/mintaprojekt/modules/hrm/presentation/controllers"
	"github.com/vandaszabo/mintaprojekt/modules/hrm/services"
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
		Table: "goose_db_version_hrm",
	})

	app.RegisterServices(
		services.NewEmployeeService(persistence.NewEmployeeRepository(), app.EventPublisher()),
		services.NewDepartmentService(persistence.NewDepartmentRepository(), app.EventPublisher()),
	)
	app.RegisterControllers(
		controllers.NewEmployeeController(app),
		controllers.NewDepartmentController(app),
	)
	return nil
}

func (m *Module) Name() string {
	return "hrm"
}
