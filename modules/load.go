package modules

import (
	"github.com/vandaszabo/mintaprojekt/modules/core"
	"github.com/vandaszabo/mintaprojekt/modules/hrm"
	"github.com/vandaszabo/mintaprojekt/pkg/application"
)

var BuiltInModules = []application.Module{
	core.NewModule(),
	hrm.NewModule(),
}

func Load(app application.Application, externalModules ...application.Module) error {
	return application.RegisterModules(app, externalModules...)
}
