package server

import (
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/vandaszabo/mintaprojekt/pkg/application"
	"github.com/vandaszabo/mintaprojekt/pkg/configuration"
	"github.com/vandaszabo/mintaprojekt/pkg/middleware"
	"github.com/vandaszabo/mintaprojekt/pkg/repo"
	"github.com/vandaszabo/mintaprojekt/pkg/server"
)

type DefaultOptions struct {
	Logger        *logrus.Logger
	Configuration *configuration.Configuration
	Application   application.Application
	Pool          repo.Pool
}

func Default(options *DefaultOptions) (*server.HTTPServer, error) {
	app := options.Application

	app.RegisterMiddleware([]mux.MiddlewareFunc{
		middleware.WithLogger(options.Logger),
		middleware.ProvidePool(options.Pool),
		middleware.ProvideActor(),
	}...)

	return server.NewHTTPServer(app, options.Configuration.ShutdownTimeout), nil
}
