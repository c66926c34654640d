package application

import (
	"fmt"
	"reflect"

	"github.com/gorilla/mux"

	"github.com/vandaszabo/mintaprojekt/pkg/eventbus"
	"github.com/vandaszabo/mintaprojekt/pkg/repo"
	"github.com/vandaszabo/mintaprojekt/pkg/schema"
)

// Controller binds a set of HTTP handlers onto the router.
type Controller interface {
	Key() string
	Register(r *mux.Router)
}

// Module is a self-contained feature slice: its services, controllers and
// store migrations register through the shared application.
type Module interface {
	Name() string
	Register(app Application) error
}

// Application is the registry the modules assemble themselves into.
type Application interface {
	Pool() repo.Pool
	EventPublisher() eventbus.EventBus
	RegisterServices(services ...interface{})
	Service(service interface{}) interface{}
	RegisterControllers(controllers ...Controller)
	Controllers() []Controller
	RegisterMiddleware(middleware ...mux.MiddlewareFunc)
	Middleware() []mux.MiddlewareFunc
	RegisterSchema(s schema.Schema)
	Schemas() []schema.Schema
}

type ApplicationOptions struct {
	Pool     repo.Pool
	EventBus eventbus.EventBus
}

func New(opts *ApplicationOptions) Application {
	return &application{
		pool:           opts.Pool,
		eventPublisher: opts.EventBus,
		services:       make(map[reflect.Type]interface{}),
	}
}

// application with a dynamically extendable service registry
type application struct {
	pool           repo.Pool
	eventPublisher eventbus.EventBus
	services       map[reflect.Type]interface{}
	controllers    []Controller
	middleware     []mux.MiddlewareFunc
	schemas        []schema.Schema
}

func (app *application) Pool() repo.Pool {
	return app.pool
}

func (app *application) EventPublisher() eventbus.EventBus {
	return app.eventPublisher
}

func (app *application) RegisterServices(services ...interface{}) {
	for _, service := range services {
		serviceType := reflect.TypeOf(service).Elem()
		app.services[serviceType] = service
	}
}

// Service returns the registered instance of the given service type.
// Panics when the module carrying it was not registered, which is a
// programming error rather than a runtime condition.
func (app *application) Service(service interface{}) interface{} {
	serviceType := reflect.TypeOf(service)
	svc, ok := app.services[serviceType]
	if !ok {
		panic(fmt.Sprintf("service %s not found", serviceType.Name()))
	}
	return svc
}

func (app *application) RegisterControllers(controllers ...Controller) {
	app.controllers = append(app.controllers, controllers...)
}

func (app *application) Controllers() []Controller {
	return app.controllers
}

func (app *application) RegisterMiddleware(middleware ...mux.MiddlewareFunc) {
	app.middleware = append(app.middleware, middleware...)
}

func (app *application) Middleware() []mux.MiddlewareFunc {
	return app.middleware
}

func (app *application) RegisterSchema(s schema.Schema) {
	app.schemas = append(app.schemas, s)
}

func (app *application) Schemas() []schema.Schema {
	return app.schemas
}

// RegisterModules runs every module's Register hook against the application.
func RegisterModules(app Application, modules ...Module) error {
	for _, module := range modules {
		if err := module.Register(app); err != nil {
			return fmt.Errorf("failed to register module %s: %w", module.Name(), err)
		}
	}
	return nil
}
