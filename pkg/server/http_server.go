package server

import (
	"context"
	"net/http"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/gorilla/mux"

	"github.com/vandaszabo/mintaprojekt/pkg/application"
)

func NewHTTPServer(app application.Application, shutdownTimeout time.Duration) *HTTPServer {
	return &HTTPServer{
		Controllers:     app.Controllers(),
		Middlewares:     app.Middleware(),
		ShutdownTimeout: shutdownTimeout,
	}
}

type HTTPServer struct {
	Controllers     []application.Controller
	Middlewares     []mux.MiddlewareFunc
	ShutdownTimeout time.Duration

	srv *http.Server
}

func (s *HTTPServer) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.Middlewares...)
	for _, controller := range s.Controllers {
		controller.Register(r)
	}
	return r
}

func (s *HTTPServer) Handler() http.Handler {
	return gziphandler.GzipHandler(s.Router())
}

// Start serves until ctx is cancelled, then drains in-flight requests for at
// most ShutdownTimeout.
func (s *HTTPServer) Start(ctx context.Context, socketAddress string) error {
	s.srv = &http.Server{
		Addr:    socketAddress,
		Handler: s.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.ShutdownTimeout)
		defer cancel()
		return s.srv.Shutdown(shutdownCtx)
	}
}
