// pkg/trigger/trigger.go - HTTP trigger for the media preparation build.
//
// The build itself shells out to native tooling and can take many
// minutes, so the service accepts one request, kicks the build off in
// the background and refuses overlapping requests until it finishes.

package trigger

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/atomic"

	"github.com/edsdeploy/eds/pkg/logging"
)

// BusyMessage is the fixed response body for overlapping requests.
const BusyMessage = "a build is already in progress"

// Service gates a build function to one in-flight run at a time.
type Service struct {
	build func() error
	busy  *atomic.Bool
}

// New returns a Service around the given build function.
func New(build func() error) *Service {
	return &Service{build: build, busy: atomic.NewBool(false)}
}

// Router returns the HTTP handler: POST /build starts a run.
func (s *Service) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Post("/build", s.handleBuild)
	return r
}

func (s *Service) handleBuild(w http.ResponseWriter, r *http.Request) {
	if !s.busy.CompareAndSwap(false, true) {
		http.Error(w, BusyMessage, http.StatusTooManyRequests)
		return
	}

	go func() {
		defer s.busy.Store(false)
		if err := s.build(); err != nil {
			logging.Error("build failed: %v", err)
			return
		}
		logging.Info("build finished")
	}()

	w.WriteHeader(http.StatusAccepted)
	w.Write([]byte("build started\n"))
}
