// Package api serves type compatibility queries and scene rendering over
// HTTP.
//
// Routes:
//
//	GET  /api/types                  data types and converter pairs
//	GET  /api/compatible?out=&in=    compatibility of one ordered pair
//	GET  /api/models                 registered models by category
//	POST /api/render?format=svg      render the scene TOML in the body
//	GET  /healthz                    liveness
//
// The registry is populated before the router is built and only read by
// handlers, so requests need no locking.
package api

import (
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/portwire/pkg/errors"
	"github.com/matzehuels/portwire/pkg/httputil"
	"github.com/matzehuels/portwire/pkg/nodes"
	"github.com/matzehuels/portwire/pkg/pipeline"
)

// MaxSceneBytes bounds the size of a posted scene or style.
const MaxSceneBytes = 1 << 20

// Server holds the handler dependencies.
type Server struct {
	Registry *nodes.ModelRegistry
	Types    []nodes.DataType
	Runner   *pipeline.Runner
	Logger   *log.Logger
}

// Router builds the chi router. metrics, when non-nil, is mounted at
// /metrics.
func (s *Server) Router(metrics http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(httputil.RequestLogger(s.Logger))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics)
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/types", s.handleTypes)
		r.Get("/compatible", s.handleCompatible)
		r.Get("/models", s.handleModels)
		r.Post("/render", s.handleRender)
	})
	return r
}

func (s *Server) lookupType(id string) (nodes.DataType, error) {
	if err := errors.ValidateTypeID(id); err != nil {
		return nodes.DataType{}, err
	}
	for _, dt := range s.Types {
		if dt.ID == id {
			return dt, nil
		}
	}
	return nodes.DataType{}, errors.New(errors.ErrCodeNotFound, "unknown data type %q", id)
}

func readBody(r *http.Request) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r.Body, MaxSceneBytes+1))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read request body")
	}
	if len(data) > MaxSceneBytes {
		return nil, errors.New(errors.ErrCodeInvalidInput, "request body exceeds %d bytes", MaxSceneBytes)
	}
	return data, nil
}
