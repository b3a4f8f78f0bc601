package api

import (
	"net/http"
	"strconv"

	"github.com/matzehuels/portwire/pkg/errors"
	"github.com/matzehuels/portwire/pkg/httputil"
	"github.com/matzehuels/portwire/pkg/pipeline"
)

// TypeInfo describes one data type.
type TypeInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ConverterInfo names one registered conversion.
type ConverterInfo struct {
	Out string `json:"out"`
	In  string `json:"in"`
}

// TypesResponse is the body of GET /api/types.
type TypesResponse struct {
	Types      []TypeInfo      `json:"types"`
	Converters []ConverterInfo `json:"converters"`
}

func (s *Server) handleTypes(w http.ResponseWriter, _ *http.Request) {
	resp := TypesResponse{Types: make([]TypeInfo, len(s.Types))}
	for i, dt := range s.Types {
		resp.Types[i] = TypeInfo{ID: dt.ID, Name: dt.Name}
	}
	for _, k := range s.Registry.Converters().Pairs() {
		resp.Converters = append(resp.Converters, ConverterInfo{Out: k.Out.ID, In: k.In.ID})
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

// CompatibleResponse is the body of GET /api/compatible.
type CompatibleResponse struct {
	Out        string `json:"out"`
	In         string `json:"in"`
	Compatible bool   `json:"compatible"`
	Converter  bool   `json:"converter"`
}

func (s *Server) handleCompatible(w http.ResponseWriter, r *http.Request) {
	out, err := s.lookupType(r.URL.Query().Get("out"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	in, err := s.lookupType(r.URL.Query().Get("in"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	resp := CompatibleResponse{Out: out.ID, In: in.ID}
	if out.Equal(in) {
		resp.Compatible = true
	} else if s.Registry.Compatible(out, in) {
		resp.Compatible, resp.Converter = true, true
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

// ModelsResponse is the body of GET /api/models, keyed by category.
type ModelsResponse struct {
	Categories map[string][]string `json:"categories"`
}

func (s *Server) handleModels(w http.ResponseWriter, _ *http.Request) {
	resp := ModelsResponse{Categories: make(map[string][]string)}
	for _, cat := range s.Registry.Categories() {
		resp.Categories[cat] = s.Registry.NamesIn(cat)
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

var contentTypes = map[string]string{
	pipeline.FormatSVG:   "image/svg+xml",
	pipeline.FormatPNG:   "image/png",
	pipeline.FormatDOT:   "text/vnd.graphviz",
	pipeline.FormatGraph: "image/svg+xml",
}

// handleRender renders the scene posted as the request body. Query
// parameters: format, scale, background, title.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	q := r.URL.Query()
	opts := pipeline.Options{
		Scene:      body,
		Format:     q.Get("format"),
		Background: q.Get("background"),
		Title:      q.Get("title"),
	}
	if v := q.Get("scale"); v != "" {
		if opts.Scale, err = strconv.ParseFloat(v, 64); err != nil {
			httputil.WriteError(w, errors.New(errors.ErrCodeInvalidInput, "invalid scale %q", v))
			return
		}
	}

	res, err := s.Runner.Execute(r.Context(), opts)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", contentTypes[res.Format])
	cacheStatus := "miss"
	if res.Cached {
		cacheStatus = "hit"
	}
	w.Header().Set("X-Portwire-Cache", cacheStatus)
	w.Header().Set("X-Portwire-Rejected", strconv.Itoa(res.Stats.Rejected))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Artifact)
}
