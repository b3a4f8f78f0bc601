package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/matzehuels/portwire/pkg/cache"
	"github.com/matzehuels/portwire/pkg/errors"
	"github.com/matzehuels/portwire/pkg/httputil"
	"github.com/matzehuels/portwire/pkg/nodes/builtin"
	"github.com/matzehuels/portwire/pkg/observability"
	"github.com/matzehuels/portwire/pkg/observability/prom"
	"github.com/matzehuels/portwire/pkg/pipeline"
)

const scene = `
[[node]]
id = "a"
model = "IntegerSource"

[[node]]
id = "b"
model = "FloatDisplay"
x = 300

[[connection]]
from = "a:0"
to = "b:0"
`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	return newCachingTestServer(t, nil)
}

func newCachingTestServer(t *testing.T, c cache.Cache) *httptest.Server {
	t.Helper()
	reg := builtin.NewRegistry()
	logger := log.NewWithOptions(io.Discard, log.Options{})

	registry := prometheus.NewRegistry()
	prom.New(registry).Install()
	t.Cleanup(observability.Reset)

	s := &Server{
		Registry: reg,
		Types:    builtin.Types(),
		Runner:   pipeline.NewRunner(c, reg, logger),
		Logger:   logger,
	}
	srv := httptest.NewServer(s.Router(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, v any) int {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode %s: %v", url, err)
	}
	return resp.StatusCode
}

func TestCompatible(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		out, in        string
		compatible     bool
		needsConverter bool
	}{
		{"integer", "float", true, true},
		{"float", "float", true, false},
		{"text", "float", false, false},
		{"float", "integer", true, true},
	}
	for _, tt := range tests {
		var resp CompatibleResponse
		code := getJSON(t, srv.URL+"/api/compatible?out="+tt.out+"&in="+tt.in, &resp)
		if code != http.StatusOK {
			t.Fatalf("%s -> %s: status %d", tt.out, tt.in, code)
		}
		if resp.Compatible != tt.compatible || resp.Converter != tt.needsConverter {
			t.Errorf("%s -> %s = %+v", tt.out, tt.in, resp)
		}
	}
}

func TestCompatibleErrors(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		query  string
		status int
		code   errors.Code
	}{
		{"out=integer&in=vec3", http.StatusNotFound, errors.ErrCodeNotFound},
		{"out=&in=float", http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"out=9x&in=float", http.StatusBadRequest, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		var resp httputil.ErrorResponse
		if code := getJSON(t, srv.URL+"/api/compatible?"+tt.query, &resp); code != tt.status {
			t.Errorf("%s: status = %d, want %d", tt.query, code, tt.status)
		}
		if resp.Code != tt.code {
			t.Errorf("%s: code = %q, want %q", tt.query, resp.Code, tt.code)
		}
	}
}

func TestTypesAndModels(t *testing.T) {
	srv := newTestServer(t)

	var types TypesResponse
	getJSON(t, srv.URL+"/api/types", &types)
	if len(types.Types) != len(builtin.Types()) {
		t.Errorf("types = %d", len(types.Types))
	}
	if len(types.Converters) == 0 {
		t.Error("no converters listed")
	}

	var models ModelsResponse
	getJSON(t, srv.URL+"/api/models", &models)
	if got := models.Categories[builtin.CategorySources]; len(got) != 4 {
		t.Errorf("sources = %v", got)
	}
}

func TestRender(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	srv := newCachingTestServer(t, c)

	for _, wantCache := range []string{"miss", "hit"} {
		resp, err := http.Post(srv.URL+"/api/render?format=svg", "application/toml", strings.NewReader(scene))
		if err != nil {
			t.Fatal(err)
		}
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d: %s", resp.StatusCode, body)
		}
		if ct := resp.Header.Get("Content-Type"); ct != "image/svg+xml" {
			t.Errorf("content type = %q", ct)
		}
		if got := resp.Header.Get("X-Portwire-Cache"); got != wantCache {
			t.Errorf("X-Portwire-Cache = %q, want %q", got, wantCache)
		}
		if got := resp.Header.Get("X-Portwire-Rejected"); got != "0" {
			t.Errorf("X-Portwire-Rejected = %q, want 0", got)
		}
		if !strings.HasPrefix(string(body), "<svg") {
			t.Errorf("body = %.40s", body)
		}
	}
}

func TestRenderErrors(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name   string
		query  string
		body   string
		status int
	}{
		{"bad format", "format=gif", scene, http.StatusBadRequest},
		{"bad scale", "scale=big", scene, http.StatusBadRequest},
		{"nan scale", "format=png&scale=NaN", scene, http.StatusBadRequest},
		{"huge scale", "format=png&scale=1e7", scene, http.StatusBadRequest},
		{"empty", "", "", http.StatusBadRequest},
		{"unknown model", "", "[[node]]\nid = \"a\"\nmodel = \"Nope\"\n", http.StatusNotFound},
		{"too large", "", strings.Repeat("#", MaxSceneBytes+1), http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(srv.URL+"/api/render?"+tt.query, "application/toml", strings.NewReader(tt.body))
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			var e httputil.ErrorResponse
			if err := json.NewDecoder(resp.Body).Decode(&e); err != nil || e.Code == "" {
				t.Errorf("error body is not JSON {code, error}: %v %+v", err, e)
			}
		})
	}
}

func TestMetricsAndHealth(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/render", "application/toml", strings.NewReader(scene))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	resp, err = http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	for _, want := range []string{"portwire_renders_total", "portwire_paint_passes_total"} {
		if !strings.Contains(string(body), want) {
			t.Errorf("metrics missing %s", want)
		}
	}

	var health map[string]string
	if code := getJSON(t, srv.URL+"/healthz", &health); code != http.StatusOK || health["status"] != "ok" {
		t.Errorf("healthz = %d %v", code, health)
	}
}
