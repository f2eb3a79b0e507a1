package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"

	"pipeline-backend/application/services"
	"pipeline-backend/interfaces/http/rest"
	"pipeline-backend/internal/config"
	"pipeline-backend/internal/observability"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	t.Setenv("CONFIG_DIR", t.TempDir())
	cfg, err := config.Load()
	require.NoError(t, err)

	logger := zap.NewNop()
	collector := observability.NewCollector("test")
	service := services.NewPipelineService(logger, collector, noop.NewTracerProvider().Tracer("test"))

	return rest.NewRouter(cfg, logger, collector, service).Setup()
}

func postPipeline(t *testing.T, handler http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/pipelines/parse", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func decodeParseResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestParsePipelineEndpoint(t *testing.T) {
	handler := newTestServer(t)

	t.Run("acyclic pipeline", func(t *testing.T) {
		w := postPipeline(t, handler, `{
			"nodes": [{"id": "a"}, {"id": "b"}, {"id": "c"}],
			"edges": [
				{"id": "e1", "source": "a", "target": "b"},
				{"id": "e2", "source": "b", "target": "c"}
			]
		}`)

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeParseResponse(t, w)
		assert.Equal(t, float64(3), body["num_nodes"])
		assert.Equal(t, float64(2), body["num_edges"])
		assert.Equal(t, true, body["is_dag"])
	})

	t.Run("cyclic pipeline", func(t *testing.T) {
		w := postPipeline(t, handler, `{
			"nodes": [{"id": "a"}, {"id": "b"}, {"id": "c"}],
			"edges": [
				{"id": "e1", "source": "a", "target": "b"},
				{"id": "e2", "source": "b", "target": "c"},
				{"id": "e3", "source": "c", "target": "a"}
			]
		}`)

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeParseResponse(t, w)
		assert.Equal(t, false, body["is_dag"])
	})

	t.Run("empty pipeline", func(t *testing.T) {
		w := postPipeline(t, handler, `{"nodes": [], "edges": []}`)

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeParseResponse(t, w)
		assert.Equal(t, float64(0), body["num_nodes"])
		assert.Equal(t, float64(0), body["num_edges"])
		assert.Equal(t, true, body["is_dag"])
	})

	t.Run("self loop", func(t *testing.T) {
		w := postPipeline(t, handler, `{
			"nodes": [{"id": "a"}],
			"edges": [{"id": "e1", "source": "a", "target": "a"}]
		}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, false, decodeParseResponse(t, w)["is_dag"])
	})

	t.Run("extra editor attributes are ignored", func(t *testing.T) {
		w := postPipeline(t, handler, `{
			"nodes": [{"id": "a", "type": "customInput", "position": {"x": 100, "y": 250},
				"data": {"label": "input_1", "width": 200}}],
			"edges": []
		}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, decodeParseResponse(t, w)["is_dag"])
	})

	t.Run("malformed JSON is rejected", func(t *testing.T) {
		w := postPipeline(t, handler, `{"nodes": [`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "error")
	})

	t.Run("node without id is rejected", func(t *testing.T) {
		w := postPipeline(t, handler, `{
			"nodes": [{"type": "customInput"}],
			"edges": []
		}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("edge without target is rejected", func(t *testing.T) {
		w := postPipeline(t, handler, `{
			"nodes": [{"id": "a"}],
			"edges": [{"id": "e1", "source": "a"}]
		}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("dangling edge endpoints are tolerated", func(t *testing.T) {
		w := postPipeline(t, handler, `{
			"nodes": [{"id": "a"}],
			"edges": [{"id": "e1", "source": "ghost", "target": "a"}]
		}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, decodeParseResponse(t, w)["is_dag"])
	})
}

func TestRootPing(t *testing.T) {
	handler := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"Ping": "Pong"}`, w.Body.String())
}

func TestHealthEndpoints(t *testing.T) {
	handler := newTestServer(t)

	for _, path := range []string{"/health", "/ready"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	handler := newTestServer(t)

	// Parse one pipeline so the business counters exist.
	postPipeline(t, handler, `{"nodes": [{"id": "a"}], "edges": []}`)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "test_pipelines_parsed_total")
}

func TestCORSPreflight(t *testing.T) {
	handler := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/pipelines/parse", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}
