package server

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"topologia/internal/catalog"
	"topologia/internal/diagram"
	"topologia/internal/storage"
	"topologia/pkg"
	"topologia/src/logger"
	"topologia/src/model"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	logger.SetOutput(io.Discard)

	cat, err := catalog.Default()
	require.NoError(t, err)

	cfg := model.ServerConfig{MaxBodyBytes: 1 << 20}
	return New(cfg, cat, diagram.NewRenderer(time.Minute), storage.NewMemoryStore(time.Hour))
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestSpaceInfo(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/api/space-info/discrete", "")
	require.Equal(t, http.StatusOK, rec.Code)
	info := decodeBody[pkg.SpaceInfo](t, rec)
	assert.Equal(t, "Topología Discreta", info.Name)
	assert.NotEmpty(t, info.Sets)

	rec = do(t, s, http.MethodGet, "/api/space-info/moebius", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Espacio no encontrado", decodeBody[pkg.ErrorResponse](t, rec).Error)
}

func TestSpaceInfo_UnescapedUTF8(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/api/space-info/real_line", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Línea Real (ℝ)")
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
}

func TestAnalyzeSubset(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/api/analyze-subset", `{"space_type":"real_line","subset":"(0,1)"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	res := decodeBody[pkg.SubsetAnalysis](t, rec)
	assert.True(t, res.IsOpen)
	assert.False(t, res.IsClosed)
	assert.Equal(t, "(0,1)", res.Interior)
	assert.Equal(t, "[0,1]", res.Closure)
	assert.Equal(t, "{0, 1}", res.Boundary)
	assert.Equal(t, "Análisis del conjunto (0,1) en Línea Real (ℝ)", res.Description)

	rec = do(t, s, http.MethodPost, "/api/analyze-subset", `{"space_type":"real_line","subset":null}`)
	require.Equal(t, http.StatusOK, rec.Code)
	res = decodeBody[pkg.SubsetAnalysis](t, rec)
	assert.False(t, res.IsOpen)
	assert.Equal(t, "No se pudo calcular", res.Interior)
	assert.Equal(t, "No se pudo calcular", res.LimitPoints)

	rec = do(t, s, http.MethodPost, "/api/analyze-subset", `{"space_type":"klein","subset":"(0,1)"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody[pkg.ErrorResponse](t, rec).Error, "klein")
}

func TestSetOperation(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/api/set-operation", `{"operation":"union","set_a":"A","set_b":"B"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, pkg.SetOperationResponse{Operation: "union", SetA: "A", SetB: "B", Result: "A ∪ B"},
		decodeBody[pkg.SetOperationResponse](t, rec))

	rec = do(t, s, http.MethodPost, "/api/set-operation", `{"operation":"xor","set_a":"A","set_b":"B"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Operación desconocida", decodeBody[pkg.SetOperationResponse](t, rec).Result)
}

func TestSpaceProperties(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/api/space-properties", `{"space_type":"indiscrete"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	res := decodeBody[pkg.PropertiesResponse](t, rec)
	assert.True(t, res.IsConnected)
	assert.True(t, res.IsCompact)
	assert.False(t, res.IsSeparable)
	assert.False(t, res.IsHausdorff)
	assert.Equal(t, "Propiedades de Topología Indiscreta (Trivial)", res.Description)

	rec = do(t, s, http.MethodPost, "/api/space-properties", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBadBodies(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/api/space-properties", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, errEmptyBody.Error(), decodeBody[pkg.ErrorResponse](t, rec).Error)

	rec = do(t, s, http.MethodPost, "/api/analyze-subset", `{"space_type":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	s.cfg.MaxBodyBytes = 8
	rec = do(t, s, http.MethodPost, "/api/space-properties", `{"space_type":"discrete"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVisualization(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/api/generate-visualization", `{"space_type":"euclidean_plane"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	res := decodeBody[pkg.VisualizationResponse](t, rec)
	assert.True(t, res.Success)
	assert.Equal(t, "Visualización de Plano Euclidiano (ℝ²) generada", res.Message)
	assert.True(t, s.diagrams.Cached("euclidean_plane"))

	rec = do(t, s, http.MethodGet, "/api/visualization/euclidean_plane", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("<svg")))

	rec = do(t, s, http.MethodGet, "/api/visualization/torus", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, s, http.MethodPost, "/api/generate-visualization", `{"space_type":"torus"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStaticContent(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/api/quiz-questions", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]pkg.QuizQuestion](t, rec), 5)

	rec = do(t, s, http.MethodGet, "/api/glossary-terms", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[map[string]pkg.GlossaryTerm](t, rec), 10)

	rec = do(t, s, http.MethodGet, "/api/concepts", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[map[string]pkg.Concept](t, rec), 8)
}

func TestFiniteAnalysis(t *testing.T) {
	s := newTestServer(t)

	body := `{"universe":[1,2,3,4],"open_sets":[[],[1],[1,2],[1,2,3],[1,2,3,4]],"subset":[2]}`
	rec := do(t, s, http.MethodPost, "/api/finite-analysis", body)
	require.Equal(t, http.StatusOK, rec.Code)
	res := decodeBody[pkg.FiniteAnalysis](t, rec)
	assert.Equal(t, []string{}, res.Interior)
	assert.Equal(t, []string{"2", "3", "4"}, res.Closure)
	assert.Equal(t, []string{"2", "3", "4"}, res.Boundary)
	assert.Empty(t, res.AxiomError)

	rec = do(t, s, http.MethodPost, "/api/finite-analysis", `{"universe":[1,2],"open_sets":[[1]],"subset":[1]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, decodeBody[pkg.FiniteAnalysis](t, rec).AxiomError)

	rec = do(t, s, http.MethodPost, "/api/finite-analysis", `{"space_type":"real_line","subset":[1]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubspaceAndContinuity(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/api/subspace", `{"space_type":"indiscrete","subset":["1","2"]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	sub := decodeBody[pkg.SubspaceResponse](t, rec)
	assert.Equal(t, []string{"1", "2"}, sub.Universe)
	assert.Len(t, sub.OpenSets, 2)

	body := `{"from":{"space_type":"discrete"},"to":{"space_type":"indiscrete"},
		"mapping":{"1":"2","2":"2","3":"1","4":"4"}}`
	rec = do(t, s, http.MethodPost, "/api/continuity", body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeBody[pkg.ContinuityResponse](t, rec).Continuous)

	body = `{"from":{"space_type":"indiscrete"},"to":{"space_type":"discrete"},
		"mapping":{"1":"1","2":"2","3":"3","4":"4"}}`
	rec = do(t, s, http.MethodPost, "/api/continuity", body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decodeBody[pkg.ContinuityResponse](t, rec).Continuous)

	rec = do(t, s, http.MethodPost, "/api/continuity", `{"from":{},"to":{"space_type":"discrete"}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.True(t, strings.HasPrefix(decodeBody[pkg.ErrorResponse](t, rec).Error, "from: "))
}

func TestQuizSubmitAndStats(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/api/quiz/submit", `{"answers":[2,1,1,0,0]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	res := decodeBody[pkg.QuizResult](t, rec)
	assert.Equal(t, 5, res.Score)
	require.NotEmpty(t, res.SessionID)

	rec = do(t, s, http.MethodPost, "/api/quiz/submit", `{"session_id":"`+res.SessionID+`","answers":[2]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, s, http.MethodGet, "/api/quiz/stats?session_id="+res.SessionID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decodeBody[pkg.QuizStats](t, rec)
	assert.Equal(t, 2, stats.Attempts)
	assert.Equal(t, 5, stats.Best)
	assert.InDelta(t, 3.0, stats.Average, 1e-9)

	rec = do(t, s, http.MethodGet, "/api/quiz/stats", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, s, http.MethodPost, "/api/quiz/submit", `{"answers":[0,0,0,0,0,0]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

type failingStore struct{ storage.AttemptStore }

func (failingStore) Ping(context.Context) error { return errors.New("down") }

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeBody[map[string]string](t, rec)["status"])

	s.store = failingStore{s.store}
	rec = do(t, s, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRecoverer(t *testing.T) {
	logger.SetOutput(io.Discard)
	h := recoverer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "boom", decodeBody[pkg.ErrorResponse](t, rec).Error)
}

func TestRun_Shutdown(t *testing.T) {
	s := newTestServer(t)
	s.cfg.Addr = "127.0.0.1:0"
	s.cfg.ShutdownTimeout = time.Second

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
}
