package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/weft"
	httpAdapter "github.com/aretw0/weft/pkg/adapters/http"
	"github.com/aretw0/weft/pkg/adapters/memory"
	"github.com/aretw0/weft/pkg/domain"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()

	rows := [][]string{
		{"A", "B", "C"},
		{"a", "b"},
		{"A"},
		{"A", "C"},
		{"A", "a", "A"},
		{"A", "b", "B"},
		{"B", "a", "C"},
		{"B", "b", "C"},
		{"C", "a", "C"},
		{"C", "b", "A"},
	}

	reg := prometheus.NewRegistry()
	eng, err := weft.New(memory.NewSource(rows), weft.WithMetrics(reg))
	require.NoError(t, err)

	srv := httptest.NewServer(httpAdapter.NewHandler(eng, httpAdapter.WithMetricsGatherer(reg)))
	t.Cleanup(srv.Close)
	return srv
}

func TestServer_Health(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServer_GetDefinition(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Get(srv.URL + "/definition")
	require.NoError(t, err)
	defer resp.Body.Close()

	var doc domain.Document
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))

	assert.Equal(t, []string{"A", "B", "C"}, doc.States)
	assert.Equal(t, []string{"a", "b"}, doc.Symbols)
	assert.Equal(t, "A", doc.Initial)
	assert.Equal(t, []string{"A", "C"}, doc.Terminals)
	assert.Len(t, doc.Rules, 6)
}

func TestServer_Run(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Post(srv.URL+"/run", "application/json",
		strings.NewReader(`{"sequence":"abbaab"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	var body httpAdapter.RunResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Len(t, body.Trace, 6)
	assert.Equal(t, domain.State("A"), body.FinalState)
	assert.True(t, body.Terminated)
	assert.Nil(t, body.Error)
}

func TestServer_Run_SymbolList(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Post(srv.URL+"/run", "application/json",
		strings.NewReader(`{"symbols":["a","b"]}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	var body httpAdapter.RunResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, domain.State("B"), body.FinalState)
	assert.False(t, body.Terminated)
}

func TestServer_Run_RetainedError(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Post(srv.URL+"/run", "application/json",
		strings.NewReader(`{"sequence":"abc"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	// The run is not fatal: the response still carries the partial trace and
	// verdict, with the error alongside.
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body httpAdapter.RunResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Len(t, body.Trace, 2)
	assert.Equal(t, domain.State("B"), body.FinalState)
	assert.False(t, body.Terminated)
	require.NotNil(t, body.Error)
	assert.Equal(t, "symbol", body.Error.Kind)
	assert.Equal(t, "c", body.Error.Symbol)
}

func TestServer_Run_BadBody(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Post(srv.URL+"/run", "application/json", strings.NewReader("{"))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServer_GetGraph(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Get(srv.URL + "/graph")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(body), "graph TD"))
	assert.Contains(t, string(body), "class A terminal;")
}

func TestServer_Metrics(t *testing.T) {
	srv := testServer(t)

	// Drive one run so the counters exist.
	resp, err := http.Post(srv.URL+"/run", "application/json",
		strings.NewReader(`{"sequence":"ab"}`))
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), "weft_runs_total")
	assert.Contains(t, string(body), "weft_transitions_total")
}
