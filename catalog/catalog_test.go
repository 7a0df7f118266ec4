package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tbo47/control-diagram/diagram"
)

func TestParseAppliesDefaults(t *testing.T) {
	doc := `{
		"dataset": "pid-symbols",
		"version": "1.0",
		"data": [
			{"name": "Gate valve", "type": "valve", "width": 40, "height": 20,
			 "path": "M0 0 L40 20", "anchors": [{"kind": "in", "x": 0, "y": 10}]},
			{"width": 10, "height": 10},
			{"name": "Odd entry", "anchors": "not-a-list"}
		]
	}`

	templates, err := Parse([]byte(doc))
	require.NoError(t, err)
	require.Len(t, templates, 3)

	assert.Equal(t, "Gate valve", templates[0].Name)
	assert.Len(t, templates[0].Anchors, 1)

	// Missing fields get their defaults.
	assert.Equal(t, "Unnamed", templates[1].Name)
	assert.Equal(t, diagram.ShapeValve, templates[1].Type)
	assert.NotNil(t, templates[1].Anchors)
	assert.Empty(t, templates[1].Anchors)
	assert.Equal(t, "", templates[1].Path)

	// A malformed entry never aborts the load.
	assert.Equal(t, "Unnamed", templates[2].Name)
	assert.Empty(t, templates[2].Anchors)
}

func TestParseRejectsInvalidDocument(t *testing.T) {
	_, err := Parse([]byte("not json"))
	assert.Error(t, err)
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": [{"name": "Pump", "type": "pump"}]}`))
	}))
	defer srv.Close()

	templates, err := Fetch(context.Background(), srv.Client(), srv.URL)
	require.NoError(t, err)
	require.Len(t, templates, 1)
	assert.Equal(t, "Pump", templates[0].Name)
}

func TestFetchPropagatesHTTPErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := Fetch(context.Background(), srv.Client(), srv.URL)
	assert.Error(t, err)
}

func TestDeadEndStub(t *testing.T) {
	stub := DeadEnd()
	require.Len(t, stub.Anchors, 2, "the stub must be a pass-through with two anchors")
	for _, a := range stub.Anchors {
		assert.Equal(t, diagram.AnchorInOut, a.Kind)
	}
}

func TestBuiltinTemplatesAreWellFormed(t *testing.T) {
	for _, tpl := range Builtin() {
		assert.NotEmpty(t, tpl.Name)
		assert.NotEmpty(t, tpl.Type)
		assert.Greater(t, tpl.Width, 0.0)
		assert.Greater(t, tpl.Height, 0.0)
		for _, a := range tpl.Anchors {
			assert.GreaterOrEqual(t, a.X, 0.0)
			assert.LessOrEqual(t, a.X, tpl.Width)
			assert.GreaterOrEqual(t, a.Y, 0.0)
			assert.LessOrEqual(t, a.Y, tpl.Height)
		}
	}
}
