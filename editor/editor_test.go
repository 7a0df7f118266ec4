package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tbo47/control-diagram/diagram"
)

func buildSampleEditor(t *testing.T) *Editor {
	t.Helper()
	e := New()
	a := e.AddShape(valveTemplate(), 10, 20)
	b := e.AddShape(valveTemplate(), 200, 60)
	e.AddShape(valveTemplate(), 400, 120)

	// Connect a -> b through a drag gesture so routes are realistic.
	ctl := e.Controller()
	start, err := a.Anchor(1)
	require.NoError(t, err)
	end, err := b.Anchor(0)
	require.NoError(t, err)
	ctl.PointerDown(start)
	ctl.PointerMove(diagram.Point{X: 120, Y: 40})
	ctl.PointerUp(end, true)
	return e
}

func TestExportImportRoundTrip(t *testing.T) {
	e := buildSampleEditor(t)
	data, err := e.ExportJSON()
	require.NoError(t, err)

	restored := New()
	require.NoError(t, restored.ImportJSON(data))

	again, err := restored.ExportJSON()
	require.NoError(t, err)
	assert.JSONEq(t, string(data), string(again))

	doc := restored.Export()
	assert.Len(t, doc.Shapes, 3)
}

func TestExportIsIdempotent(t *testing.T) {
	e := buildSampleEditor(t)
	first := e.Export()
	second := e.Export()
	assert.Equal(t, first, second)
}

func TestImportNilIsNoOp(t *testing.T) {
	e := New()
	require.NoError(t, e.Import(nil))
	require.NoError(t, e.ImportJSON(nil))
	assert.Zero(t, e.Model().Len())
}

func TestImportSkipsUnresolvedConnection(t *testing.T) {
	e := buildSampleEditor(t)
	doc := e.Export()

	// Point the connection's start at an id that is not in the document.
	for i := range doc.Shapes {
		for j := range doc.Shapes[i].Connections {
			doc.Shapes[i].Connections[j].StartShapeID = 12345
		}
	}

	restored := New()
	require.NoError(t, restored.Import(&doc))
	assert.Equal(t, 3, restored.Model().Len())
	for _, s := range restored.Export().Shapes {
		assert.Empty(t, s.Connections)
	}
}

func TestImportDoesNotFireChangeEvents(t *testing.T) {
	e := buildSampleEditor(t)
	data, err := e.ExportJSON()
	require.NoError(t, err)

	restored := New()
	fired := 0
	restored.OnChange(func() { fired++ })
	require.NoError(t, restored.ImportJSON(data))
	assert.Zero(t, fired)
}

func TestOnChangeFiresPerMutation(t *testing.T) {
	e := New()
	fired := 0
	e.OnChange(func() { fired++ })

	a := e.AddShape(valveTemplate(), 0, 0)
	b := e.AddShape(valveTemplate(), 200, 0)
	assert.Equal(t, 2, fired)

	start, _ := a.Anchor(1)
	end, _ := b.Anchor(0)
	ctl := e.Controller()
	ctl.PointerDown(start)
	ctl.PointerMove(diagram.Point{X: 100, Y: 50})
	ctl.PointerUp(end, true)
	assert.Equal(t, 3, fired, "a finished connect gesture is one mutation")

	e.Model().DeleteInstance(a.ID)
	assert.Equal(t, 4, fired)
}

func TestOnChangeSeesPostMutationState(t *testing.T) {
	e := New()
	var counts []int
	e.OnChange(func() {
		counts = append(counts, len(e.Export().Shapes))
	})
	e.AddShape(valveTemplate(), 0, 0)
	e.AddShape(valveTemplate(), 100, 0)
	e.Clear()
	assert.Equal(t, []int{1, 2, 0}, counts)
}

func TestOnChangeUnsubscribe(t *testing.T) {
	e := New()
	first, second := 0, 0
	off := e.OnChange(func() { first++ })
	e.OnChange(func() { second++ })

	e.AddShape(valveTemplate(), 0, 0)
	off()
	e.AddShape(valveTemplate(), 100, 0)

	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}

func TestClearFiresSingleNotification(t *testing.T) {
	e := buildSampleEditor(t)
	fired := 0
	e.OnChange(func() { fired++ })
	e.Clear()
	assert.Equal(t, 1, fired)
	assert.Zero(t, e.Model().Len())
}

func TestAddShapeWithID(t *testing.T) {
	e := New()
	in, err := e.AddShapeWithID(valveTemplate(), 5, 5, 42)
	require.NoError(t, err)
	assert.Equal(t, 42, in.ID)

	_, err = e.AddShapeWithID(valveTemplate(), 6, 6, 42)
	assert.Error(t, err)
}
