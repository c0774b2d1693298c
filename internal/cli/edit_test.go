package cli

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/gridkit/pkg/grid"
	"github.com/matzehuels/gridkit/pkg/schema"
)

func testEditModel(t *testing.T) editModel {
	t.Helper()
	l := grid.Layout{
		grid.NewItem("a", 0, 0, 2, 2),
		grid.NewItem("b", 0, 2, 2, 2),
	}
	return editModel{
		doc:        schema.FromGrid("board", l, 4, grid.CompactionVertical),
		layout:     l,
		compaction: grid.CompactionVertical,
		path:       filepath.Join(t.TempDir(), "board.json"),
	}
}

func keyPress(key string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

func itemByID(t *testing.T, l grid.Layout, id string) grid.Item {
	t.Helper()
	for _, it := range l {
		if it.ID == id {
			return it
		}
	}
	t.Fatalf("no item %q", id)
	return grid.Item{}
}

func TestEditModelNudgeMoves(t *testing.T) {
	m := testEditModel(t)
	m.compaction = grid.CompactionNone

	// Cursor starts on a (top of visual order). Moving it down one row
	// pushes b out of the way.
	m = m.nudge(0, 1)

	a := itemByID(t, m.layout, "a")
	b := itemByID(t, m.layout, "b")
	if a.Y != 1 {
		t.Errorf("a.Y = %d, want 1", a.Y)
	}
	if b.Y != 3 {
		t.Errorf("b.Y = %d, want 3", b.Y)
	}
	if !m.dirty {
		t.Error("nudge should mark the model dirty")
	}
}

func TestEditModelResizeMode(t *testing.T) {
	m := testEditModel(t)

	next, _ := m.Update(keyPress("r"))
	m = next.(editModel)
	if !m.resizeMode {
		t.Fatal("r should enter resize mode")
	}

	m = m.nudge(1, 0)
	a := itemByID(t, m.layout, "a")
	if a.W != 3 {
		t.Errorf("a.W = %d, want 3", a.W)
	}
}

func TestEditModelPinToggle(t *testing.T) {
	m := testEditModel(t)

	next, _ := m.Update(keyPress("p"))
	m = next.(editModel)

	if !itemByID(t, m.layout, "a").Static {
		t.Error("p should pin the selected item")
	}

	next, _ = m.Update(keyPress("p"))
	m = next.(editModel)
	if itemByID(t, m.layout, "a").Static {
		t.Error("second p should unpin")
	}
}

func TestEditModelCompactionCycle(t *testing.T) {
	m := testEditModel(t)

	next, _ := m.Update(keyPress("c"))
	m = next.(editModel)
	if m.compaction != grid.CompactionHorizontal {
		t.Errorf("compaction = %v, want horizontal", m.compaction)
	}

	// A full lap through the cycle lands back on the start.
	for i := 0; i < len(compactionCycle)-1; i++ {
		next, _ = m.Update(keyPress("c"))
		m = next.(editModel)
	}
	if m.compaction != grid.CompactionVertical {
		t.Errorf("compaction after full cycle = %v, want vertical", m.compaction)
	}
}

func TestEditModelSave(t *testing.T) {
	m := testEditModel(t)
	m = m.nudge(0, 1)

	m = m.save()
	if m.dirty {
		t.Error("save should clear the dirty flag")
	}

	doc, err := schema.ImportJSON(m.path)
	if err != nil {
		t.Fatalf("ImportJSON() error = %v", err)
	}
	if len(doc.Items) != 2 {
		t.Errorf("saved %d items, want 2", len(doc.Items))
	}
}

func TestEditModelTabSelection(t *testing.T) {
	m := testEditModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(editModel)

	it, ok := m.selected()
	if !ok || it.ID != "b" {
		t.Errorf("selected = %q, want b", it.ID)
	}
}
