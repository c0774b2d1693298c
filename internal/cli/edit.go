package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridkit/pkg/grid"
	"github.com/matzehuels/gridkit/pkg/render/text"
	"github.com/matzehuels/gridkit/pkg/schema"
)

// editCommand creates the edit command for the interactive grid editor.
func (c *CLI) editCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "edit [layout.json]",
		Short: "Edit a layout interactively in the terminal",
		Long: `Edit a layout interactively in the terminal.

Arrow keys move the selected item through the engine, so pushes, pinned
jumps, and compaction behave exactly as they do in the library. Hold the
resize mode (r) to grow and shrink instead of moving.

Keys:
  tab / shift+tab  select next / previous item
  arrows, hjkl     move the selected item (resize in resize mode)
  r                toggle resize mode
  p                pin or unpin the selected item
  c                cycle the compaction strategy
  s                save
  q                quit`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := c.loadDocument(args[0])
			if err != nil {
				return err
			}
			l, err := doc.Layout()
			if err != nil {
				return err
			}
			compaction, err := grid.ParseCompactionType(doc.Compaction)
			if err != nil {
				return err
			}

			m := editModel{
				doc:        doc,
				layout:     l,
				compaction: compaction,
				path:       args[0],
			}
			final, err := tea.NewProgram(m).Run()
			if err != nil {
				return fmt.Errorf("run editor: %w", err)
			}
			if fm, ok := final.(editModel); ok && fm.dirty {
				printWarning("Quit with unsaved changes")
			}
			return nil
		},
	}
}

// =============================================================================
// editModel - Interactive grid editing
// =============================================================================

// editModel is the bubbletea model for the grid editor. Every edit runs
// through the engine so the terminal view matches library behavior.
type editModel struct {
	doc        schema.Document
	layout     grid.Layout
	compaction grid.CompactionType
	path       string
	cursor     int
	resizeMode bool
	dirty      bool
	status     string
}

// compactionCycle is the order the c key steps through.
var compactionCycle = []grid.CompactionType{
	grid.CompactionVertical,
	grid.CompactionHorizontal,
	grid.CompactionFastVertical,
	grid.CompactionFastHorizontal,
	grid.CompactionNone,
}

func (m editModel) Init() tea.Cmd {
	return nil
}

// selected returns the item under the cursor in visual order.
func (m editModel) selected() (grid.Item, bool) {
	sorted := grid.Sorted(m.layout, m.compaction.Axis())
	if len(sorted) == 0 {
		return grid.Item{}, false
	}
	return sorted[m.cursor%len(sorted)], true
}

func (m editModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit

	case "tab":
		if n := len(m.layout); n > 0 {
			m.cursor = (m.cursor + 1) % n
		}
	case "shift+tab":
		if n := len(m.layout); n > 0 {
			m.cursor = (m.cursor - 1 + n) % n
		}

	case "r":
		m.resizeMode = !m.resizeMode

	case "p":
		if it, ok := m.selected(); ok {
			for i := range m.layout {
				if m.layout[i].ID == it.ID {
					m.layout[i].Static = !m.layout[i].Static
				}
			}
			m.dirty = true
			if it.Static {
				m.status = "unpinned " + it.ID
			} else {
				m.status = "pinned " + it.ID
			}
		}

	case "c":
		for i, t := range compactionCycle {
			if t == m.compaction {
				m.compaction = compactionCycle[(i+1)%len(compactionCycle)]
				break
			}
		}
		m.layout = grid.Compact(m.layout, m.compaction, m.doc.Slots, false)
		m.dirty = true
		m.status = "compaction: " + m.compaction.String()

	case "up", "k":
		m = m.nudge(0, -1)
	case "down", "j":
		m = m.nudge(0, 1)
	case "left", "h":
		m = m.nudge(-1, 0)
	case "right", "l":
		m = m.nudge(1, 0)

	case "s":
		m = m.save()
	}

	return m, nil
}

// nudge moves or resizes the selected item by one cell through the engine.
func (m editModel) nudge(dx, dy int) editModel {
	it, ok := m.selected()
	if !ok {
		return m
	}

	if m.resizeMode {
		m.layout = grid.ResizeItem(m.layout, it.ID, it.X, it.Y, it.W+dx, it.H+dy, grid.ResizeOptions{
			Slots:      m.doc.Slots,
			Compaction: m.compaction,
			Behavior:   grid.ResizePush,
		})
	} else {
		m.layout = grid.MoveItem(m.layout, it.ID, it.X+dx, it.Y+dy, grid.MoveOptions{
			Slots:        m.doc.Slots,
			Compaction:   m.compaction,
			IsUserAction: true,
		})
	}
	m.dirty = true
	m.status = ""
	return m
}

// save writes the current layout back to the file.
func (m editModel) save() editModel {
	m.doc.Items = schema.FromLayout(m.layout)
	m.doc.Compaction = m.compaction.String()
	m.doc.UpdatedAt = time.Now().UTC()
	if err := schema.ExportJSON(m.doc, m.path); err != nil {
		m.status = "save failed: " + err.Error()
		return m
	}
	m.dirty = false
	m.status = "saved " + m.path
	return m
}

func (m editModel) View() string {
	var b strings.Builder

	title := m.doc.Name
	if title == "" {
		title = m.path
	}
	b.WriteString(StyleTitle.Render(title))
	if m.dirty {
		b.WriteString(StyleWarning.Render(" *"))
	}
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("tab select  arrows move  r resize  p pin  c compaction  s save  q quit"))
	b.WriteString("\n\n")

	b.WriteString(text.Render(m.layout, m.doc.Slots, text.Options{Legend: true}))

	b.WriteString("\n")
	mode := "move"
	if m.resizeMode {
		mode = "resize"
	}
	line := fmt.Sprintf("%s · %s", mode, m.compaction)
	if it, ok := m.selected(); ok {
		line = fmt.Sprintf("%s · %s", StyleHighlight.Render(it.ID), line)
	}
	b.WriteString("  " + line)
	if m.status != "" {
		b.WriteString("  " + StyleDim.Render(m.status))
	}
	b.WriteString("\n")

	return b.String()
}
