package bubble

import (
	"image"
	"testing"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
)

type spacerRow struct{}

func (spacerRow) ID() RowID { return NoID }

func testGtx() layout.Context {
	return layout.Context{
		Ops:         new(op.Ops),
		Metric:      unit.Metric{PxPerDp: 1, PxPerSp: 1},
		Constraints: layout.Constraints{Max: image.Pt(100, 100)},
	}
}

func TestManagerStatePerRow(t *testing.T) {
	var allocated int
	m := NewManager(
		func(row Row) interface{} {
			allocated++
			return &struct{ n int }{}
		},
		func(row Row, state interface{}) layout.Widget {
			return func(layout.Context) layout.Dimensions {
				return layout.Dimensions{}
			}
		},
	)
	a := &Message{Serial: "a"}
	b := &Message{Serial: "b"}
	m.Rows = []Row{a, b}

	for frame := 0; frame < 3; frame++ {
		for i := range m.Rows {
			m.Layout(testGtx(), i)
		}
	}
	if allocated != 2 {
		t.Errorf("allocated %d states, want one per unique row", allocated)
	}
	if m.State(a.ID()) == m.State(b.ID()) {
		t.Error("rows share state")
	}

	m.Evict(a.ID())
	if m.State(a.ID()) != nil {
		t.Error("state survived eviction")
	}
	m.Layout(testGtx(), 0)
	if allocated != 3 {
		t.Error("evicted row did not reallocate on next layout")
	}
}

func TestManagerStatelessRows(t *testing.T) {
	var allocated int
	m := NewManager(
		func(row Row) interface{} {
			allocated++
			return nil
		},
		func(row Row, state interface{}) layout.Widget {
			if state != nil {
				t.Error("stateless row received state")
			}
			return func(layout.Context) layout.Dimensions {
				return layout.Dimensions{}
			}
		},
	)
	m.Rows = []Row{spacerRow{}, spacerRow{}}
	for i := range m.Rows {
		m.Layout(testGtx(), i)
	}
	if allocated != 0 {
		t.Errorf("allocator ran %d times for rows without IDs", allocated)
	}
	if m.Len() != 2 {
		t.Errorf("Len = %d, want 2", m.Len())
	}
}
