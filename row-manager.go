package bubble

import "gioui.org/layout"

// RowID uniquely identifies a row of conversation content.
type RowID string

// NoID is a special ID for rows that do not require a unique identifier.
// Only stateless rows may go without one.
const NoID = RowID("")

// Row is a unit of conversation content: usually a *Message, but hosts
// may interleave their own row types (date separators, unread markers).
type Row interface {
	// ID returns a unique identifier for the Row, if it has one. A Row
	// must return a unique ID in order to have widget state allocated
	// for it across frames. Stateless rows return NoID.
	ID() RowID
}

// Presenter transforms a Row and its allocated state into a widget.
type Presenter func(row Row, state interface{}) layout.Widget

// Allocator instantiates the widget state for a Row, typically a
// *widget.Row for message rows. It may return nil for rows that need no
// persistent state.
type Allocator func(row Row) (state interface{})

// RowManager owns the mapping from conversation rows to their persistent
// widget state, so that hosts can present messages inside any scrolling
// container without tracking interaction state themselves.
type RowManager struct {
	// Rows is the ordered list of content to present.
	Rows      []Row
	presenter Presenter
	allocator Allocator
	rowState  map[RowID]interface{}
}

// NewManager constructs a manager with the given allocator and presenter.
func NewManager(allocator Allocator, presenter Presenter) *RowManager {
	return &RowManager{
		presenter: presenter,
		allocator: allocator,
		rowState:  make(map[RowID]interface{}),
	}
}

// Layout the Row at position index within the manager's Row list.
func (m *RowManager) Layout(gtx layout.Context, index int) layout.Dimensions {
	row := m.Rows[index]
	id := row.ID()
	state, ok := m.rowState[id]
	if !ok && id != NoID {
		state = m.allocator(row)
		m.rowState[id] = state
	}
	return m.presenter(row, state)(gtx)
}

// State returns the widget state allocated for the row with the given
// ID, or nil if the row has none.
func (m *RowManager) State(id RowID) interface{} {
	return m.rowState[id]
}

// Evict discards the widget state for the row with the given ID. Hosts
// that page rows out of memory should evict their state as well.
func (m *RowManager) Evict(id RowID) {
	delete(m.rowState, id)
}

// Len returns the number of rows managed by this manager.
func (m *RowManager) Len() int {
	return len(m.Rows)
}
