package game

// SelectionState tracks which unit is currently selected plus the tile
// under the cursor. The selected reference is weak: it is a UnitID, not a
// pointer, and is revalidated at the top of every tick before anything
// acts on it. The hovered tile is informational only.
type SelectionState struct {
	selectedID UnitID
	hovered    *GridPosition
}

// SelectedID returns the selected unit's ID, or NoUnit.
func (ss *SelectionState) SelectedID() UnitID {
	return ss.selectedID
}

// HasSelection reports whether any unit is selected.
func (ss *SelectionState) HasSelection() bool {
	return ss.selectedID != NoUnit
}

// Select makes id the sole selected unit, implicitly deselecting any
// previous one. Mutual exclusion, not a stack.
func (ss *SelectionState) Select(id UnitID) {
	ss.selectedID = id
}

// Clear drops the current selection.
func (ss *SelectionState) Clear() {
	ss.selectedID = NoUnit
}

// Hover records the tile currently under the cursor.
func (ss *SelectionState) Hover(pos GridPosition) {
	p := pos
	ss.hovered = &p
}

// ClearHover drops the hovered tile.
func (ss *SelectionState) ClearHover() {
	ss.hovered = nil
}

// Hovered returns the hovered tile, or false if none.
func (ss *SelectionState) Hovered() (GridPosition, bool) {
	if ss.hovered == nil {
		return GridPosition{}, false
	}
	return *ss.hovered, true
}

// revalidate drops the selection if the referenced unit no longer exists
// or is not selectable. An acted unit stays selected so the player keeps
// visual feedback; it just cannot move again this phase.
func (ss *SelectionState) revalidate(lookup func(UnitID) *Unit) {
	if ss.selectedID == NoUnit {
		return
	}
	u := lookup(ss.selectedID)
	if u == nil || !u.Kind.Selectable() {
		ss.selectedID = NoUnit
	}
}
