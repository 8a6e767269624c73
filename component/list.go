package component

import (
	"slices"

	"github.com/lixenwraith/vi-menu/input"
)

func (t *Tree) listData(h Handle) *ListData {
	n := t.Node(h)
	if n == nil {
		return nil
	}
	return n.list
}

// SelectedIndex returns the selection of list h, -1 for none
func (t *Tree) SelectedIndex(h Handle) int {
	l := t.listData(h)
	if l == nil {
		return -1
	}
	return l.selected
}

// SelectedItem returns the selected child of list h, None for none
func (t *Tree) SelectedItem(h Handle) Handle {
	if i := t.SelectedIndex(h); i >= 0 {
		return t.Child(h, i)
	}
	return None
}

// SetSelectedIndex moves the selection of list h
// Out of range clears it; Deselected fires for the old child before
// Selected fires for the new one, and nothing fires if nothing changed
func (t *Tree) SetSelectedIndex(h Handle, i int) {
	n := t.Node(h)
	if n == nil || n.list == nil {
		return
	}
	l := n.list
	children := n.container.children
	if i < 0 || i >= len(children) {
		i = -1
	}

	prev := l.selected
	prevItem := None
	if prev >= 0 && prev < len(children) {
		prevItem = children[prev]
	}
	item := None
	if i >= 0 {
		item = children[i]
	}
	if i == prev && item == prevItem {
		return
	}

	l.selected = i
	if prevItem != None {
		t.nodes[prevItem].selected = false
		fireSelected(l.onDeselected, SelectedEvent{List: h, Index: prev, Item: prevItem})
	}
	if item != None {
		t.nodes[item].selected = true
		fireSelected(l.onSelected, SelectedEvent{List: h, Index: i, Item: item})
	}
}

// Select moves the selection of list h
// idx >= 0 is absolute, idx < 0 steps back by -idx from the current
// selection (treated as 0 when none); circular wraps, otherwise the
// result is clamped to the ends
func (t *Tree) Select(h Handle, idx int, circular bool) {
	n := t.Node(h)
	if n == nil || n.list == nil {
		return
	}
	count := len(n.container.children)
	if count == 0 {
		t.SetSelectedIndex(h, -1)
		return
	}

	cur := max(n.list.selected, 0)
	var target int
	switch {
	case idx < 0 && circular:
		target = (cur + count - (-idx)%count) % count
	case idx < 0:
		target = max(0, cur+idx)
	case circular:
		target = idx % count
	default:
		target = min(idx, count-1)
	}
	t.SetSelectedIndex(h, target)
}

// SelectNext advances the selection, from none it selects the first child
func (t *Tree) SelectNext(h Handle, circular bool) {
	cur := t.SelectedIndex(h)
	if cur < 0 {
		t.Select(h, 0, circular)
		return
	}
	t.Select(h, cur+1, circular)
}

// SelectPrevious retreats the selection by one
func (t *Tree) SelectPrevious(h Handle, circular bool) {
	t.Select(h, -1, circular)
}

// shiftSelection keeps the selection on the same child after child i left
func (t *Tree) shiftSelection(h Handle, i int, removed Handle) {
	l := t.nodes[h].list
	switch {
	case l.selected < 0 || i > l.selected:
	case i < l.selected:
		l.selected--
	default:
		l.selected = -1
		t.nodes[removed].selected = false
		fireSelected(l.onDeselected, SelectedEvent{List: h, Index: i, Item: removed})
	}
}

// SetFocus sets the local focus of list h
// Gaining focus restarts the input timer, so the control that handed
// focus over cannot fire again in the new list within one interval
func (t *Tree) SetFocus(h Handle, focused bool) {
	l := t.listData(h)
	if l == nil {
		return
	}
	if focused && !l.focused {
		l.inputTimer = 0
	}
	l.focused = focused
}

// IsFocused returns the local focus of list h
func (t *Tree) IsFocused(h Handle) bool {
	l := t.listData(h)
	return l != nil && l.focused
}

// EffectiveFocus reports whether list h and every enclosing list are focused
func (t *Tree) EffectiveFocus(h Handle) bool {
	if t.listData(h) == nil {
		return false
	}
	for cur := h; cur != None; cur = t.nearestList(cur) {
		if !t.nodes[cur].list.focused {
			return false
		}
	}
	return true
}

// InputLocked reports whether list h is still cooling down
func (t *Tree) InputLocked(h Handle) bool {
	l := t.listData(h)
	if l == nil {
		return true
	}
	return l.inputTimer < l.interval
}

// InputTimer returns milliseconds since the last accepted input
func (t *Tree) InputTimer(h Handle) float64 {
	if l := t.listData(h); l != nil {
		return l.inputTimer
	}
	return 0
}

// RepeatInterval returns the current cooldown in milliseconds
func (t *Tree) RepeatInterval(h Handle) float64 {
	if l := t.listData(h); l != nil {
		return l.interval
	}
	return 0
}

// listInput runs the list's share of the input pass
func (t *Tree) listInput(h Handle, dtMillis float64, snap input.Snapshot) {
	l := t.nodes[h].list
	base := float64(l.MillisPerInput)

	if l.inputTimer < l.interval {
		l.inputTimer += dtMillis
	}

	if !t.EffectiveFocus(h) {
		l.interval = base
		l.latched = l.latched[:0]
		return
	}

	if l.Bindings.AnyHeld(snap) {
		decel := float64(l.InputRepeatDecel) * dtMillis / 1000
		l.interval = max(float64(l.MinMillisPerInput), l.interval-decel)
	} else {
		l.interval = base
	}

	if l.SingleMode {
		l.latched = slices.DeleteFunc(l.latched, func(tr input.Trigger) bool {
			return !tr.Held(snap)
		})
	}

	if l.inputTimer < l.interval {
		return
	}

	for _, c := range input.Controls {
		trig, ok := t.findTrigger(l, c, snap)
		if !ok {
			continue
		}
		l.inputTimer = 0
		if l.SingleMode {
			l.latched = append(l.latched, trig)
		}
		t.dispatch(h, c)
		return
	}
}

// findTrigger returns the first held, unlatched input mapped to c
func (t *Tree) findTrigger(l *ListData, c input.Control, snap input.Snapshot) (input.Trigger, bool) {
	for i, d := range snap.Devices {
		if d == nil {
			continue
		}
		for _, k := range l.Bindings.Keys[c] {
			tr := input.Trigger{Device: i, Key: k}
			if d.IsKeyDown(k) && !slices.Contains(l.latched, tr) {
				return tr, true
			}
		}
		for _, b := range l.Bindings.Buttons[c] {
			tr := input.Trigger{Device: i, Button: b}
			if d.IsButtonDown(b) && !slices.Contains(l.latched, tr) {
				return tr, true
			}
		}
	}
	return input.Trigger{}, false
}

func (t *Tree) dispatch(h Handle, c input.Control) {
	l := t.nodes[h].list
	switch c {
	case input.ControlNext:
		t.SelectNext(h, l.Circular)
	case input.ControlPrevious:
		t.SelectPrevious(h, l.Circular)
	case input.ControlAction:
		fireSelected(l.onAction, SelectedEvent{List: h, Index: l.selected, Item: t.SelectedItem(h)})
	case input.ControlCancel:
		ev := CancelEvent{List: h}
		for _, fn := range l.onCancel {
			fn(ev)
		}
	}
}
