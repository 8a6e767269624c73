package component

import "github.com/lixenwraith/vi-menu/input"

// SelectedEvent is delivered for Selected, Deselected, and Action
// Index is -1 and Item None when the list has no selection
type SelectedEvent struct {
	List  Handle
	Index int
	Item  Handle
}

// CancelEvent is delivered when a cancel control fires
type CancelEvent struct {
	List Handle
}

// KeyEvent carries the held state of one present device slot
type KeyEvent struct {
	Node   Handle
	Device int
	State  *input.DeviceState
}

// Handlers run synchronously in registration order

// OnSelected registers fn for selection changes of list h
func (t *Tree) OnSelected(h Handle, fn func(SelectedEvent)) {
	if l := t.listData(h); l != nil {
		l.onSelected = append(l.onSelected, fn)
	}
}

// OnDeselected registers fn for the previous selection of list h
func (t *Tree) OnDeselected(h Handle, fn func(SelectedEvent)) {
	if l := t.listData(h); l != nil {
		l.onDeselected = append(l.onDeselected, fn)
	}
}

// OnAction registers fn for action controls on list h
func (t *Tree) OnAction(h Handle, fn func(SelectedEvent)) {
	if l := t.listData(h); l != nil {
		l.onAction = append(l.onAction, fn)
	}
}

// OnCancel registers fn for cancel controls on list h
func (t *Tree) OnCancel(h Handle, fn func(CancelEvent)) {
	if l := t.listData(h); l != nil {
		l.onCancel = append(l.onCancel, fn)
	}
}

// OnKeyPressed registers fn to receive every present device slot each tick
func (t *Tree) OnKeyPressed(h Handle, fn func(KeyEvent)) {
	if n := t.Node(h); n != nil {
		n.onKeyPressed = append(n.onKeyPressed, fn)
	}
}

func fireSelected(handlers []func(SelectedEvent), ev SelectedEvent) {
	for _, fn := range handlers {
		fn(ev)
	}
}
