package main

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/lixenwraith/vi-menu/component"
	"github.com/lixenwraith/vi-menu/core"
	"github.com/lixenwraith/vi-menu/input"
)

const (
	fontMenu   = "regular"
	fontDetail = "regular:16"
	thumbSheet = "images/kevin_sheet"
)

// demo holds the handles the wiring and tests need
type demo struct {
	root   component.Handle
	vList  component.Handle
	vList2 component.Handle
	hLists []component.Handle
}

func randomColor(rng *rand.Rand) core.RGBA {
	return core.RGBA{R: uint8(rng.IntN(256)), G: uint8(rng.IntN(256)), B: uint8(rng.IntN(256)), A: 255}
}

// buildDemo creates two half-screen vertical lists stacked in a column
// The first is static and holds three horizontal lists of words, the second
// is dynamic and holds thumbnail rows; key 2 moves focus down, key 1 back
func buildDemo(t *component.Tree, rng *rand.Rand, thumbScale float64) *demo {
	d := &demo{}

	for i := range 3 {
		h := t.NewHList(
			t.NewText("Foo", fontMenu),
			t.NewText("Bar", fontMenu),
			t.NewText("Baz", fontMenu),
		)
		n := t.Node(h)
		n.List().Static = i%2 != 0
		n.Container().PercentWidth = 50
		n.Color = randomColor(rng)
		t.SetSelectedIndex(h, 0)

		t.OnAction(h, func(ev component.SelectedEvent) {
			switch ev.Index {
			case 0:
				n.Color = core.Orange
			case 1:
				n.Color = randomColor(rng)
			case 2:
				n.SetAlpha(math.Abs(n.TargetAlpha() - 1))
			}
		})
		d.hLists = append(d.hLists, h)
	}

	d.vList = t.NewVList(d.hLists...)
	vl := t.Node(d.vList)
	vl.Container().PercentWidth = 50
	vl.Container().PercentHeight = 50
	vl.Color = core.Green
	vl.SetAlpha(0.3)
	vl.List().Static = true

	// nested lists only take input while their row is selected
	t.OnSelected(d.vList, func(ev component.SelectedEvent) { t.SetFocus(ev.Item, true) })
	t.OnDeselected(d.vList, func(ev component.SelectedEvent) { t.SetFocus(ev.Item, false) })

	var rows []component.Handle
	for i := range 3 {
		thumb := t.NewImage(thumbSheet, &core.Area{X: 0, Y: 32, Width: 16, Height: 16})
		info := t.NewText(fmt.Sprintf("%d: Lorem ipsum varum esit", i), fontMenu)
		detail := t.NewText("Sevum: 33.3f, Ralte: 434, Egonger it relum", fontDetail)

		row := t.NewHPane(thumb, t.NewVPane(info, detail))
		rn := t.Node(row)
		rn.Container().PercentWidth = 50
		rn.Color = randomColor(rng)

		t.Node(thumb).SetDefaultScale(thumbScale)
		t.Node(thumb).Item().SecondaryColor = core.White
		t.Node(info).Item().SecondaryColor = core.Yellow
		t.Node(detail).Item().SecondaryColor = core.Yellow
		rows = append(rows, row)
	}

	d.vList2 = t.NewVList(rows...)
	v2 := t.Node(d.vList2)
	v2.Container().PercentWidth = 50
	v2.Container().PercentHeight = 50
	v2.Color = core.Red
	v2.SetAlpha(0.3)
	v2.List().Static = false

	// rows are panes, their look on selection is wired by hand
	t.OnSelected(d.vList2, func(ev component.SelectedEvent) { markRow(t, ev.Item, true) })
	t.OnDeselected(d.vList2, func(ev component.SelectedEvent) { markRow(t, ev.Item, false) })
	t.OnAction(d.vList2, func(ev component.SelectedEvent) {
		t.Node(ev.Item).Color = randomColor(rng)
	})

	// 2 held for two ticks on an unchanged row hands focus down
	last := -1
	t.OnKeyPressed(d.vList, func(ev component.KeyEvent) {
		if !ev.State.IsKeyDown(input.Key2) || !t.IsFocused(d.vList) {
			return
		}
		if t.SelectedIndex(d.vList) == last {
			t.SetFocus(d.vList, false)
			t.SetFocus(t.SelectedItem(d.vList), false)
			t.SetFocus(d.vList2, true)
			t.Select(d.vList2, 0, false)
			markRow(t, t.SelectedItem(d.vList2), true)
		}
		last = t.SelectedIndex(d.vList)
	})

	t.OnKeyPressed(d.vList2, func(ev component.KeyEvent) {
		if !ev.State.IsKeyDown(input.Key1) || !t.IsFocused(d.vList2) {
			return
		}
		markRow(t, t.SelectedItem(d.vList2), false)
		t.SetFocus(d.vList2, false)
		t.SetFocus(d.vList, true)
		t.Select(d.vList, len(t.Children(d.vList))-1, false)
		t.SetFocus(t.SelectedItem(d.vList), true)
	})

	t.SetFocus(d.vList, true)
	t.SetSelectedIndex(d.vList, 0)

	column := t.NewVPane(d.vList, d.vList2)
	fill(t, column)
	d.root = t.NewStack(column)
	fill(t, d.root)
	return d
}

func fill(t *component.Tree, h component.Handle) {
	c := t.Node(h).Container()
	c.PercentWidth = 100
	c.PercentHeight = 100
}

// markRow selects or clears the thumbnail and info line of a row pane
func markRow(t *component.Tree, row component.Handle, selected bool) {
	if row == component.None {
		return
	}
	thumb := t.Child(row, 0)
	info := t.Child(t.Child(row, 1), 0)
	t.SetSelected(thumb, selected)
	t.SetSelected(info, selected)
}
