package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/depdag/pkg/depdag"
)

func exploreGraph(t *testing.T) *depdag.Graph[string] {
	t.Helper()
	g := depdag.New[string]()
	if err := g.Vertex("app").DependsOn("lib"); err != nil {
		t.Fatal(err)
	}
	g.Vertex("app").SetValue("main.go")
	return g
}

func press(m tea.Model, key string) tea.Model {
	var msg tea.KeyMsg
	switch key {
	case "space":
		msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	m, _ = m.Update(msg)
	return m
}

func TestExploreToggle(t *testing.T) {
	g := exploreGraph(t)
	app, _ := g.Lookup("app")
	lib, _ := g.Lookup("lib")

	var m tea.Model = NewExploreModel("test", g)
	if app.IsResolved() {
		t.Fatal("app resolved before lib has a payload")
	}

	m = press(m, "down")
	if got := m.(ExploreModel).Cursor; got != 1 {
		t.Fatalf("cursor = %d, want 1", got)
	}

	m = press(m, "space")
	if !lib.HasPayload() {
		t.Fatal("space did not give lib a payload")
	}
	if !app.IsResolved() {
		t.Error("app not resolved after lib was toggled on")
	}

	m = press(m, "space")
	if lib.HasPayload() {
		t.Error("second space did not clear lib's payload")
	}

	m = press(m, "up")
	m = press(m, "space")
	if app.HasPayload() {
		t.Error("space did not clear app's payload")
	}

	press(m, "r")
	if v, ok := app.Payload().Value(); !ok || v != "main.go" {
		t.Errorf("after reset app payload = %v, %v; want main.go", v, ok)
	}
	if lib.HasPayload() {
		t.Error("after reset lib has a payload")
	}
}

func TestExploreCursorBounds(t *testing.T) {
	var m tea.Model = NewExploreModel("test", exploreGraph(t))

	m = press(m, "up")
	if got := m.(ExploreModel).Cursor; got != 0 {
		t.Errorf("cursor = %d after up at top, want 0", got)
	}
	m = press(m, "j")
	m = press(m, "j")
	if got := m.(ExploreModel).Cursor; got != 1 {
		t.Errorf("cursor = %d after moving past the end, want 1", got)
	}
}

func TestExploreQuit(t *testing.T) {
	m := NewExploreModel("test", exploreGraph(t))
	for _, key := range []string{"q", "esc", "ctrl+c"} {
		var msg tea.KeyMsg
		switch key {
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "ctrl+c":
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
		}
		if _, cmd := m.Update(msg); cmd == nil {
			t.Errorf("%s: no quit command", key)
		}
	}
}

func TestExploreWindowResize(t *testing.T) {
	var m tea.Model = NewExploreModel("test", exploreGraph(t))
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 10})
	if got := m.(ExploreModel).Height; got != 5 {
		t.Errorf("height = %d, want minimum of 5", got)
	}
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	if got := m.(ExploreModel).Height; got != 32 {
		t.Errorf("height = %d, want 32", got)
	}
}

func TestExploreView(t *testing.T) {
	m := NewExploreModel("release", exploreGraph(t))
	view := m.View()
	for _, want := range []string{"release", "app", "lib", "value", "none", "0 resolved"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestExploreViewCyclic(t *testing.T) {
	g := depdag.New[string]()
	_ = g.Vertex("a").DependsOn("b")
	_ = g.Vertex("b").DependsOn("a")

	view := NewExploreModel("loop", g).View()
	if !strings.Contains(view, "resolution unavailable") {
		t.Errorf("view = %q, want cyclic notice", view)
	}
}

func TestExploreViewEmpty(t *testing.T) {
	view := NewExploreModel("empty", depdag.New[string]()).View()
	if !strings.Contains(view, "empty graph") {
		t.Errorf("view = %q, want empty notice", view)
	}
}
