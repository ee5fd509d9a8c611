package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"t21dir/internal/classify"
)

func TestDebouncer_OnlyLatestSettles(t *testing.T) {
	d := NewDebouncer("search", 5*time.Millisecond)

	first := d.Trigger()
	second := d.Trigger()

	raw := first()
	msg1, ok := raw.(DebounceMsg)
	if !ok {
		t.Fatalf("expected DebounceMsg, got %T", raw)
	}
	msg2 := second().(DebounceMsg)

	if d.Settled(msg1) {
		t.Error("superseded timer must not settle")
	}
	if !d.Settled(msg2) {
		t.Error("latest timer should settle")
	}

	d.Cancel()
	if d.Settled(msg2) {
		t.Error("cancel should invalidate the pending timer")
	}
}

func TestDebouncer_IgnoresOtherIDs(t *testing.T) {
	a := NewDebouncer("a", time.Millisecond)
	b := NewDebouncer("b", time.Millisecond)
	a.Trigger()
	msg := b.Trigger()().(DebounceMsg)

	if a.Settled(msg) {
		t.Error("debouncer settled on a foreign message")
	}
	if NewDebouncer("c", 0).Duration() != DefaultSearchDebounce {
		t.Error("zero duration should fall back to the default")
	}
}

func typeRunes(t *testing.T, s SearchBox, text string) SearchBox {
	t.Helper()
	for _, r := range text {
		s, _ = s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return s
}

func TestSearchBox_DebouncedCommit(t *testing.T) {
	s := NewSearchBox("Search resources", time.Millisecond)
	s.Focus()

	s = typeRunes(t, s, "ssi")
	if s.Value() != "ssi" || s.Committed() != "" {
		t.Fatalf("typing should not commit: value=%q committed=%q", s.Value(), s.Committed())
	}
	if s.Position() != 3 {
		t.Errorf("expected caret at 3, got %d", s.Position())
	}

	// Ticks from the first two keystrokes were superseded.
	for seq := uint64(1); seq <= 2; seq++ {
		var cmd tea.Cmd
		s, cmd = s.Update(DebounceMsg{ID: "search", Seq: seq})
		if cmd != nil {
			t.Fatalf("stale tick %d produced a command", seq)
		}
	}

	s, cmd := s.Update(DebounceMsg{ID: "search", Seq: 3})
	if cmd == nil {
		t.Fatal("surviving tick should publish the query")
	}
	out := cmd()
	changed, ok := out.(SearchChangedMsg)
	if !ok || changed.Query != "ssi" {
		t.Fatalf("expected SearchChangedMsg{ssi}, got %#v", out)
	}
	if !s.Focused() || s.Position() != 3 {
		t.Error("commit must keep focus and caret")
	}

	// Same text again is not republished.
	_, cmd = s.Update(DebounceMsg{ID: "search", Seq: 3})
	if cmd != nil {
		t.Error("unchanged query republished")
	}
}

func TestSearchBox_IgnoresKeysWhenBlurred(t *testing.T) {
	s := NewSearchBox("", time.Millisecond)
	s = typeRunes(t, s, "abc")
	if s.Value() != "" {
		t.Errorf("blurred box accepted input: %q", s.Value())
	}
}

func TestSearchBox_Clear(t *testing.T) {
	s := NewSearchBox("", time.Millisecond)
	s.Focus()
	s = typeRunes(t, s, "x")
	s, _ = s.Update(DebounceMsg{ID: "search", Seq: 1})

	s, cmd := s.Clear()
	if cmd == nil {
		t.Fatal("clear should publish immediately")
	}
	if got := cmd().(SearchChangedMsg); got.Query != "" {
		t.Errorf("expected empty query, got %q", got.Query)
	}
	if s.Value() != "" {
		t.Errorf("value not cleared: %q", s.Value())
	}
}

func TestSimpleTable(t *testing.T) {
	table := NewSimpleTable("Financial", "ID", "Name")
	table.MaxCell = 10
	table.AddRow("F1", "A very long program name")

	view := table.View(NewStyles(LightTheme()))

	if !strings.Contains(view, "Financial") {
		t.Error("View missing title")
	}
	if !strings.Contains(view, "A very...") {
		t.Errorf("View missing truncated cell:\n%s", view)
	}
	if NewSimpleTable("", "x").View(DefaultStyles()) != "" {
		t.Error("empty table should render nothing")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"exactly", 7, "exactly"},
		{"truncate me please", 11, "truncate..."},
		{"abcdef", 2, "ab"},
		{"keep", 0, "keep"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestLayout(t *testing.T) {
	wide := NewLayoutConfig(140, 40)
	if wide.SidebarWidth(false) != SidebarFullWidth {
		t.Errorf("wide sidebar = %d", wide.SidebarWidth(false))
	}
	if wide.SidebarWidth(true) != SidebarCollapsedWidth {
		t.Errorf("collapsed sidebar = %d", wide.SidebarWidth(true))
	}
	if NewLayoutConfig(80, 24).SidebarWidth(false) != SidebarCompactWidth {
		t.Error("compact terminals should use the compact sidebar")
	}
	if h := wide.ViewportHeight(true); h != 40-HeaderHeight-FooterHeight-SearchBoxHeight {
		t.Errorf("viewport height = %d", h)
	}
	if GridColumns(200) != InspirationCols || GridColumns(10) != 1 {
		t.Error("grid columns out of range")
	}
}

func TestDetectTheme(t *testing.T) {
	dark, light := true, false
	if !DetectTheme(&dark).IsDark {
		t.Error("explicit dark ignored")
	}
	if DetectTheme(&light).IsDark {
		t.Error("explicit light ignored")
	}

	t.Setenv("COLORFGBG", "15;0")
	if !DetectTheme(nil).IsDark {
		t.Error("COLORFGBG dark background not detected")
	}
	t.Setenv("COLORFGBG", "0;15")
	if DetectTheme(nil).IsDark {
		t.Error("COLORFGBG light background detected as dark")
	}
}

func TestBadges(t *testing.T) {
	s := NewStyles(LightTheme())
	out := s.Badge(classify.Badge{Kind: classify.Benefit, Value: "$943/mo", Tone: classify.ToneBlue})
	if !strings.Contains(out, "Benefit $943/mo") {
		t.Errorf("badge missing text: %q", out)
	}
	if !strings.Contains(s.FieldBadge("Athletics / Sports"), "Athlete") {
		t.Error("field badge should show the canonical field")
	}
}

func TestRenderCache(t *testing.T) {
	rc := NewRenderCache(2)
	calls := 0
	render := func() string { calls++; return "out" }

	k := ComputeKey(80, "text")
	rc.GetOrCompute(k, render)
	rc.GetOrCompute(k, render)
	if calls != 1 {
		t.Errorf("expected one compute, got %d", calls)
	}
	if ComputeKey(100, "text") == k {
		t.Error("width must be part of the key")
	}

	rc.GetOrCompute(ComputeKey(1, "a"), render)
	rc.GetOrCompute(ComputeKey(2, "b"), render)
	rc.GetOrCompute(k, render)
	if calls != 4 {
		t.Errorf("full cache should be dropped, computes = %d", calls)
	}
	hits, misses := rc.Stats()
	if hits != 1 || misses != 4 {
		t.Errorf("stats = %d/%d", hits, misses)
	}

	rc.Clear()
	var nilCache *RenderCache
	if nilCache.GetOrCompute(k, render) != "out" {
		t.Error("nil cache should compute")
	}
}
