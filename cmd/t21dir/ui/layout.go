// Package ui layout constants for consistent spacing and dimensions
package ui

// Layout constants for viewport and panel sizing
const (
	// Chrome around the page viewport
	HeaderHeight    = 2
	SearchBoxHeight = 3
	FooterHeight    = 1

	// Sidebar
	SidebarFullWidth      = 30
	SidebarCompactWidth   = 22
	SidebarCollapsedWidth = 3

	// Cards
	CardExcerptLength = 150
	InspirationCols   = 3
	MinCardWidth      = 28

	// Responsive breakpoints
	MinimumTerminalWidth = 60
	CompactModeWidth     = 100
)

// LayoutConfig provides computed layout dimensions based on terminal size
type LayoutConfig struct {
	TerminalWidth  int
	TerminalHeight int
	IsCompact      bool
}

// NewLayoutConfig creates a layout configuration for the given terminal size
func NewLayoutConfig(width, height int) LayoutConfig {
	return LayoutConfig{
		TerminalWidth:  width,
		TerminalHeight: height,
		IsCompact:      width < CompactModeWidth,
	}
}

// ViewportHeight returns the rows left for the page once the header, search
// box and footer are drawn.
func (l LayoutConfig) ViewportHeight(withSearch bool) int {
	h := l.TerminalHeight - HeaderHeight - FooterHeight
	if withSearch {
		h -= SearchBoxHeight
	}
	return max(h, 1)
}

// SidebarWidth returns the sidebar width. A collapsed sidebar is a narrow
// rail.
func (l LayoutConfig) SidebarWidth(collapsed bool) int {
	switch {
	case collapsed:
		return SidebarCollapsedWidth
	case l.IsCompact:
		return SidebarCompactWidth
	}
	return SidebarFullWidth
}

// MainWidth returns the width left beside the sidebar.
func (l LayoutConfig) MainWidth(collapsed bool) int {
	return max(l.TerminalWidth-l.SidebarWidth(collapsed)-1, MinCardWidth)
}

// GridColumns returns how many inspiration cards fit side by side.
func GridColumns(width int) int {
	cols := width / MinCardWidth
	return min(max(cols, 1), InspirationCols)
}
