package render

// Panel rows, top to bottom: title, one checkbox per target, gap, Simulate button, gap, status
const (
	panelTitleRow   = 0
	panelFirstRow   = 1
	panelButtonGap  = 1
	panelStatusGap  = 1
	panelButtonText = "[ Simulate ]"
)

// HitKind classifies a panel cell under the pointer
type HitKind uint8

const (
	HitNone HitKind = iota
	HitTarget
	HitSimulate
)

// Layout splits the screen into the left panel and the floor view
type Layout struct {
	Width, Height int
	PanelWidth    int
	Targets       int
}

// NewLayout clamps the panel to the screen width
func NewLayout(width, height, panelWidth, targets int) Layout {
	if panelWidth > width {
		panelWidth = width
	}
	if panelWidth < 0 {
		panelWidth = 0
	}
	return Layout{Width: width, Height: height, PanelWidth: panelWidth, Targets: targets}
}

// View returns the floor view origin and size in screen cells
func (l Layout) View() (x, y, w, h int) {
	return l.PanelWidth, 0, l.Width - l.PanelWidth, l.Height
}

// ToView converts a screen cell to floor view coordinates
func (l Layout) ToView(x, y int) (int, int, bool) {
	vx, vy, w, h := l.View()
	x -= vx
	y -= vy
	if x < 0 || y < 0 || x >= w || y >= h {
		return 0, 0, false
	}
	return x, y, true
}

// TargetRow is the panel row of the checkbox for target index i
func (l Layout) TargetRow(i int) int {
	return panelFirstRow + i
}

// ButtonRow is the panel row of the Simulate button
func (l Layout) ButtonRow() int {
	return panelFirstRow + l.Targets + panelButtonGap
}

// StatusRow is the first panel row of the status block
func (l Layout) StatusRow() int {
	return l.ButtonRow() + 1 + panelStatusGap
}

// HitPanel resolves a screen cell inside the panel
// Index is the target index for HitTarget
func (l Layout) HitPanel(x, y int) (HitKind, int) {
	if x < 0 || x >= l.PanelWidth || y < 0 || y >= l.Height {
		return HitNone, 0
	}
	if i := y - panelFirstRow; i >= 0 && i < l.Targets {
		return HitTarget, i
	}
	if y == l.ButtonRow() && x >= 1 && x < 1+len(panelButtonText) {
		return HitSimulate, 0
	}
	return HitNone, 0
}
