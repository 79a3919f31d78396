package render

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/floorsim/camera"
	"github.com/lixenwraith/floorsim/engine"
	"github.com/lixenwraith/floorsim/parameter"
	"github.com/lixenwraith/floorsim/status"
	"github.com/lixenwraith/floorsim/system"
	"github.com/lixenwraith/floorsim/vmath"
)

const (
	runeFloor    = '·'
	runeObstacle = '▓'
	runePath     = '∙'
	runeTarget   = '■'
	runeMarker   = '◆'
	runeAgent    = '@'

	// pathSampleStep is the world distance between drawn path dots
	pathSampleStep = 0.25

	helpText = "s run  m mesh  q quit"
)

// meshLocator is the optional triangle lookup used by the overlay
type meshLocator interface {
	Locate(p vmath.Vec3F) (int, bool)
	Bounds() (vmath.Vec3F, vmath.Vec3F)
}

type targetView struct {
	label    string
	pos      vmath.Vec3F
	selected bool
}

type markerView struct {
	pos       vmath.Vec3F
	anchored  bool
	intensity float64
}

type agentView struct {
	pos  vmath.Vec3F
	path []vmath.Vec3F
}

// snapshot is the world state copied under the update lock for one frame
type snapshot struct {
	targets []targetView
	markers []markerView
	agents  []agentView

	nav     engine.NavMeshQuery
	overlay bool
	groundY float64
	state   string
	status  []string
}

// floorKey identifies a cached floor layer
type floorKey struct {
	eye, lookAt vmath.Vec3F
	fov         float64
	w, h        int
	overlay     bool
	nav         engine.NavMeshQuery
}

type floorCell struct {
	r     rune
	style tcell.Style
}

// TerminalRenderer draws the panel and the floor view to a tcell screen
type TerminalRenderer struct {
	screen     tcell.Screen
	world      *engine.World
	cam        *camera.Camera
	panelWidth int

	floor    []floorCell
	floorKey floorKey
	frames   uint64
}

// NewTerminalRenderer creates a renderer over screen for world, projecting through cam
func NewTerminalRenderer(screen tcell.Screen, world *engine.World, cam *camera.Camera, panelWidth int) *TerminalRenderer {
	return &TerminalRenderer{
		screen:     screen,
		world:      world,
		cam:        cam,
		panelWidth: panelWidth,
	}
}

// Layout returns the layout for the current screen size
func (r *TerminalRenderer) Layout() Layout {
	w, h := r.screen.Size()
	return NewLayout(w, h, r.panelWidth, r.world.Components.Target.Count())
}

// Frames returns the number of frames drawn
func (r *TerminalRenderer) Frames() uint64 {
	return r.frames
}

// Run redraws at the frame interval until ctx is cancelled
func (r *TerminalRenderer) Run(ctx context.Context) error {
	ticker := time.NewTicker(parameter.FrameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			r.RenderFrame()
		}
	}
}

// RenderFrame renders the entire frame
func (r *TerminalRenderer) RenderFrame() {
	layout := r.Layout()
	vx, vy, vw, vh := layout.View()
	r.cam.SetViewport(vw, vh)

	snap := r.capture()

	r.screen.Clear()
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)

	r.drawFloor(snap, vx, vy, vw, vh, defaultStyle)
	r.drawPaths(snap, vx, defaultStyle)
	r.drawTargets(snap, vx, defaultStyle)
	r.drawMarkers(snap, vx, defaultStyle)
	r.drawAgents(snap, vx, defaultStyle)
	r.drawPanel(snap, layout, defaultStyle)

	r.screen.Show()
	r.frames++
}

// capture copies everything the frame needs under the world update lock
func (r *TerminalRenderer) capture() snapshot {
	var snap snapshot
	w := r.world
	w.RunSafe(func() {
		snap.groundY = w.Resources.Config.GroundY
		if nav := w.Resources.NavMesh; nav != nil {
			snap.nav = nav.Query
			snap.overlay = nav.Visible
		}

		for _, e := range w.Components.Target.All() {
			tc, ok := w.Components.Target.Get(e)
			if !ok {
				continue
			}
			tr, _ := w.Components.Transform.Get(e)
			snap.targets = append(snap.targets, targetView{label: tc.Label, pos: tr.Position, selected: tc.Selected})
		}

		for _, e := range w.Components.Marker.All() {
			m, ok := w.Components.Marker.Get(e)
			if !ok {
				continue
			}
			tr, ok := w.Components.Transform.Get(e)
			if !ok {
				continue
			}
			mv := markerView{pos: tr.Position, anchored: m.Anchor != 0, intensity: 1}
			if light, ok := w.Components.Light.Get(m.Light); ok {
				mv.intensity = light.Intensity
			}
			snap.markers = append(snap.markers, mv)
		}

		for _, e := range w.Components.Agent.All() {
			tr, ok := w.Components.Transform.Get(e)
			if !ok {
				continue
			}
			av := agentView{pos: tr.Position}
			if p, ok := w.Components.Path.Get(e); ok {
				av.path = p.Waypoints()
			}
			snap.agents = append(snap.agents, av)
		}
	})

	snap.state = w.Resources.Status.Strings.Get(status.KeyRunState).Load()
	snap.status = w.Resources.Status.Lines()
	return snap
}

// drawFloor blits the cached floor layer, rebuilding it when the view changed
func (r *TerminalRenderer) drawFloor(snap snapshot, vx, vy, vw, vh int, defaultStyle tcell.Style) {
	if vw <= 0 || vh <= 0 || snap.nav == nil {
		return
	}

	eye, lookAt := r.cam.Position()
	key := floorKey{eye: eye, lookAt: lookAt, fov: r.cam.FOV(), w: vw, h: vh, overlay: snap.overlay, nav: snap.nav}
	if key != r.floorKey || len(r.floor) != vw*vh {
		r.floor = r.buildFloor(snap, vw, vh, defaultStyle)
		r.floorKey = key
	}

	for y := 0; y < vh; y++ {
		for x := 0; x < vw; x++ {
			c := r.floor[y*vw+x]
			if c.r == 0 {
				continue
			}
			r.screen.SetContent(vx+x, vy+y, c.r, nil, c.style)
		}
	}
}

// buildFloor raycasts every view cell onto the ground plane
func (r *TerminalRenderer) buildFloor(snap snapshot, vw, vh int, defaultStyle tcell.Style) []floorCell {
	cells := make([]floorCell, vw*vh)
	plane := vmath.GroundPlane(snap.groundY)
	loc, hasLoc := snap.nav.(meshLocator)

	var lo, hi vmath.Vec3F
	if hasLoc {
		lo, hi = loc.Bounds()
	}

	for y := 0; y < vh; y++ {
		for x := 0; x < vw; x++ {
			ray, ok := r.cam.ViewportToWorld(x, y)
			if !ok {
				continue
			}
			hit, ok := vmath.IntersectRayPlane(ray, plane, parameter.RayParallelEpsilon)
			if !ok {
				continue
			}

			idx := y*vw + x
			if snap.nav.IsWalkable(hit) {
				style := defaultStyle.Foreground(RgbFloor)
				if snap.overlay && hasLoc {
					if tri, ok := loc.Locate(hit); ok {
						bg := RgbMeshEven
						if tri%2 == 1 {
							bg = RgbMeshOdd
						}
						style = style.Background(bg)
					}
				}
				cells[idx] = floorCell{r: runeFloor, style: style}
				continue
			}

			if hasLoc && hit.X >= lo.X && hit.X <= hi.X && hit.Z >= lo.Z && hit.Z <= hi.Z {
				cells[idx] = floorCell{r: runeObstacle, style: defaultStyle.Foreground(RgbObstacle)}
			}
		}
	}
	return cells
}

// project maps a world point to a screen cell inside the floor view
func (r *TerminalRenderer) project(p vmath.Vec3F, vx int) (int, int, bool) {
	x, y, ok := r.cam.WorldToViewport(p)
	if !ok {
		return 0, 0, false
	}
	return vx + x, y, true
}

func (r *TerminalRenderer) drawPaths(snap snapshot, vx int, defaultStyle tcell.Style) {
	style := defaultStyle.Foreground(RgbPath)
	for _, a := range snap.agents {
		from := a.pos
		for _, wp := range a.path {
			dist := vmath.V3FDist(from, wp)
			steps := int(math.Ceil(dist / pathSampleStep))
			for i := 1; i <= steps; i++ {
				p := vmath.V3FLerp(from, wp, float64(i)/float64(steps))
				if x, y, ok := r.project(p, vx); ok {
					r.screen.SetContent(x, y, runePath, nil, style)
				}
			}
			from = wp
		}
	}
}

func (r *TerminalRenderer) drawTargets(snap snapshot, vx int, defaultStyle tcell.Style) {
	for _, t := range snap.targets {
		if x, y, ok := r.project(t.pos, vx); ok {
			r.screen.SetContent(x, y, runeTarget, nil, defaultStyle.Foreground(TargetColor(t.selected)))
		}
	}
}

// drawMarkers highlights anchored markers behind their target glyph, click markers get their own glyph
func (r *TerminalRenderer) drawMarkers(snap snapshot, vx int, defaultStyle tcell.Style) {
	for _, m := range snap.markers {
		x, y, ok := r.project(m.pos, vx)
		if !ok {
			continue
		}
		color := MarkerColor(m.intensity)
		if m.anchored {
			mainc, _, style, _ := r.screen.GetContent(x, y)
			r.screen.SetContent(x, y, mainc, nil, style.Background(color))
			continue
		}
		r.screen.SetContent(x, y, runeMarker, nil, defaultStyle.Foreground(color))
	}
}

func (r *TerminalRenderer) drawAgents(snap snapshot, vx int, defaultStyle tcell.Style) {
	style := defaultStyle.Foreground(RgbAgent).Bold(true)
	for _, a := range snap.agents {
		if x, y, ok := r.project(a.pos, vx); ok {
			r.screen.SetContent(x, y, runeAgent, nil, style)
		}
	}
}

// drawPanel draws target checkboxes, the Simulate button and the status block
func (r *TerminalRenderer) drawPanel(snap snapshot, layout Layout, defaultStyle tcell.Style) {
	if layout.PanelWidth <= 0 {
		return
	}
	for y := 0; y < layout.Height; y++ {
		for x := 0; x < layout.PanelWidth; x++ {
			r.screen.SetContent(x, y, ' ', nil, defaultStyle)
		}
	}

	textStyle := defaultStyle.Foreground(RgbPanelText)
	r.drawText(1, panelTitleRow, "Targets", layout.PanelWidth, defaultStyle.Foreground(RgbPanelTitle).Bold(true))

	for i, t := range snap.targets {
		box := "[ ]"
		if t.selected {
			box = "[x]"
		}
		key := " "
		if i < 10 {
			key = fmt.Sprintf("%d", (i+1)%10)
		}
		line := fmt.Sprintf("%s %s %s", key, box, t.label)
		r.drawText(1, layout.TargetRow(i), line, layout.PanelWidth, defaultStyle.Foreground(TargetColor(t.selected)))
	}

	buttonBg := RgbButtonBg
	if snap.state == system.RunActive {
		buttonBg = RgbButtonBusy
	}
	r.drawText(1, layout.ButtonRow(), panelButtonText, layout.PanelWidth, defaultStyle.Foreground(RgbStatusText).Background(buttonBg))

	row := layout.StatusRow()
	for _, line := range snap.status {
		if row >= layout.Height-1 {
			break
		}
		r.drawText(1, row, line, layout.PanelWidth, textStyle)
		row++
	}

	if layout.Height > 0 {
		r.drawText(1, layout.Height-1, helpText, layout.PanelWidth, textStyle)
	}
}

// drawText writes s from (x, y), clipped before maxX
func (r *TerminalRenderer) drawText(x, y int, s string, maxX int, style tcell.Style) {
	for _, ch := range s {
		if x >= maxX {
			return
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
