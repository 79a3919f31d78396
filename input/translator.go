package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/floorsim/core"
	"github.com/lixenwraith/floorsim/event"
	"github.com/lixenwraith/floorsim/parameter"
	"github.com/lixenwraith/floorsim/render"
)

// Pusher accepts game events from the input goroutine
type Pusher interface {
	PushEvent(eventType event.EventType, payload any)
}

// CameraControl is the camera surface driven directly by keys
type CameraControl interface {
	Pan(right, forward float64)
	Zoom(factor float64)
	Reset()
}

// Muter toggles audio feedback
type Muter interface {
	IsMuted() bool
	SetMuted(muted bool)
}

// Translator turns terminal events into simulation events
// Not safe for concurrent use; owned by the input goroutine
type Translator struct {
	push    Pusher
	cam     CameraControl
	mute    Muter
	keys    *KeyTable
	targets []core.Entity
	layout  render.Layout

	// buttons is the last seen mouse button state, for press edge detection
	buttons tcell.ButtonMask

	log zerolog.Logger
}

// NewTranslator creates a translator; targets are in panel order
func NewTranslator(push Pusher, cam CameraControl, keys *KeyTable, targets []core.Entity, log zerolog.Logger) *Translator {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	return &Translator{
		push:    push,
		cam:     cam,
		keys:    keys,
		targets: targets,
		log:     log,
	}
}

// SetMuter enables the mute toggle
func (t *Translator) SetMuter(m Muter) {
	t.mute = m
}

// SetLayout updates the screen layout used for pointer hit-testing
func (t *Translator) SetLayout(l render.Layout) {
	t.layout = l
}

// Layout returns the current layout
func (t *Translator) Layout() render.Layout {
	return t.layout
}

// Handle dispatches one tcell event
func (t *Translator) Handle(ev tcell.Event) Result {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.HandleKey(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		x, y := ev.Position()
		return t.HandleMouse(x, y, ev.Buttons())
	case *tcell.EventResize:
		w, h := ev.Size()
		t.layout = render.NewLayout(w, h, t.layout.PanelWidth, len(t.targets))
		return ResultResize
	case *tcell.EventInterrupt:
		return ResultQuit
	}
	return ResultNone
}

// HandleKey resolves a key press through the key table
func (t *Translator) HandleKey(key tcell.Key, ch rune) Result {
	intent := t.keys.Lookup(key, ch)
	if intent == IntentNone {
		if key == tcell.KeyRune && ch >= '0' && ch <= '9' {
			return t.toggleDigit(ch)
		}
		return ResultNone
	}
	return t.apply(intent)
}

func (t *Translator) apply(intent Intent) Result {
	switch intent {
	case IntentQuit:
		return ResultQuit
	case IntentSimulate:
		t.push.PushEvent(event.EventSimulateRequest, nil)
	case IntentSelectAll:
		t.push.PushEvent(event.EventTargetSelectAll, &event.TargetSelectAllPayload{Selected: true})
	case IntentSelectNone:
		t.push.PushEvent(event.EventTargetSelectAll, &event.TargetSelectAllPayload{Selected: false})
	case IntentToggleMesh:
		t.push.PushEvent(event.EventNavMeshToggle, nil)
	case IntentToggleMute:
		if t.mute == nil {
			return ResultNone
		}
		t.mute.SetMuted(!t.mute.IsMuted())
		t.log.Info().Bool("muted", t.mute.IsMuted()).Msg("Audio mute toggled")
	case IntentPanLeft:
		t.cam.Pan(-parameter.CameraPanStep, 0)
	case IntentPanRight:
		t.cam.Pan(parameter.CameraPanStep, 0)
	case IntentPanForward:
		t.cam.Pan(0, parameter.CameraPanStep)
	case IntentPanBack:
		t.cam.Pan(0, -parameter.CameraPanStep)
	case IntentZoomIn:
		t.cam.Zoom(parameter.CameraZoomStep)
	case IntentZoomOut:
		t.cam.Zoom(1 / parameter.CameraZoomStep)
	case IntentCameraReset:
		t.cam.Reset()
	default:
		return ResultNone
	}
	return ResultHandled
}

// toggleDigit maps '1'..'9' to targets 0..8 and '0' to target 9
func (t *Translator) toggleDigit(ch rune) Result {
	idx := int(ch-'0') - 1
	if ch == '0' {
		idx = 9
	}
	return t.toggleTarget(idx)
}

func (t *Translator) toggleTarget(idx int) Result {
	if idx < 0 || idx >= len(t.targets) {
		return ResultNone
	}
	t.push.PushEvent(event.EventTargetToggle, &event.TargetTogglePayload{Target: t.targets[idx]})
	return ResultHandled
}

// HandleMouse acts on primary button presses only; drags and releases are ignored
func (t *Translator) HandleMouse(x, y int, buttons tcell.ButtonMask) Result {
	pressed := buttons&tcell.Button1 != 0 && t.buttons&tcell.Button1 == 0
	t.buttons = buttons
	if !pressed {
		return ResultNone
	}

	if vx, vy, ok := t.layout.ToView(x, y); ok {
		t.push.PushEvent(event.EventPointerClick, &event.PointerClickPayload{X: vx, Y: vy})
		return ResultHandled
	}

	switch kind, idx := t.layout.HitPanel(x, y); kind {
	case render.HitTarget:
		return t.toggleTarget(idx)
	case render.HitSimulate:
		t.push.PushEvent(event.EventSimulateRequest, nil)
		return ResultHandled
	}
	t.log.Debug().Int("x", x).Int("y", y).Msg("Click outside any control")
	return ResultNone
}
