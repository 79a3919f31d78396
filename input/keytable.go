package input

import (
	"maps"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps keys to intents
// Digit runes not bound here toggle targets by panel index
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	SpecialKeys map[tcell.Key]Intent

	// Printable rune bindings
	Runes map[rune]Intent
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyEscape: IntentQuit,
			tcell.KeyUp:     IntentPanForward,
			tcell.KeyDown:   IntentPanBack,
			tcell.KeyLeft:   IntentPanLeft,
			tcell.KeyRight:  IntentPanRight,
			tcell.KeyHome:   IntentCameraReset,
		},

		Runes: map[rune]Intent{
			'q': IntentQuit,
			's': IntentSimulate,
			'a': IntentSelectAll,
			'n': IntentSelectNone,
			'm': IntentToggleMesh,
			'v': IntentToggleMute,
			'r': IntentCameraReset,
			'+': IntentZoomIn,
			'=': IntentZoomIn,
			'-': IntentZoomOut,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		SpecialKeys: maps.Clone(kt.SpecialKeys),
		Runes:       maps.Clone(kt.Runes),
	}
}

// Lookup resolves a key event to an intent
func (kt *KeyTable) Lookup(key tcell.Key, ch rune) Intent {
	if key == tcell.KeyRune {
		return kt.Runes[ch]
	}
	return kt.SpecialKeys[key]
}
