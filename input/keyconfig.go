package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be bare single-char config keys
var runeAliases = map[string]rune{
	"space": ' ',
	"plus":  '+',
	"minus": '-',
	"dot":   '.',
}

// specialKeyNames is tcell's key name table, lowercased for lookup
var specialKeyNames = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// ApplyBindings returns a copy of base with key → action name overrides applied
// A key is a single character, a rune alias, or a tcell key name ("up", "ctrl-c")
// The "none" action removes the binding
func ApplyBindings(base *KeyTable, bindings map[string]string) (*KeyTable, error) {
	result := base.Clone()

	for keyStr, actionName := range bindings {
		intent, err := resolveAction(actionName)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", keyStr, err)
		}

		if r, ok := resolveRune(keyStr); ok {
			if intent == IntentNone {
				delete(result.Runes, r)
			} else {
				result.Runes[r] = intent
			}
			continue
		}

		k, ok := specialKeyNames[strings.ToLower(keyStr)]
		if !ok {
			return nil, fmt.Errorf("unknown key name: %q", keyStr)
		}
		if intent == IntentNone {
			delete(result.SpecialKeys, k)
		} else {
			result.SpecialKeys[k] = intent
		}
	}

	return result, nil
}

// resolveRune converts a config key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, bool) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, true
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], true
	}
	return 0, false
}

// resolveAction converts an action name string to an intent
func resolveAction(name string) (Intent, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	intent, ok := IntentByName(name)
	if !ok {
		return IntentNone, fmt.Errorf("unknown action: %q", name)
	}
	return intent, nil
}
