// Package script loads action scripts from JSON files and replays them into
// an app.App. A script is plain data:
//
//	{
//	  "cart":  [{"type":"ADD_ITEM","payload":{"id":4,"name":"Mouse","price":49}}],
//	  "todo":  [{"type":"ADD_TODO","payload":"Buy milk"},
//	            {"type":"TOGGLE_TODO","payload":"todo-1"}],
//	  "form":  [{"type":"UPDATE_FIELD","field":"email","value":"a@b.com"}],
//	  "theme": [{"type":"TOGGLE_THEME"}]
//	}
//
// Todos added by a script get ids todo-1, todo-2, ... so later actions in the
// same script can name them.
package script

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Script holds raw wire actions per container, each list in dispatch order.
type Script struct {
	Cart  []json.RawMessage `json:"cart,omitempty"`
	Todo  []json.RawMessage `json:"todo,omitempty"`
	Form  []json.RawMessage `json:"form,omitempty"`
	Theme []json.RawMessage `json:"theme,omitempty"`
}

// Len is the total number of actions.
func (s Script) Len() int { return len(s.Cart) + len(s.Todo) + len(s.Form) + len(s.Theme) }

// Load reads a script file. A missing file is reported as such (errors.Is
// os.ErrNotExist).
func Load(path string) (Script, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Script{}, fmt.Errorf("script %s: %w", path, err)
		}
		return Script{}, fmt.Errorf("read file: %w", err)
	}
	return Parse(b)
}

// Parse decodes a script document.
func Parse(b []byte) (Script, error) {
	var s Script
	if err := json.Unmarshal(b, &s); err != nil {
		return Script{}, fmt.Errorf("json unmarshal: %w", err)
	}
	return s, nil
}

// Save writes v as indented JSON, the way results are handed back to the user.
func Save(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
