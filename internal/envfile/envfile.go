// Package envfile parses freeform .env-style text into key/value variables
// and merges the result into an existing variable set without duplicating
// keys. It backs the admin environments import flow (paste box and file
// upload both feed the same pipeline).
package envfile

import (
	"strings"

	"github.com/google/uuid"
)

// Variable is one environment entry. ID identifies the row in the admin UI;
// key uniqueness is enforced only during merge, not globally.
type Variable struct {
	ID    string `json:"id"`
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Parse splits .env-formatted text into variables. Blank lines and lines
// starting with '#' are skipped. Each remaining line is split on the first
// '='; a value containing further '=' characters is kept intact. One pair of
// surrounding double quotes is stripped from the value. Lines with an empty
// key are dropped.
func Parse(text string) []Variable {
	var vars []Variable
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, _ := strings.Cut(line, "=")
		if key == "" {
			continue
		}
		vars = append(vars, Variable{
			ID:    uuid.NewString(),
			Key:   key,
			Value: unquote(value),
		})
	}
	return vars
}

// Merge combines an existing variable set with freshly parsed entries.
// Existing rows survive only if they carry a key or a value (blank filler
// rows are discarded, not reused); parsed entries whose key collides with a
// surviving row are dropped. Order is kept-existing then new-unique-parsed.
func Merge(existing, parsed []Variable) []Variable {
	kept := make([]Variable, 0, len(existing)+len(parsed))
	keys := make(map[string]struct{})
	for _, v := range existing {
		if v.Key == "" && v.Value == "" {
			continue
		}
		kept = append(kept, v)
		keys[v.Key] = struct{}{}
	}
	for _, v := range parsed {
		if _, dup := keys[v.Key]; dup {
			continue
		}
		kept = append(kept, v)
		keys[v.Key] = struct{}{}
	}
	return kept
}

// unquote strips one leading and one trailing double quote when both are
// present, leaving inner quotes untouched.
func unquote(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
}
