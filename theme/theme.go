// Package theme resolves the light/dark/system appearance preference.
package theme

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// Mode is the user's stated appearance preference.
type Mode string

const (
	// Light always uses the light scheme.
	Light Mode = "light"
	// Dark always uses the dark scheme.
	Dark Mode = "dark"
	// System follows the host appearance setting.
	System Mode = "system"
)

// Valid reports whether m is one of the three known modes.
func (m Mode) Valid() bool {
	return m == Light || m == Dark || m == System
}

// Scheme is the concrete appearance a renderer applies.
type Scheme string

const (
	SchemeLight Scheme = "light"
	SchemeDark  Scheme = "dark"
)

// Resolve maps a preference and the current host appearance to a
// concrete scheme. Unknown modes resolve as System, so a corrupted
// preference degrades to following the host rather than failing.
func Resolve(m Mode, systemDark bool) Scheme {
	switch m {
	case Light:
		return SchemeLight
	case Dark:
		return SchemeDark
	default:
		if systemDark {
			return SchemeDark
		}
		return SchemeLight
	}
}

const prefFile = "theme.json"

type preference struct {
	Mode Mode `json:"mode"`
}

// Store persists the theme preference as a JSON document in a
// directory. The zero value is not usable; construct with [NewStore].
type Store struct {
	dir string
	mu  sync.Mutex
}

// NewStore returns a Store rooted at dir.
func NewStore(dir string) *Store { return &Store{dir: dir} }

// Load returns the persisted mode. A missing, unreadable, or corrupt
// preference file yields System: the preference is a convenience and
// its loss must never make the app unrenderable.
func (s *Store) Load() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(filepath.Join(s.dir, prefFile))
	if err != nil {
		return System
	}

	var pref preference
	if err := json.Unmarshal(data, &pref); err != nil || !pref.Mode.Valid() {
		return System
	}
	return pref.Mode
}

// Save persists the mode. Invalid modes are rejected.
func (s *Store) Save(m Mode) error {
	if !m.Valid() {
		return errors.New("theme: invalid mode " + string(m))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(preference{Mode: m}, "", "  ")
	if err != nil {
		return err
	}

	// Temp file then rename so a crash never leaves a torn preference.
	path := filepath.Join(s.dir, prefFile)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
