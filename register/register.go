package register

import (
	"strings"
	"sync"
	"unicode"
)

// Type categorizes registers by their behavior.
type Type uint8

const (
	// Named is a named register (a-z, A-Z).
	Named Type = iota

	// Numbered is a numbered register (1-9), rotating delete history.
	Numbered

	// Unnamed is the default register (").
	Unnamed

	// LastYank is the yank register (0).
	LastYank

	// BlackHole is the black hole register (_), discarding writes.
	BlackHole

	// Clipboard is the system clipboard register (+).
	Clipboard

	// Selection is the primary selection register (*).
	Selection
)

// Register is a single storage slot. Values holds one string per
// selection range of the yank or delete that filled it.
type Register struct {
	Name   rune
	Type   Type
	Values []string
}

// Store manages all registers.
type Store struct {
	mu        sync.RWMutex
	registers map[rune]*Register

	// numbered are 1-9, rotating delete history.
	numbered [9]*Register

	// clipboard provides system clipboard access for + and *.
	clipboard ClipboardProvider
}

// NewStore creates a register store with no clipboard provider; the
// clipboard registers behave as plain registers until one is set.
func NewStore() *Store {
	s := &Store{registers: make(map[rune]*Register)}
	s.initialize()
	return s
}

// SetClipboard installs the system clipboard provider.
func (s *Store) SetClipboard(cp ClipboardProvider) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clipboard = cp
}

func (s *Store) initialize() {
	s.registers['"'] = &Register{Name: '"', Type: Unnamed}

	for r := 'a'; r <= 'z'; r++ {
		s.registers[r] = &Register{Name: r, Type: Named}
	}

	s.registers['0'] = &Register{Name: '0', Type: LastYank}
	for i := 1; i <= 9; i++ {
		r := rune('0' + i)
		s.registers[r] = &Register{Name: r, Type: Numbered}
		s.numbered[i-1] = s.registers[r]
	}

	s.registers['_'] = &Register{Name: '_', Type: BlackHole}
	s.registers['+'] = &Register{Name: '+', Type: Clipboard}
	s.registers['*'] = &Register{Name: '*', Type: Selection}
}

// Get returns the values stored in a register. Uppercase names read the
// lowercase register. The clipboard registers read the system clipboard
// when a provider is installed; clipboard content arrives as a single
// value.
func (s *Store) Get(name rune) ([]string, bool) {
	if unicode.IsUpper(name) {
		name = unicode.ToLower(name)
	}

	if name == '+' || name == '*' {
		s.mu.RLock()
		cp := s.clipboard
		s.mu.RUnlock()

		if cp != nil {
			content, err := cp.Get()
			if err != nil {
				return nil, false
			}
			return []string{content}, true
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	reg, ok := s.registers[name]
	if !ok || len(reg.Values) == 0 {
		return nil, false
	}
	out := make([]string, len(reg.Values))
	copy(out, reg.Values)
	return out, true
}

// Set stores values in a register. The black hole register discards
// everything; uppercase names append to the lowercase register; the
// clipboard registers write the joined values to the system clipboard
// when a provider is installed.
func (s *Store) Set(name rune, values ...string) {
	if name == '_' {
		return
	}

	if name == '+' || name == '*' {
		s.mu.RLock()
		cp := s.clipboard
		s.mu.RUnlock()

		if cp != nil {
			_ = cp.Set(strings.Join(values, "\n"))
			return
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	appendMode := false
	if unicode.IsUpper(name) {
		name = unicode.ToLower(name)
		appendMode = true
	}

	reg, ok := s.registers[name]
	if !ok {
		return
	}

	if appendMode && reg.Type == Named {
		reg.Values = append(reg.Values, values...)
		return
	}
	reg.Values = cloneValues(values)
}

// SetYank stores a yank in register 0 and the unnamed register.
func (s *Store) SetYank(values ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.registers['0'].Values = cloneValues(values)
	s.registers['"'].Values = cloneValues(values)
}

// SetDelete stores a delete, rotating the numbered registers so register
// 1 always holds the most recent delete. The unnamed register gets the
// values as well.
func (s *Store) SetDelete(values ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := 8; i > 0; i-- {
		s.numbered[i].Values = s.numbered[i-1].Values
	}
	s.numbered[0].Values = cloneValues(values)
	s.registers['"'].Values = cloneValues(values)
}

// Clear empties every register.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, reg := range s.registers {
		reg.Values = nil
	}
}

func cloneValues(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	return out
}

// TypeOf returns the type of register a name designates.
func TypeOf(name rune) Type {
	switch {
	case name == '"':
		return Unnamed
	case name >= 'a' && name <= 'z', name >= 'A' && name <= 'Z':
		return Named
	case name == '0':
		return LastYank
	case name >= '1' && name <= '9':
		return Numbered
	case name == '_':
		return BlackHole
	case name == '+':
		return Clipboard
	case name == '*':
		return Selection
	default:
		return Unnamed
	}
}

// IsValid returns true if the register name is recognized.
func IsValid(name rune) bool {
	switch {
	case name == '"', name == '_', name == '+', name == '*':
		return true
	case name >= 'a' && name <= 'z', name >= 'A' && name <= 'Z':
		return true
	case name >= '0' && name <= '9':
		return true
	default:
		return false
	}
}
