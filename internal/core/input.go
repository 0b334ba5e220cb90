package core

// Key identifies a keyboard key by its browser key code.
// The mapping is fixed; hosts translate their native key events into these codes.
type Key int

const (
	KeySpace Key = 32 // Fire / confirm
	KeyLeft  Key = 37 // Move ship left
	KeyRight Key = 39 // Move ship right
	KeyP     Key = 80 // Pause / resume
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeySpace:
		return "Space"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyP:
		return "P"
	default:
		return "Unknown"
	}
}

// KeySet records which keys are currently held down.
// The zero value is not usable; create one with NewKeySet.
type KeySet struct {
	pressed map[Key]bool
}

// NewKeySet creates an empty key set.
func NewKeySet() KeySet {
	return KeySet{pressed: make(map[Key]bool)}
}

// Press marks a key as held.
func (s KeySet) Press(k Key) {
	s.pressed[k] = true
}

// Release marks a key as no longer held.
func (s KeySet) Release(k Key) {
	delete(s.pressed, k)
}

// Held returns true if the key is currently held.
func (s KeySet) Held(k Key) bool {
	return s.pressed[k]
}

// Clear releases every key.
func (s KeySet) Clear() {
	for k := range s.pressed {
		delete(s.pressed, k)
	}
}

// Len returns the number of held keys.
func (s KeySet) Len() int {
	return len(s.pressed)
}
