package field

// Key identifies a pressed key independent of how the host delivered it.
type Key int

const (
	KeyRune Key = iota // printable character, see KeyEvent.Rune
	KeyBackspace
	KeyDelete
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyTab
	KeyShift
	KeyControl
	KeyCapsLock
	KeyEnter
	KeyEscape
)

// KeyEvent is a discrete key-press notification from the host: key identity,
// modifier flags, and whether the host allows its default handling of the
// key to be suppressed.
type KeyEvent struct {
	Key        Key
	Rune       byte // set when Key == KeyRune
	Ctrl       bool
	Shift      bool
	Cancelable bool
}

// Navigation reports whether the key is one of the accepted default
// navigation/control keys that bypass the pattern and strict-length gates.
func (ev KeyEvent) Navigation() bool {
	switch ev.Key {
	case KeyShift, KeyControl, KeyHome, KeyEnd, KeyCapsLock,
		KeyLeft, KeyRight, KeyDelete, KeyBackspace, KeyTab:
		return true
	}
	return false
}

// ctrlChord reports whether the event is Ctrl held with the given letter,
// matching either case.
func (ev KeyEvent) ctrlChord(letter byte) bool {
	if !ev.Ctrl || ev.Key != KeyRune {
		return false
	}
	return ev.Rune == letter || ev.Rune == letter-'a'+'A'
}
