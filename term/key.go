package term

import "github.com/eugenmihailescu/myinputmask/field"

// DecodeKey translates raw bytes read from a terminal into a key event.
// Returns false for sequences that don't map to anything the controller
// cares about. Terminal events are always cancelable: the host decides
// whether to apply the default edit.
func DecodeKey(buf []byte, n int) (field.KeyEvent, bool) {
	if n == 0 {
		return field.KeyEvent{}, false
	}

	// Escape sequences (arrows, Home/End, Delete, Shift+Tab)
	if buf[0] == 27 && n >= 3 && buf[1] == '[' {
		switch buf[2] {
		case 'C':
			return field.KeyEvent{Key: field.KeyRight, Cancelable: true}, true
		case 'D':
			return field.KeyEvent{Key: field.KeyLeft, Cancelable: true}, true
		case 'H':
			return field.KeyEvent{Key: field.KeyHome, Cancelable: true}, true
		case 'F':
			return field.KeyEvent{Key: field.KeyEnd, Cancelable: true}, true
		case 'Z': // Shift+Tab
			return field.KeyEvent{Key: field.KeyTab, Shift: true, Cancelable: true}, true
		case '1', '7':
			if n >= 4 && buf[3] == '~' {
				return field.KeyEvent{Key: field.KeyHome, Cancelable: true}, true
			}
		case '4', '8':
			if n >= 4 && buf[3] == '~' {
				return field.KeyEvent{Key: field.KeyEnd, Cancelable: true}, true
			}
		case '3':
			if n >= 4 && buf[3] == '~' {
				return field.KeyEvent{Key: field.KeyDelete, Cancelable: true}, true
			}
		}
		return field.KeyEvent{}, false
	}

	switch {
	case n == 1 && buf[0] == 27:
		return field.KeyEvent{Key: field.KeyEscape, Cancelable: true}, true

	case buf[0] == 13:
		return field.KeyEvent{Key: field.KeyEnter, Cancelable: true}, true

	case buf[0] == 9:
		return field.KeyEvent{Key: field.KeyTab, Cancelable: true}, true

	case buf[0] == 127 || buf[0] == 8:
		return field.KeyEvent{Key: field.KeyBackspace, Cancelable: true}, true

	case buf[0] >= 1 && buf[0] <= 26: // Ctrl+A .. Ctrl+Z
		return field.KeyEvent{Key: field.KeyRune, Rune: 'a' + buf[0] - 1, Ctrl: true, Cancelable: true}, true

	case buf[0] >= 32 && buf[0] < 127: // Printable ASCII
		return field.KeyEvent{Key: field.KeyRune, Rune: buf[0], Cancelable: true}, true
	}

	return field.KeyEvent{}, false
}

// DecodeKeys translates a raw read into key events, in order. One read can
// carry several keystrokes when the terminal delivers a paste as a burst of
// printable bytes; each escape sequence or single byte becomes one event,
// and unmapped sequences are dropped.
func DecodeKeys(buf []byte, n int) []field.KeyEvent {
	var events []field.KeyEvent
	for i := 0; i < n; {
		size := 1
		if buf[i] == 27 && i+2 < n && buf[i+1] == '[' {
			size = 3
			if i+3 < n && buf[i+2] >= '0' && buf[i+2] <= '9' && buf[i+3] == '~' {
				size = 4
			}
		}
		if ev, ok := DecodeKey(buf[i:i+size], size); ok {
			events = append(events, ev)
		}
		i += size
	}
	return events
}
