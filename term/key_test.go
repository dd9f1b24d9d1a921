package term

import (
	"testing"

	"github.com/eugenmihailescu/myinputmask/field"
)

func decode(t *testing.T, buf ...byte) field.KeyEvent {
	t.Helper()
	ev, ok := DecodeKey(buf, len(buf))
	if !ok {
		t.Fatalf("expected %v to decode", buf)
	}
	return ev
}

func TestDecodePrintable(t *testing.T) {
	ev := decode(t, '5')
	if ev.Key != field.KeyRune || ev.Rune != '5' || ev.Ctrl {
		t.Errorf("unexpected event %+v", ev)
	}
	if !ev.Cancelable {
		t.Error("terminal events should be cancelable")
	}
}

func TestDecodeArrows(t *testing.T) {
	if ev := decode(t, 27, '[', 'C'); ev.Key != field.KeyRight {
		t.Errorf("expected Right, got %+v", ev)
	}
	if ev := decode(t, 27, '[', 'D'); ev.Key != field.KeyLeft {
		t.Errorf("expected Left, got %+v", ev)
	}
}

func TestDecodeHomeEnd(t *testing.T) {
	if ev := decode(t, 27, '[', 'H'); ev.Key != field.KeyHome {
		t.Errorf("expected Home, got %+v", ev)
	}
	if ev := decode(t, 27, '[', '4', '~'); ev.Key != field.KeyEnd {
		t.Errorf("expected End, got %+v", ev)
	}
}

func TestDecodeDelete(t *testing.T) {
	if ev := decode(t, 27, '[', '3', '~'); ev.Key != field.KeyDelete {
		t.Errorf("expected Delete, got %+v", ev)
	}
}

func TestDecodeBackspaceVariants(t *testing.T) {
	for _, b := range []byte{127, 8} {
		if ev := decode(t, b); ev.Key != field.KeyBackspace {
			t.Errorf("byte %d: expected Backspace, got %+v", b, ev)
		}
	}
}

func TestDecodeCtrlChord(t *testing.T) {
	ev := decode(t, 22) // Ctrl+V
	if ev.Key != field.KeyRune || ev.Rune != 'v' || !ev.Ctrl {
		t.Errorf("expected Ctrl+V, got %+v", ev)
	}
}

func TestDecodeShiftTab(t *testing.T) {
	ev := decode(t, 27, '[', 'Z')
	if ev.Key != field.KeyTab || !ev.Shift {
		t.Errorf("expected Shift+Tab, got %+v", ev)
	}
}

func TestDecodeEscapeEnterTab(t *testing.T) {
	if ev := decode(t, 27); ev.Key != field.KeyEscape {
		t.Errorf("expected Escape, got %+v", ev)
	}
	if ev := decode(t, 13); ev.Key != field.KeyEnter {
		t.Errorf("expected Enter, got %+v", ev)
	}
	if ev := decode(t, 9); ev.Key != field.KeyTab {
		t.Errorf("expected Tab, got %+v", ev)
	}
}

func TestDecodeKeysSplitsBurstRead(t *testing.T) {
	// A pasted "555" arrives as one read of three printable bytes.
	buf := []byte("555")
	events := DecodeKeys(buf, len(buf))
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	for i, ev := range events {
		if ev.Key != field.KeyRune || ev.Rune != '5' {
			t.Errorf("event %d: expected rune '5', got %+v", i, ev)
		}
	}
}

func TestDecodeKeysMixedSequences(t *testing.T) {
	buf := []byte{'5', 27, '[', 'D', 27, '[', '3', '~', '7'}
	events := DecodeKeys(buf, len(buf))
	want := []field.Key{field.KeyRune, field.KeyLeft, field.KeyDelete, field.KeyRune}
	if len(events) != len(want) {
		t.Fatalf("expected %d events, got %d: %+v", len(want), len(events), events)
	}
	for i, k := range want {
		if events[i].Key != k {
			t.Errorf("event %d: expected key %v, got %+v", i, k, events[i])
		}
	}
}

func TestDecodeKeysDropsUnknownSequence(t *testing.T) {
	buf := []byte{27, '[', 'A', '5'} // Up arrow has no mapping
	events := DecodeKeys(buf, len(buf))
	if len(events) != 1 || events[0].Rune != '5' {
		t.Errorf("expected the trailing rune only, got %+v", events)
	}
}

func TestDecodeRejectsUnknown(t *testing.T) {
	if _, ok := DecodeKey([]byte{27, '[', 'A'}, 3); ok {
		t.Error("Up arrow has no mapping and should not decode")
	}
	if _, ok := DecodeKey(nil, 0); ok {
		t.Error("empty read should not decode")
	}
}
