// Package field implements the per-field edit controller: a state machine
// that consumes key-press notifications, decides whether to suppress the
// keystroke, and reformats the display string and caret against the field's
// mask. The controller is pure over snapshots, so it can be exercised
// without any real field behind it.
package field

import "github.com/eugenmihailescu/myinputmask/mask"

// Snapshot is the field's observable state at the moment an event arrives.
// CaretKnown is false when the host cannot report a caret (field not
// focusable, no selection capability); caret-dependent behavior is skipped
// in that case and only pattern/strict filtering applies.
type Snapshot struct {
	Text       string
	Caret      int
	CaretKnown bool
	Selection  int // length of the active selection, 0 when none
}

// State is the controller's per-field state: the compiled mask config and
// the re-entrancy latch serializing one key-down/key-up pair per keystroke.
type State struct {
	Cfg  *mask.Compiled
	Wait bool
}

// NewState creates controller state for a compiled field config.
func NewState(cfg *mask.Compiled) *State {
	return &State{Cfg: cfg}
}

// Action is what the host should do in response to an event: suppress the
// key's default handling, and optionally overwrite the field's text and
// caret. Text is applied before Caret.
type Action struct {
	Suppress bool
	SetText  bool
	Text     string
	SetCaret bool
	Caret    int
}

// KeyDown runs the pre-insertion gate. It decides whether the pending key
// may reach the field, and intercepts backspace/delete/arrow keys adjacent
// to separator runs. The re-entrancy latch is set for any non-navigation
// key; KeyUp clears it.
func KeyDown(st *State, ev KeyEvent, snap Snapshot) Action {
	if st.Wait {
		// A reformat is in flight; a duplicate or synthetic key-down
		// before the matching key-up is expected and silently dropped.
		return Action{Suppress: true}
	}

	act := keyDownAction(st.Cfg, ev, snap)
	if !ev.Navigation() {
		st.Wait = true
	}
	return act
}

func keyDownAction(cfg *mask.Compiled, ev KeyEvent, snap Snapshot) Action {
	t, fill := cfg.Mask, cfg.Fill
	caret := snap.Caret
	if caret > len(snap.Text) {
		caret = len(snap.Text)
	}

	if snap.CaretKnown {
		switch ev.Key {
		case KeyBackspace:
			// Deleting into a separator run: remove the run plus the
			// placeholder-originated character before it, in one step.
			if caret > 0 && mask.IsLiteral(t, fill, caret-1) {
				start := mask.RunStart(t, fill, caret-1)
				if start > 0 {
					start--
				}
				text := cfg.Remask(snap.Text[:start] + snap.Text[caret:])
				if start > len(text) {
					start = len(text)
				}
				return Action{Suppress: true, SetText: true, Text: text, SetCaret: true, Caret: start}
			}

		case KeyDelete:
			// Forward-deleting at a separator run: remove the run and the
			// character that follows it.
			if mask.IsLiteral(t, fill, caret) {
				cut := mask.RunEnd(t, fill, caret) + 1
				if cut > len(snap.Text) {
					cut = len(snap.Text)
				}
				text := cfg.Remask(snap.Text[:caret] + snap.Text[cut:])
				pos := caret
				if pos > len(text) {
					pos = len(text)
				}
				return Action{Suppress: true, SetText: true, Text: text, SetCaret: true, Caret: pos}
			}

		case KeyLeft:
			if caret > 0 && mask.IsLiteral(t, fill, caret-1) {
				return Action{Suppress: true, SetCaret: true, Caret: mask.RunStart(t, fill, caret-1)}
			}

		case KeyRight:
			if mask.IsLiteral(t, fill, caret) {
				pos := mask.RunEnd(t, fill, caret)
				if pos > len(snap.Text) {
					pos = len(snap.Text)
				}
				return Action{Suppress: true, SetCaret: true, Caret: pos}
			}
		}
	}

	if ev.Navigation() || ev.Ctrl || ev.Shift {
		return Action{}
	}

	if ev.Key != KeyRune || !cfg.Match(ev.Rune) {
		return Action{Suppress: true}
	}
	if cfg.Strict && len(t) > 0 && len(snap.Text) >= len(t) && snap.Selection == 0 {
		// Field is full; only an active selection permits overwrite.
		return Action{Suppress: true}
	}
	return Action{}
}

// DefaultEdit applies a field's default handling of a key to its text and
// caret: rune insertion, backspace, delete, and caret movement. Hosts whose
// fields have no native editing (terminal forms, synthetic fields) run this
// between KeyDown and KeyUp for keys that were not suppressed.
func DefaultEdit(ev KeyEvent, text string, caret int) (string, int) {
	if caret < 0 {
		caret = 0
	}
	if caret > len(text) {
		caret = len(text)
	}
	switch ev.Key {
	case KeyRune:
		if !ev.Ctrl {
			text = text[:caret] + string(ev.Rune) + text[caret:]
			caret++
		}
	case KeyBackspace:
		if caret > 0 {
			text = text[:caret-1] + text[caret:]
			caret--
		}
	case KeyDelete:
		if caret < len(text) {
			text = text[:caret] + text[caret+1:]
		}
	case KeyLeft:
		if caret > 0 {
			caret--
		}
	case KeyRight:
		if caret < len(text) {
			caret++
		}
	case KeyHome:
		caret = 0
	case KeyEnd:
		caret = len(text)
	}
	return text, caret
}

// KeyUp runs post-insertion normalization, after the character (if allowed)
// has landed in the field via its default behavior. Any interior edit
// triggers a full recompute with the caret moved to the end; incremental
// caret tracking mid-string is unreliable once separators shift. The
// re-entrancy latch is always cleared.
func KeyUp(st *State, ev KeyEvent, snap Snapshot) Action {
	st.Wait = false

	cfg := st.Cfg
	switch {
	case ev.ctrlChord('v'), ev.ctrlChord('x'):
		// Bulk content change via paste or cut: reformat wholesale. The
		// caret only moves when the field can report one.
		text := cfg.Remask(snap.Text)
		act := Action{SetText: true, Text: text}
		if snap.CaretKnown {
			act.SetCaret = true
			act.Caret = len(text)
		}
		return act

	case ev.Ctrl:
		// Select-all, copy and other chords leave the content alone.
		return Action{}

	case ev.Key == KeyTab && ev.Shift:
		return Action{}
	}

	if ev.Navigation() || !snap.CaretKnown {
		return Action{}
	}

	text := cfg.Remask(snap.Text)
	caret := len(text)

	// Caret landed on a separator run: materialize the run's separators
	// into the display and advance past them to the next placeholder.
	if len(text) > 0 && mask.IsLiteral(cfg.Mask, cfg.Fill, caret) {
		end := mask.RunEnd(cfg.Mask, cfg.Fill, caret)
		text += string(cfg.Mask[caret:end])
		caret = end
	}

	return Action{SetText: true, Text: text, SetCaret: true, Caret: caret}
}
