// Package binding wires mask configurations to form fields. Fields are
// located through an injected Locator capability and manipulated through
// Handle, so the package works the same over an HTML document, a terminal
// form, or synthetic test fields.
package binding

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/eugenmihailescu/myinputmask/field"
	"github.com/eugenmihailescu/myinputmask/mask"
)

// Attribute names written to each bound field at bind time and readable by
// any caller afterwards.
const (
	AttrMask    = "data-mask"
	AttrPattern = "data-pattern"
	AttrStrict  = "data-strict"
	AttrOwner   = "data-maskedinput" // marker: id of the owning registry
)

// Handle is the capability to read and write one field: its attributes, its
// current text, and its caret. Caret returns false when the field cannot
// report one; caret-dependent editing degrades to plain filtering then.
// Handles must be comparable; the registry keys its per-field state on them.
type Handle interface {
	Attr(name string) (string, bool)
	SetAttr(name, value string)
	Text() string
	SetText(string)
	Caret() (int, bool)
	SetCaret(int)
	Selection() int
}

// Locator is the capability to enumerate the fields a selector addresses.
type Locator interface {
	Resolve(selector string) []Handle
}

// FieldConfig is the per-selector mask configuration. Zero-valued Mask and
// Pattern fall back to the field's own placeholder and pattern attributes at
// bind time. Strict nil means the default, true; an explicit false is
// honored.
type FieldConfig struct {
	Mask    string
	Pattern string
	Strict  *bool
}

// Options configures a registry.
type Options struct {
	Fill    byte // placeholder symbol, '_' when zero
	Fields  map[string]FieldConfig
	Locator Locator
}

// Registry owns the bound fields of one binding instance: their compiled
// configs and controller state, keyed by handle.
type Registry struct {
	id      string
	fill    byte
	fields  map[string]FieldConfig
	locator Locator
	states  map[Handle]*field.State
	bound   []Handle // in bind order
}

// New creates a registry with a fresh instance marker.
func New(opts Options) *Registry {
	fill := opts.Fill
	if fill == 0 {
		fill = mask.DefaultFill
	}
	return &Registry{
		id:      uuid.NewString(),
		fill:    fill,
		fields:  opts.Fields,
		locator: opts.Locator,
		states:  make(map[Handle]*field.State),
	}
}

// ID returns the registry's instance marker, as written to bound fields.
func (r *Registry) ID() string {
	return r.id
}

// Init resolves every configured selector and binds the resulting fields.
// Safe to call multiple times: fields already carrying a binding marker are
// skipped. A malformed pattern fails fast with a configuration error; the
// offending field stays unbound.
func (r *Registry) Init() error {
	for selector, cfg := range r.fields {
		for _, h := range r.locator.Resolve(selector) {
			if owner, ok := h.Attr(AttrOwner); ok && owner != "" {
				continue
			}
			if err := r.bind(h, cfg); err != nil {
				return fmt.Errorf("binding %q: %w", selector, err)
			}
		}
	}
	return nil
}

func (r *Registry) bind(h Handle, cfg FieldConfig) error {
	m := cfg.Mask
	if m == "" {
		m, _ = h.Attr("placeholder")
	}
	p := cfg.Pattern
	if p == "" {
		p, _ = h.Attr("pattern")
	}
	strict := true
	if cfg.Strict != nil {
		strict = *cfg.Strict
	}

	compiled, err := mask.Compile(mask.Config{
		Mask:    mask.Template(m),
		Pattern: p,
		Strict:  strict,
		Fill:    r.fill,
	})
	if err != nil {
		return err
	}

	h.SetAttr(AttrMask, m)
	h.SetAttr(AttrPattern, compiled.Pattern)
	h.SetAttr(AttrStrict, strconv.FormatBool(strict))
	h.SetAttr(AttrOwner, r.id)

	r.states[h] = field.NewState(compiled)
	r.bound = append(r.bound, h)
	return nil
}

// Handles returns the fields bound by this registry, in bind order.
func (r *Registry) Handles() []Handle {
	return r.bound
}

// Bound reports whether this registry owns the field.
func (r *Registry) Bound(h Handle) bool {
	_, ok := r.states[h]
	return ok
}

func snapshot(h Handle) field.Snapshot {
	caret, ok := h.Caret()
	return field.Snapshot{
		Text:       h.Text(),
		Caret:      caret,
		CaretKnown: ok,
		Selection:  h.Selection(),
	}
}

func apply(h Handle, act field.Action) {
	if act.SetText {
		h.SetText(act.Text)
	}
	if act.SetCaret {
		h.SetCaret(act.Caret)
	}
}

// KeyDown feeds a key-press notification to the field's controller and
// reports whether the host must suppress the key's default handling.
// Unbound fields are ignored. When the controller wants to suppress a
// non-cancelable event, its mutation is withheld too: the default edit is
// going to land either way, and applying both would edit the field twice.
// Key-up normalization cleans up what it can afterwards.
func (r *Registry) KeyDown(h Handle, ev field.KeyEvent) bool {
	st, ok := r.states[h]
	if !ok {
		return false
	}
	act := field.KeyDown(st, ev, snapshot(h))
	if act.Suppress && !ev.Cancelable {
		return false
	}
	apply(h, act)
	return act.Suppress
}

// KeyUp runs the post-insertion normalization for the field.
func (r *Registry) KeyUp(h Handle, ev field.KeyEvent) {
	st, ok := r.states[h]
	if !ok {
		return
	}
	apply(h, field.KeyUp(st, ev, snapshot(h)))
}

// Value extracts the field's logical value, the sanctioned way to read a
// masked field's true content. It works from the field's derived-config
// attributes, so it also reads fields bound by another registry instance.
func (r *Registry) Value(h Handle) (string, error) {
	if st, ok := r.states[h]; ok {
		return st.Cfg.Value(h.Text()), nil
	}
	return Value(h)
}

// Value extracts the logical value of any bound field from its attributes.
func Value(h Handle) (string, error) {
	owner, _ := h.Attr(AttrOwner)
	if owner == "" {
		return "", fmt.Errorf("field is not bound")
	}
	m, _ := h.Attr(AttrMask)
	p, _ := h.Attr(AttrPattern)
	strict := true
	if s, ok := h.Attr(AttrStrict); ok {
		v, err := strconv.ParseBool(s)
		if err != nil {
			return "", fmt.Errorf("parsing %s attribute: %w", AttrStrict, err)
		}
		strict = v
	}
	compiled, err := mask.Compile(mask.Config{Mask: mask.Template(m), Pattern: p, Strict: strict})
	if err != nil {
		return "", err
	}
	return compiled.Value(h.Text()), nil
}
