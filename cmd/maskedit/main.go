// Command maskedit is an interactive demo of masked field editing: it binds
// the inputs of an HTML form and lets you edit them from the terminal, with
// every keystroke filtered and reformatted against the field's mask.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/eugenmihailescu/myinputmask/binding"
	"github.com/eugenmihailescu/myinputmask/config"
	"github.com/eugenmihailescu/myinputmask/field"
	"github.com/eugenmihailescu/myinputmask/htmlform"
	"github.com/eugenmihailescu/myinputmask/term"
)

const sampleForm = `<html><body><form action="/signup" method="post">
<input type="text" name="phone" placeholder="(___) ___-____" pattern="[0-9]">
<input type="text" name="date" placeholder="__/__/____" pattern="[0-9]">
<input type="text" name="zip" placeholder="_____" pattern="[0-9]">
</form></body></html>`

func main() {
	configPath := flag.String("config", "maskedinput.toml", "path to TOML config")
	htmlPath := flag.String("html", "", "HTML form to edit (builtin sample when empty)")
	initConfig := flag.Bool("init-config", false, "print a starter config and exit")
	renderOut := flag.Bool("render", false, "print the edited HTML document on exit")
	flag.Parse()

	if *initConfig {
		fmt.Print(config.DefaultTOML())
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "maskedit: %v\n", err)
		os.Exit(1)
	}

	var src strings.Reader
	if *htmlPath != "" {
		data, err := os.ReadFile(*htmlPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "maskedit: %v\n", err)
			os.Exit(1)
		}
		src.Reset(string(data))
	} else {
		src.Reset(sampleForm)
	}

	doc, err := htmlform.Parse(&src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "maskedit: parsing form: %v\n", err)
		os.Exit(1)
	}

	if len(cfg.Fields) == 0 {
		// No config: bind every input off its own placeholder/pattern attrs.
		cfg.Fields["input"] = config.Field{}
	}

	reg := binding.New(cfg.Options(doc.Locator()))
	if cfg.Autoinit() {
		if err := reg.Init(); err != nil {
			fmt.Fprintf(os.Stderr, "maskedit: %v\n", err)
			os.Exit(1)
		}
	}

	handles := reg.Handles()
	if len(handles) == 0 {
		fmt.Fprintln(os.Stderr, "maskedit: no fields matched the configured selectors")
		os.Exit(1)
	}

	t, err := term.NewTerminal(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "maskedit: %v\n", err)
		os.Exit(1)
	}
	if err := t.EnterRawMode(); err != nil {
		fmt.Fprintf(os.Stderr, "maskedit: %v\n", err)
		os.Exit(1)
	}

	fmt.Print("Tab: next field  Enter: done  Esc: quit\r\n")
	edit(reg, handles)
	t.RestoreMode()

	fmt.Println()
	for _, h := range handles {
		v, err := reg.Value(h)
		if err != nil {
			fmt.Fprintf(os.Stderr, "maskedit: %v\n", err)
			continue
		}
		fmt.Printf("%s = %q\n", fieldName(h), v)
	}

	if *renderOut {
		fmt.Println()
		if err := doc.Render(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "maskedit: rendering: %v\n", err)
		}
		fmt.Println()
	}
}

// edit runs the raw-mode input loop over the bound fields.
func edit(reg *binding.Registry, handles []binding.Handle) {
	focus := 0
	drawLine(handles[focus])

	buf := make([]byte, 64)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil {
			return
		}

		// One read can carry several keystrokes (a terminal paste arrives
		// as a burst); handle each decoded event in order.
		for _, ev := range term.DecodeKeys(buf, n) {
			switch {
			case ev.Key == field.KeyEscape:
				return

			case ev.Key == field.KeyEnter:
				if focus == len(handles)-1 {
					return
				}
				fallthrough

			case ev.Key == field.KeyTab && !ev.Shift:
				fmt.Print("\r\n")
				focus = (focus + 1) % len(handles)
				drawLine(handles[focus])

			case ev.Key == field.KeyTab && ev.Shift:
				fmt.Print("\r\n")
				focus = (focus + len(handles) - 1) % len(handles)
				drawLine(handles[focus])

			default:
				h := handles[focus]
				if !reg.KeyDown(h, ev) {
					caret, _ := h.Caret()
					text, pos := field.DefaultEdit(ev, h.Text(), caret)
					h.SetText(text)
					h.SetCaret(pos)
				}
				reg.KeyUp(h, ev)
				drawLine(h)
			}
		}
	}
}

// drawLine repaints the focused field's line with the caret positioned.
func drawLine(h binding.Handle) {
	name := fieldName(h)
	mask, _ := h.Attr(binding.AttrMask)
	text := h.Text()

	// Show the unfilled remainder of the template dimmed after the text.
	hint := ""
	if len(text) < len(mask) {
		hint = "\033[2m" + mask[len(text):] + "\033[0m"
	}

	fmt.Printf("\r%s%s: %s%s", term.ClearLine, name, text, hint)

	caret, ok := h.Caret()
	if !ok {
		caret = len(text)
	}
	fmt.Printf("\033[%dG", len(name)+3+caret)
}

func fieldName(h binding.Handle) string {
	if f, ok := h.(*htmlform.Field); ok && f.Name() != "" {
		return f.Name()
	}
	return "field"
}
