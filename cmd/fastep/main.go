// Command fastep is a TUI for stepping through an automaton
// interactively: feed it input symbols and watch the live state set.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/ha1tch/automata/pkg/fa"
	"github.com/ha1tch/automata/pkg/fafile"
)

var (
	styleDefault   = tcell.StyleDefault
	styleTitle     = tcell.StyleDefault.Bold(true).Foreground(tcell.ColorWhite)
	styleState     = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleAccepting = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleRejecting = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleDead      = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleHistory   = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleHelp      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleError     = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

// Stepper holds the TUI state around a runner.
type Stepper struct {
	screen  tcell.Screen
	runner  *fa.Runner
	name    string
	kind    string
	symbols []string
	input   []string
	message string
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: fastep <file>")
		os.Exit(1)
	}

	m, err := fafile.Load(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runner, err := fa.NewRunner(m)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	kind := "nfa"
	if _, ok := m.(*fa.DFA); ok {
		kind = "dfa"
	}

	st := &Stepper{
		screen:  screen,
		runner:  runner,
		name:    os.Args[1],
		kind:    kind,
		symbols: m.InputSymbols(),
	}
	st.loop()
}

func (st *Stepper) loop() {
	for {
		st.draw()
		ev := st.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			st.screen.Sync()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
				return
			case ev.Key() == tcell.KeyCtrlR:
				st.runner.Reset()
				st.input = nil
				st.message = ""
			case ev.Key() == tcell.KeyRune:
				st.step(string(ev.Rune()))
			}
		}
	}
}

func (st *Stepper) step(symbol string) {
	if err := st.runner.Step(symbol); err != nil {
		st.message = err.Error()
		return
	}
	st.message = ""
	st.input = append(st.input, symbol)
}

func (st *Stepper) draw() {
	st.screen.Clear()
	_, h := st.screen.Size()

	drawText(st.screen, 0, 0, styleTitle,
		fmt.Sprintf("fastep - %s [%s]", st.name, st.kind))
	drawText(st.screen, 0, 2, styleDefault,
		"Alphabet: "+strings.Join(st.symbols, " "))
	drawText(st.screen, 0, 3, styleDefault,
		"Input so far: "+strings.Join(st.input, ""))

	states := st.runner.CurrentStates()
	switch {
	case len(states) == 0:
		drawText(st.screen, 0, 5, styleDead, "States: {} (all branches dead)")
	default:
		drawText(st.screen, 0, 5, styleState, "States: "+st.runner.CurrentState())
	}

	if st.runner.IsAccepting() {
		drawText(st.screen, 0, 6, styleAccepting, "ACCEPTING")
	} else {
		drawText(st.screen, 0, 6, styleRejecting, "not accepting")
	}

	// Most recent steps, newest last
	history := st.runner.History()
	start := 0
	if max := h - 12; len(history) > max && max > 0 {
		start = len(history) - max
	}
	drawText(st.screen, 0, 8, styleHelp, "History:")
	for i, step := range history[start:] {
		drawText(st.screen, 2, 9+i, styleHistory,
			fmt.Sprintf("{%s} --%s--> {%s}",
				strings.Join(step.From, ","), step.Input, strings.Join(step.To, ",")))
	}

	if st.message != "" {
		drawText(st.screen, 0, h-2, styleError, st.message)
	}
	drawText(st.screen, 0, h-1, styleHelp,
		"type a symbol to step | Ctrl-R reset | Esc quit")

	st.screen.Show()
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}
