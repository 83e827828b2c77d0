// Command automata is a CLI tool for working with finite automata:
// validating and running definitions, converting between DFA and NFA,
// and exporting diagrams and generated recognizers.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/ha1tch/automata/pkg/codegen"
	"github.com/ha1tch/automata/pkg/fa"
	"github.com/ha1tch/automata/pkg/fafile"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "automata",
		Short:         "Finite automata toolkit",
		Long:          "Validate, run, convert, and render DFA and NFA definitions.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		validateCmd(),
		acceptCmd(),
		convertCmd(),
		infoCmd(),
		dotCmd(),
		pngCmd(),
		codegenCmd(),
	)
	return root
}

func kindOf(m fa.FA) string {
	switch m.(type) {
	case *fa.DFA:
		return fafile.KindDFA
	case *fa.NFA:
		return fafile.KindNFA
	}
	return "unknown"
}

// splitInput turns the input argument into symbols: runes by default, or
// separator-delimited tokens for multi-character alphabets.
func splitInput(input, sep string) []string {
	if sep == "" {
		return fa.Symbols(input)
	}
	if input == "" {
		return nil
	}
	return strings.Split(input, sep)
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate an automaton definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := fafile.Load(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s: valid %s (%d states, %d symbols)\n",
				args[0], kindOf(m), len(m.States()), len(m.InputSymbols()))
			return nil
		},
	}
}

func acceptCmd() *cobra.Command {
	var sep string
	var trace bool
	cmd := &cobra.Command{
		Use:   "accept <file> <input>",
		Short: "Test whether an automaton accepts an input string",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := fafile.Load(args[0])
			if err != nil {
				return err
			}
			input := splitInput(args[1], sep)

			if trace {
				if err := printTrace(m, input); err != nil {
					return err
				}
			}

			switch a := m.(type) {
			case *fa.DFA:
				stop, err := a.Accept(input)
				if err != nil {
					return err
				}
				fmt.Printf("accepted, stopped on %s\n", stop)
			case *fa.NFA:
				stop, err := a.Accept(input)
				if err != nil {
					return err
				}
				fmt.Printf("accepted, stopped on {%s}\n", strings.Join(stop, ","))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&sep, "sep", "", "symbol separator (default: one symbol per rune)")
	cmd.Flags().BoolVar(&trace, "trace", false, "print each simulation step")
	return cmd
}

func printTrace(m fa.FA, input []string) error {
	r, err := fa.NewRunner(m)
	if err != nil {
		return err
	}
	fmt.Printf("start: %s\n", r.CurrentState())
	for _, symbol := range input {
		if err := r.Step(symbol); err != nil {
			return err
		}
		fmt.Printf("%6s: %s\n", symbol, r.CurrentState())
	}
	return nil
}

func convertCmd() *cobra.Command {
	var to, output string
	var pretty bool
	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Convert between DFA and NFA",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := fafile.Load(args[0])
			if err != nil {
				return err
			}

			var converted fa.FA
			switch to {
			case fafile.KindDFA:
				switch a := m.(type) {
				case *fa.DFA:
					converted, err = fa.CopyDFA(a)
				case *fa.NFA:
					converted = fa.FromNFA(a)
				}
			case fafile.KindNFA:
				switch a := m.(type) {
				case *fa.DFA:
					converted = fa.FromDFA(a)
				case *fa.NFA:
					converted, err = fa.CopyNFA(a)
				}
			default:
				return errors.Newf("unknown target kind %q", to)
			}
			if err != nil {
				return err
			}

			if output == "" {
				data, err := fafile.ToJSON(converted, pretty)
				if err != nil {
					return err
				}
				fmt.Println(string(data))
				return nil
			}
			return fafile.Save(output, converted, pretty)
		},
	}
	cmd.Flags().StringVar(&to, "to", fafile.KindDFA, "target kind (dfa or nfa)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent JSON output")
	return cmd
}

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Show automaton details and its transition table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := fafile.Load(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Kind:     %s\n", kindOf(m))
			fmt.Printf("States:   %s\n", strings.Join(m.States(), ", "))
			fmt.Printf("Alphabet: %s\n", strings.Join(m.InputSymbols(), ", "))
			fmt.Printf("Initial:  %s\n", m.Initial())
			fmt.Printf("Final:    %s\n", strings.Join(m.FinalStates(), ", "))
			fmt.Println()
			fafile.WriteTable(os.Stdout, m)
			return nil
		},
	}
}

func dotCmd() *cobra.Command {
	var title string
	cmd := &cobra.Command{
		Use:   "dot <file>",
		Short: "Generate Graphviz DOT output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := fafile.Load(args[0])
			if err != nil {
				return err
			}
			fmt.Print(fafile.GenerateDOT(m, title))
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "diagram title")
	return cmd
}

func pngCmd() *cobra.Command {
	var output, title string
	var width, height int
	cmd := &cobra.Command{
		Use:   "png <file>",
		Short: "Render the automaton diagram to PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := fafile.Load(args[0])
			if err != nil {
				return err
			}
			opts := fafile.DefaultPNGOptions()
			opts.Width = width
			opts.Height = height
			opts.Title = title

			f, err := os.Create(output)
			if err != nil {
				return errors.Wrapf(err, "creating %s", output)
			}
			defer f.Close()
			return fafile.RenderPNG(m, f, opts)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "automaton.png", "output file")
	cmd.Flags().StringVar(&title, "title", "", "diagram title")
	cmd.Flags().IntVar(&width, "width", 800, "image width")
	cmd.Flags().IntVar(&height, "height", 600, "image height")
	return cmd
}

func codegenCmd() *cobra.Command {
	var output, pkg, typeName string
	cmd := &cobra.Command{
		Use:   "codegen <file>",
		Short: "Generate a standalone Go recognizer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := fafile.Load(args[0])
			if err != nil {
				return err
			}
			src := codegen.GenerateGo(m, pkg, typeName)
			if output == "" {
				fmt.Print(src)
				return nil
			}
			return errors.Wrapf(os.WriteFile(output, []byte(src), 0644), "writing %s", output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&pkg, "package", "recognizer", "package name for generated code")
	cmd.Flags().StringVar(&typeName, "type", "Recognizer", "name prefix for generated identifiers")
	return cmd
}
