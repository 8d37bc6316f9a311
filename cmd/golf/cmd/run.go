package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/maruel/natural"
	"github.com/spf13/cobra"

	"github.com/golf-lang/golf/internal/config"
	"github.com/golf-lang/golf/internal/interp"
	"github.com/golf-lang/golf/internal/jsonout"
	"github.com/golf-lang/golf/internal/value"
)

var (
	runCodeFlag         string
	runCodePath         string
	runInputFlag        string
	runInputPath        string
	runInputFromStdin   bool
	runNoImplicitOutput bool
	runPreludePath      string
	runFormat           string
	runTrace            bool
	runDumpVars         bool
)

var runCmd = &cobra.Command{
	Use:   "run [file] [-- args...]",
	Short: "Run a golf program",
	Long: `Run a golf program from a positional file, --code-path, or an inline
-e string. The initial stack value comes from trailing "-- args" (as an
Arr of Strs), --input-path, -i, or stdin (-s).`,
	Args: cobra.ArbitraryArgs,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runCodeFlag, "code", "e", "", "inline program source")
	runCmd.Flags().StringVar(&runCodePath, "code-path", "", "read program source from a file")
	runCmd.Flags().StringVarP(&runInputFlag, "input", "i", "", "inline initial Str value")
	runCmd.Flags().StringVar(&runInputPath, "input-path", "", "read the initial Str value from a file")
	runCmd.Flags().BoolVarP(&runInputFromStdin, "input-from-stdin", "s", false, "read the initial Str value from stdin")
	runCmd.Flags().BoolVarP(&runNoImplicitOutput, "no-implicit-output", "q", false, "skip the final wrap-and-puts of the stack")
	runCmd.Flags().StringVar(&runPreludePath, "prelude", "", "bind variables from a YAML prelude file before running")
	runCmd.Flags().StringVar(&runFormat, "format", "text", `final-stack output format: "text" or "json"`)
	runCmd.Flags().BoolVar(&runTrace, "trace", false, "trace execution to stderr")
	runCmd.Flags().BoolVar(&runDumpVars, "dump-vars", false, "print variable bindings after execution")
}

func runRun(cmd *cobra.Command, args []string) error {
	dash := cmd.ArgsLenAtDash()
	var fileArgs, trailingArgs []string
	if dash < 0 {
		fileArgs = args
	} else {
		fileArgs = args[:dash]
		trailingArgs = args[dash:]
	}

	src, err := resolveCode(runCodePath, runCodeFlag, fileArgs)
	if err != nil {
		return err
	}

	initial, err := resolveInitial(trailingArgs)
	if err != nil {
		return err
	}

	in := interp.New(os.Stdout)
	if runTrace {
		in.SetTrace(os.Stderr)
	}
	if runPreludePath != "" {
		prelude, err := config.LoadPrelude(runPreludePath)
		if err != nil {
			return err
		}
		for name, v := range prelude {
			in.Bind(name, v)
		}
	}

	stack, err := in.Run(src, initial)
	if err != nil {
		return err
	}

	if !runNoImplicitOutput {
		if err := writeFinalStack(os.Stdout, stack, runFormat); err != nil {
			return err
		}
	}

	if runDumpVars {
		dumpVars(os.Stdout, in.Vars())
	}

	return nil
}

// resolveCode resolves the program's source bytes: --code-path, then -e,
// then a positional file argument, in that order of precedence.
func resolveCode(codePath, code string, fileArgs []string) ([]byte, error) {
	if codePath != "" {
		return os.ReadFile(codePath)
	}
	if code != "" {
		return []byte(code), nil
	}
	if len(fileArgs) >= 1 {
		return os.ReadFile(fileArgs[0])
	}
	return nil, fmt.Errorf("provide a file, --code-path, or -e/--code")
}

// resolveInitial resolves the initial stack value: trailing "-- args" win
// as an Arr of Strs, then --input-path, then -i/--input, then -s/stdin;
// nil (nothing pushed) if none are given.
func resolveInitial(trailingArgs []string) (value.Value, error) {
	if len(trailingArgs) > 0 {
		items := make([]value.Value, len(trailingArgs))
		for i, a := range trailingArgs {
			items[i] = value.NewStr(a)
		}
		return value.NewArr(items), nil
	}
	if runInputPath != "" {
		b, err := os.ReadFile(runInputPath)
		if err != nil {
			return nil, err
		}
		return value.NewStr(string(b)), nil
	}
	if runInputFlag != "" {
		return value.NewStr(runInputFlag), nil
	}
	if runInputFromStdin {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		return value.NewStr(string(b)), nil
	}
	return nil, nil
}

func writeFinalStack(w io.Writer, stack []value.Value, format string) error {
	switch format {
	case "json":
		doc, err := jsonout.Render(stack)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, doc)
		return err
	case "text", "":
		_, err := fmt.Fprintln(w, value.ToGS(value.NewArr(stack)))
		return err
	default:
		return fmt.Errorf("unknown --format %q", format)
	}
}

func dumpVars(w io.Writer, vars map[string]value.Value) {
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return natural.Less(names[i], names[j]) })
	for _, name := range names {
		fmt.Fprintf(w, "%s = %s\n", name, value.Inspect(vars[name]))
	}
}
