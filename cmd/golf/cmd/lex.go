package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/golf-lang/golf/internal/lexer"
)

var lexCodePath string

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a golf program and print the resulting tokens",
	Long: `Tokenize (lex) a golf program and print the resulting token stream,
one token per line: its kind, its lexeme, and for blocks the number of
interior bytes. A pure diagnostic over internal/lexer; nothing is run.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().StringVar(&lexCodePath, "code-path", "", "read code from a file")
}

func runLex(cmd *cobra.Command, args []string) error {
	src, err := readSource(lexCodePath, args)
	if err != nil {
		return err
	}

	toks, err := lexer.Tokenize(src)
	if err != nil {
		return err
	}

	for _, tok := range toks {
		if tok.Type == lexer.EOF {
			fmt.Println("EOF")
			continue
		}
		if tok.Type == lexer.BLOCK {
			fmt.Printf("%-8s %d interior bytes @%s\n", tok.Type, len(tok.Literal), tok.Pos)
			continue
		}
		fmt.Printf("%-8s %q @%s\n", tok.Type, tok.Literal, tok.Pos)
	}
	return nil
}

// readSource resolves a program's source bytes from, in order of
// precedence: an explicit --code-path flag, a positional file argument, or
// an error if neither is given.
func readSource(codePath string, args []string) ([]byte, error) {
	if codePath != "" {
		return os.ReadFile(codePath)
	}
	if len(args) == 1 {
		return os.ReadFile(args[0])
	}
	return nil, fmt.Errorf("provide a file path or --code-path")
}
