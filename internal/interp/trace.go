package interp

import (
	"fmt"

	"github.com/kr/pretty"
	"github.com/kr/text"

	"github.com/golf-lang/golf/internal/lexer"
	"github.com/golf-lang/golf/internal/value"
)

// traceToken writes one trace line for tok after it has been dispatched,
// showing the token's lexeme and the resulting stack. Lines from a nested
// evalTokens (a block, a string run as code, a variable go) are indented one
// level per level of nesting.
func (in *Interpreter) traceToken(tok lexer.Token) {
	line := fmt.Sprintf("%s => %s\n", tok.Literal, pretty.Sprint(in.renderStack()))
	indent := ""
	for i := 1; i < in.traceDepth; i++ {
		indent += "  "
	}
	if indent != "" {
		line = text.Indent(line, indent)
	}
	fmt.Fprint(in.traceOut, line)
}

func (in *Interpreter) renderStack() []string {
	out := make([]string, len(in.stack))
	for i, v := range in.stack {
		out[i] = value.Inspect(v)
	}
	return out
}
