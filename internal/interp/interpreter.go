// Package interp implements golf's evaluator: a token-driven stack machine
// with recursive sub-evaluation of blocks, string-as-code, and variable
// expansion.
package interp

import (
	"fmt"
	"io"
	"math/big"

	"github.com/golf-lang/golf/internal/lexer"
	"github.com/golf-lang/golf/internal/value"
)

// Interpreter holds all evaluator state: the value stack, variable
// bindings, array-bracket low-water marks, and PRNG state. A single
// instance owns everything in-place; there is no sharing between
// Interpreters.
type Interpreter struct {
	stack []value.Value
	vars  map[string]value.Value
	marks []int
	rng   uint64

	output io.Writer

	trace      bool
	traceOut   io.Writer
	traceDepth int
}

// New creates an Interpreter that writes print/puts/p output to w.
func New(w io.Writer) *Interpreter {
	in := &Interpreter{
		vars:   make(map[string]value.Value),
		rng:    123456789,
		output: w,
	}
	in.vars["n"] = value.NewStr("\n")
	return in
}

// SetTrace enables execution tracing to traceOut (see trace.go).
func (in *Interpreter) SetTrace(traceOut io.Writer) {
	in.trace = true
	in.traceOut = traceOut
}

// Bind sets a variable binding directly, used by internal/config to load
// prelude values before the program runs.
func (in *Interpreter) Bind(name string, v value.Value) {
	in.vars[name] = v
}

// Vars returns a snapshot of the current variable bindings, used by
// --dump-vars.
func (in *Interpreter) Vars() map[string]value.Value {
	out := make(map[string]value.Value, len(in.vars))
	for k, v := range in.vars {
		out[k] = v
	}
	return out
}

// Stack returns a snapshot of the current stack, bottom first.
func (in *Interpreter) Stack() []value.Value {
	return append([]value.Value{}, in.stack...)
}

// Run prepares the evaluator with initial pre-pushed (if non-nil) and
// executes src, returning the final stack. Every expected failure mode
// (parse, underflow, type, arithmetic) reaches here as a returned
// *RuntimeError; recover only guards against a stray implementation bug
// (e.g. an "unreachable" panic in an exhaustive kind switch) so it still
// surfaces as a diagnostic instead of a raw Go stack trace.
func (in *Interpreter) Run(src []byte, initial value.Value) (stack []value.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			if rerr, ok := r.(*RuntimeError); ok {
				err = rerr
				return
			}
			err = newError(internalError, "%v", r)
		}
	}()
	if initial != nil {
		in.push(initial)
	}
	if err := in.runBytes(src); err != nil {
		return nil, err
	}
	return in.Stack(), nil
}

// runBytes tokenizes src and evaluates the resulting token stream. It is
// the recursive re-entry point used for blocks, `~` on Str/Blk, and `go`
// of a variable holding a Blk.
func (in *Interpreter) runBytes(src []byte) error {
	toks, err := lexer.Tokenize(src)
	if err != nil {
		return newError(ParseError, "%s", err)
	}
	return in.evalTokens(toks)
}

func (in *Interpreter) evalTokens(toks []lexer.Token) error {
	if in.trace {
		in.traceDepth++
		defer func() { in.traceDepth-- }()
	}
	for i := 0; i < len(toks); i++ {
		tok := toks[i]
		if tok.Type == lexer.EOF || tok.Type == lexer.COMMENT {
			continue
		}
		if tok.Type == lexer.SYMBOL && tok.Literal == ":" {
			i++
			if i >= len(toks) || toks[i].Type == lexer.EOF {
				return newError(ParseError, "`:` with no following token")
			}
			name := toks[i].Literal
			v, err := in.top()
			if err != nil {
				return err
			}
			in.vars[name] = v
			continue
		}
		if err := in.dispatch(tok); err != nil {
			return err
		}
		if in.trace {
			in.traceToken(tok)
		}
	}
	return nil
}

// dispatch pushes the value a literal token denotes, goes a bound
// variable's value, or runs a primitive.
func (in *Interpreter) dispatch(tok lexer.Token) error {
	switch tok.Type {
	case lexer.INT:
		n, ok := new(big.Int).SetString(tok.Literal, 10)
		if !ok {
			return newError(ParseError, "malformed integer literal %q", tok.Literal)
		}
		in.push(value.NewBigInt(n))
		return nil
	case lexer.SQSTR:
		in.push(value.NewStr(string(value.DecodeSingleQuoted([]byte(tok.Literal)))))
		return nil
	case lexer.DQSTR:
		in.push(value.NewStr(string(value.DecodeDoubleQuoted([]byte(tok.Literal)))))
		return nil
	case lexer.BLOCK:
		in.push(value.NewBlk([]byte(tok.Literal)))
		return nil
	case lexer.IDENT:
		if v, ok := in.vars[tok.Literal]; ok {
			return in.goValue(v)
		}
		return in.runPrimitive(tok.Literal)
	case lexer.SYMBOL:
		if v, ok := in.vars[tok.Literal]; ok {
			return in.goValue(v)
		}
		return in.runPrimitive(tok.Literal)
	default:
		return newError(ParseError, "unexpected token %s", tok)
	}
}

// goValue executes v if it is a Blk, otherwise pushes it.
func (in *Interpreter) goValue(v value.Value) error {
	if b, ok := v.(*value.Blk); ok {
		return in.runBytes(b.Bytes)
	}
	in.push(value.Copy(v))
	return nil
}

// nextRand advances the PRNG (a 64-bit LCG) and returns the new state.
func (in *Interpreter) nextRand() uint64 {
	in.rng = in.rng*1664525 + 1013904223
	return in.rng
}
