package interp

import (
	"math/big"

	"github.com/golf-lang/golf/internal/value"
)

// pPrint implements `print`: pop and write its to_gs rendering, with no
// trailing newline.
func (in *Interpreter) pPrint() error {
	v, err := in.pop()
	if err != nil {
		return err
	}
	_, werr := in.output.Write([]byte(value.ToGS(v)))
	return werr
}

// pPuts implements `puts`: like print, plus a trailing newline.
func (in *Interpreter) pPuts() error {
	v, err := in.pop()
	if err != nil {
		return err
	}
	_, werr := in.output.Write([]byte(value.ToGS(v) + "\n"))
	return werr
}

// pInspectPrint implements `p`: pop and write its debug rendering, plus a
// trailing newline.
func (in *Interpreter) pInspectPrint() error {
	v, err := in.pop()
	if err != nil {
		return err
	}
	_, werr := in.output.Write([]byte(value.Inspect(v) + "\n"))
	return werr
}

// pRand implements `rand`: pop a positive Int n, push a uniformly
// distributed Int in [0,n); any other Int pushes 0.
func (in *Interpreter) pRand() error {
	v, err := in.pop()
	if err != nil {
		return err
	}
	n, ok := v.(*value.Int)
	if !ok {
		return newError(TypeError, "rand on %s", v.Kind())
	}
	if n.V.Sign() <= 0 {
		in.push(value.NewInt(0))
		return nil
	}
	draw := new(big.Int).SetUint64(in.nextRand())
	draw.Mod(draw, n.V)
	in.push(value.NewBigInt(draw))
	return nil
}
