package bficonfigs

import (
	"github.com/bmoneill/bfi/bfvm"
	"github.com/bmoneill/bfi/configs"
	"github.com/bmoneill/bfi/vars"
)

// InputMax is the initial capacity of the REPL program buffer.
type InputMax int

func (Module) InputMax(
	loader configs.Loader,
) InputMax {
	return InputMax(vars.FirstNonZero(
		configs.First[int](loader, "inputMax"),
		bfvm.DefaultInputMax,
	))
}
