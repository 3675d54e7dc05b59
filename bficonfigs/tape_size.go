package bficonfigs

import (
	"github.com/bmoneill/bfi/bfvm"
	"github.com/bmoneill/bfi/cmds"
	"github.com/bmoneill/bfi/configs"
	"github.com/bmoneill/bfi/vars"
)

type TapeSize int

var tapeSizeFlag = cmds.Var[int]("-t")

func (Module) TapeSize(
	loader configs.Loader,
) TapeSize {
	return TapeSize(vars.FirstNonZero(
		*tapeSizeFlag,
		configs.First[int](loader, "tapeSize"),
		bfvm.DefaultTapeSize,
	))
}
