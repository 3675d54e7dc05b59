package bficonfigs

import (
	"github.com/bmoneill/bfi/bfvm"
	"github.com/bmoneill/bfi/cmds"
	"github.com/bmoneill/bfi/configs"
	"github.com/bmoneill/bfi/logs"
	"github.com/bmoneill/bfi/vars"
)

var eofPolicyFlag = cmds.Var[string]("-e")

func (Module) EOFPolicy(
	loader configs.Loader,
	logger logs.Logger,
) bfvm.EOFPolicy {
	name := vars.FirstNonZero(
		*eofPolicyFlag,
		configs.First[string](loader, "eofPolicy"),
	)
	switch name {
	case "", "zero":
		return bfvm.EOFZero
	case "decrement":
		return bfvm.EOFDecrement
	case "unchanged":
		return bfvm.EOFUnchanged
	}
	logger.Warn("unknown eof policy, using zero",
		"value", name,
	)
	return bfvm.EOFZero
}
