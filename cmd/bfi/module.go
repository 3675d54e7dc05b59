package main

import (
	"github.com/bmoneill/bfi/bficonfigs"
	"github.com/bmoneill/bfi/bfvm"
	"github.com/bmoneill/bfi/compiles"
	"github.com/bmoneill/bfi/sessions"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Sessions  sessions.Module
	Compiles  compiles.Module
	BFConfigs bficonfigs.Module
}

func (Module) Params(
	tapeSize bficonfigs.TapeSize,
	eofPolicy bfvm.EOFPolicy,
) bfvm.Params {
	return bfvm.Params{
		TapeSize:        int(tapeSize),
		EOFPolicy:       eofPolicy,
		Debug:           *debugMode,
		DisableExtended: *noExtended,
	}
}
