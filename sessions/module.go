package sessions

import (
	"os"
	"path/filepath"

	"github.com/bmoneill/bfi/bficonfigs"
	"github.com/bmoneill/bfi/bfvm"
	"github.com/bmoneill/bfi/debugs"
	"github.com/bmoneill/bfi/logs"
	"github.com/bmoneill/bfi/modes"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs      logs.Module
	Debugs    debugs.Module
	BFConfigs bficonfigs.Module
}

// HistoryPath is where the REPL prompt history lives; empty disables
// history.
type HistoryPath string

func (Module) HistoryPath(
	mode modes.Mode,
) HistoryPath {
	if mode != modes.ModeProduction {
		return ""
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return HistoryPath(filepath.Join(dir, "bfi-history"))
}

type NewSession func(params bfvm.Params) *Session

func (Module) NewSession(
	logger logs.Logger,
	tap debugs.Tap,
	inputMax bficonfigs.InputMax,
	historyPath HistoryPath,
) NewSession {
	return func(params bfvm.Params) *Session {
		machine := bfvm.NewMachine(params)
		machine.Prog = make([]byte, 0, int(inputMax))
		return &Session{
			Machine:     machine,
			Logger:      logger,
			Tap:         tap,
			HistoryPath: string(historyPath),
		}
	}
}
