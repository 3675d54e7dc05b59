package bficonfigs

import (
	"strings"

	"github.com/bmoneill/bfi/cmds"
	"github.com/bmoneill/bfi/configs"
	"github.com/bmoneill/bfi/vars"
)

// Compiler is the external C compiler used for binary output.
type Compiler string

// CompileFlags are passed to the compiler before the output and input
// paths.
type CompileFlags []string

var (
	compilerFlag     = cmds.Var[string]("-cc")
	compileFlagsFlag = cmds.Var[string]("-ccflags")
)

func (Module) Compiler(
	loader configs.Loader,
) Compiler {
	return Compiler(vars.FirstNonZero(
		*compilerFlag,
		configs.First[string](loader, "compiler"),
		"cc",
	))
}

func (Module) CompileFlags(
	loader configs.Loader,
) CompileFlags {
	if *compileFlagsFlag != "" {
		return strings.Fields(*compileFlagsFlag)
	}
	if flags := configs.First[[]string](loader, "compileFlags"); len(flags) > 0 {
		return flags
	}
	return CompileFlags{"-O2", "-s"}
}
