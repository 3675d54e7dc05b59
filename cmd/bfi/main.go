package main

import (
	"context"
	"io"
	"os"

	"github.com/bmoneill/bfi/bfvm"
	"github.com/bmoneill/bfi/cmds"
	"github.com/bmoneill/bfi/compiles"
	"github.com/bmoneill/bfi/modes"
	"github.com/bmoneill/bfi/sessions"
	"github.com/bmoneill/bfi/vars"
	"github.com/reusee/dscope"
)

var (
	replMode   = cmds.Switch("-r")
	debugMode  = cmds.Switch("-d")
	noExtended = cmds.Switch("-s")
	compileBin = cmds.Switch("-c")
	compileC   = cmds.Switch("-C")
	outputPath = cmds.Var[string]("-o")
)

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	args := cmds.Args()

	switch {

	case *compileC:
		scope.Call(func(
			compileToC compiles.CompileToC,
		) {
			src := openSource(args)
			defer src.Close()
			out := vars.FirstNonZero(*outputPath, "./a.out.c")
			ce(compileToC(ctx, src, out))
		})

	case *compileBin:
		scope.Call(func(
			buildBinary compiles.BuildBinary,
		) {
			src := openSource(args)
			defer src.Close()
			out := vars.FirstNonZero(*outputPath, "./a.out")
			ce(buildBinary(ctx, src, out))
		})

	case *replMode:
		scope.Call(func(
			newSession sessions.NewSession,
			params bfvm.Params,
		) {
			params.REPL = true
			ce(newSession(params).RunREPL(ctx))
		})

	default:
		if len(args) == 0 {
			cmds.PrintUsage()
			os.Exit(1)
		}
		scope.Call(func(
			newSession sessions.NewSession,
			params bfvm.Params,
		) {
			ce(newSession(params).RunFile(ctx, args[0]))
		})

	}

}

// openSource picks the program stream for the compile modes, a file
// when given or stdin otherwise.
func openSource(args []string) io.ReadCloser {
	if len(args) == 0 {
		return os.Stdin
	}
	f, err := os.Open(args[0])
	ce(err)
	return f
}

func ce(err error) {
	if err == nil {
		return
	}
	os.Stderr.WriteString(err.Error())
	os.Stderr.WriteString("\n")
	os.Exit(1)
}
