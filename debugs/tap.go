package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/bmoneill/bfi/cmds"
	"github.com/bmoneill/bfi/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var tapEnabled = cmds.Switch("-tap")

// Tap drops into an interactive starlark session with the given
// globals bound, for poking at engine state. It is a no-op unless the
// -tap command is given.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	if !*tapEnabled {
		return func(ctx context.Context, what string, globals map[string]any) {}
	}

	return func(ctx context.Context, what string, globals map[string]any) {
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Collect(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		mappings := make(starlark.StringDict)
		for name, value := range globals {
			mappings[name] = toStarlarkValue(value)
		}

		thread := &starlark.Thread{
			Name: "repl",
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, mappings)
	}
}
