package bficonfigs

import (
	"testing"

	"github.com/bmoneill/bfi/bfvm"
	"github.com/bmoneill/bfi/configs"
	"github.com/reusee/dscope"
)

func TestDefaults(t *testing.T) {
	dscope.New(
		new(Module),
	).Fork(
		dscope.Provide(configs.NewLoader(nil, schema)),
	).Call(func(
		tapeSize TapeSize,
		inputMax InputMax,
		eofPolicy bfvm.EOFPolicy,
		compiler Compiler,
		flags CompileFlags,
	) {
		if tapeSize != bfvm.DefaultTapeSize {
			t.Fatalf("got %v", tapeSize)
		}
		if inputMax != bfvm.DefaultInputMax {
			t.Fatalf("got %v", inputMax)
		}
		if eofPolicy != bfvm.EOFZero {
			t.Fatalf("got %v", eofPolicy)
		}
		if compiler != "cc" {
			t.Fatalf("got %v", compiler)
		}
		if len(flags) != 2 || flags[0] != "-O2" || flags[1] != "-s" {
			t.Fatalf("got %v", flags)
		}
	})
}

func TestFlagOverride(t *testing.T) {
	*tapeSizeFlag = 512
	*eofPolicyFlag = "unchanged"
	t.Cleanup(func() {
		*tapeSizeFlag = 0
		*eofPolicyFlag = ""
	})

	dscope.New(
		new(Module),
	).Fork(
		dscope.Provide(configs.NewLoader(nil, schema)),
	).Call(func(
		tapeSize TapeSize,
		eofPolicy bfvm.EOFPolicy,
	) {
		if tapeSize != 512 {
			t.Fatalf("got %v", tapeSize)
		}
		if eofPolicy != bfvm.EOFUnchanged {
			t.Fatalf("got %v", eofPolicy)
		}
	})
}

func TestConfigFile(t *testing.T) {
	dscope.New(
		new(Module),
	).Fork(
		dscope.Provide(configs.NewLoader([]string{"testdata/bf.cue"}, schema)),
	).Call(func(
		tapeSize TapeSize,
		eofPolicy bfvm.EOFPolicy,
		compiler Compiler,
	) {
		if tapeSize != 8192 {
			t.Fatalf("got %v", tapeSize)
		}
		if eofPolicy != bfvm.EOFDecrement {
			t.Fatalf("got %v", eofPolicy)
		}
		if compiler != "gcc" {
			t.Fatalf("got %v", compiler)
		}
	})
}
