package compiles

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/bmoneill/bfi/bficonfigs"
	"github.com/bmoneill/bfi/logs"
)

// CompileToC writes the C translation of src to outPath. A failed
// translation leaves no partial file behind.
type CompileToC func(ctx context.Context, src io.Reader, outPath string) error

func (Module) CompileToC(
	logger logs.Logger,
	tapeSize bficonfigs.TapeSize,
) CompileToC {
	return func(ctx context.Context, src io.Reader, outPath string) error {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		if err := Compile(src, f, int(tapeSize)); err != nil {
			f.Close()
			os.Remove(outPath)
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		logger.InfoContext(ctx, "wrote C source",
			"path", outPath,
		)
		return nil
	}
}

// BuildBinary translates src to C and hands the result to the system
// C compiler. The intermediate source lives in a temp file that is
// removed either way.
type BuildBinary func(ctx context.Context, src io.Reader, outPath string) error

func (Module) BuildBinary(
	logger logs.Logger,
	tapeSize bficonfigs.TapeSize,
	compiler bficonfigs.Compiler,
	flags bficonfigs.CompileFlags,
) BuildBinary {
	return func(ctx context.Context, src io.Reader, outPath string) error {
		tmp, err := os.CreateTemp("", "bfi-*.c")
		if err != nil {
			return fmt.Errorf("create temp source: %w", err)
		}
		tmpPath := tmp.Name()
		defer os.Remove(tmpPath)

		if err := Compile(src, tmp, int(tapeSize)); err != nil {
			tmp.Close()
			return err
		}
		if err := tmp.Close(); err != nil {
			return err
		}

		args := append(append([]string{}, flags...), "-o", outPath, tmpPath)
		cmd := exec.CommandContext(ctx, string(compiler), args...)
		var out bytes.Buffer
		cmd.Stdout = &out
		cmd.Stderr = &out
		if err := cmd.Run(); err != nil {
			logger.ErrorContext(ctx, "compiler failed",
				"compiler", string(compiler),
				"output", out.String(),
			)
			return fmt.Errorf("%s: %w", compiler, err)
		}
		logger.InfoContext(ctx, "built binary",
			"path", outPath,
		)
		return nil
	}
}
