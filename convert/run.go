// Package convert implements CLI actions turning vMix status documents into
// their JSON representation.
package convert

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"vmc/state"
	"vmc/status"
)

// Run converts a single status document to JSON.
func Run(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	if cmd.NArg() == 0 {
		return fmt.Errorf("no source specified")
	}
	if cmd.NArg() > 2 {
		env.Log.Warn("Malformed command line, too many arguments", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	src := cmd.Args().Get(0)
	data, err := readSource(src)
	if err != nil {
		return fmt.Errorf("unable to read source '%s': %w", src, err)
	}

	tree := status.NewConverter(env.Log).Convert(string(data))

	var out []byte
	if env.Cfg.Output.Indent && !cmd.Bool("compact") {
		out, err = json.MarshalIndent(tree, "", "  ")
	} else {
		out, err = json.Marshal(tree)
	}
	if err != nil {
		return fmt.Errorf("unable to encode result: %w", err)
	}
	out = append(out, '\n')

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		_, err = os.Stdout.Write(out)
		return err
	}
	f, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("unable to create destination '%s': %w", dst, err)
	}
	_, werr := f.Write(out)
	if err := multierr.Append(werr, f.Close()); err != nil {
		return fmt.Errorf("unable to write destination '%s': %w", dst, err)
	}
	env.Log.Info("Conversion done", zap.String("source", src), zap.String("destination", dst), zap.Int("bytes", len(out)))
	return nil
}

// readSource reads the whole document, "-" meaning STDIN.
func readSource(name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(name)
}
