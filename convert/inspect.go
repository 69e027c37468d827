package convert

import (
	"context"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	cli "github.com/urfave/cli/v3"

	"vmc/state"
	"vmc/status"
)

// Inspect renders a short human summary of a status document: program
// scalars, inputs and audio buses.
func Inspect(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	if cmd.NArg() == 0 {
		return fmt.Errorf("no source specified")
	}

	src := cmd.Args().Get(0)
	data, err := readSource(src)
	if err != nil {
		return fmt.Errorf("unable to read source '%s': %w", src, err)
	}

	tree := status.NewConverter(env.Log).Convert(string(data))
	body, _ := tree["vmix"].(map[string]any)

	fmt.Printf("version: %s, edition: %s, active: %s, preview: %s\n",
		orDash(scalar(body, "version")), orDash(scalar(body, "edition")),
		orDash(scalar(body, "active")), orDash(scalar(body, "preview")))
	fmt.Printf("streaming: %s, recording: %v, external: %s, fullscreen: %s\n",
		scalar(body, "streaming"), body["recording"] != nil,
		scalar(body, "external"), scalar(body, "fullscreen"))

	if inputs := records(body, "inputs", "input"); len(inputs) > 0 {
		tw := table.NewWriter()
		tw.SetOutputMirror(os.Stdout)
		tw.SetStyle(table.StyleRounded)
		tw.AppendHeader(table.Row{"#", "Key", "Title", "Type", "State"})
		for _, in := range inputs {
			tw.AppendRow(table.Row{attr(in, "number"), attr(in, "key"), attr(in, "title"), attr(in, "type"), attr(in, "state")})
		}
		tw.Render()
	}

	if audio := busGroups(body); len(audio) > 0 {
		tw := table.NewWriter()
		tw.SetOutputMirror(os.Stdout)
		tw.SetStyle(table.StyleRounded)
		tw.AppendHeader(table.Row{"Bus", "Volume", "Muted"})
		for _, bus := range audio {
			tw.AppendRow(table.Row{bus.name, attr(bus.attrs, "volume"), attr(bus.attrs, "muted")})
		}
		tw.Render()
	}

	return nil
}

// Helpers digging typed values out of the xml2js-shaped tree - this is
// exactly what downstream consumers of the conversion do.

func scalar(body map[string]any, key string) string {
	if seq, ok := body[key].([]any); ok && len(seq) > 0 {
		if s, ok := seq[0].(string); ok {
			return s
		}
	}
	return ""
}

func records(body map[string]any, outer, inner string) []map[string]any {
	seq, _ := body[outer].([]any)
	if len(seq) == 0 {
		return nil
	}
	wrapper, _ := seq[0].(map[string]any)
	list, _ := wrapper[inner].([]any)
	var out []map[string]any
	for _, it := range list {
		if rec, ok := it.(map[string]any); ok {
			if attrs, ok := rec["$"].(map[string]any); ok {
				out = append(out, attrs)
			}
		}
	}
	return out
}

type busGroup struct {
	name  string
	attrs map[string]any
}

func busGroups(body map[string]any) []busGroup {
	seq, _ := body["audio"].([]any)
	if len(seq) == 0 {
		return nil
	}
	buses, _ := seq[0].(map[string]any)
	var out []busGroup
	for _, name := range []string{"master", "busA", "busB", "busC", "busD", "busE", "busF", "busG"} {
		if rec, ok := buses[name].(map[string]any); ok {
			if attrs, ok := rec["$"].(map[string]any); ok {
				out = append(out, busGroup{name: name, attrs: attrs})
			}
		}
	}
	return out
}

func attr(attrs map[string]any, name string) string {
	if v, ok := attrs[name]; ok {
		return fmt.Sprintf("%v", v)
	}
	return ""
}

func orDash(s string) string {
	if len(s) == 0 {
		return "-"
	}
	return s
}
