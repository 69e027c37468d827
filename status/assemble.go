package status

import (
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// rootKey is the single top-level key of every tree the engine returns.
const rootKey = "vmix"

// wrap boxes a value the way xml2js renders scalar leaves: a one-element
// sequence, never a bare value.
func wrap(v any) []any {
	return []any{v}
}

// group nests an attribute map under the reserved attribute key.
func group(attrs map[string]any) map[string]any {
	return map[string]any{"$": attrs}
}

// assemble builds the final tree from everything collected during the walk.
func (b *builder) assemble() map[string]any {
	body := make(map[string]any)

	for f := scalarField(0); f < numScalarFields; f++ {
		if text := strings.TrimSpace(b.scalars[f]); len(text) > 0 {
			body[f.key()] = wrap(text)
		}
	}

	// Boolean-derived fields are not optional: downstream consumers read
	// them unconditionally, so false is spelled out.
	for f := flagField(0); f < numFlagFields; f++ {
		body[f.key()] = wrap(strconv.FormatBool(parseFlag(b.flagText[f])))
	}

	if len(b.inputs) > 0 {
		body["inputs"] = wrapRecords("input", b.inputs)
	}
	if len(b.overlays) > 0 {
		body["overlays"] = wrapRecords("overlay", b.overlays)
	}
	if len(b.transitions) > 0 {
		body["transitions"] = wrapRecords("transition", b.transitions)
	}

	audio := make(map[string]any, numBuses)
	for id := busMaster; id < numBuses; id++ {
		if b.buses[id] != nil {
			audio[id.key()] = group(b.buses[id])
		}
	}
	if len(audio) > 0 {
		body["audio"] = wrap(audio)
	}

	if parseFlag(b.recordingText) {
		rec := make(map[string]any, 1)
		if len(b.recordingDur) > 0 {
			rec["duration"] = b.recordingDur
		}
		body["recording"] = wrap(group(rec))
	}

	return map[string]any{rootKey: body}
}

// wrapRecords applies the double wrapping repeated entities get: a singleton
// outer sequence holding one object whose sole key is the ordered record
// list. Downstream consumers rely on this exact shape.
func wrapRecords(key string, records []map[string]any) []any {
	list := lo.Map(records, func(r map[string]any, _ int) any { return group(r) })
	return wrap(map[string]any{key: list})
}
