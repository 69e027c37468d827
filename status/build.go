package status

import (
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"vmc/events"
)

// builder is the mutable context of a single conversion call. It implements
// events.Handler and owns every accumulator the assembler reads; nothing in
// it survives the call.
type builder struct {
	log  *zap.Logger
	path pathStack

	scalars  [numScalarFields]string
	flagText [numFlagFields]string

	inputs      []map[string]any
	overlays    []map[string]any
	transitions []map[string]any

	buses [numBuses]map[string]any

	recordingText string
	recordingDur  string
}

func newBuilder(log *zap.Logger) *builder {
	return &builder{log: log}
}

func (b *builder) StartElement(name string, attrs []events.Attr) {
	b.path.push(name)

	switch r := lookup(name); r.act {
	case actionInput:
		b.inputs = append(b.inputs, attrRecord(attrs, "muted", "solo"))
	case actionOverlay:
		b.overlays = append(b.overlays, overlayRecord(attrs))
	case actionTransition:
		b.transitions = append(b.transitions, attrRecord(attrs))
	case actionBus:
		b.buses[r.bus] = attrRecord(attrs, "muted")
	case actionRecording:
		for _, a := range attrs {
			if a.Name == "duration" {
				b.recordingDur = a.Value
			}
		}
	case actionUnrecognized:
		b.log.Debug("Ignoring unrecognized element", zap.String("tag", name))
	}
}

func (b *builder) Text(data string) {
	// Scalars and flags live directly under the document root; same-named
	// elements nested deeper belong to some other part of the schema.
	if b.path.depth() != 2 {
		return
	}
	switch r := lookup(b.path.current()); r.act {
	case actionScalar:
		b.scalars[r.scalar] += data
	case actionFlag:
		b.flagText[r.flag] += data
	case actionRecording:
		b.recordingText += data
	}
}

func (b *builder) EndElement(string) {
	b.path.pop()
}

// attrRecord captures every attribute verbatim, promoting those named in
// boolAttrs to real booleans when their text parses as one.
func attrRecord(attrs []events.Attr, boolAttrs ...string) map[string]any {
	m := make(map[string]any, len(attrs))
	for _, a := range attrs {
		if slices.Contains(boolAttrs, a.Name) {
			if v, err := strconv.ParseBool(strings.ToLower(a.Value)); err == nil {
				m[a.Name] = v
				continue
			}
		}
		m[a.Name] = a.Value
	}
	return m
}

// overlayRecord narrows to the single attribute the schema keeps for
// overlays. The group may well end up empty.
func overlayRecord(attrs []events.Attr) map[string]any {
	m := make(map[string]any, 1)
	for _, a := range attrs {
		if a.Name == "number" && len(a.Value) > 0 {
			m[a.Name] = a.Value
		}
	}
	return m
}

// parseFlag reads the textual booleans vMix emits ("True"/"False").
func parseFlag(text string) bool {
	v, err := strconv.ParseBool(strings.ToLower(strings.TrimSpace(text)))
	return err == nil && v
}
