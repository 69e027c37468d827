// Package status converts a vMix status document into the xml2js-shaped
// value tree its JavaScript consumers expect: attributes grouped under "$",
// scalar leaves as one-element sequences, repeated entities double-wrapped.
// Shape fidelity, not generality, is the contract.
package status

import (
	"go.uber.org/zap"

	"vmc/events"
)

// Converter drives one status document at a time through the tree-assembly
// engine. It holds no per-call state, so a single Converter is safe for
// concurrent use.
type Converter struct {
	log *zap.Logger
}

func NewConverter(log *zap.Logger) *Converter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Converter{log: log.Named("status")}
}

// outcome models the two ways a conversion can end. Both surface to the
// caller as a valid tree; keeping the distinction internal makes the
// never-fails contract explicit rather than buried in a catch-all.
type outcome struct {
	tree   map[string]any
	failed bool
}

// Convert builds the value tree for one status document. It never fails:
// input the tokenizer cannot parse yields a tree holding just the empty
// root object, which callers treat the same as "no status".
func (c *Converter) Convert(xml string) map[string]any {
	return c.convert(xml).tree
}

func (c *Converter) convert(xml string) outcome {
	b := newBuilder(c.log)
	if err := events.Walk(xml, b); err != nil {
		c.log.Debug("Status document not parsable, returning empty tree", zap.Error(err))
		return outcome{tree: emptyTree(), failed: true}
	}
	return outcome{tree: b.assemble()}
}

// Convert is a convenience wrapper for callers that do not care about
// logging.
func Convert(xml string) map[string]any {
	return NewConverter(nil).Convert(xml)
}

func emptyTree() map[string]any {
	return map[string]any{rootKey: map[string]any{}}
}
