// Package render draws processes as Mermaid flowcharts.
package render

import (
	"fmt"
	"strings"

	"github.com/viant/plg/model"
)

type options struct {
	dataObjects bool
	highlighted map[int]bool
}

type Option func(o *options)

// WithDataObjects draws data objects and their references.
func WithDataObjects(enabled bool) Option {
	return func(o *options) {
		o.dataObjects = enabled
	}
}

// WithHighlight marks the supplied components.
func WithHighlight(ids ...int) Option {
	return func(o *options) {
		for _, id := range ids {
			o.highlighted[id] = true
		}
	}
}

// Mermaid produces a top-down flowchart of p. Shapes:
// start ((circle)), end (((double circle))), task [rectangle],
// gateway {rhombus}, data object [(cylinder)].
func Mermaid(p *model.Process, opts ...Option) string {
	o := &options{highlighted: map[int]bool{}}
	for _, opt := range opts {
		opt(o)
	}
	var sb strings.Builder
	sb.WriteString("graph TD\n")
	for _, node := range p.FlowObjects() {
		opener, closer := shape(node)
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", nodeID(node), opener, escape(label(node)), closer))
	}
	for _, s := range p.Sequences() {
		arrow := "-->"
		if names := dataObjectNames(s); names != "" {
			arrow = fmt.Sprintf("-- \"%s\" -->", escape(names))
		}
		sb.WriteString(fmt.Sprintf("    %s %s %s\n", nodeID(s.Source()), arrow, nodeID(s.Target())))
	}
	if o.dataObjects {
		for _, d := range p.DataObjects() {
			sb.WriteString(fmt.Sprintf("    %s[(\"%s\")]\n", nodeID(d), escape(label(d))))
			for _, owner := range d.ReferencedBy() {
				if _, ok := owner.(model.FlowObject); ok {
					sb.WriteString(fmt.Sprintf("    %s -.- %s\n", nodeID(d), nodeID(owner)))
				}
			}
			if owner, ok := d.Owner().(model.FlowObject); ok {
				sb.WriteString(fmt.Sprintf("    %s -. owner .-> %s\n", nodeID(d), nodeID(owner)))
			}
		}
	}
	if len(o.highlighted) > 0 {
		sb.WriteString("    classDef highlighted fill:#ffeb3b,stroke:#fbc02d,stroke-width:3px,color:#000;\n")
		for _, c := range p.Components() {
			if o.highlighted[c.ComponentID()] && c.Kind() != model.KindSequence {
				sb.WriteString(fmt.Sprintf("    class %s highlighted;\n", nodeID(c)))
			}
		}
	}
	return sb.String()
}

func shape(node model.FlowObject) (string, string) {
	switch node.Kind() {
	case model.KindStartEvent:
		return "((", "))"
	case model.KindEndEvent:
		return "(((", ")))"
	case model.KindExclusiveGateway, model.KindParallelGateway:
		return "{", "}"
	}
	return "[", "]"
}

func label(c model.Component) string {
	var name string
	switch actual := c.(type) {
	case model.FlowObject:
		name = actual.Name()
	case *model.DataObject:
		name = actual.Name()
	}
	if g, ok := c.(*model.Gateway); ok {
		symbol := "X"
		if g.Type() == model.ParallelGateway {
			symbol = "+"
		}
		if name == "" {
			return symbol
		}
		return symbol + " " + name
	}
	if name == "" {
		return fmt.Sprintf("%v %d", c.Kind(), c.ComponentID())
	}
	return name
}

func dataObjectNames(owner model.DataObjectOwner) string {
	var names []string
	for _, d := range owner.DataObjects() {
		names = append(names, label(d))
	}
	return strings.Join(names, ", ")
}

func nodeID(c model.Component) string {
	if c.Kind().IsDataObject() {
		return fmt.Sprintf("d%d", c.ComponentID())
	}
	return fmt.Sprintf("n%d", c.ComponentID())
}

func escape(text string) string {
	return strings.ReplaceAll(text, "\"", "'")
}
