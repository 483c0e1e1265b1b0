package model

import "fmt"

// Kind discriminates the concrete variant of a component.
type Kind int

const (
	KindStartEvent Kind = iota
	KindEndEvent
	KindTask
	KindExclusiveGateway
	KindParallelGateway
	KindSequence
	KindDataObject
	KindStringDataObject
	KindIntegerDataObject
)

var kindNames = map[Kind]string{
	KindStartEvent:        "StartEvent",
	KindEndEvent:          "EndEvent",
	KindTask:              "Task",
	KindExclusiveGateway:  "ExclusiveGateway",
	KindParallelGateway:   "ParallelGateway",
	KindSequence:          "Sequence",
	KindDataObject:        "DataObject",
	KindStringDataObject:  "StringDataObject",
	KindIntegerDataObject: "IntegerDataObject",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsFlowObject reports whether the kind denotes a control-flow node.
func (k Kind) IsFlowObject() bool {
	return k <= KindParallelGateway
}

// IsDataObject reports whether the kind denotes a data object variant.
func (k Kind) IsDataObject() bool {
	return k >= KindDataObject
}

// Component is any entity registered in a process.
type Component interface {
	ComponentID() int
	Kind() Kind
	Process() *Process
}

type component struct {
	id      int
	process *Process
}

func (c *component) ComponentID() int {
	return c.id
}

func (c *component) Process() *Process {
	return c.process
}

// Option customises a component at construction time.
type Option func(o *options)

type options struct {
	id    int
	hasID bool
	name  string
}

// WithComponentID supplies an explicit component id instead of the next
// available one. Ids are immutable once the component is registered.
func WithComponentID(id int) Option {
	return func(o *options) {
		o.id = id
		o.hasID = true
	}
}

// WithName sets the component name.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

func newOptions(opts []Option) *options {
	ret := &options{}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}
