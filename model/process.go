package model

import (
	"fmt"

	"github.com/viant/plg/internal/idgen"
	"github.com/viant/plg/model/script"
)

// Process owns a control-flow graph and every component in it.
type Process struct {
	id       string
	name     string
	registry *registry
	incoming map[int][]*Sequence
	outgoing map[int][]*Sequence
}

// NewProcess creates an empty process with a freshly generated identifier.
func NewProcess(name string) *Process {
	return &Process{
		id:       idgen.New(),
		name:     name,
		registry: newRegistry(),
		incoming: make(map[int][]*Sequence),
		outgoing: make(map[int][]*Sequence),
	}
}

// ID returns the globally unique textual identifier of the process.
func (p *Process) ID() string {
	return p.id
}

// SetID overrides the process identifier.
func (p *Process) SetID(id string) {
	p.id = id
}

func (p *Process) Name() string {
	return p.name
}

func (p *Process) SetName(name string) {
	p.name = name
}

// Size returns the number of registered components.
func (p *Process) Size() int {
	return p.registry.size()
}

// NewStartEvent creates and registers a start event.
func (p *Process) NewStartEvent(opts ...Option) (*StartEvent, error) {
	o := newOptions(opts)
	id, err := p.registry.reserve(o)
	if err != nil {
		return nil, err
	}
	ret := &StartEvent{flowObject: p.newFlowObject(id, o)}
	p.registry.add(ret)
	return ret, nil
}

// NewEndEvent creates and registers an end event.
func (p *Process) NewEndEvent(opts ...Option) (*EndEvent, error) {
	o := newOptions(opts)
	id, err := p.registry.reserve(o)
	if err != nil {
		return nil, err
	}
	ret := &EndEvent{flowObject: p.newFlowObject(id, o)}
	p.registry.add(ret)
	return ret, nil
}

// NewTask creates and registers a task carrying the default activity script.
func (p *Process) NewTask(name string, opts ...Option) (*Task, error) {
	o := newOptions(append([]Option{WithName(name)}, opts...))
	id, err := p.registry.reserve(o)
	if err != nil {
		return nil, err
	}
	ret := &Task{flowObject: p.newFlowObject(id, o), activityScript: script.NewDefaultInteger()}
	p.registry.add(ret)
	return ret, nil
}

// NewExclusiveGateway creates and registers an exclusive gateway.
func (p *Process) NewExclusiveGateway(opts ...Option) (*Gateway, error) {
	return p.NewGateway(ExclusiveGateway, opts...)
}

// NewParallelGateway creates and registers a parallel gateway.
func (p *Process) NewParallelGateway(opts ...Option) (*Gateway, error) {
	return p.NewGateway(ParallelGateway, opts...)
}

// NewGateway creates and registers a gateway of the supplied type.
func (p *Process) NewGateway(gatewayType GatewayType, opts ...Option) (*Gateway, error) {
	o := newOptions(opts)
	id, err := p.registry.reserve(o)
	if err != nil {
		return nil, err
	}
	ret := &Gateway{flowObject: p.newFlowObject(id, o), gatewayType: gatewayType}
	p.registry.add(ret)
	return ret, nil
}

func (p *Process) newFlowObject(id int, o *options) flowObject {
	return flowObject{component: component{id: id, process: p}, name: o.name}
}

// NewSequence connects source to target. It fails with ErrIllegalSequence,
// leaving the process untouched, when either node is missing from this
// process, the target is a start event or the source is an end event.
func (p *Process) NewSequence(source, target FlowObject, opts ...Option) (*Sequence, error) {
	if err := p.checkSequence(source, target); err != nil {
		return nil, err
	}
	o := newOptions(opts)
	id, err := p.registry.reserve(o)
	if err != nil {
		return nil, err
	}
	ret := &Sequence{component: component{id: id, process: p}, source: source, target: target}
	p.registry.add(ret)
	p.outgoing[source.ComponentID()] = append(p.outgoing[source.ComponentID()], ret)
	p.incoming[target.ComponentID()] = append(p.incoming[target.ComponentID()], ret)
	return ret, nil
}

func (p *Process) checkSequence(source, target FlowObject) error {
	if source == nil || target == nil {
		return fmt.Errorf("%w: source and target are required", ErrIllegalSequence)
	}
	for _, node := range []FlowObject{source, target} {
		if node.Process() != p || !p.registered(node) {
			return fmt.Errorf("%w: %v %d does not belong to process %s", ErrIllegalSequence, node.Kind(), node.ComponentID(), p.id)
		}
	}
	if !source.AcceptsOutgoing() {
		return fmt.Errorf("%w: source %d is a %v", ErrIllegalSequence, source.ComponentID(), source.Kind())
	}
	if !target.AcceptsIncoming() {
		return fmt.Errorf("%w: target %d is a %v", ErrIllegalSequence, target.ComponentID(), target.Kind())
	}
	return nil
}

func (p *Process) registered(c Component) bool {
	existing, err := p.registry.lookup(c.ComponentID())
	return err == nil && existing == c
}

// NewDataObject creates and registers a generic data object.
func (p *Process) NewDataObject(opts ...Option) (*DataObject, error) {
	return p.newDataObject(KindDataObject, nil, opts)
}

// NewStringDataObject creates and registers a data object generated by a
// string script; a nil executor selects the default script.
func (p *Process) NewStringDataObject(executor *script.StringExecutor, opts ...Option) (*DataObject, error) {
	if executor == nil {
		executor = script.NewDefaultString()
	}
	return p.newDataObject(KindStringDataObject, executor, opts)
}

// NewIntegerDataObject creates and registers a data object generated by an
// integer script; a nil executor selects the default script.
func (p *Process) NewIntegerDataObject(executor *script.IntegerExecutor, opts ...Option) (*DataObject, error) {
	if executor == nil {
		executor = script.NewDefaultInteger()
	}
	return p.newDataObject(KindIntegerDataObject, executor, opts)
}

func (p *Process) newDataObject(kind Kind, executor script.Executor, opts []Option) (*DataObject, error) {
	o := newOptions(opts)
	id, err := p.registry.reserve(o)
	if err != nil {
		return nil, err
	}
	ret := &DataObject{component: component{id: id, process: p}, kind: kind, name: o.name, executor: executor}
	p.registry.add(ret)
	return ret, nil
}

// RemoveComponent unregisters a component and detaches it from every
// collection holding it: removing a flow object removes its sequences,
// removing a data object drops it from every reference collection and any
// owner back-reference pointing at a removed component is cleared.
func (p *Process) RemoveComponent(id int) error {
	c, err := p.registry.lookup(id)
	if err != nil {
		return err
	}
	switch actual := c.(type) {
	case FlowObject:
		for _, s := range p.Incoming(actual) {
			p.removeSequence(s)
		}
		for _, s := range p.Outgoing(actual) {
			p.removeSequence(s)
		}
		delete(p.incoming, id)
		delete(p.outgoing, id)
		p.clearOwner(actual)
		p.registry.remove(id)
	case *Sequence:
		p.removeSequence(actual)
	case *DataObject:
		for _, owner := range actual.ReferencedBy() {
			owner.RemoveDataObject(actual)
		}
		p.registry.remove(id)
	}
	return nil
}

func (p *Process) removeSequence(s *Sequence) {
	sourceID := s.source.ComponentID()
	targetID := s.target.ComponentID()
	p.outgoing[sourceID] = without(p.outgoing[sourceID], s)
	p.incoming[targetID] = without(p.incoming[targetID], s)
	p.clearOwner(s)
	p.registry.remove(s.ComponentID())
}

func (p *Process) clearOwner(owner DataObjectOwner) {
	for _, d := range p.DataObjects() {
		if d.owner == owner {
			d.owner = nil
		}
	}
}

func without(sequences []*Sequence, s *Sequence) []*Sequence {
	ret := sequences[:0]
	for _, item := range sequences {
		if item != s {
			ret = append(ret, item)
		}
	}
	return ret
}
