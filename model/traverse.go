package model

// Components returns every registered component ordered by component id.
func (p *Process) Components() []Component {
	return p.registry.components()
}

// FlowObjects returns every flow node ordered by component id.
func (p *Process) FlowObjects() []FlowObject {
	return collect[FlowObject](p)
}

// StartEvents returns the start events ordered by component id.
func (p *Process) StartEvents() []*StartEvent {
	return collect[*StartEvent](p)
}

// EndEvents returns the end events ordered by component id.
func (p *Process) EndEvents() []*EndEvent {
	return collect[*EndEvent](p)
}

// Tasks returns the tasks ordered by component id.
func (p *Process) Tasks() []*Task {
	return collect[*Task](p)
}

// Gateways returns the gateways ordered by component id.
func (p *Process) Gateways() []*Gateway {
	return collect[*Gateway](p)
}

// Sequences returns the sequences ordered by component id.
func (p *Process) Sequences() []*Sequence {
	return collect[*Sequence](p)
}

// DataObjects returns the data objects ordered by component id.
func (p *Process) DataObjects() []*DataObject {
	return collect[*DataObject](p)
}

// Incoming returns the sequences entering node, in creation order.
func (p *Process) Incoming(node FlowObject) []*Sequence {
	return copySequences(p.incoming[node.ComponentID()])
}

// Outgoing returns the sequences leaving node, in creation order.
func (p *Process) Outgoing(node FlowObject) []*Sequence {
	return copySequences(p.outgoing[node.ComponentID()])
}

func collect[T Component](p *Process) []T {
	var ret []T
	for _, c := range p.registry.components() {
		if item, ok := c.(T); ok {
			ret = append(ret, item)
		}
	}
	return ret
}

func copySequences(sequences []*Sequence) []*Sequence {
	ret := make([]*Sequence, len(sequences))
	copy(ret, sequences)
	return ret
}
