package model

import "fmt"

// Validate performs a best-effort structural validation of the process. The
// returned slice is empty when the process is sound; otherwise it contains
// human-readable issue descriptions. Validation is never enforced on import.
func (p *Process) Validate() []error {
	var issues []error

	starts := p.StartEvents()
	if len(starts) == 0 {
		issues = append(issues, fmt.Errorf("process %s has no start event", p.name))
	}
	if len(p.EndEvents()) == 0 {
		issues = append(issues, fmt.Errorf("process %s has no end event", p.name))
	}

	// forward reachability from every start event
	reached := map[int]bool{}
	var forward func(FlowObject)
	forward = func(node FlowObject) {
		if reached[node.ComponentID()] {
			return
		}
		reached[node.ComponentID()] = true
		for _, s := range p.Outgoing(node) {
			forward(s.Target())
		}
	}
	for _, start := range starts {
		forward(start)
	}

	// backward reachability from every end event
	completes := map[int]bool{}
	var backward func(FlowObject)
	backward = func(node FlowObject) {
		if completes[node.ComponentID()] {
			return
		}
		completes[node.ComponentID()] = true
		for _, s := range p.Incoming(node) {
			backward(s.Source())
		}
	}
	for _, end := range p.EndEvents() {
		backward(end)
	}

	for _, node := range p.FlowObjects() {
		id := node.ComponentID()
		if !reached[id] {
			issues = append(issues, fmt.Errorf("%v %d is unreachable from any start event", node.Kind(), id))
		}
		if !completes[id] {
			issues = append(issues, fmt.Errorf("%v %d cannot reach any end event", node.Kind(), id))
		}
		if g, ok := node.(*Gateway); ok {
			in, out := len(p.Incoming(g)), len(p.Outgoing(g))
			if in <= 1 && out <= 1 {
				issues = append(issues, fmt.Errorf("%v %d neither splits nor joins (in=%d, out=%d)", g.Kind(), id, in, out))
			}
		}
	}

	for _, d := range p.DataObjects() {
		if d.owner == nil {
			continue
		}
		if !p.registered(d.owner) {
			issues = append(issues, fmt.Errorf("data object %d is owned by unregistered component %d", d.ComponentID(), d.owner.ComponentID()))
		}
	}
	for _, d := range p.DataObjects() {
		if d.executor == nil {
			continue
		}
		if err := d.executor.Compile(); err != nil {
			issues = append(issues, fmt.Errorf("data object %d: %w", d.ComponentID(), err))
		}
	}
	for _, t := range p.Tasks() {
		if err := t.activityScript.Compile(); err != nil {
			issues = append(issues, fmt.Errorf("task %d: %w", t.ComponentID(), err))
		}
	}
	return issues
}
