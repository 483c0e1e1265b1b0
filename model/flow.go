package model

import "github.com/viant/plg/model/script"

// FlowObject is a node of the control-flow graph.
type FlowObject interface {
	DataObjectOwner
	Name() string
	SetName(name string)
	// AcceptsIncoming reports whether the node may be a sequence target.
	AcceptsIncoming() bool
	// AcceptsOutgoing reports whether the node may be a sequence source.
	AcceptsOutgoing() bool
}

type flowObject struct {
	component
	dataObjects
	name string
}

func (f *flowObject) Name() string {
	return f.name
}

func (f *flowObject) SetName(name string) {
	f.name = name
}

func (f *flowObject) AcceptsIncoming() bool {
	return true
}

func (f *flowObject) AcceptsOutgoing() bool {
	return true
}

// StartEvent opens a process; it admits no incoming sequences.
type StartEvent struct {
	flowObject
}

func (e *StartEvent) Kind() Kind {
	return KindStartEvent
}

func (e *StartEvent) AcceptsIncoming() bool {
	return false
}

// EndEvent closes a process; it admits no outgoing sequences.
type EndEvent struct {
	flowObject
}

func (e *EndEvent) Kind() Kind {
	return KindEndEvent
}

func (e *EndEvent) AcceptsOutgoing() bool {
	return false
}

// Task is an activity whose script yields its duration at trace generation.
type Task struct {
	flowObject
	activityScript *script.IntegerExecutor
}

func (t *Task) Kind() Kind {
	return KindTask
}

// ActivityScript returns the integer script attached to the task.
func (t *Task) ActivityScript() *script.IntegerExecutor {
	return t.activityScript
}

// SetActivityScript replaces the task script; nil restores the default.
func (t *Task) SetActivityScript(executor *script.IntegerExecutor) {
	if executor == nil {
		executor = script.NewDefaultInteger()
	}
	t.activityScript = executor
}

// GatewayType distinguishes the branching semantics of a gateway.
type GatewayType int

const (
	ExclusiveGateway GatewayType = iota
	ParallelGateway
)

func (t GatewayType) String() string {
	if t == ParallelGateway {
		return "ParallelGateway"
	}
	return "ExclusiveGateway"
}

// Gateway splits or joins control flow. Fan-in and fan-out are unconstrained.
type Gateway struct {
	flowObject
	gatewayType GatewayType
}

func (g *Gateway) Kind() Kind {
	if g.gatewayType == ParallelGateway {
		return KindParallelGateway
	}
	return KindExclusiveGateway
}

// Type returns the gateway branching type.
func (g *Gateway) Type() GatewayType {
	return g.gatewayType
}
