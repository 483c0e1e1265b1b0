// Package model contains the in-memory representation of a synthetic business
// process: flow nodes (events, tasks, gateways), the sequences connecting
// them and the data objects annotating both.
//
// Every entity is created through a Process factory method so that component
// id assignment and registry insertion happen together:
//
//	p := model.NewProcess("order")
//	start, _ := p.NewStartEvent()
//	task, _ := p.NewTask("check stock")
//	end, _ := p.NewEndEvent()
//	_, _ = p.NewSequence(start, task)
//	_, _ = p.NewSequence(task, end)
//
// The model is not safe for concurrent mutation; callers serialise access.
package model
