package model

// Sequence is a directed control-flow edge between two flow objects of the
// same process.
type Sequence struct {
	component
	dataObjects
	source FlowObject
	target FlowObject
}

func (s *Sequence) Kind() Kind {
	return KindSequence
}

// Source returns the node the sequence leaves.
func (s *Sequence) Source() FlowObject {
	return s.source
}

// Target returns the node the sequence enters.
func (s *Sequence) Target() FlowObject {
	return s.target
}
