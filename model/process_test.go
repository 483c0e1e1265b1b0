package model

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/plg/model/script"
)

// linear builds start -> task -> end.
func linear(t *testing.T) (*Process, *StartEvent, *Task, *EndEvent) {
	p := NewProcess("linear")
	start, err := p.NewStartEvent()
	require.NoError(t, err)
	task, err := p.NewTask("work")
	require.NoError(t, err)
	end, err := p.NewEndEvent()
	require.NoError(t, err)
	_, err = p.NewSequence(start, task)
	require.NoError(t, err)
	_, err = p.NewSequence(task, end)
	require.NoError(t, err)
	return p, start, task, end
}

func TestProcess_ComponentIDs(t *testing.T) {
	p := NewProcess("ids")
	assert.NotEmpty(t, p.ID())

	first, err := p.NewStartEvent()
	require.NoError(t, err)
	assert.Equal(t, 0, first.ComponentID())

	explicit, err := p.NewEndEvent(WithComponentID(10))
	require.NoError(t, err)
	assert.Equal(t, 10, explicit.ComponentID())

	next, err := p.NewTask("after explicit")
	require.NoError(t, err)
	assert.Equal(t, 11, next.ComponentID())

	_, err = p.NewExclusiveGateway(WithComponentID(10))
	assert.True(t, errors.Is(err, ErrDuplicateComponent))
	_, err = p.NewExclusiveGateway(WithComponentID(-1))
	assert.True(t, errors.Is(err, ErrInvalidComponentID))
	assert.Equal(t, 3, p.Size())

	low, err := p.NewParallelGateway(WithComponentID(5))
	require.NoError(t, err)
	assert.Equal(t, KindParallelGateway, low.Kind())
	assert.Equal(t, ParallelGateway, low.Type())
	auto, err := p.NewDataObject()
	require.NoError(t, err)
	assert.Equal(t, 12, auto.ComponentID())
}

func TestProcess_ComponentIDs_LargestID(t *testing.T) {
	p := NewProcess("largest")
	last, err := p.NewStartEvent(WithComponentID(math.MaxInt))
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, last.ComponentID())

	first, err := p.NewEndEvent()
	require.NoError(t, err)
	assert.Equal(t, 0, first.ComponentID())
	second, err := p.NewTask("next")
	require.NoError(t, err)
	assert.Equal(t, 1, second.ComponentID())

	_, err = p.NewSequence(last, second)
	require.NoError(t, err)
	for _, c := range p.Components() {
		assert.GreaterOrEqual(t, c.ComponentID(), 0)
	}
}

func TestProcess_NewSequence(t *testing.T) {
	p := NewProcess("edges")
	start, _ := p.NewStartEvent()
	end, _ := p.NewEndEvent()
	task, _ := p.NewTask("t")
	gateway, _ := p.NewExclusiveGateway()
	other := NewProcess("other")
	foreign, _ := other.NewTask("foreign")

	testCases := []struct {
		description string
		source      FlowObject
		target      FlowObject
		expectErr   bool
	}{
		{description: "start to end", source: start, target: end},
		{description: "task to gateway", source: task, target: gateway},
		{description: "gateway to task", source: gateway, target: task},
		{description: "self loop", source: task, target: task},
		{description: "target is start event", source: task, target: start, expectErr: true},
		{description: "source is end event", source: end, target: task, expectErr: true},
		{description: "foreign target", source: task, target: foreign, expectErr: true},
		{description: "nil source", source: nil, target: task, expectErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			size := p.Size()
			sequence, err := p.NewSequence(tc.source, tc.target)
			if tc.expectErr {
				assert.True(t, errors.Is(err, ErrIllegalSequence), err)
				assert.Nil(t, sequence)
				assert.Equal(t, size, p.Size())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.source, sequence.Source())
			assert.Equal(t, tc.target, sequence.Target())
			assert.Contains(t, p.Outgoing(tc.source), sequence)
			assert.Contains(t, p.Incoming(tc.target), sequence)
		})
	}
	assert.Empty(t, p.Incoming(start))
	assert.Empty(t, p.Outgoing(end))
}

func TestProcess_NewSequence_DuplicateIDLeavesGraphUntouched(t *testing.T) {
	p, start, task, _ := linear(t)
	before := len(p.Outgoing(start))
	_, err := p.NewSequence(start, task, WithComponentID(task.ComponentID()))
	assert.True(t, errors.Is(err, ErrDuplicateComponent))
	assert.Len(t, p.Outgoing(start), before)
}

func TestProcess_Search(t *testing.T) {
	p, start, task, _ := linear(t)
	d, err := p.NewDataObject(WithName("amount"))
	require.NoError(t, err)

	c, err := p.SearchComponent(task.ComponentID())
	require.NoError(t, err)
	assert.Equal(t, task, c)

	c, err = p.SearchComponentByRef(" 0 ")
	require.NoError(t, err)
	assert.Equal(t, start, c)

	_, err = p.SearchComponent(99)
	assert.True(t, errors.Is(err, ErrComponentNotFound))
	_, err = p.SearchComponentByRef("abc")
	assert.True(t, errors.Is(err, ErrComponentNotFound))

	_, err = p.SearchFlowObject(d.ComponentID())
	assert.True(t, errors.Is(err, ErrWrongKind))
	_, err = p.SearchDataObject(task.ComponentID())
	assert.True(t, errors.Is(err, ErrWrongKind))
	_, err = p.SearchOwner(d.ComponentID())
	assert.True(t, errors.Is(err, ErrWrongKind))

	found, err := p.SearchDataObject(d.ComponentID())
	require.NoError(t, err)
	assert.Equal(t, "amount", found.Name())

	sequence := p.Outgoing(start)[0]
	owner, err := p.SearchOwner(sequence.ComponentID())
	require.NoError(t, err)
	assert.Equal(t, KindSequence, owner.Kind())
}

func TestDataObject_OwnerAndReferences(t *testing.T) {
	p, start, task, _ := linear(t)
	d, err := p.NewIntegerDataObject(script.NewInteger("5"), WithName("count"))
	require.NoError(t, err)
	assert.Equal(t, KindIntegerDataObject, d.Kind())
	assert.NotNil(t, d.IntegerExecutor())
	assert.Nil(t, d.StringExecutor())

	task.AddDataObject(d)
	task.AddDataObject(d)
	assert.Len(t, task.DataObjects(), 1)
	assert.Nil(t, d.Owner())
	assert.Equal(t, []DataObjectOwner{task}, d.ReferencedBy())

	sequence := p.Outgoing(start)[0]
	d.SetOwner(sequence)
	assert.Equal(t, sequence, d.Owner())
	assert.True(t, task.HasDataObject(d))
	assert.False(t, sequence.HasDataObject(d))

	d.SetOwner(start)
	assert.Equal(t, start, d.Owner())
	assert.Len(t, task.DataObjects(), 1)
}

func TestDataObject_Variants(t *testing.T) {
	p := NewProcess("data")
	generic, err := p.NewDataObject(WithName("g"))
	require.NoError(t, err)
	generic.SetValue("literal")
	assert.Equal(t, KindDataObject, generic.Kind())
	assert.Equal(t, "literal", generic.Value())
	assert.Nil(t, generic.Executor())

	text, err := p.NewStringDataObject(nil)
	require.NoError(t, err)
	assert.Equal(t, script.DefaultStringScript, text.StringExecutor().Script())
	assert.True(t, text.Kind().IsDataObject())
	assert.False(t, text.Kind().IsFlowObject())
}

func TestProcess_RemoveComponent(t *testing.T) {
	p, start, task, end := linear(t)
	d, _ := p.NewDataObject()
	task.AddDataObject(d)
	d.SetOwner(task)
	sequence := p.Outgoing(task)[0]
	sequence.AddDataObject(d)

	require.NoError(t, p.RemoveComponent(task.ComponentID()))
	_, err := p.SearchComponent(task.ComponentID())
	assert.True(t, errors.Is(err, ErrComponentNotFound))
	assert.Empty(t, p.Outgoing(start))
	assert.Empty(t, p.Incoming(end))
	assert.Empty(t, p.Sequences())
	assert.Nil(t, d.Owner())

	other, _ := p.NewSequence(start, end)
	other.AddDataObject(d)
	require.NoError(t, p.RemoveComponent(d.ComponentID()))
	assert.Empty(t, other.DataObjects())
	assert.Empty(t, p.DataObjects())

	assert.True(t, errors.Is(p.RemoveComponent(42), ErrComponentNotFound))
}

func TestProcess_Traversal(t *testing.T) {
	p := NewProcess("order")
	end, _ := p.NewEndEvent(WithComponentID(4))
	start, _ := p.NewStartEvent(WithComponentID(0))
	split, _ := p.NewParallelGateway(WithComponentID(1))
	a, _ := p.NewTask("a", WithComponentID(2))
	b, _ := p.NewTask("b", WithComponentID(3))
	_, _ = p.NewSequence(start, split)
	_, _ = p.NewSequence(split, a)
	_, _ = p.NewSequence(split, b)
	_, _ = p.NewSequence(a, end)
	_, _ = p.NewSequence(b, end)

	assert.Equal(t, []*Task{a, b}, p.Tasks())
	assert.Equal(t, []*StartEvent{start}, p.StartEvents())
	assert.Equal(t, []*EndEvent{end}, p.EndEvents())
	assert.Equal(t, []*Gateway{split}, p.Gateways())
	assert.Len(t, p.FlowObjects(), 5)
	assert.Len(t, p.Sequences(), 5)
	assert.Len(t, p.Outgoing(split), 2)
	assert.Len(t, p.Incoming(end), 2)
	ids := []int{}
	for _, c := range p.Components() {
		ids = append(ids, c.ComponentID())
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, ids)
}

func TestTask_ActivityScript(t *testing.T) {
	p := NewProcess("scripts")
	task, _ := p.NewTask("t")
	assert.Equal(t, script.DefaultIntegerScript, task.ActivityScript().Script())
	task.SetActivityScript(script.NewInteger("3"))
	assert.Equal(t, "3", task.ActivityScript().Script())
	task.SetActivityScript(nil)
	assert.Equal(t, script.DefaultIntegerScript, task.ActivityScript().Script())
}
