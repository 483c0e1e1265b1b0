package codec

import (
	"archive/zip"
	"bytes"
	"embed"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/plg/model"
	"github.com/viant/plg/model/script"
	"github.com/viant/plg/progress"
)

//go:embed testdata/*
var testFS embed.FS

func loadDocument(t *testing.T, name string) []byte {
	t.Helper()
	data, err := testFS.ReadFile("testdata/" + name)
	require.NoError(t, err)
	return data
}

func TestDecoder_Decode(t *testing.T) {
	result, err := NewDecoder().Decode(loadDocument(t, "order.plg"))
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Empty(t, result.Warnings)

	p := result.Process
	assert.Equal(t, "order handling", p.Name())
	assert.Equal(t, "4f0c55a4-7a29-4b5e-9e53-8f1d6d2b9a11", p.ID())
	assert.Equal(t, 15, p.Size())
	assert.Len(t, p.StartEvents(), 1)
	assert.Len(t, p.EndEvents(), 1)
	assert.Len(t, p.Tasks(), 2)
	assert.Len(t, p.Gateways(), 2)
	assert.Len(t, p.Sequences(), 6)
	assert.Len(t, p.DataObjects(), 3)

	channel, err := p.SearchDataObject(0)
	require.NoError(t, err)
	assert.Equal(t, model.KindDataObject, channel.Kind())
	assert.Equal(t, "channel", channel.Name())
	assert.Equal(t, "web", channel.Value())
	require.NotNil(t, channel.Owner())
	assert.Equal(t, 3, channel.Owner().ComponentID())

	customer, err := p.SearchDataObject(1)
	require.NoError(t, err)
	assert.Equal(t, model.KindStringDataObject, customer.Kind())
	assert.Equal(t, script.DefaultStringScript, customer.StringExecutor().Script())
	assert.Nil(t, customer.Owner())

	amount, err := p.SearchDataObject(2)
	require.NoError(t, err)
	assert.Equal(t, model.KindIntegerDataObject, amount.Kind())
	assert.Equal(t, "return random(10, 500)", amount.IntegerExecutor().Script())

	start, err := p.SearchFlowObject(3)
	require.NoError(t, err)
	assert.Equal(t, "received", start.Name())
	assert.True(t, start.HasDataObject(channel))

	check, err := p.SearchFlowObject(5)
	require.NoError(t, err)
	task, ok := check.(*model.Task)
	require.True(t, ok)
	assert.Equal(t, "check stock", task.Name())
	assert.Equal(t, "return random(1, 5)", task.ActivityScript().Script())
	assert.True(t, task.HasDataObject(amount))

	split, err := p.SearchFlowObject(7)
	require.NoError(t, err)
	assert.Equal(t, model.ExclusiveGateway, split.(*model.Gateway).Type())
	assert.Len(t, p.Outgoing(split), 2)
	join, err := p.SearchFlowObject(8)
	require.NoError(t, err)
	assert.Equal(t, model.ParallelGateway, join.(*model.Gateway).Type())
	assert.Equal(t, "join", join.Name())
	assert.Len(t, p.Incoming(join), 2)

	c, err := p.SearchComponent(10)
	require.NoError(t, err)
	sequence := c.(*model.Sequence)
	assert.Equal(t, 5, sequence.Source().ComponentID())
	assert.Equal(t, 7, sequence.Target().ComponentID())
	assert.True(t, sequence.HasDataObject(customer))
	assert.Empty(t, p.Validate())
}

func TestDecoder_Decode_OrderIndependent(t *testing.T) {
	decoder := NewDecoder()
	ordered, err := decoder.Decode(loadDocument(t, "order.plg"))
	require.NoError(t, err)
	reordered, err := decoder.Decode(loadDocument(t, "order_reordered.plg"))
	require.NoError(t, err)
	assert.Empty(t, reordered.Warnings)

	encoder := NewEncoder()
	expect, err := encoder.Encode(ordered.Process)
	require.NoError(t, err)
	actual, err := encoder.Encode(reordered.Process)
	require.NoError(t, err)
	assert.Equal(t, string(expect), string(actual))
}

func TestDecoder_Decode_Warnings(t *testing.T) {
	testCases := []struct {
		name       string
		document   string
		expectErr  error
		expectIDs  []string
		sequences  int
		components int
	}{
		{
			name:       "sequence into start event",
			document:   "illegal_sequence.plg",
			expectErr:  model.ErrIllegalSequence,
			expectIDs:  []string{"4"},
			sequences:  2,
			components: 5,
		},
		{
			name:       "unknown source and owner",
			document:   "unknown_reference.plg",
			expectErr:  model.ErrComponentNotFound,
			expectIDs:  []string{"4", "0"},
			sequences:  1,
			components: 4,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := NewDecoder().Decode(loadDocument(t, tc.document))
			require.NoError(t, err)
			require.NotNil(t, result.Process)
			require.Len(t, result.Warnings, len(tc.expectIDs))
			for i, warning := range result.Warnings {
				assert.ErrorIs(t, warning, tc.expectErr)
				assert.Equal(t, tc.expectIDs[i], warning.ID)
			}
			assert.Len(t, result.Warnings.Filter(tc.expectErr), len(tc.expectIDs))
			assert.ErrorIs(t, result.Warnings.Err(), tc.expectErr)
			assert.Len(t, result.Process.Sequences(), tc.sequences)
			assert.Equal(t, tc.components, result.Process.Size())
		})
	}
}

func TestDecoder_Decode_IllegalSequenceKeepsNodes(t *testing.T) {
	result, err := NewDecoder().Decode(loadDocument(t, "illegal_sequence.plg"))
	require.NoError(t, err)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, elementSequenceFlow, result.Warnings[0].Element)

	p := result.Process
	_, err = p.SearchComponent(4)
	assert.ErrorIs(t, err, model.ErrComponentNotFound)
	for _, id := range []int{0, 1, 2, 3, 5} {
		_, err := p.SearchComponent(id)
		assert.NoError(t, err, "component %d", id)
	}
	start := p.StartEvents()[0]
	assert.Empty(t, p.Incoming(start))
}

func TestDecoder_Decode_Fatal(t *testing.T) {
	legacy := &bytes.Buffer{}
	writer := zip.NewWriter(legacy)
	entry, err := writer.Create("process.xml")
	require.NoError(t, err)
	_, err = entry.Write([]byte("<process/>"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	testCases := []struct {
		name      string
		data      []byte
		expectErr error
	}{
		{name: "missing version marker", data: loadDocument(t, "missing_version.plg"), expectErr: ErrUnsupportedFormat},
		{name: "legacy container", data: legacy.Bytes(), expectErr: ErrLegacyFormat},
		{name: "not a document", data: []byte("plain text"), expectErr: ErrUnsupportedFormat},
		{name: "wrong root", data: []byte("<model><meta/></model>"), expectErr: ErrUnsupportedFormat},
		{name: "unknown nested data object", data: loadDocument(t, "missing_data_object.plg"), expectErr: model.ErrComponentNotFound},
		{
			name: "unknown gateway type",
			data: []byte(`<process><meta><LibPLG_NAME/><libPLG_VERSION/></meta><elements>` +
				`<gateway id="0" type="InclusiveGateway"/></elements></process>`),
			expectErr: ErrMalformed,
		},
		{
			name: "duplicate node id",
			data: []byte(`<process><meta><LibPLG_NAME/><libPLG_VERSION/></meta><elements>` +
				`<startEvent id="0"/><endEvent id="0"/></elements></process>`),
			expectErr: model.ErrDuplicateComponent,
		},
		{
			name: "invalid node id",
			data: []byte(`<process><meta><LibPLG_NAME/><libPLG_VERSION/></meta><elements>` +
				`<task id="first" name="a"/></elements></process>`),
			expectErr: ErrMalformed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := NewDecoder().Decode(tc.data)
			assert.ErrorIs(t, err, tc.expectErr)
			assert.Nil(t, result)
		})
	}
	assert.ErrorIs(t, ErrLegacyFormat, ErrUnsupportedFormat)
}

func TestDecoder_Decode_ReferenceWithoutOwner(t *testing.T) {
	result, err := NewDecoder().Decode(loadDocument(t, "reference_without_owner.plg"))
	require.NoError(t, err)
	p := result.Process

	priority, err := p.SearchDataObject(0)
	require.NoError(t, err)
	task := p.Tasks()[0]
	assert.Nil(t, priority.Owner())
	assert.True(t, task.HasDataObject(priority))

	start := p.StartEvents()[0]
	priority.SetOwner(start)
	assert.Equal(t, start, priority.Owner())
	assert.True(t, task.HasDataObject(priority))
	assert.False(t, start.HasDataObject(priority))
	assert.Equal(t, []model.DataObjectOwner{task}, priority.ReferencedBy())
}

func TestDecoder_Decode_TwoNodes(t *testing.T) {
	result, err := NewDecoder().Decode(loadDocument(t, "two_nodes.plg"))
	require.NoError(t, err)
	assert.Empty(t, result.Warnings)
	assert.Nil(t, result.Warnings.Err())

	p := result.Process
	assert.Empty(t, p.DataObjects())
	sequences := p.Sequences()
	require.Len(t, sequences, 1)
	assert.Equal(t, 2, sequences[0].ComponentID())
	assert.Equal(t, 0, sequences[0].Source().ComponentID())
	assert.Equal(t, 1, sequences[0].Target().ComponentID())
	assert.IsType(t, &model.StartEvent{}, sequences[0].Source())
	assert.IsType(t, &model.EndEvent{}, sequences[0].Target())
}

func TestDecoder_Progress(t *testing.T) {
	var states []progress.State
	tracker := progress.NewTracker(func(state progress.State) {
		states = append(states, state)
	})
	_, err := NewDecoder(WithVisualizer(tracker)).Decode(loadDocument(t, "two_nodes.plg"))
	require.NoError(t, err)

	final := tracker.Snapshot()
	assert.False(t, final.Running)
	assert.False(t, final.Indeterminate)
	assert.Equal(t, 3, final.Value)
	assert.Equal(t, 3, final.Maximum)
	assert.Equal(t, "Importing PLG file...", final.Text)
	require.NotEmpty(t, states)
	assert.True(t, states[0].Indeterminate)

	tracker = progress.NewTracker(nil)
	_, err = NewDecoder(WithVisualizer(tracker)).Decode(loadDocument(t, "missing_version.plg"))
	require.Error(t, err)
	snapshot := tracker.Snapshot()
	assert.False(t, snapshot.Running)
	assert.False(t, snapshot.FinishedAt.IsZero())
}
