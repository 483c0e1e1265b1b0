package codec

import (
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/viant/plg/internal/logging"
	"github.com/viant/plg/model"
	"github.com/viant/plg/model/script"
	"github.com/viant/plg/progress"
)

// Result is a successfully decoded process along with every element that
// had to be skipped.
type Result struct {
	Process  *model.Process
	Warnings Warnings
}

// Decoder reconstructs processes from PLG documents. A Decoder holds no
// per-document state and may be reused.
type Decoder struct {
	visualizer progress.Visualizer
	logger     *slog.Logger
}

// NewDecoder creates a decoder.
func NewDecoder(opts ...DecoderOption) *Decoder {
	ret := &Decoder{visualizer: progress.Nop{}, logger: logging.NewNop()}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// DecodeReader reads the whole of r and decodes it.
func (d *Decoder) DecodeReader(r io.Reader) (*Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read PLG document: %w", err)
	}
	return d.Decode(data)
}

// Decode parses data into a process. ErrUnsupportedFormat and ErrMalformed
// are fatal and no process is returned; skipped sequences and owner links
// are reported in Result.Warnings.
func (d *Decoder) Decode(data []byte) (*Result, error) {
	d.visualizer.SetIndeterminate(true)
	d.visualizer.SetText("Importing PLG file...")
	d.visualizer.Start()
	defer d.visualizer.Finished()
	d.logger.Info("starting process import", "bytes", len(data))

	doc, err := parseDocument(data)
	if err != nil {
		return nil, err
	}

	d.visualizer.SetMinimum(0)
	d.visualizer.SetMaximum(3)
	b := newBuilder(doc)
	if err := b.buildNodes(); err != nil {
		return nil, err
	}
	d.visualizer.Inc()
	b.buildSequences()
	d.visualizer.Inc()
	b.linkOwners()
	d.visualizer.Inc()

	for _, warning := range b.warnings {
		d.logger.Warn("element skipped", "element", warning.Element, "id", warning.ID, "error", warning.Err)
	}
	d.logger.Info("process import complete",
		"process", b.process.ID(),
		"components", b.process.Size(),
		"warnings", len(b.warnings))
	return &Result{Process: b.process, Warnings: b.warnings}, nil
}

func parseDocument(data []byte) (*document, error) {
	if IsLegacy(data) {
		return nil, ErrLegacyFormat
	}
	doc := &document{}
	if err := xml.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}
	if doc.Meta == nil || doc.Meta.LibraryName == nil || doc.Meta.LibraryVersion == nil {
		return nil, fmt.Errorf("%w: missing LibPLG_NAME or libPLG_VERSION marker", ErrUnsupportedFormat)
	}
	return doc, nil
}

// builder holds the state of a single decoding run.
type builder struct {
	doc         *document
	process     *model.Process
	dataObjects map[*dataObjectElement]*model.DataObject
	warnings    Warnings
}

func newBuilder(doc *document) *builder {
	process := model.NewProcess(doc.Meta.Name)
	if doc.Meta.ID != nil {
		process.SetID(*doc.Meta.ID)
	}
	return &builder{
		doc:         doc,
		process:     process,
		dataObjects: make(map[*dataObjectElement]*model.DataObject),
	}
}

func (b *builder) warn(element, id string, err error) {
	b.warnings = append(b.warnings, &Warning{Element: element, ID: id, Err: err})
}

// buildNodes registers data objects first, then every flow node with its
// nested data object references. Any failure here is fatal.
func (b *builder) buildNodes() error {
	for _, el := range b.doc.Elements.DataObjects {
		d, err := b.buildDataObject(el)
		if err != nil {
			return fmt.Errorf("%s %s: %w", elementDataObject, el.ID, err)
		}
		b.dataObjects[el] = d
	}
	for _, el := range b.doc.Elements.StartEvents {
		if err := b.buildEvent(elementStartEvent, el); err != nil {
			return err
		}
	}
	for _, el := range b.doc.Elements.EndEvents {
		if err := b.buildEvent(elementEndEvent, el); err != nil {
			return err
		}
	}
	for _, el := range b.doc.Elements.Tasks {
		if err := b.buildTask(el); err != nil {
			return fmt.Errorf("%s %s: %w", elementTask, el.ID, err)
		}
	}
	for _, el := range b.doc.Elements.Gateways {
		if err := b.buildGateway(el); err != nil {
			return fmt.Errorf("%s %s: %w", elementGateway, el.ID, err)
		}
	}
	return nil
}

func (b *builder) buildDataObject(el *dataObjectElement) (*model.DataObject, error) {
	id, err := componentID(el.ID)
	if err != nil {
		return nil, err
	}
	opts := []model.Option{model.WithComponentID(id), model.WithName(el.Name)}
	switch el.Type {
	case typeDataObject:
		d, err := b.process.NewDataObject(opts...)
		if err != nil {
			return nil, err
		}
		if el.Value != nil {
			d.SetValue(*el.Value)
		}
		return d, nil
	case typeStringDataObject:
		var executor *script.StringExecutor
		if el.Script != nil {
			executor = script.NewString(*el.Script)
		}
		return b.process.NewStringDataObject(executor, opts...)
	case typeIntegerDataObject:
		var executor *script.IntegerExecutor
		if el.Script != nil {
			executor = script.NewInteger(*el.Script)
		}
		return b.process.NewIntegerDataObject(executor, opts...)
	}
	return nil, fmt.Errorf("%w: unknown data object type %q", ErrMalformed, el.Type)
}

func (b *builder) buildEvent(element string, el *nodeElement) error {
	id, err := componentID(el.ID)
	if err != nil {
		return fmt.Errorf("%s %s: %w", element, el.ID, err)
	}
	opts := []model.Option{model.WithComponentID(id), model.WithName(el.Name)}
	var node model.FlowObject
	if element == elementStartEvent {
		node, err = b.process.NewStartEvent(opts...)
	} else {
		node, err = b.process.NewEndEvent(opts...)
	}
	if err != nil {
		return fmt.Errorf("%s %s: %w", element, el.ID, err)
	}
	if err := b.attach(node, el.DataObjects); err != nil {
		return fmt.Errorf("%s %s: %w", element, el.ID, err)
	}
	return nil
}

func (b *builder) buildTask(el *taskElement) error {
	id, err := componentID(el.ID)
	if err != nil {
		return err
	}
	task, err := b.process.NewTask(el.Name, model.WithComponentID(id))
	if err != nil {
		return err
	}
	if el.Script != nil {
		task.SetActivityScript(script.NewInteger(*el.Script))
	}
	return b.attach(task, el.DataObjects)
}

func (b *builder) buildGateway(el *gatewayElement) error {
	id, err := componentID(el.ID)
	if err != nil {
		return err
	}
	var gatewayType model.GatewayType
	switch el.Type {
	case typeExclusiveGateway:
		gatewayType = model.ExclusiveGateway
	case typeParallelGateway:
		gatewayType = model.ParallelGateway
	default:
		return fmt.Errorf("%w: unknown gateway type %q", ErrMalformed, el.Type)
	}
	gateway, err := b.process.NewGateway(gatewayType, model.WithComponentID(id), model.WithName(el.Name))
	if err != nil {
		return err
	}
	return b.attach(gateway, el.DataObjects)
}

func (b *builder) attach(owner model.DataObjectOwner, refs []*reference) error {
	for _, ref := range refs {
		d, err := b.dataObject(ref.ID)
		if err != nil {
			return err
		}
		owner.AddDataObject(d)
	}
	return nil
}

// buildSequences creates every sequence whose endpoints resolve to legal
// flow nodes; the others are reported as warnings.
func (b *builder) buildSequences() {
	for _, el := range b.doc.Elements.SequenceFlows {
		source, err := b.flowObject(el.SourceRef)
		if err != nil {
			b.warn(elementSequenceFlow, el.ID, fmt.Errorf("sourceRef: %w", err))
			continue
		}
		target, err := b.flowObject(el.TargetRef)
		if err != nil {
			b.warn(elementSequenceFlow, el.ID, fmt.Errorf("targetRef: %w", err))
			continue
		}
		id, err := componentID(el.ID)
		if err != nil {
			b.warn(elementSequenceFlow, el.ID, err)
			continue
		}
		sequence, err := b.process.NewSequence(source, target, model.WithComponentID(id))
		if err != nil {
			b.warn(elementSequenceFlow, el.ID, err)
			continue
		}
		for _, ref := range el.DataObjects {
			d, err := b.dataObject(ref.ID)
			if err != nil {
				b.warn(elementSequenceFlow, el.ID, fmt.Errorf("data object reference: %w", err))
				continue
			}
			sequence.AddDataObject(d)
		}
	}
}

// linkOwners sets the owner back-reference of every data object carrying an
// owner attribute.
func (b *builder) linkOwners() {
	for _, el := range b.doc.Elements.DataObjects {
		if el.Owner == nil {
			continue
		}
		d := b.dataObjects[el]
		c, err := b.process.SearchComponentByRef(*el.Owner)
		if err != nil {
			b.warn(elementDataObject, el.ID, fmt.Errorf("owner: %w", err))
			continue
		}
		owner, ok := c.(model.DataObjectOwner)
		if !ok {
			b.warn(elementDataObject, el.ID, fmt.Errorf("owner: %w: %s is a %v", model.ErrWrongKind, *el.Owner, c.Kind()))
			continue
		}
		d.SetOwner(owner)
	}
}

func (b *builder) flowObject(ref string) (model.FlowObject, error) {
	c, err := b.process.SearchComponentByRef(ref)
	if err != nil {
		return nil, err
	}
	ret, ok := c.(model.FlowObject)
	if !ok {
		return nil, fmt.Errorf("%w: %s is a %v, expected flow object", model.ErrWrongKind, ref, c.Kind())
	}
	return ret, nil
}

func (b *builder) dataObject(ref string) (*model.DataObject, error) {
	c, err := b.process.SearchComponentByRef(ref)
	if err != nil {
		return nil, err
	}
	ret, ok := c.(*model.DataObject)
	if !ok {
		return nil, fmt.Errorf("%w: %s is a %v, expected data object", model.ErrWrongKind, ref, c.Kind())
	}
	return ret, nil
}

func componentID(value string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || id < 0 {
		return 0, fmt.Errorf("%w: invalid component id %q", ErrMalformed, value)
	}
	return id, nil
}
