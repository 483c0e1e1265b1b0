package codec

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/viant/plg/model"
)

const defaultIndent = "  "

// Encoder writes processes as second-generation PLG documents. Components
// are written ordered by id so that equal processes encode identically.
type Encoder struct {
	indent         string
	libraryName    string
	libraryVersion string
}

// NewEncoder creates an encoder.
func NewEncoder(opts ...EncoderOption) *Encoder {
	ret := &Encoder{indent: defaultIndent, libraryName: LibraryName, libraryVersion: LibraryVersion}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Encode returns the document representing p.
func (e *Encoder) Encode(p *model.Process) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := e.EncodeTo(buf, p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeTo writes the document representing p to w.
func (e *Encoder) EncodeTo(w io.Writer, p *model.Process) error {
	if p == nil {
		return fmt.Errorf("process was nil")
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", e.indent)
	if err := enc.Encode(e.document(p)); err != nil {
		return fmt.Errorf("failed to encode process %s: %w", p.ID(), err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func (e *Encoder) document(p *model.Process) *document {
	name, version, id := e.libraryName, e.libraryVersion, p.ID()
	ret := &document{Meta: &meta{LibraryName: &name, LibraryVersion: &version, Name: p.Name(), ID: &id}}
	for _, d := range p.DataObjects() {
		ret.Elements.DataObjects = append(ret.Elements.DataObjects, encodeDataObject(d))
	}
	for _, event := range p.StartEvents() {
		ret.Elements.StartEvents = append(ret.Elements.StartEvents, &nodeElement{
			ID: ref(event), Name: event.Name(), DataObjects: references(event),
		})
	}
	for _, event := range p.EndEvents() {
		ret.Elements.EndEvents = append(ret.Elements.EndEvents, &nodeElement{
			ID: ref(event), Name: event.Name(), DataObjects: references(event),
		})
	}
	for _, task := range p.Tasks() {
		activity := task.ActivityScript().Script()
		ret.Elements.Tasks = append(ret.Elements.Tasks, &taskElement{
			ID: ref(task), Name: task.Name(), Script: &activity, DataObjects: references(task),
		})
	}
	for _, gateway := range p.Gateways() {
		ret.Elements.Gateways = append(ret.Elements.Gateways, &gatewayElement{
			ID: ref(gateway), Type: gateway.Type().String(), Name: gateway.Name(), DataObjects: references(gateway),
		})
	}
	for _, sequence := range p.Sequences() {
		ret.Elements.SequenceFlows = append(ret.Elements.SequenceFlows, &sequenceElement{
			ID:          ref(sequence),
			SourceRef:   ref(sequence.Source()),
			TargetRef:   ref(sequence.Target()),
			DataObjects: references(sequence),
		})
	}
	return ret
}

func encodeDataObject(d *model.DataObject) *dataObjectElement {
	ret := &dataObjectElement{ID: ref(d), Type: d.Kind().String(), Name: d.Name()}
	if executor := d.Executor(); executor != nil {
		body := executor.Script()
		ret.Script = &body
	} else {
		value := d.Value()
		ret.Value = &value
	}
	if owner := d.Owner(); owner != nil {
		id := ref(owner)
		ret.Owner = &id
	}
	return ret
}

// references lists the data objects held by owner ordered by id.
func references(owner model.DataObjectOwner) []*reference {
	items := owner.DataObjects()
	if len(items) == 0 {
		return nil
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].ComponentID() < items[j].ComponentID()
	})
	ret := make([]*reference, len(items))
	for i, d := range items {
		ret[i] = &reference{ID: ref(d)}
	}
	return ret
}

func ref(c model.Component) string {
	return strconv.Itoa(c.ComponentID())
}
