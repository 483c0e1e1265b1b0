package codec

import "encoding/xml"

const (
	elementDataObject   = "dataObject"
	elementStartEvent   = "startEvent"
	elementEndEvent     = "endEvent"
	elementTask         = "task"
	elementGateway      = "gateway"
	elementSequenceFlow = "sequenceFlow"
)

// type discriminators of dataObject elements
const (
	typeDataObject        = "DataObject"
	typeStringDataObject  = "StringDataObject"
	typeIntegerDataObject = "IntegerDataObject"
)

// type discriminators of gateway elements
const (
	typeExclusiveGateway = "ExclusiveGateway"
	typeParallelGateway  = "ParallelGateway"
)

type (
	document struct {
		XMLName  xml.Name `xml:"process"`
		Meta     *meta    `xml:"meta"`
		Elements elements `xml:"elements"`
	}

	meta struct {
		LibraryName    *string `xml:"LibPLG_NAME"`
		LibraryVersion *string `xml:"libPLG_VERSION"`
		Name           string  `xml:"name"`
		ID             *string `xml:"id"`
	}

	elements struct {
		DataObjects   []*dataObjectElement `xml:"dataObject"`
		StartEvents   []*nodeElement       `xml:"startEvent"`
		EndEvents     []*nodeElement       `xml:"endEvent"`
		Tasks         []*taskElement       `xml:"task"`
		Gateways      []*gatewayElement    `xml:"gateway"`
		SequenceFlows []*sequenceElement   `xml:"sequenceFlow"`
	}

	dataObjectElement struct {
		ID     string  `xml:"id,attr"`
		Type   string  `xml:"type,attr"`
		Name   string  `xml:"name,attr"`
		Value  *string `xml:"value,attr,omitempty"`
		Owner  *string `xml:"owner,attr,omitempty"`
		Script *string `xml:"script,omitempty"`
	}

	reference struct {
		ID string `xml:"id,attr"`
	}

	nodeElement struct {
		ID          string       `xml:"id,attr"`
		Name        string       `xml:"name,attr,omitempty"`
		DataObjects []*reference `xml:"dataObject"`
	}

	taskElement struct {
		ID          string       `xml:"id,attr"`
		Name        string       `xml:"name,attr"`
		Script      *string      `xml:"script"`
		DataObjects []*reference `xml:"dataObject"`
	}

	gatewayElement struct {
		ID          string       `xml:"id,attr"`
		Type        string       `xml:"type,attr"`
		Name        string       `xml:"name,attr,omitempty"`
		DataObjects []*reference `xml:"dataObject"`
	}

	sequenceElement struct {
		ID          string       `xml:"id,attr"`
		SourceRef   string       `xml:"sourceRef,attr"`
		TargetRef   string       `xml:"targetRef,attr"`
		DataObjects []*reference `xml:"dataObject"`
	}
)
