package codec

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFormat is returned when the input is not a readable
	// second-generation document. No process is returned alongside it.
	ErrUnsupportedFormat = errors.New("unsupported PLG file format")

	// ErrLegacyFormat marks first-generation container documents.
	ErrLegacyFormat = fmt.Errorf("%w: first generation PLG files are not supported", ErrUnsupportedFormat)

	// ErrMalformed is returned when a node element cannot be interpreted.
	ErrMalformed = errors.New("malformed PLG document")
)

// Warning describes an element skipped during decoding.
type Warning struct {
	// Element is the document element name, e.g. sequenceFlow.
	Element string
	// ID is the textual id of the element as found in the document.
	ID string
	Err error
}

func (w *Warning) Error() string {
	return fmt.Sprintf("%s %s: %v", w.Element, w.ID, w.Err)
}

func (w *Warning) Unwrap() error {
	return w.Err
}

// Warnings is the collected list of recoverable decoding failures.
type Warnings []*Warning

// Err aggregates the warnings into a single error, nil when empty.
func (w Warnings) Err() error {
	if len(w) == 0 {
		return nil
	}
	errs := make([]error, len(w))
	for i, item := range w {
		errs[i] = item
	}
	return errors.Join(errs...)
}

// Filter returns the warnings whose cause matches target via errors.Is.
func (w Warnings) Filter(target error) Warnings {
	var ret Warnings
	for _, item := range w {
		if errors.Is(item.Err, target) {
			ret = append(ret, item)
		}
	}
	return ret
}
