// Package diff compares processes through their canonical documents.
package diff

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
	sgdiff "github.com/sourcegraph/go-diff/diff"
	"github.com/viant/plg/model"
	"github.com/viant/plg/service/codec"
)

const defaultContext = 3

// Stats summarises a unified diff. A removed line immediately followed by
// an added one counts as changed.
type Stats struct {
	Added   int
	Changed int
	Deleted int
	Hunks   int
}

// Result is the outcome of Compare. Patch is empty when both processes
// encode identically.
type Result struct {
	Patch string
	Stats Stats
}

// Equal reports whether no difference was found.
func (r *Result) Equal() bool {
	return r.Patch == ""
}

type options struct {
	context  int
	fromFile string
	toFile   string
	encoder  *codec.Encoder
}

type Option func(o *options)

// WithContext sets the number of context lines around each change.
func WithContext(lines int) Option {
	return func(o *options) {
		if lines >= 0 {
			o.context = lines
		}
	}
}

// WithLabels sets the file names written to the patch header.
func WithLabels(from, to string) Option {
	return func(o *options) {
		o.fromFile, o.toFile = from, to
	}
}

// WithEncoder sets the encoder producing the compared documents.
func WithEncoder(encoder *codec.Encoder) Option {
	return func(o *options) {
		if encoder != nil {
			o.encoder = encoder
		}
	}
}

// Compare returns the unified diff between the documents of a and b.
func Compare(a, b *model.Process, opts ...Option) (*Result, error) {
	o := &options{context: defaultContext, encoder: codec.NewEncoder()}
	for _, opt := range opts {
		opt(o)
	}
	if a == nil || b == nil {
		return nil, fmt.Errorf("both processes are required")
	}
	if o.fromFile == "" {
		o.fromFile = "a/" + a.ID() + ".plg"
	}
	if o.toFile == "" {
		o.toFile = "b/" + b.ID() + ".plg"
	}
	from, err := o.encoder.Encode(a)
	if err != nil {
		return nil, err
	}
	to, err := o.encoder.Encode(b)
	if err != nil {
		return nil, err
	}
	return Documents(from, to, o.fromFile, o.toFile, o.context)
}

// Documents returns the unified diff between two raw documents.
func Documents(from, to []byte, fromFile, toFile string, context int) (*Result, error) {
	if string(from) == string(to) {
		return &Result{}, nil
	}
	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(from)),
		B:        difflib.SplitLines(string(to)),
		FromFile: fromFile,
		ToFile:   toFile,
		Context:  context,
	}
	patch, err := difflib.GetUnifiedDiffString(ud)
	if err != nil {
		return nil, fmt.Errorf("failed to compute diff: %w", err)
	}
	fileDiff, err := sgdiff.ParseFileDiff([]byte(patch))
	if err != nil {
		return nil, fmt.Errorf("failed to parse diff: %w", err)
	}
	stat := fileDiff.Stat()
	return &Result{
		Patch: patch,
		Stats: Stats{
			Added:   int(stat.Added),
			Changed: int(stat.Changed),
			Deleted: int(stat.Deleted),
			Hunks:   len(fileDiff.Hunks),
		},
	}, nil
}
