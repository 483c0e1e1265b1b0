package idgen

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// NewFunc generates process identifiers.
var NewFunc = func() string { return uuid.NewString() }

// New returns a new globally unique process identifier.
func New() string { return NewFunc() }

// Sequential returns a generator yielding prefix-1, prefix-2, ...
func Sequential(prefix string) func() string {
	var counter int64
	return func() string {
		return fmt.Sprintf("%s-%d", prefix, atomic.AddInt64(&counter, 1))
	}
}
