package script

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sync"
)

// Type is the declared result type of an executor.
type Type int

const (
	String Type = iota
	Integer
)

func (t Type) String() string {
	switch t {
	case String:
		return "String"
	case Integer:
		return "Integer"
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

const (
	// DefaultIntegerScript produces a value in [0, 100].
	DefaultIntegerScript = "# generates an integer value\nreturn random(0, 100)"
	// DefaultStringScript produces a value made of the case identifier and a random suffix.
	DefaultStringScript = "# generates a string value\nreturn \"value_\" + caseId + \"_\" + str(random(0, 100))"
)

// Executor is the serialisable side of a script: its body and declared type.
// Executors are never evaluated by the process model.
type Executor interface {
	Script() string
	Type() Type
	// Compile parses the script body, reporting syntax errors.
	Compile() error
}

// Context carries the inputs available to a script invocation. Rand, when
// set, must not be shared across goroutines; a nil Rand uses the global source.
type Context struct {
	CaseID string
	Vars   map[string]interface{}
	Rand   *rand.Rand
}

func (c *Context) lookup(name string) (interface{}, bool) {
	if name == "caseId" {
		return c.CaseID, true
	}
	value, ok := c.Vars[name]
	return value, ok
}

func (c *Context) intN(n int) int {
	if c.Rand != nil {
		return c.Rand.IntN(n)
	}
	return rand.IntN(n)
}

// uint64N returns a value in [0, max]; max may be math.MaxUint64.
func (c *Context) uint64N(max uint64) uint64 {
	if max == math.MaxUint64 {
		if c.Rand != nil {
			return c.Rand.Uint64()
		}
		return rand.Uint64()
	}
	if c.Rand != nil {
		return c.Rand.Uint64N(max + 1)
	}
	return rand.Uint64N(max + 1)
}

type program struct {
	script   string
	once     sync.Once
	compiled node
	err      error
}

func (p *program) Script() string {
	return p.script
}

func (p *program) Compile() error {
	p.once.Do(func() {
		p.compiled, p.err = parse(stripComments(p.script))
		if p.err != nil {
			p.err = fmt.Errorf("invalid script: %w", p.err)
		}
	})
	return p.err
}

func (p *program) run(ctx *Context) (interface{}, error) {
	if err := p.Compile(); err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = &Context{}
	}
	return p.compiled.eval(ctx)
}

// StringExecutor produces string values.
type StringExecutor struct {
	program
}

// NewString creates a string executor for the supplied script body.
func NewString(script string) *StringExecutor {
	return &StringExecutor{program: program{script: script}}
}

// NewDefaultString creates a string executor with DefaultStringScript.
func NewDefaultString() *StringExecutor {
	return NewString(DefaultStringScript)
}

func (e *StringExecutor) Type() Type {
	return String
}

// Execute evaluates the script and renders its result as text.
func (e *StringExecutor) Execute(ctx *Context) (string, error) {
	value, err := e.run(ctx)
	if err != nil {
		return "", err
	}
	return stringify(value), nil
}

// IntegerExecutor produces integer values.
type IntegerExecutor struct {
	program
}

// NewInteger creates an integer executor for the supplied script body.
func NewInteger(script string) *IntegerExecutor {
	return &IntegerExecutor{program: program{script: script}}
}

// NewDefaultInteger creates an integer executor with DefaultIntegerScript.
func NewDefaultInteger() *IntegerExecutor {
	return NewInteger(DefaultIntegerScript)
}

func (e *IntegerExecutor) Type() Type {
	return Integer
}

// Execute evaluates the script; fractional results are truncated.
func (e *IntegerExecutor) Execute(ctx *Context) (int, error) {
	value, err := e.run(ctx)
	if err != nil {
		return 0, err
	}
	switch actual := value.(type) {
	case int:
		return actual, nil
	case float64:
		return int(actual), nil
	case string:
		return asInt(actual)
	}
	return 0, fmt.Errorf("script produced %T, expected integer", value)
}
