package script

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/viant/toolbox"
)

type builtin func(ctx *Context, args []interface{}) (interface{}, error)

var builtins = map[string]builtin{
	"random": randomFn,
	"choice": choiceFn,
	"upper": func(_ *Context, args []interface{}) (interface{}, error) {
		if err := expectArgs("upper", args, 1); err != nil {
			return nil, err
		}
		return strings.ToUpper(stringify(args[0])), nil
	},
	"lower": func(_ *Context, args []interface{}) (interface{}, error) {
		if err := expectArgs("lower", args, 1); err != nil {
			return nil, err
		}
		return strings.ToLower(stringify(args[0])), nil
	},
	"len": func(_ *Context, args []interface{}) (interface{}, error) {
		if err := expectArgs("len", args, 1); err != nil {
			return nil, err
		}
		return len(stringify(args[0])), nil
	},
	"str": func(_ *Context, args []interface{}) (interface{}, error) {
		if err := expectArgs("str", args, 1); err != nil {
			return nil, err
		}
		return stringify(args[0]), nil
	},
	"int": func(_ *Context, args []interface{}) (interface{}, error) {
		if err := expectArgs("int", args, 1); err != nil {
			return nil, err
		}
		return asInt(args[0])
	},
}

func expectArgs(name string, args []interface{}, count int) error {
	if len(args) != count {
		return fmt.Errorf("%s expects %d argument(s), got %d", name, count, len(args))
	}
	return nil
}

// randomFn returns a uniformly distributed integer in [min, max].
func randomFn(ctx *Context, args []interface{}) (interface{}, error) {
	if err := expectArgs("random", args, 2); err != nil {
		return nil, err
	}
	lo, err := asInt(args[0])
	if err != nil {
		return nil, err
	}
	hi, err := asInt(args[1])
	if err != nil {
		return nil, err
	}
	if hi < lo {
		return nil, fmt.Errorf("random: max %d is lower than min %d", hi, lo)
	}
	// the span is computed in uint64 so that wide bounds do not overflow
	span := uint64(hi) - uint64(lo)
	return int(uint64(lo) + ctx.uint64N(span)), nil
}

func choiceFn(ctx *Context, args []interface{}) (interface{}, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("choice expects at least one argument")
	}
	return args[ctx.intN(len(args))], nil
}

func (l *literal) eval(_ *Context) (interface{}, error) {
	return l.value, nil
}

func (v *variable) eval(ctx *Context) (interface{}, error) {
	if value, ok := ctx.lookup(v.name); ok {
		return value, nil
	}
	return nil, fmt.Errorf("undefined variable %s", v.name)
}

func (u *unary) eval(ctx *Context) (interface{}, error) {
	value, err := u.operand.eval(ctx)
	if err != nil {
		return nil, err
	}
	switch actual := value.(type) {
	case int:
		return -actual, nil
	case float64:
		return -actual, nil
	}
	return nil, fmt.Errorf("cannot negate %T", value)
}

func (c *call) eval(ctx *Context) (interface{}, error) {
	args := make([]interface{}, len(c.args))
	for i, arg := range c.args {
		value, err := arg.eval(ctx)
		if err != nil {
			return nil, err
		}
		args[i] = value
	}
	return builtins[c.name](ctx, args)
}

func (b *binary) eval(ctx *Context) (interface{}, error) {
	x, err := b.left.eval(ctx)
	if err != nil {
		return nil, err
	}
	y, err := b.right.eval(ctx)
	if err != nil {
		return nil, err
	}
	switch b.op {
	case "+":
		return add(x, y)
	case "-", "*", "/", "%":
		return arithmetic(b.op, x, y)
	}
	cmp, err := compare(x, y)
	if err != nil {
		return nil, err
	}
	switch b.op {
	case "==":
		return cmp == 0, nil
	case "!=":
		return cmp != 0, nil
	case "<":
		return cmp < 0, nil
	case "<=":
		return cmp <= 0, nil
	case ">":
		return cmp > 0, nil
	case ">=":
		return cmp >= 0, nil
	}
	return nil, fmt.Errorf("unsupported operator %s", b.op)
}

// add concatenates when either side is a string, otherwise sums numerically.
func add(x, y interface{}) (interface{}, error) {
	_, xs := x.(string)
	_, ys := y.(string)
	if xs || ys {
		return stringify(x) + stringify(y), nil
	}
	return arithmetic("+", x, y)
}

func arithmetic(op string, x, y interface{}) (interface{}, error) {
	xi, xInt := x.(int)
	yi, yInt := y.(int)
	if xInt && yInt {
		switch op {
		case "+":
			return xi + yi, nil
		case "-":
			return xi - yi, nil
		case "*":
			return xi * yi, nil
		case "/", "%":
			if yi == 0 {
				return nil, fmt.Errorf("division by zero")
			}
			if op == "%" {
				return xi % yi, nil
			}
			if xi%yi == 0 {
				return xi / yi, nil
			}
			return float64(xi) / float64(yi), nil
		}
	}
	xf, err := asFloat(x)
	if err != nil {
		return nil, err
	}
	yf, err := asFloat(y)
	if err != nil {
		return nil, err
	}
	switch op {
	case "+":
		return xf + yf, nil
	case "-":
		return xf - yf, nil
	case "*":
		return xf * yf, nil
	case "/":
		if yf == 0 {
			return nil, fmt.Errorf("division by zero")
		}
		return xf / yf, nil
	case "%":
		if yf == 0 {
			return nil, fmt.Errorf("division by zero")
		}
		return math.Mod(xf, yf), nil
	}
	return nil, fmt.Errorf("unsupported operator %s", op)
}

func compare(x, y interface{}) (int, error) {
	if xs, ok := x.(string); ok {
		return strings.Compare(xs, stringify(y)), nil
	}
	if xb, ok := x.(bool); ok {
		yb, ok := y.(bool)
		if !ok {
			return 0, fmt.Errorf("cannot compare bool with %T", y)
		}
		if xb == yb {
			return 0, nil
		}
		return 1, nil
	}
	xf, err := asFloat(x)
	if err != nil {
		return 0, err
	}
	yf, err := asFloat(y)
	if err != nil {
		return 0, err
	}
	switch {
	case xf < yf:
		return -1, nil
	case xf > yf:
		return 1, nil
	}
	return 0, nil
}

func asInt(value interface{}) (int, error) {
	switch actual := value.(type) {
	case int:
		return actual, nil
	case float64:
		return int(actual), nil
	case bool:
		if actual {
			return 1, nil
		}
		return 0, nil
	}
	result, err := toolbox.ToInt(value)
	if err != nil {
		return 0, fmt.Errorf("cannot convert %v to int: %w", value, err)
	}
	return result, nil
}

func asFloat(value interface{}) (float64, error) {
	switch actual := value.(type) {
	case int:
		return float64(actual), nil
	case float64:
		return actual, nil
	case bool:
		return 0, fmt.Errorf("cannot use bool as number")
	}
	result, err := toolbox.ToFloat(value)
	if err != nil {
		return 0, fmt.Errorf("cannot convert %v to number: %w", value, err)
	}
	return result, nil
}

// stringify converts a value to its textual form for concatenation.
func stringify(value interface{}) string {
	switch actual := value.(type) {
	case nil:
		return ""
	case string:
		return actual
	case int:
		return strconv.Itoa(actual)
	case float64:
		return strconv.FormatFloat(actual, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(actual)
	}
	return toolbox.AsString(value)
}
