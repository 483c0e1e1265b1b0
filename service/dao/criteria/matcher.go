package criteria

import (
	"strings"

	"github.com/viant/plg/model"
	"github.com/viant/plg/service/dao"
)

const (
	// Name matches the process name exactly.
	Name = "Name"
	// NamePrefix matches processes whose name starts with the value.
	NamePrefix = "NamePrefix"
)

// Match reports whether p satisfies every parameter. Unknown parameter
// names are ignored.
func Match(p *model.Process, parameters []*dao.Parameter) bool {
	for _, parameter := range parameters {
		if parameter == nil {
			continue
		}
		switch parameter.Name {
		case Name:
			if !matchAny(p.Name(), parameter.Value, func(name, candidate string) bool { return name == candidate }) {
				return false
			}
		case NamePrefix:
			if !matchAny(p.Name(), parameter.Value, strings.HasPrefix) {
				return false
			}
		}
	}
	return true
}

func matchAny(name string, value interface{}, fn func(name, candidate string) bool) bool {
	switch actual := value.(type) {
	case string:
		return fn(name, actual)
	case []string:
		for _, candidate := range actual {
			if fn(name, candidate) {
				return true
			}
		}
		return false
	}
	return true
}
