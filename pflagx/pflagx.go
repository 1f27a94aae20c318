// Package pflagx bridges [pflag.FlagSet] definitions into rules, so a tool
// already carrying a pflag surface can adopt grammar-driven resolution
// without redeclaring every flag.
package pflagx

import (
	"strings"

	"github.com/saylorsolutions/clix/rule"
	"github.com/saylorsolutions/clix/value"
	"github.com/spf13/pflag"
)

// FromFlagSet converts every flag defined on fs into an equivalent rule.
// Booleans become flags, count values become counted flags, slice and array
// values become accumulating parameters, and everything else becomes a
// parameter with a converter matching the declared type. Hidden flags are
// skipped.
func FromFlagSet(fs *pflag.FlagSet) []rule.Rule {
	var rules []rule.Rule
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		rules = append(rules, fromFlag(f))
	})
	return rules
}

func fromFlag(f *pflag.Flag) rule.Rule {
	keywords := []string{f.Name}
	if f.Shorthand != "" {
		keywords = append(keywords, f.Shorthand)
	}
	typeName := f.Value.Type()
	switch {
	case typeName == "bool":
		return rule.NewFlag(keywords...).Help(f.Usage)
	case typeName == "count":
		return rule.NewFlag(keywords...).Help(f.Usage).Counted()
	case strings.HasSuffix(typeName, "Slice"), strings.HasSuffix(typeName, "Array"):
		element := strings.TrimSuffix(strings.TrimSuffix(typeName, "Slice"), "Array")
		return rule.NewParameter(keywords...).
			Help(f.Usage).
			Typed(converterFor(element)).
			Multiple()
	default:
		param := rule.NewParameter(keywords...).Help(f.Usage).Typed(converterFor(typeName))
		applyDefault(param, f.DefValue, converterFor(typeName))
		return param
	}
}

// applyDefault carries the pflag default over when it still makes sense: raw
// for untyped parameters, converted for typed ones. An unconvertible default
// is dropped rather than surfacing later as a phantom resolution error.
func applyDefault(param *rule.Parameter, defValue string, convert rule.Converter) {
	if defValue == "" {
		return
	}
	if convert == nil {
		param.Default(defValue)
		return
	}
	if v, err := convert(defValue); err == nil {
		param.Default(v)
	}
}

// converterFor maps a pflag value type name to a converter, nil meaning the
// raw string is kept.
func converterFor(typeName string) rule.Converter {
	switch typeName {
	case "int":
		return value.Int
	case "int8", "int16", "int32", "int64":
		return value.Int64
	case "uint", "uint8", "uint16", "uint32", "uint64":
		return value.Uint
	case "float32", "float64":
		return value.Float64
	case "duration":
		return value.Duration
	default:
		return nil
	}
}
