package rules

import (
	"strconv"
	"strings"
)

// Context carries the trip facts a condition can reference: numeric values
// (duration, distance, month) and boolean flags (night_bus, is_shinkansen).
type Context map[string]interface{}

// Int returns the context value as an int, 0 when absent or non-numeric.
func (c Context) Int(key string) int {
	switch v := c[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	case bool:
		if v {
			return 1
		}
		return 0
	default:
		return 0
	}
}

// Flag returns the truthiness of the context value, false when absent.
func (c Context) Flag(key string) bool {
	switch v := c[key].(type) {
	case bool:
		return v
	case int:
		return v != 0
	case float64:
		return v != 0
	case string:
		return v != ""
	default:
		return false
	}
}

// CheckCondition decides whether a rule item applies under the context.
// The condition grammar is deliberately restricted to two forms: a numeric
// ">=" threshold ("duration >= 2") or a bare flag name ("night_bus"). Nothing
// from the document is ever evaluated as code.
func CheckCondition(item RuleItem, ctx Context) bool {
	cond := strings.TrimSpace(item.Condition)
	if cond == "" {
		return true
	}

	if idx := strings.Index(cond, ">="); idx >= 0 {
		param := strings.TrimSpace(cond[:idx])
		value, err := strconv.Atoi(strings.TrimSpace(cond[idx+2:]))
		if err != nil {
			// Malformed threshold: the item does not apply.
			return false
		}
		return ctx.Int(param) >= value
	}

	return ctx.Flag(cond)
}
