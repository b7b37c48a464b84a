package reactive

import "reflect"

// defaultEquals is a fast path over the comparable primitives most signals
// actually hold, and a reflect.DeepEqual fallback for slices, maps and
// structs. A generic T-constrained-to-comparable signature would reject the
// common Signal[[]Item] / Signal[map[string]int] cases this module's
// renderer relies on for list/struct state, so the fallback stays reflective.
func defaultEquals[T any](a, b T) bool {
	switch av := any(a).(type) {
	case int:
		return av == any(b).(int)
	case int64:
		return av == any(b).(int64)
	case float64:
		return av == any(b).(float64)
	case string:
		return av == any(b).(string)
	case bool:
		return av == any(b).(bool)
	}
	return reflect.DeepEqual(a, b)
}
