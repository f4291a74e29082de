package domain

// Truthy normalizes a loosely typed boolean intent coming from JSON or a form field.
// Only true, "true", "on", "1" and the number 1 are true; every other value is false.
func Truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		switch t {
		case "true", "on", "1":
			return true
		}
		return false
	case int:
		return t == 1
	case int8:
		return t == 1
	case int16:
		return t == 1
	case int32:
		return t == 1
	case int64:
		return t == 1
	case uint:
		return t == 1
	case uint8:
		return t == 1
	case uint16:
		return t == 1
	case uint32:
		return t == 1
	case uint64:
		return t == 1
	case float32:
		return t == 1
	case float64:
		return t == 1
	default:
		return false
	}
}
