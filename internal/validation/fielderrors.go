package validation

import "encoding/json"

// FieldErrors maps an input field name to one or more human-readable
// reasons. It is the body of every field-scoped 400 response.
type FieldErrors map[string][]string

// Add appends a reason for the given field.
func (e FieldErrors) Add(field, reason string) {
	e[field] = append(e[field], reason)
}

// Empty reports whether no field has an error.
func (e FieldErrors) Empty() bool {
	return len(e) == 0
}

// MarshalJSON renders a field with a single reason as a bare string and a
// field with several reasons as an array:
//
//	{"username": "Username already exists.", "password": ["too short", "too common"]}
func (e FieldErrors) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(e))
	for field, reasons := range e {
		if len(reasons) == 1 {
			out[field] = reasons[0]
		} else {
			out[field] = reasons
		}
	}
	return json.Marshal(out)
}
