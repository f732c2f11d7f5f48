package models

import "encoding/json"

// OptionalString decodes any JSON value and keeps it only when it is a
// string. Optional text fields of a POST body never fail validation.
type OptionalString string

func (s *OptionalString) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		*s = ""
		return nil
	}
	*s = OptionalString(v)
	return nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
