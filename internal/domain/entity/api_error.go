package entity

import "fmt"

// APIError is an error entry returned in-band by the catalog API.
type APIError struct {
	Category string `json:"category"`
	Code     string `json:"code"`
	Detail   string `json:"detail"`
	Field    string `json:"field,omitempty"`
}

func (e APIError) String() string {
	s := fmt.Sprintf("%s %s: %s", e.Category, e.Code, e.Detail)

	if e.Field != "" {
		s += fmt.Sprintf(" (field: %s)", e.Field)
	}

	return s
}
