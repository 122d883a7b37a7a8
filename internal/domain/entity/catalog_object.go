package entity

import "catalog_demo/internal/domain/value"

// CatalogObject is the common envelope of every catalog entity. Only the
// payload matching Type is set.
type CatalogObject struct {
	ID       string                  `json:"id"`
	Type     value.CatalogObjectType `json:"type"`
	Version  int64                   `json:"version"`
	Discount *Discount               `json:"discount,omitempty"`
}
