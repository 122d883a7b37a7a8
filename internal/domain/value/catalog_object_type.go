package value

import "strings"

type CatalogObjectType string

const CatalogObjectTypeDiscount CatalogObjectType = "DISCOUNT"

func (t CatalogObjectType) String() string {
	return string(t)
}

// JoinCatalogObjectTypes renders a type filter the way the catalog API
// expects it: a comma separated list.
func JoinCatalogObjectTypes(types []CatalogObjectType) string {
	parts := make([]string, 0, len(types))

	for _, t := range types {
		parts = append(parts, t.String())
	}

	return strings.Join(parts, ",")
}
