package entity

// CatalogPage is one page of a catalog listing. An empty Cursor marks the
// last page.
type CatalogPage struct {
	Objects []CatalogObject
	Cursor  string
	Errors  []APIError
}

func (p CatalogPage) HasErrors() bool {
	return len(p.Errors) > 0
}

// HasNext reports whether another page can be requested with Cursor.
func (p CatalogPage) HasNext() bool {
	return p.Cursor != ""
}
