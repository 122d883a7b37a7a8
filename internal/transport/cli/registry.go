package cli

import (
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"catalog_demo/internal/domain"
	"catalog_demo/pkg/errcodes"
)

// Example is a runnable catalog example.
type Example interface {
	Name() string
	Description() string
	Command() *cobra.Command
}

// Registry holds examples sorted by name.
type Registry struct {
	examples []Example
}

func NewRegistry(examples ...Example) (Registry, error) {
	if dup := lo.FindDuplicatesBy(examples, Example.Name); len(dup) > 0 {
		names := lo.Map(dup, func(e Example, _ int) string { return e.Name() })

		return Registry{}, domain.NewError(
			errcodes.DuplicateExample,
			"duplicate examples: %s", strings.Join(names, ", "),
		)
	}

	sorted := slices.Clone(examples)
	slices.SortFunc(sorted, func(a, b Example) int {
		return strings.Compare(a.Name(), b.Name())
	})

	return Registry{examples: sorted}, nil
}

func (r Registry) All() []Example {
	return slices.Clone(r.examples)
}

func (r Registry) Names() []string {
	return lo.Map(r.examples, func(e Example, _ int) string { return e.Name() })
}

func (r Registry) Get(name string) (Example, error) {
	example, ok := lo.Find(r.examples, func(e Example) bool { return e.Name() == name })
	if !ok {
		return nil, domain.NewError(
			errcodes.UnknownExample,
			"unknown example %q, available: %s", name, strings.Join(r.Names(), ", "),
		)
	}

	return example, nil
}
