package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/regnal/internal/domain/entities"
)

// viewFlags are the view parameters shared by list, export and explore.
type viewFlags struct {
	search   string
	era      string
	religion string
	groupBy  string
	sortBy   string
	order    string
}

func (f *viewFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.search, "search", "s", "", "Match ruler or dynasty names")
	cmd.Flags().StringVar(&f.era, "era", "", "Filter by era (all, Ancient, Classical, Post-Classical, Medieval, Colonial)")
	cmd.Flags().StringVar(&f.religion, "religion", "", "Filter by religion (all, Hindu, Buddhist, Muslim, Mixed, Unknown)")
	cmd.Flags().StringVarP(&f.groupBy, "group-by", "g", "", "Group by none, dynasty, era or religion")
	cmd.Flags().StringVar(&f.sortBy, "sort-by", "", "Sort by name, dynasty or reignStart")
	cmd.Flags().StringVar(&f.order, "order", "", "Sort order (asc, desc)")
}

// params overlays the flags the user set onto defaults.
func (f *viewFlags) params(cmd *cobra.Command, defaults entities.ViewParams) (entities.ViewParams, error) {
	p := defaults
	flags := cmd.Flags()

	if flags.Changed("search") {
		p.Search = f.search
	}

	var err error
	if flags.Changed("era") {
		if p.Era, err = entities.ParseEraFilter(f.era); err != nil {
			return p, fmt.Errorf("--era: %w", err)
		}
	}
	if flags.Changed("religion") {
		if p.Religion, err = entities.ParseReligionFilter(f.religion); err != nil {
			return p, fmt.Errorf("--religion: %w", err)
		}
	}
	if flags.Changed("group-by") {
		if p.GroupBy, err = entities.ParseGroupBy(f.groupBy); err != nil {
			return p, fmt.Errorf("--group-by: %w", err)
		}
	}
	if flags.Changed("sort-by") {
		if p.SortBy, err = entities.ParseSortBy(f.sortBy); err != nil {
			return p, fmt.Errorf("--sort-by: %w", err)
		}
	}
	if flags.Changed("order") {
		if p.SortOrder, err = entities.ParseSortOrder(f.order); err != nil {
			return p, fmt.Errorf("--order: %w", err)
		}
	}
	return p, nil
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
