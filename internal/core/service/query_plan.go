package service

import (
	"fmt"

	"github.com/shopgraph/catalog-api/internal/core/domain"
)

// sortFields whitelists the catalog fields a listing may sort on. Unknown
// names are rejected here instead of being forwarded to the store.
var sortFields = map[string]struct{}{
	"name":     {},
	"price":    {},
	"category": {},
	"brand":    {},
	"rating":   {},
}

// BuildPlan converts listing arguments into the filter/sort/pagination plan
// handed to the catalog store. Category and brand are exact-match equality
// filters; min/max price form an inclusive interval. An inverted interval
// (min > max) is passed through unchanged and yields an empty result set at
// the store rather than an error.
func BuildPlan(args domain.ListArgs) (domain.Plan, error) {
	plan := domain.Plan{
		Category: args.Category,
		Brand:    args.Brand,
		MinPrice: args.MinPrice,
		MaxPrice: args.MaxPrice,
	}

	if args.SortBy != nil {
		if _, ok := sortFields[*args.SortBy]; !ok {
			return domain.Plan{}, fmt.Errorf("%w: cannot sort by %q", domain.ErrInvalidArgument, *args.SortBy)
		}
		plan.SortBy = *args.SortBy
	}

	if args.Skip != nil && *args.Skip > 0 {
		plan.Skip = *args.Skip
	}
	if args.Limit != nil && *args.Limit > 0 {
		plan.Limit = *args.Limit
	}

	return plan, nil
}
