package service

import (
	"errors"
	"testing"

	"github.com/shopgraph/catalog-api/internal/core/domain"
)

func strptr(s string) *string   { return &s }
func f64ptr(f float64) *float64 { return &f }
func i64ptr(i int64) *int64     { return &i }

func TestBuildPlan_Defaults(t *testing.T) {
	plan, err := BuildPlan(domain.ListArgs{})
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	if plan.Category != nil || plan.Brand != nil || plan.MinPrice != nil || plan.MaxPrice != nil {
		t.Fatalf("expected no filters, got %+v", plan)
	}
	if plan.SortBy != "" || plan.Skip != 0 || plan.Limit != 0 {
		t.Fatalf("expected unbounded plan, got %+v", plan)
	}
}

func TestBuildPlan_Filters(t *testing.T) {
	plan, err := BuildPlan(domain.ListArgs{
		Category: strptr("electronics"),
		Brand:    strptr("acme"),
		MinPrice: f64ptr(10),
		MaxPrice: f64ptr(20),
	})
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	if plan.Category == nil || *plan.Category != "electronics" {
		t.Fatalf("category not carried: %+v", plan)
	}
	if plan.Brand == nil || *plan.Brand != "acme" {
		t.Fatalf("brand not carried: %+v", plan)
	}
	if plan.MinPrice == nil || *plan.MinPrice != 10 || plan.MaxPrice == nil || *plan.MaxPrice != 20 {
		t.Fatalf("price interval not carried: %+v", plan)
	}
}

func TestBuildPlan_InvertedPriceIntervalPassesThrough(t *testing.T) {
	// min > max is not validated here; the store returns an empty set.
	plan, err := BuildPlan(domain.ListArgs{MinPrice: f64ptr(20), MaxPrice: f64ptr(10)})
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	if *plan.MinPrice != 20 || *plan.MaxPrice != 10 {
		t.Fatalf("inverted interval rewritten: %+v", plan)
	}
}

func TestBuildPlan_SortWhitelist(t *testing.T) {
	for _, field := range []string{"name", "price", "category", "brand", "rating"} {
		plan, err := BuildPlan(domain.ListArgs{SortBy: strptr(field)})
		if err != nil {
			t.Fatalf("sort by %q rejected: %v", field, err)
		}
		if plan.SortBy != field {
			t.Fatalf("sort field not carried: %+v", plan)
		}
	}

	_, err := BuildPlan(domain.ListArgs{SortBy: strptr("passwordHash")})
	if !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for unknown sort field, got %v", err)
	}
}

func TestBuildPlan_Pagination(t *testing.T) {
	plan, err := BuildPlan(domain.ListArgs{Skip: i64ptr(2), Limit: i64ptr(3)})
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	if plan.Skip != 2 || plan.Limit != 3 {
		t.Fatalf("pagination not carried: %+v", plan)
	}

	// Non-positive values mean "no constraint".
	plan, err = BuildPlan(domain.ListArgs{Skip: i64ptr(-1), Limit: i64ptr(0)})
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	if plan.Skip != 0 || plan.Limit != 0 {
		t.Fatalf("expected unbounded pagination, got %+v", plan)
	}
}
