package repository

import (
	"strings"
	"testing"

	"github.com/eternalrights/ssmp-go/internal/model"
)

func intPtr(n int) *int { return &n }

func TestBuildDrugFilterEmpty(t *testing.T) {
	where, args := buildDrugFilter(model.DrugQuery{})
	if where != "" {
		t.Errorf("buildDrugFilter() where = %q, want empty", where)
	}
	if len(args) != 0 {
		t.Errorf("buildDrugFilter() args = %v, want none", args)
	}
}

func TestBuildDrugFilterAllConditions(t *testing.T) {
	q := model.DrugQuery{
		Keyword:     "amox",
		Category:    intPtr(model.CategoryRx),
		ShelfStatus: intPtr(model.ShelfStatusOn),
	}

	where, args := buildDrugFilter(q)

	if !strings.HasPrefix(where, " WHERE ") {
		t.Fatalf("buildDrugFilter() where = %q, want WHERE prefix", where)
	}
	for _, cond := range []string{"generic_name LIKE ?", "manufacturer LIKE ?", "category = ?", "shelf_status = ?"} {
		if !strings.Contains(where, cond) {
			t.Errorf("buildDrugFilter() where %q missing %q", where, cond)
		}
	}
	// keyword binds twice (name + manufacturer), then category and status
	if len(args) != 4 {
		t.Fatalf("buildDrugFilter() len(args) = %d, want 4", len(args))
	}
	if args[0] != "%amox%" || args[1] != "%amox%" {
		t.Errorf("buildDrugFilter() keyword args = %v, want wildcard-wrapped", args[:2])
	}
}

func TestOrderClause(t *testing.T) {
	tests := []struct {
		sort string
		want string
	}{
		{"default", "id ASC"},
		{"name", "generic_name ASC"},
		{"newest", "create_time DESC"},
		{"stock", "stock_quantity DESC"},
		{"", "id ASC"},
		{"'; DROP TABLE drug; --", "id ASC"},
	}

	for _, tt := range tests {
		if got := orderClause(tt.sort); got != tt.want {
			t.Errorf("orderClause(%q) = %q, want %q", tt.sort, got, tt.want)
		}
	}
}
