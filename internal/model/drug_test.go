package model

import "testing"

func intPtr(n int) *int { return &n }

func TestDrugQueryOffset(t *testing.T) {
	tests := []struct {
		name string
		q    DrugQuery
		want *int
	}{
		{"page 1", DrugQuery{Page: intPtr(1), PageSize: intPtr(10)}, intPtr(0)},
		{"page 3", DrugQuery{Page: intPtr(3), PageSize: intPtr(20)}, intPtr(40)},
		{"missing page", DrugQuery{PageSize: intPtr(10)}, nil},
		{"missing pageSize", DrugQuery{Page: intPtr(2)}, nil},
		{"both missing", DrugQuery{}, nil},
		{"page below 1", DrugQuery{Page: intPtr(0), PageSize: intPtr(10)}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.q.Offset()
			switch {
			case got == nil && tt.want != nil:
				t.Errorf("Offset() = nil, want %d", *tt.want)
			case got != nil && tt.want == nil:
				t.Errorf("Offset() = %d, want nil", *got)
			case got != nil && tt.want != nil && *got != *tt.want:
				t.Errorf("Offset() = %d, want %d", *got, *tt.want)
			}
		})
	}
}
