package model

import (
	"math"
	"testing"
)

func TestPageQueryOffset(t *testing.T) {
	tests := []struct {
		name string
		q    PageQuery
		want int
	}{
		{"first page", PageQuery{PageNumber: 1, PageSize: 10}, 0},
		{"third page", PageQuery{PageNumber: 3, PageSize: 10}, 20},
		{"zero page number", PageQuery{PageNumber: 0, PageSize: 10}, 0},
		{"zero page size", PageQuery{PageNumber: 4, PageSize: 0}, 0},
		{"max page number", PageQuery{PageNumber: MaxPageNumber, PageSize: MaxPageSize}, (MaxPageNumber - 1) * MaxPageSize},
		{"overflowing product", PageQuery{PageNumber: math.MaxInt / 2, PageSize: MaxPageSize}, math.MaxInt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.q.Offset(); got != tt.want {
				t.Errorf("Offset() = %d, want %d", got, tt.want)
			}
		})
	}
}
