package money

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAmount(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  float64
	}{
		{name: "nil", input: nil, want: 0},
		{name: "float64", input: 7.0, want: 7},
		{name: "float64 fraction", input: 12.5, want: 12.5},
		{name: "int", input: 15, want: 15},
		{name: "int64", input: int64(40), want: 40},
		{name: "decimal point string", input: "12.50", want: 12.5},
		{name: "decimal comma string", input: "12,50", want: 12.5},
		{name: "integer string", input: "30", want: 30},
		{name: "unparseable string", input: "abc", want: 0},
		{name: "empty string", input: "", want: 0},
		{name: "json number", input: json.Number("25.90"), want: 25.9},
		{name: "bad json number", input: json.Number("x"), want: 0},
		{name: "bool is not money", input: true, want: 0},
		{name: "slice is not money", input: []string{"10"}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeAmount(tt.input))
		})
	}
}

func TestNormalizeAmount_NumberPassesThrough(t *testing.T) {
	// Числовое значение не валидируется: оно возвращается как есть
	assert.Equal(t, -5.0, NormalizeAmount(-5.0))
}
