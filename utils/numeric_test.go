package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumericOrDefault(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		def  int
		want int
	}{
		{"plain integer", "42", 0, 42},
		{"negative integer", "-7", 0, -7},
		{"blank falls back", "", 5, 5},
		{"whitespace falls back", "   ", 5, 5},
		{"garbage falls back", "abc", 5, 5},
		{"float truncates", "12.9", 0, 12},
		{"zero", "0", 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseNumericOrDefault(tt.raw, tt.def))
		})
	}
}

func TestCoerceInt(t *testing.T) {
	assert.Equal(t, 3, CoerceInt(float64(3), 0))
	assert.Equal(t, 3, CoerceInt("3", 0))
	assert.Equal(t, 0, CoerceInt("", 0))
	assert.Equal(t, 7, CoerceInt(nil, 7))
	assert.Equal(t, 7, CoerceInt([]string{"x"}, 7))
}

func TestFlexIntUnmarshal(t *testing.T) {
	type payload struct {
		HallID FlexInt `json:"hall_id"`
		Price  FlexInt `json:"price"`
	}

	tests := []struct {
		name     string
		body     string
		wantHall int
		wantPric int
	}{
		{"numbers", `{"hall_id": 2, "price": 500}`, 2, 500},
		{"numeric strings", `{"hall_id": "2", "price": "500"}`, 2, 500},
		{"blank string defaults to zero", `{"hall_id": "", "price": ""}`, 0, 0},
		{"garbage string defaults to zero", `{"hall_id": "all", "price": "n/a"}`, 0, 0},
		{"null defaults to zero", `{"hall_id": null, "price": null}`, 0, 0},
		{"missing fields", `{}`, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p payload
			require.NoError(t, json.Unmarshal([]byte(tt.body), &p))
			assert.Equal(t, tt.wantHall, p.HallID.Int())
			assert.Equal(t, tt.wantPric, p.Price.Int())
		})
	}
}

func TestFlexIntMarshal(t *testing.T) {
	out, err := json.Marshal(FlexInt(42))
	require.NoError(t, err)
	assert.Equal(t, "42", string(out))
}

func TestFormatINR(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{12345, "12,345"},
		{123456, "1,23,456"},
		{1234567, "12,34,567"},
		{12345678, "1,23,45,678"},
		{-54321, "-54,321"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatINR(tt.n), "FormatINR(%d)", tt.n)
	}
}
