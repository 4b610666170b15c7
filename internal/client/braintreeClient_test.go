package client

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToMinorUnits(t *testing.T) {
	cases := map[string]int64{
		"49.99":  4999,
		"10":     1000,
		"0.125":  13,
		"12.344": 1234,
	}
	for in, want := range cases {
		assert.Equal(t, want, ToMinorUnits(decimal.RequireFromString(in)), in)
	}
}
