// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package money_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/closet/pkg/money"
)

/*
TestParse covers the loose price formats entered by hand.
*/
func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain", "99", "99"},
		{"currency_and_grouping", "¥2,400", "2400"},
		{"decimal_with_spaces", " 12.50 ", "12.5"},
		{"empty", "", "0"},
		{"free_text", "gift", "0"},
		{"trailing_currency_code", "12.50 USD", "12.5"},
		{"trailing_unit", "120元", "120"},
		{"second_point_stops", "1.2.3", "1.2"},
		{"dangling_point", "7.", "7"},
		{"leading_point", ".5", "0.5"},
		{"code_before_number", "USD 12", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, money.Parse(tt.raw).String())
		})
	}
}

/*
TestSum verifies unparseable prices count as zero.
*/
func TestSum(t *testing.T) {
	assert.Equal(t, "150.25", money.Sum("100", "$50.25", "n/a").String())
	assert.True(t, money.Sum().IsZero())
}
