package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Paracetamol 500mg", "paracetamol-500mg"},
		{"  Vitamin C  ", "vitamin-c"},
		{"Cough & Cold Syrup", "cough--cold-syrup"},
		{"---", ""},
		{"Ascorbic_Acid", "ascorbic-acid"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, slugify(tt.in))
	}
}

func TestParseRow(t *testing.T) {
	t.Run("full row", func(t *testing.T) {
		product, categorySlug, ok := parseRow([]string{
			"Paracetamol 500mg", "Pain reliever", "30.00", "100", "Unilab", "Pain Relief",
		})
		require.True(t, ok)
		assert.Equal(t, "Paracetamol 500mg", product.Name)
		assert.Equal(t, "paracetamol-500mg", product.Slug)
		assert.Equal(t, "Unilab", product.Manufacturer)
		assert.Equal(t, 100, product.Stock)
		assert.True(t, product.IsActive)
		assert.Equal(t, "pain-relief", categorySlug)
	})

	t.Run("minimal row without manufacturer or category", func(t *testing.T) {
		product, categorySlug, ok := parseRow([]string{"Vitamin C", "", "12.50", "5"})
		require.True(t, ok)
		assert.Empty(t, product.Manufacturer)
		assert.Empty(t, categorySlug)
	})

	t.Run("missing name is skipped", func(t *testing.T) {
		_, _, ok := parseRow([]string{"  ", "desc", "10.00", "1"})
		assert.False(t, ok)
	})

	t.Run("bad price is skipped", func(t *testing.T) {
		_, _, ok := parseRow([]string{"Vitamin C", "", "free", "1"})
		assert.False(t, ok)

		_, _, ok = parseRow([]string{"Vitamin C", "", "-5.00", "1"})
		assert.False(t, ok)
	})

	t.Run("bad stock clamps to zero", func(t *testing.T) {
		product, _, ok := parseRow([]string{"Vitamin C", "", "12.50", "lots"})
		require.True(t, ok)
		assert.Equal(t, 0, product.Stock)
	})

	t.Run("short row is skipped", func(t *testing.T) {
		_, _, ok := parseRow([]string{"Vitamin C", "", "12.50"})
		assert.False(t, ok)
	})
}

func TestTitleFromSlug(t *testing.T) {
	assert.Equal(t, "Pain Relief", titleFromSlug("pain-relief"))
	assert.Equal(t, "Antibiotics", titleFromSlug("antibiotics"))
}
