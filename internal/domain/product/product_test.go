package product

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitSpecs(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "delimited string",
			raw:  "Intel Core i5 | GTX 1660 6GB | 16GB DDR4",
			want: []string{"Intel Core i5", "GTX 1660 6GB", "16GB DDR4"},
		},
		{
			name: "empty string",
			raw:  "",
			want: nil,
		},
		{
			name: "only separators",
			raw:  " | | ",
			want: nil,
		},
		{
			name: "single entry without separator",
			raw:  "Windows 11 Pro",
			want: []string{"Windows 11 Pro"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitSpecs(tt.raw))
		})
	}
}

func TestIsSold(t *testing.T) {
	assert.True(t, Product{Status: StatusSold}.IsSold())
	assert.False(t, Product{Status: "Disponible"}.IsSold())
	assert.False(t, Product{}.IsSold())
}

func TestRaw_SpecsString(t *testing.T) {
	payload := `{
		"id": 10,
		"name": "PC reconditionné i5 / GTX 1660",
		"category": "pcs",
		"price": 549.0,
		"desc": "Tour prête à l'emploi",
		"condition": "Reconditionné A",
		"status": "Disponible",
		"specs": "Intel Core i5 | GTX 1660 6GB | SSD NVMe 512GB"
	}`

	var r Raw
	require.NoError(t, json.Unmarshal([]byte(payload), &r))

	p := r.Product()
	assert.Equal(t, int64(10), p.ID)
	assert.True(t, p.Price.Equal(decimal.NewFromFloat(549.0)))
	assert.Equal(t, []string{"Intel Core i5", "GTX 1660 6GB", "SSD NVMe 512GB"}, p.Specs)
}

func TestRaw_SpecsList(t *testing.T) {
	payload := `{"id": 1, "name": "SSD", "category": "pieces", "price": 119.9,
		"specs": ["7000 Mo/s", "PCIe 4.0"]}`

	var r Raw
	require.NoError(t, json.Unmarshal([]byte(payload), &r))
	assert.Equal(t, SpecList{"7000 Mo/s", "PCIe 4.0"}, r.Specs)
}

func TestRaw_SpecsInvalid(t *testing.T) {
	var r Raw
	err := json.Unmarshal([]byte(`{"id": 1, "specs": 42}`), &r)
	require.Error(t, err)
}

func TestRaw_OptionalFieldsAbsent(t *testing.T) {
	var r Raw
	require.NoError(t, json.Unmarshal([]byte(`{"id": 4, "name": "Nettoyage", "category": "services", "price": 59}`), &r))

	p := r.Product()
	assert.Empty(t, p.Meta)
	assert.Empty(t, p.Image)
	assert.Nil(t, p.Specs)
	assert.False(t, p.IsSold())
}
