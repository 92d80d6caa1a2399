package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePriceTableDocs_Valid(t *testing.T) {
	raw := []byte(`[
		{
			"id": 1,
			"title": "Court prices 2026",
			"meta": {"validFrom": "2026-01-01", "validTo": "2026-12-31", "currency": "PLN", "unit": 60},
			"tables": [
				{"id": 1, "title": "Weekdays", "subtitle": "", "headers": ["Hours", "Price"], "descriptions": []}
			],
			"descriptions": [{"header": "Notes", "text": ["Prices per hour."]}]
		}
	]`)

	docs, err := ParsePriceTableDocs(raw)
	assert.NoError(t, err)
	assert.Len(t, docs, 1)
	assert.Equal(t, "PLN", docs[0].Meta.Currency)
	assert.Equal(t, []string{"Hours", "Price"}, docs[0].Tables[0].Headers)
}

func TestParsePriceTableDocs_RejectsMissingHeaders(t *testing.T) {
	raw := []byte(`[
		{
			"id": 1,
			"title": "Broken",
			"meta": {"validFrom": "2026-01-01", "validTo": "2026-12-31", "currency": "PLN", "unit": 60},
			"tables": [{"id": 1, "title": "t", "subtitle": "", "headers": [], "descriptions": []}]
		}
	]`)

	_, err := ParsePriceTableDocs(raw)
	assert.Error(t, err)
}

func TestParsePriceTableDocs_RejectsMissingCurrency(t *testing.T) {
	raw := []byte(`[
		{
			"id": 1,
			"title": "Broken",
			"meta": {"validFrom": "2026-01-01", "validTo": "2026-12-31", "currency": "", "unit": 60},
			"tables": [{"id": 1, "title": "t", "subtitle": "", "headers": ["h"], "descriptions": []}]
		}
	]`)

	_, err := ParsePriceTableDocs(raw)
	assert.Error(t, err)
}

func TestParsePriceTableDocs_RejectsMalformedJSON(t *testing.T) {
	_, err := ParsePriceTableDocs([]byte(`{not json`))
	assert.Error(t, err)
}
