package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Price-table documents are published metadata describing the printable price
// lists (layout, validity, descriptions). They are authored as JSON, validated
// on load, and served to clients verbatim.

type PriceTableMeta struct {
	ValidFrom string `json:"validFrom"`
	ValidTo   string `json:"validTo"`
	Currency  string `json:"currency"`
	Unit      int    `json:"unit"`
}

type PriceTableLayout struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Subtitle     string   `json:"subtitle"`
	Headers      []string `json:"headers"`
	Descriptions []string `json:"descriptions"`
}

type PriceDescriptionBlock struct {
	Header string   `json:"header"`
	Text   []string `json:"text"`
}

type PriceTableDoc struct {
	ID           int                     `json:"id"`
	Title        string                  `json:"title"`
	Meta         PriceTableMeta          `json:"meta"`
	Tables       []PriceTableLayout      `json:"tables"`
	Descriptions []PriceDescriptionBlock `json:"descriptions"`
}

// LoadPriceTableDocs reads and validates the price-table documents file.
func LoadPriceTableDocs(path string) ([]PriceTableDoc, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read price docs: %w", err)
	}
	return ParsePriceTableDocs(raw)
}

func ParsePriceTableDocs(raw []byte) ([]PriceTableDoc, error) {
	var docs []PriceTableDoc
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, fmt.Errorf("parse price docs: %w", err)
	}
	for i, d := range docs {
		if err := validatePriceTableDoc(d); err != nil {
			return nil, fmt.Errorf("price doc %d: %w", i, err)
		}
	}
	return docs, nil
}

func validatePriceTableDoc(d PriceTableDoc) error {
	if d.Title == "" {
		return fmt.Errorf("title is required")
	}
	if d.Meta.Currency == "" {
		return fmt.Errorf("meta.currency is required")
	}
	if d.Meta.Unit <= 0 {
		return fmt.Errorf("meta.unit must be positive")
	}
	if len(d.Tables) == 0 {
		return fmt.Errorf("at least one table layout is required")
	}
	for _, t := range d.Tables {
		if len(t.Headers) == 0 {
			return fmt.Errorf("table %d: headers must not be empty", t.ID)
		}
	}
	return nil
}
