package product

import (
	"encoding/json"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// SpecList accepts both external representations of a specification list:
// a JSON array of strings, or a single string joined with SpecSeparator.
// Either way it normalizes into a clean []string.
type SpecList []string

// UnmarshalJSON implements json.Unmarshaler.
func (s *SpecList) UnmarshalJSON(data []byte) error {
	var joined string
	if err := json.Unmarshal(data, &joined); err == nil {
		*s = SpecList(SplitSpecs(joined))
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return errors.Wrap(err, "specs must be a string or a list of strings")
	}
	specs := make([]string, 0, len(list))
	for _, entry := range list {
		specs = append(specs, SplitSpecs(entry)...)
	}
	*s = SpecList(specs)
	return nil
}

// Raw mirrors the external row shape used by the remote store, the static
// fallback file and admin edit payloads. Unknown fields are ignored and
// every optional field tolerates being absent.
type Raw struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"desc"`
	Meta        string          `json:"meta,omitempty"`
	Badge       string          `json:"badge,omitempty"`
	Condition   string          `json:"condition,omitempty"`
	Status      string          `json:"status,omitempty"`
	Image       string          `json:"image,omitempty"`
	Specs       SpecList        `json:"specs,omitempty"`
}

// Product converts the external row into the domain type.
func (r Raw) Product() Product {
	return Product{
		ID:          r.ID,
		Name:        r.Name,
		Category:    r.Category,
		Price:       r.Price,
		Description: r.Description,
		Meta:        r.Meta,
		Badge:       r.Badge,
		Condition:   r.Condition,
		Status:      r.Status,
		Image:       r.Image,
		Specs:       []string(r.Specs),
	}
}
