// Package schema validates records against an externally supplied contract:
// which fields are required, which are merely recommended, and which values
// the enumerated fields accept. The contract is injected configuration, not
// hard-coded, so it can evolve independently of the pipeline.
package schema

import (
	"fmt"
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// Contract declares the validation rules for one catalogue.
type Contract struct {
	Required       []string `yaml:"required"`
	Recommended    []string `yaml:"recommended"`
	StatusValues   []string `yaml:"status_values"`
	CategoryValues []string `yaml:"category_values"`
}

// Validate checks the contract itself is usable.
func (c Contract) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Required, validation.Required),
		validation.Field(&c.StatusValues, validation.Required),
		validation.Field(&c.CategoryValues, validation.Required),
	)
}

// DefaultContract returns the catalogue's shipped contract.
func DefaultContract() Contract {
	return Contract{
		Required: []string{"title", "status", "authors", "category", "source", "tags"},
		Recommended: []string{
			"summary", "maturity", "complexity", "signals", "related",
		},
		StatusValues: []string{
			"proposed",
			"emerging",
			"validated-in-production",
			"established",
			"deprecated",
		},
		CategoryValues: []string{
			"Orchestration & Control",
			"Context & Memory",
			"Feedback Loops",
			"Tool Use & Environment",
			"UX & Collaboration",
			"Reliability & Eval",
			"Security & Safety",
		},
	}
}

// LoadContract reads a contract from a YAML file.
func LoadContract(path string) (Contract, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Contract{}, fmt.Errorf("read contract: %w", err)
	}
	var c Contract
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Contract{}, fmt.Errorf("parse contract: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Contract{}, fmt.Errorf("invalid contract: %w", err)
	}
	return c, nil
}
