package config

import (
	"fmt"
	"strings"
)

// Ratios are the accepted values of dataset.ratio besides the empty string.
var Ratios = []string{"correct", "1:3", "1:2", "1:1", "2:1", "3:1", "wrong"}

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidRatio(ratio string) bool {
	if ratio == "" {
		return true
	}
	for _, r := range Ratios {
		if r == ratio {
			return true
		}
	}
	return false
}

func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	// Validate input
	if c.Input.Word == "" {
		errors = append(errors, ValidationError{
			Field:   "input.word",
			Message: "input document is required",
		})
	}

	// Validate dataset
	if c.Dataset.Dir == "" {
		errors = append(errors, ValidationError{
			Field:   "dataset.dir",
			Message: "dataset directory is required",
		})
	}

	if c.Dataset.NTotal < 1 {
		errors = append(errors, ValidationError{
			Field:   "dataset.n_total",
			Message: "n_total must be positive",
		})
	}

	if !ValidRatio(c.Dataset.Ratio) {
		errors = append(errors, ValidationError{
			Field:   "dataset.ratio",
			Message: fmt.Sprintf("invalid ratio %q, expected one of %s", c.Dataset.Ratio, strings.Join(Ratios, ", ")),
		})
	}

	return errors
}
