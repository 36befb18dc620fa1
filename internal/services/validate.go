package services

import (
	"math"
	"strings"

	"github.com/yungbote/symbiosis-backend/internal/platform/apierr"
)

func requireText(field, value string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", apierr.Validation("%s is required", field)
	}
	return v, nil
}

func requireID(field string, id int64) error {
	if id <= 0 {
		return apierr.Validation("%s is required", field)
	}
	return nil
}

// enumOrDefault returns def for an empty value and rejects anything outside allowed.
func enumOrDefault(field, value, def string, allowed []string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return def, nil
	}
	for _, a := range allowed {
		if v == a {
			return v, nil
		}
	}
	return "", apierr.Validation("%s must be one of %s", field, strings.Join(allowed, ", "))
}

func requireFraction(field string, v float64) error {
	if !(v >= 0 && v <= 1) {
		return apierr.Validation("%s must be between 0 and 1", field)
	}
	return nil
}

// MaxMagnitude bounds every stored amount, so SUM over the tables stays
// finite for any row count SQLite or Postgres can hold.
const MaxMagnitude = 1e15

type numericField struct {
	name  string
	value float64
}

func num(name string, value float64) numericField {
	return numericField{name: name, value: value}
}

// requireFinite rejects NaN, infinities and magnitudes above MaxMagnitude.
func requireFinite(fields ...numericField) error {
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return apierr.Validation("%s must be a finite number", f.name)
		}
		if math.Abs(f.value) > MaxMagnitude {
			return apierr.Validation("%s must be between %g and %g", f.name, -MaxMagnitude, MaxMagnitude)
		}
	}
	return nil
}
