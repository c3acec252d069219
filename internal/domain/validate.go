package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Validate checks a candidate answer set against the form's fields and
// returns a per-field error map; an empty map means the answers are valid.
// It never fails itself, has no side effects, and produces at most one
// message per field: required-ness is checked before shape and bounds.
//
// Answer values arrive as decoded JSON, so scalars are string or float64,
// lists are []any and structured answers are map[string]any.
func Validate(f Form, answers map[string]any) map[string]string {
	errs := make(map[string]string)

	for _, field := range f.Fields {
		value, present := answers[field.ID]
		if !present || isEmptyAnswer(value) {
			if field.Required {
				errs[field.ID] = fmt.Sprintf("%s is required", field.Label)
			}
			continue
		}

		spec, err := Describe(field.Type)
		if err != nil {
			errs[field.ID] = fmt.Sprintf("%s has an unknown type", field.Label)
			continue
		}

		if msg := checkShape(field, spec, value); msg != "" {
			errs[field.ID] = msg
		}
	}

	return errs
}

// checkShape validates the answer's shape for the field's declared value
// shape, then applies bounds where they exist.
func checkShape(field FormField, spec FieldSpec, value any) string {
	switch spec.ValueShape {
	case ShapeStringList:
		if _, ok := asStringList(value); !ok {
			return fmt.Sprintf("%s has an invalid value", field.Label)
		}

	case ShapeRating:
		n, ok := asNumber(value)
		if !ok || n != math.Trunc(n) {
			return fmt.Sprintf("%s has an invalid value", field.Label)
		}
		if n < 1 || n > 5 {
			return fmt.Sprintf("%s must be between 1 and 5", field.Label)
		}

	case ShapeAddress:
		if _, ok := value.(map[string]any); !ok {
			return fmt.Sprintf("%s has an invalid value", field.Label)
		}

	case ShapeScalar:
		if field.Type == FieldTypeNumber {
			n, ok := asNumber(value)
			if !ok {
				return fmt.Sprintf("%s must be a number", field.Label)
			}
			return checkValueBounds(field, n)
		}

		s, ok := value.(string)
		if !ok {
			return fmt.Sprintf("%s has an invalid value", field.Label)
		}
		if field.Type == FieldTypeText {
			return checkLengthBounds(field, s)
		}
	}

	return ""
}

func checkLengthBounds(field FormField, s string) string {
	if field.Validation == nil {
		return ""
	}
	length := utf8.RuneCountInString(s)
	if field.Validation.Min != nil && length < *field.Validation.Min {
		return fmt.Sprintf("%s must be at least %d characters", field.Label, *field.Validation.Min)
	}
	if field.Validation.Max != nil && length > *field.Validation.Max {
		return fmt.Sprintf("%s must be at most %d characters", field.Label, *field.Validation.Max)
	}
	return ""
}

func checkValueBounds(field FormField, n float64) string {
	if field.Validation == nil {
		return ""
	}
	if field.Validation.Min != nil && n < float64(*field.Validation.Min) {
		return fmt.Sprintf("%s must be at least %d", field.Label, *field.Validation.Min)
	}
	if field.Validation.Max != nil && n > float64(*field.Validation.Max) {
		return fmt.Sprintf("%s must be at most %d", field.Label, *field.Validation.Max)
	}
	return ""
}

// isEmptyAnswer reports whether a present answer counts as "no answer" for
// required-field purposes: empty strings, empty lists, and structured
// answers with no non-empty component.
func isEmptyAnswer(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case []any:
		return len(v) == 0
	case []string:
		return len(v) == 0
	case map[string]any:
		for _, comp := range v {
			if s, ok := comp.(string); ok && strings.TrimSpace(s) != "" {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func asStringList(value any) ([]string, bool) {
	switch v := value.(type) {
	case []string:
		return v, true
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}

// asNumber accepts JSON numbers and numeric strings; HTML number inputs
// round-trip through clients as either.
func asNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
