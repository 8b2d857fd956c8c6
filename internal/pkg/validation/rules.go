package validation

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// FieldType is the JSON type a field must carry
type FieldType int

const (
	TypeString FieldType = iota
	TypeNumber
)

func (t FieldType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeNumber:
		return "number"
	default:
		return "unknown"
	}
}

// FieldRule describes one field of a payload
type FieldRule struct {
	Name     string
	Type     FieldType
	Required bool
	// Tag holds validator tags applied to the value once its type is known
	Tag string
}

// StringField creates a required string field rule
func StringField(name string) *FieldRule {
	return &FieldRule{Name: name, Type: TypeString, Required: true}
}

// NumberField creates a required number field rule
func NumberField(name string) *FieldRule {
	return &FieldRule{Name: name, Type: TypeNumber, Required: true}
}

// WithTag sets the validator tags for the field
func (r *FieldRule) WithTag(tag string) *FieldRule {
	r.Tag = tag
	return r
}

// WithRange bounds a number field inclusively
func (r *FieldRule) WithRange(min, max int) *FieldRule {
	r.Tag = fmt.Sprintf("gte=%d,lte=%d", min, max)
	return r
}

// WithRequired sets if field is required
func (r *FieldRule) WithRequired(required bool) *FieldRule {
	r.Required = required
	return r
}

// check returns the violation message for value, or "" when the value passes
func (r *FieldRule) check(value interface{}, present bool) string {
	if !present || value == nil {
		if r.Required {
			return r.Name + " is required"
		}
		return ""
	}

	switch r.Type {
	case TypeString:
		if _, ok := value.(string); !ok {
			return r.Name + " must be a string"
		}
	case TypeNumber:
		switch value.(type) {
		case float64, json.Number:
		default:
			return r.Name + " must be a number"
		}
		if n, ok := value.(json.Number); ok {
			f, err := n.Float64()
			if err != nil {
				return r.Name + " must be a number"
			}
			value = f
		}
	}

	if r.Tag == "" {
		return ""
	}

	if err := validate.Var(value, r.Tag); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			return formatValidationError(r.Name, errs[0])
		}
		return r.Name + " is invalid"
	}

	return ""
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(field string, e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return field + " is required"
	case "gte":
		return field + " must be greater than or equal to " + e.Param()
	case "lte":
		return field + " must be less than or equal to " + e.Param()
	case "min":
		return field + " must be at least " + e.Param()
	case "max":
		return field + " must be at most " + e.Param()
	case "oneof":
		return field + " must be one of: " + e.Param()
	default:
		return field + " validation failed: " + e.Tag()
	}
}
