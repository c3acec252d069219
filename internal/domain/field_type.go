package domain

import "fmt"

// FieldType identifies the kind of input a form field renders and the shape
// of the value a submission stores for it. The enumeration is closed:
// payloads carrying any other value are rejected at schema validation time.
type FieldType string

// FieldType constants
const (
	FieldTypeText     FieldType = "text"
	FieldTypeEmail    FieldType = "email"
	FieldTypePhone    FieldType = "phone"
	FieldTypeTextarea FieldType = "textarea"
	FieldTypeSelect   FieldType = "select"
	FieldTypeCheckbox FieldType = "checkbox"
	FieldTypeRadio    FieldType = "radio"
	FieldTypeDate     FieldType = "date"
	FieldTypeTime     FieldType = "time"
	FieldTypeNumber   FieldType = "number"
	FieldTypeFile     FieldType = "file"
	FieldTypeURL      FieldType = "url"
	FieldTypeRating   FieldType = "rating"
	FieldTypeAddress  FieldType = "address"
)

// ValueShape describes the stored answer shape of a field type
type ValueShape string

const (
	// ShapeScalar is a single string value (file fields store a filename string)
	ShapeScalar ValueShape = "scalar"
	// ShapeStringList is an ordered list of strings (checkbox selections)
	ShapeStringList ValueShape = "stringList"
	// ShapeRating is an integer in the fixed 1-5 domain
	ShapeRating ValueShape = "rating"
	// ShapeAddress is a structured mapping of address components to strings
	ShapeAddress ValueShape = "address"
)

// FieldSpec describes the behaviour of one field type: whether it carries a
// selectable option list, the shape of its stored value, and whether min/max
// validation bounds apply (length bounds for text, value bounds for number).
type FieldSpec struct {
	HasOptions     bool
	ValueShape     ValueShape
	SupportsBounds bool
}

var fieldSpecs = map[FieldType]FieldSpec{
	FieldTypeText:     {ValueShape: ShapeScalar, SupportsBounds: true},
	FieldTypeEmail:    {ValueShape: ShapeScalar},
	FieldTypePhone:    {ValueShape: ShapeScalar},
	FieldTypeTextarea: {ValueShape: ShapeScalar},
	FieldTypeSelect:   {HasOptions: true, ValueShape: ShapeScalar},
	FieldTypeCheckbox: {HasOptions: true, ValueShape: ShapeStringList},
	FieldTypeRadio:    {HasOptions: true, ValueShape: ShapeScalar},
	FieldTypeDate:     {ValueShape: ShapeScalar},
	FieldTypeTime:     {ValueShape: ShapeScalar},
	FieldTypeNumber:   {ValueShape: ShapeScalar, SupportsBounds: true},
	FieldTypeFile:     {ValueShape: ShapeScalar},
	FieldTypeURL:      {ValueShape: ShapeScalar},
	FieldTypeRating:   {ValueShape: ShapeRating},
	FieldTypeAddress:  {ValueShape: ShapeAddress},
}

// fieldTypeOrder is the palette display order used by builder clients
var fieldTypeOrder = []FieldType{
	FieldTypeText, FieldTypeEmail, FieldTypePhone, FieldTypeTextarea,
	FieldTypeSelect, FieldTypeCheckbox, FieldTypeRadio, FieldTypeDate,
	FieldTypeTime, FieldTypeNumber, FieldTypeFile, FieldTypeURL,
	FieldTypeRating, FieldTypeAddress,
}

// Describe returns the FieldSpec for a field type. Requesting an unknown
// type is a programming error on the caller's side, reported as
// ErrUnknownFieldType; the enumeration is validated when schemas are parsed.
func Describe(t FieldType) (FieldSpec, error) {
	spec, ok := fieldSpecs[t]
	if !ok {
		return FieldSpec{}, fmt.Errorf("%w: %q", ErrUnknownFieldType, t)
	}
	return spec, nil
}

// IsValidFieldType reports whether t is part of the closed enumeration
func IsValidFieldType(t FieldType) bool {
	_, ok := fieldSpecs[t]
	return ok
}

// FieldTypes returns all supported field types in palette order
func FieldTypes() []FieldType {
	out := make([]FieldType, len(fieldTypeOrder))
	copy(out, fieldTypeOrder)
	return out
}
