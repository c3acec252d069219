package domain

import "time"

// FormStatus represents the lifecycle state of a form
type FormStatus string

const (
	FormStatusDraft     FormStatus = "draft"
	FormStatusPublished FormStatus = "published"
)

// FieldValidation carries optional numeric bounds for a field. Min/Max are
// length bounds for text fields and value bounds for number fields; a nil
// bound does not constrain. Pattern is carried for builder clients but not
// enforced server-side.
type FieldValidation struct {
	Min     *int   `json:"min,omitempty"`
	Max     *int   `json:"max,omitempty"`
	Pattern string `json:"pattern,omitempty"`
}

// FormField is one question within a form. Field ids are unique within one
// form and slice order is the display and traversal order. Options must be
// non-empty exactly when the field type carries options (select, radio,
// checkbox).
type FormField struct {
	ID          string           `json:"id"`
	Type        FieldType        `json:"type"`
	Label       string           `json:"label"`
	Placeholder string           `json:"placeholder,omitempty"`
	Required    bool             `json:"required"`
	Options     []string         `json:"options,omitempty"`
	Validation  *FieldValidation `json:"validation,omitempty"`
}

// FormStyle holds presentation options. It is carried opaquely by the form:
// neither validation nor submission recording ever interprets it.
type FormStyle struct {
	PrimaryColor    string `json:"primaryColor"`
	BackgroundColor string `json:"backgroundColor"`
	TextColor       string `json:"textColor"`
	BorderRadius    string `json:"borderRadius"`
	FontFamily      string `json:"fontFamily"`
	ButtonStyle     string `json:"buttonStyle"`
	Spacing         string `json:"spacing"`
}

// DefaultStyle returns the style applied to forms created without one
func DefaultStyle() FormStyle {
	return FormStyle{
		PrimaryColor:    "#3b82f6",
		BackgroundColor: "#ffffff",
		TextColor:       "#1f2937",
		BorderRadius:    "0.375rem",
		FontFamily:      "Inter",
		ButtonStyle:     "rounded",
		Spacing:         "normal",
	}
}

// Form represents a form definition with its ordered fields, presentation
// style, lifecycle status and advisory counters. IsPublished mirrors Status
// for indexed publish-state queries.
type Form struct {
	BaseModel
	Title          string      `gorm:"type:varchar(255);not null" json:"title"`
	Description    string      `gorm:"type:text" json:"description"`
	Fields         []FormField `gorm:"serializer:json;type:jsonb" json:"fields"`
	Style          FormStyle   `gorm:"serializer:json;type:jsonb" json:"style"`
	Status         FormStatus  `gorm:"type:varchar(20);not null;default:'draft';index:idx_forms_status" json:"status"`
	IsPublished    bool        `gorm:"not null;default:false;index:idx_forms_is_published" json:"isPublished"`
	ResponseCount  int64       `gorm:"not null;default:0" json:"responses"`
	ViewCount      int64       `gorm:"not null;default:0" json:"views"`
	LastResponseAt *time.Time  `gorm:"type:timestamp" json:"lastResponse,omitempty"`
}

// TableName specifies the table name for Form
func (Form) TableName() string {
	return "forms"
}

// FindField returns the field with the given id and its position, or -1
func (f Form) FindField(fieldID string) (FormField, int) {
	for i, field := range f.Fields {
		if field.ID == fieldID {
			return field, i
		}
	}
	return FormField{}, -1
}
