package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Direction identifies a reorder move relative to display order
type Direction string

const (
	MoveUp   Direction = "up"
	MoveDown Direction = "down"
)

// Every operation in this file has value semantics: the receiver is never
// mutated and the returned Form owns a fresh field slice. Builder clients
// hold several snapshots of the same form at once (preview, undo), so
// aliasing a shared slice between them is not allowed.

// NewDraft creates a draft form with no fields, the default style and a
// fresh identifier.
func NewDraft(title string) Form {
	now := time.Now().UTC()
	return Form{
		BaseModel: BaseModel{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:  title,
		Fields: []FormField{},
		Style:  DefaultStyle(),
		Status: FormStatusDraft,
	}
}

// AddField appends a new field of the given type. Option-bearing types start
// with two placeholder options so the builder always renders something
// selectable.
func (f Form) AddField(t FieldType, label string) (Form, error) {
	spec, err := Describe(t)
	if err != nil {
		return f, err
	}

	field := FormField{
		ID:       uuid.NewString(),
		Type:     t,
		Label:    label,
		Required: false,
	}
	if spec.HasOptions {
		field.Options = []string{"Option 1", "Option 2"}
	}

	out := f
	out.Fields = append(cloneFields(f.Fields), field)
	return out, nil
}

// FieldPatch is a partial update of one field. Nil members leave the current
// value untouched; Options and Validation replace wholesale when set.
type FieldPatch struct {
	Label       *string
	Placeholder *string
	Required    *bool
	Options     []string
	Validation  *FieldValidation
}

// UpdateField merges patch onto the named field
func (f Form) UpdateField(fieldID string, patch FieldPatch) (Form, error) {
	_, idx := f.FindField(fieldID)
	if idx < 0 {
		return f, fmt.Errorf("%w: %q", ErrFieldNotFound, fieldID)
	}

	fields := cloneFields(f.Fields)
	field := &fields[idx]
	if patch.Label != nil {
		field.Label = *patch.Label
	}
	if patch.Placeholder != nil {
		field.Placeholder = *patch.Placeholder
	}
	if patch.Required != nil {
		field.Required = *patch.Required
	}
	if patch.Options != nil {
		field.Options = append([]string(nil), patch.Options...)
	}
	if patch.Validation != nil {
		v := *patch.Validation
		field.Validation = &v
	}

	out := f
	out.Fields = fields
	return out, nil
}

// RemoveField drops the named field. Removing an absent field is a no-op.
func (f Form) RemoveField(fieldID string) Form {
	_, idx := f.FindField(fieldID)
	if idx < 0 {
		return f
	}

	fields := cloneFields(f.Fields)
	out := f
	out.Fields = append(fields[:idx], fields[idx+1:]...)
	return out
}

// Reorder swaps the named field with its immediate neighbour in the given
// direction. Moving the first field up or the last field down is a no-op,
// as is naming an absent field.
func (f Form) Reorder(fieldID string, dir Direction) Form {
	_, idx := f.FindField(fieldID)
	if idx < 0 {
		return f
	}

	var swap int
	switch dir {
	case MoveUp:
		swap = idx - 1
	case MoveDown:
		swap = idx + 1
	default:
		return f
	}
	if swap < 0 || swap >= len(f.Fields) {
		return f
	}

	fields := cloneFields(f.Fields)
	fields[idx], fields[swap] = fields[swap], fields[idx]

	out := f
	out.Fields = fields
	return out
}

// Publish transitions the form to the published state, making it reachable
// for submission. Publishing an already-published form is idempotent.
func (f Form) Publish() (Form, error) {
	if strings.TrimSpace(f.Title) == "" {
		return f, ErrMissingTitle
	}
	if len(f.Fields) == 0 {
		return f, ErrEmptyForm
	}

	out := f
	out.Fields = cloneFields(f.Fields)
	out.Status = FormStatusPublished
	out.IsPublished = true
	return out, nil
}

// CheckFields verifies the schema invariants for a field list: every field
// has a label and a known type, ids are unique, and the option list is
// non-empty exactly for option-bearing types.
func CheckFields(fields []FormField) error {
	seen := make(map[string]bool, len(fields))
	for _, field := range fields {
		if strings.TrimSpace(field.Label) == "" {
			return fmt.Errorf("all fields must have a label")
		}
		spec, err := Describe(field.Type)
		if err != nil {
			return err
		}
		if spec.HasOptions && len(field.Options) == 0 {
			return fmt.Errorf("field %q requires at least one option", field.Label)
		}
		if !spec.HasOptions && len(field.Options) > 0 {
			return fmt.Errorf("field %q does not take options", field.Label)
		}
		if field.ID != "" {
			if seen[field.ID] {
				return fmt.Errorf("duplicate field id %q", field.ID)
			}
			seen[field.ID] = true
		}
	}
	return nil
}

func cloneFields(fields []FormField) []FormField {
	out := make([]FormField, len(fields))
	copy(out, fields)
	for i := range out {
		if out[i].Options != nil {
			out[i].Options = append([]string(nil), out[i].Options...)
		}
		if out[i].Validation != nil {
			v := *out[i].Validation
			out[i].Validation = &v
		}
	}
	return out
}
