package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"go.uber.org/zap"

	"formmaker-api/internal/domain"
	"formmaker-api/internal/dto"
)

// For any submission against a published form with one required text field,
// a record is created exactly when the answer is non-blank, and on rejection
// nothing is persisted and the counter is never bumped.
func TestProperty_SubmissionRecordedIffValid(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("record created iff required answer present", prop.ForAll(
		func(answer string, includeAnswer bool) bool {
			formID := uuid.New()
			created := 0
			bumped := 0

			formRepo := &MockFormRepository{
				FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Form, error) {
					return &domain.Form{
						BaseModel: domain.BaseModel{ID: formID},
						Title:     "Probe",
						Fields: []domain.FormField{
							{ID: "answer", Type: domain.FieldTypeText, Label: "Answer", Required: true},
						},
						Status:      domain.FormStatusPublished,
						IsPublished: true,
					}, nil
				},
				IncrementResponseCountFunc: func(ctx context.Context, id uuid.UUID, at time.Time) error {
					bumped++
					return nil
				},
			}
			respRepo := &MockResponseRepository{
				CreateFunc: func(ctx context.Context, record *domain.ResponseRecord) error {
					created++
					return nil
				},
			}
			svc := NewSubmissionService(formRepo, respRepo, nil, zap.NewNop())

			answers := map[string]any{}
			if includeAnswer {
				answers["answer"] = answer
			}
			_, err := svc.SubmitForm(context.Background(), formID, &dto.SubmitFormRequest{Answers: answers}, dto.SubmitMeta{})

			valid := includeAnswer && strings.TrimSpace(answer) != ""
			if valid {
				return err == nil && created == 1 && bumped == 1
			}
			return err != nil && created == 0 && bumped == 0
		},
		gen.AnyString(),
		gen.Bool(),
	))

	properties.TestingRun(t)
}
