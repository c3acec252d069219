package job

import (
	"context"

	"go.uber.org/zap"

	"formmaker-api/internal/repository"
)

// ReconcileJob recomputes per-form response counters from the stored
// response records. The counter kept on the form row is bumped outside
// the submission transaction, so it can drift behind the record table;
// this job brings it back in line.
type ReconcileJob struct {
	formRepo     repository.FormRepository
	responseRepo repository.ResponseRepository
	logger       *zap.Logger
}

// NewReconcileJob creates a new ReconcileJob instance
func NewReconcileJob(
	formRepo repository.FormRepository,
	responseRepo repository.ResponseRepository,
	logger *zap.Logger,
) *ReconcileJob {
	return &ReconcileJob{
		formRepo:     formRepo,
		responseRepo: responseRepo,
		logger:       logger,
	}
}

// Run executes one reconciliation pass over all forms
func (j *ReconcileJob) Run() {
	ctx := context.Background()

	j.logger.Info("Starting response counter reconciliation")

	forms, err := j.formRepo.FindAll(ctx)
	if err != nil {
		j.logger.Error("Failed to list forms for reconciliation",
			zap.Error(err),
		)
		return
	}

	checked := 0
	corrected := 0
	failed := 0

	for _, form := range forms {
		checked++

		actual, err := j.responseRepo.CountByFormID(ctx, form.ID)
		if err != nil {
			j.logger.Error("Failed to count responses for form",
				zap.String("form_id", form.ID.String()),
				zap.Error(err),
			)
			failed++
			continue
		}

		if actual == form.ResponseCount {
			continue
		}

		if err := j.formRepo.SetResponseCount(ctx, form.ID, actual); err != nil {
			j.logger.Error("Failed to correct response counter",
				zap.String("form_id", form.ID.String()),
				zap.Int64("stored", form.ResponseCount),
				zap.Int64("actual", actual),
				zap.Error(err),
			)
			failed++
			continue
		}

		corrected++

		j.logger.Warn("Corrected drifted response counter",
			zap.String("form_id", form.ID.String()),
			zap.Int64("stored", form.ResponseCount),
			zap.Int64("actual", actual),
		)
	}

	j.logger.Info("Response counter reconciliation completed",
		zap.Int("checked", checked),
		zap.Int("corrected", corrected),
		zap.Int("failed", failed),
	)
}
