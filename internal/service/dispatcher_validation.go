// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/VacTuzX-dot/xfrontend/internal/validators"
	"github.com/VacTuzX-dot/xfrontend/models"
)

type DispatcherValidationService struct {
	inner     MutationDispatcher
	validator validators.Validator
}

func NewDispatcherValidationService() DispatcherWrapper {
	return &DispatcherValidationService{
		validator: validators.NewUserRecordValidator(),
	}
}

func (v *DispatcherValidationService) Wrap(inner MutationDispatcher) MutationDispatcher {
	v.inner = inner
	return v
}

func (v *DispatcherValidationService) DeleteOne(ctx context.Context, id models.RecordID) error {
	return v.inner.DeleteOne(ctx, id)
}

func (v *DispatcherValidationService) DeleteMany(ctx context.Context, ids []models.RecordID, progress ProgressFunc) models.BatchResult {
	return v.inner.DeleteMany(ctx, ids, progress)
}

func (v *DispatcherValidationService) RehashOne(ctx context.Context, record models.UserRecord) error {
	return v.inner.RehashOne(ctx, record)
}

func (v *DispatcherValidationService) RehashAll(ctx context.Context, records []models.UserRecord, progress ProgressFunc) models.BatchResult {
	return v.inner.RehashAll(ctx, records, progress)
}

func (v *DispatcherValidationService) Update(ctx context.Context, record models.UserRecord) error {
	// legacy rows may miss profile fields; only the id is mandatory for a PUT
	if err := v.validator.Validate(ctx, record, validators.FieldID); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRecordData, err)
	}
	return v.inner.Update(ctx, record)
}

func (v *DispatcherValidationService) Edit(ctx context.Context, id models.RecordID, req models.EditRequest) (models.UserRecord, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.UserRecord{}, fmt.Errorf("%w: %w", ErrInvalidEditData, err)
	}
	return v.inner.Edit(ctx, id, req)
}

func (v *DispatcherValidationService) Create(ctx context.Context, req models.SignUpRequest) (models.UserRecord, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.UserRecord{}, fmt.Errorf("%w: %w", ErrInvalidSignUpData, err)
	}
	return v.inner.Create(ctx, req)
}
