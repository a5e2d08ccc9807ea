// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/VacTuzX-dot/xfrontend/models"
)

// Field names accepted by [UserRecordValidator].
const (
	FieldID              = "id"
	FieldUsername        = "username"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirm_password"
	FieldTitle           = "title"
	FieldFirstName       = "first_name"
	FieldLastName        = "last_name"
	FieldAddress         = "address"
	FieldSex             = "sex"
	FieldBirthday        = "birthday"
	FieldTerms           = "terms"
)

// MinPasswordLength is the shortest password the sign-up form accepts.
const MinPasswordLength = 6

var profileFields = []string{FieldUsername, FieldTitle, FieldFirstName, FieldLastName, FieldAddress, FieldSex, FieldBirthday}

type UserRecordValidator struct{}

func NewUserRecordValidator() Validator {
	return &UserRecordValidator{}
}

// Validate accepts models.SignUpRequest, models.EditRequest,
// models.UserRecord and models.LoginRequest, by value or pointer.
func (v *UserRecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignUpRequest:
		return v.validateSignUp(value, fields...)
	case *models.SignUpRequest:
		return v.validateSignUp(*value, fields...)

	case models.EditRequest:
		return v.validateEdit(value, fields...)
	case *models.EditRequest:
		return v.validateEdit(*value, fields...)

	case models.UserRecord:
		return v.validateRecord(value, fields...)
	case *models.UserRecord:
		return v.validateRecord(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value)
	case *models.LoginRequest:
		return v.validateLogin(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserRecordValidator) validateSignUp(req models.SignUpRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = append([]string{FieldPassword, FieldConfirmPassword, FieldTerms}, profileFields...)
	}

	for _, f := range fields {
		switch f {
		case FieldConfirmPassword:
			if req.ConfirmPassword != req.Password {
				return ErrPasswordMismatch
			}
		case FieldTerms:
			if !req.AcceptedTerms {
				return ErrTermsNotAccepted
			}
		case FieldPassword:
			if utf8.RuneCountInString(req.Password) < MinPasswordLength {
				return ErrShortPassword
			}
		default:
			if err := v.validateRecord(req.UserRecord, f); err != nil {
				return err
			}
		}
	}

	return nil
}

func (v *UserRecordValidator) validateEdit(req models.EditRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = append([]string{FieldPassword}, profileFields...)
	}

	record := models.UserRecord{
		TitlePrefix: req.TitlePrefix,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Username:    req.Username,
		Address:     req.Address,
		Sex:         req.Sex,
		Birthday:    req.Birthday,
	}

	for _, f := range fields {
		if f == FieldPassword {
			// empty keeps the stored password
			if req.NewPassword != "" && !models.IsHashedPassword(req.NewPassword) &&
				utf8.RuneCountInString(req.NewPassword) < MinPasswordLength {
				return ErrShortPassword
			}
			continue
		}
		if err := v.validateRecord(record, f); err != nil {
			return err
		}
	}

	return nil
}

func (v *UserRecordValidator) validateRecord(r models.UserRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = append([]string{FieldID}, profileFields...)
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if r.ID == "" {
				return ErrEmptyID
			}
		case FieldUsername:
			if blank(r.Username) {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if utf8.RuneCountInString(r.Password) < MinPasswordLength {
				return ErrShortPassword
			}
		case FieldTitle:
			if blank(r.TitlePrefix) {
				return ErrEmptyTitle
			}
		case FieldFirstName:
			if blank(r.FirstName) {
				return ErrEmptyFirstName
			}
		case FieldLastName:
			if blank(r.LastName) {
				return ErrEmptyLastName
			}
		case FieldAddress:
			if blank(r.Address) {
				return ErrEmptyAddress
			}
		case FieldSex:
			if blank(r.Sex) {
				return ErrEmptySex
			}
		case FieldBirthday:
			if _, ok := r.BirthDate(); !ok {
				return ErrInvalidBirthday
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserRecordValidator) validateLogin(req models.LoginRequest) error {
	if blank(req.Username) || req.Password == "" {
		return ErrEmptyLoginCredential
	}
	return nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
