package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/payment_recon_app/internal/apperrors"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateStruct runs the `validate` tags of a request and maps failures to apperrors.ErrValidation.
func validateStruct(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			if fe.Param() != "" {
				msgs = append(msgs, fmt.Sprintf("%s failed %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			} else {
				msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
			}
		}
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, strings.Join(msgs, "; "))
	}
	return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
}

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

func isBusinessRejection(err error) bool {
	switch {
	case errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrNotFound),
		errors.Is(err, apperrors.ErrForbidden),
		errors.Is(err, apperrors.ErrInvalidTransition),
		errors.Is(err, apperrors.ErrInvalidState),
		errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrInsufficientFunds):
		return true
	}
	return false
}
