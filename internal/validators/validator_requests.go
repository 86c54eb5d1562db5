package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-travel-board/models"
	"github.com/go-playground/validator/v10"
)

// RequestValidator checks the inbound request bodies of all three services
// against the `validate` tags declared on the models.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	return &RequestValidator{validate: v}
}

// Validate checks obj. When fields are given only those struct fields
// (Go names) are checked.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch obj.(type) {
	case models.CreateUserRequest, *models.CreateUserRequest,
		models.AuthRequest, *models.AuthRequest,
		models.UpdateUserRequest, *models.UpdateUserRequest,
		models.CreateRouteRequest, *models.CreateRouteRequest,
		models.CreatePostRequest, *models.CreatePostRequest:
		return v.validateStruct(ctx, obj, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateStruct(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %w", ErrInvalidData, err)
	}

	details := make(map[string]string, len(validationErrors))
	for _, fieldErr := range validationErrors {
		details[fieldErr.Field()] = fieldErr.Tag()
	}
	return &ValidationError{Fields: details}
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}
