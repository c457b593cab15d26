package types

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// ValidateCreate checks a create request before it is dispatched.
func ValidateCreate(req CreateTratativaRequest) error {
	return describe(validatorInstance().Struct(req))
}

// ValidateUpdate checks a partial update before it is dispatched.
func ValidateUpdate(req UpdateTratativaRequest) error {
	if req.Empty() {
		return fmt.Errorf("update has no fields")
	}
	return describe(validatorInstance().Struct(req))
}

// ValidateID rejects non-positive record ids.
func ValidateID(id int64) error {
	if id <= 0 {
		return fmt.Errorf("id must be positive, got %d", id)
	}
	return nil
}

// describe flattens validator errors into one readable message.
func describe(err error) error {
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s: %s=%s", field, fe.Tag(), fe.Param()))
		} else {
			parts = append(parts, fmt.Sprintf("%s: %s", field, fe.Tag()))
		}
	}
	return fmt.Errorf("invalid request: %s", strings.Join(parts, ", "))
}
