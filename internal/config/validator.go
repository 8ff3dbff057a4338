package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/avatint/internal/avatar"
	"github.com/alexisbeaulieu97/avatint/internal/color"
	avaerrors "github.com/alexisbeaulieu97/avatint/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("part_key", func(fl validator.FieldLevel) bool {
			_, err := avatar.ParseKey(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("brightness_mode", func(fl validator.FieldLevel) bool {
			_, err := color.ParseMode(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig performs schema and cross-field validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return avaerrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(cfg.Parts))
	for i, part := range cfg.Parts {
		key := strings.ToLower(strings.TrimSpace(part.Key))
		if prev, exists := seen[key]; exists {
			return avaerrors.NewValidationError(fieldForPart(i, "key"), fmt.Sprintf("duplicate part %q (first defined at parts[%d])", part.Key, prev), nil)
		}
		seen[key] = i
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return avaerrors.NewValidationError(field, msg, err)
	}

	return avaerrors.NewValidationError("config", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}

func fieldForPart(index int, field string) string {
	return fmt.Sprintf("parts[%d].%s", index, field)
}
