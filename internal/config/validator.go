package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidateConfig performs validation on the GlobalConfig structure.
func ValidateConfig(cfg *GlobalConfig) error {
	validate := validator.New()

	_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "", "trace", "debug", "info", "warn", "error", "fatal", "panic":
			return true
		}
		return false
	})

	_ = validate.RegisterValidation("logformat", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "", "json", "console", "text":
			return true
		}
		return false
	})

	_ = validate.RegisterValidation("proverbackend", func(fl validator.FieldLevel) bool {
		return strings.ToLower(fl.Field().String()) == "local"
	})

	_ = validate.RegisterValidation("compressioncodec", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "", "zstd", "gzip", "snappy", "none", "uncompressed":
			return true
		}
		return false
	})

	if err := validate.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			messages := make([]string, 0, len(validationErrors))
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("field '%s' failed rule '%s'", fieldErr.Namespace(), fieldErr.Tag()))
			}
			return fmt.Errorf("config validation failed: %s", strings.Join(messages, "; "))
		}
		return err
	}

	return nil
}
