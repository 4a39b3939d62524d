package config

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern        = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	semanticKeyPattern   = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)
	classTokenPattern    = regexp.MustCompile(`^[^\s"'<>=]+$`)
	attributeNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_.:-]*$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("semantic_key", func(fl validator.FieldLevel) bool {
			return semanticKeyPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("class_token", func(fl validator.FieldLevel) bool {
			return classTokenPattern.MatchString(fl.Field().String())
		})

		// Attribute names must be lower case: the HTML parser folds them.
		_ = v.RegisterValidation("attribute_name", func(fl validator.FieldLevel) bool {
			return attributeNamePattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns a configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}
