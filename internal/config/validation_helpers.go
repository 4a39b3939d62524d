package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	surfaceserrors "github.com/alexisbeaulieu97/surfaces/pkg/errors"
)

// convertValidationError normalizes validator errors into surfaces validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return surfaceserrors.NewValidationError(field, msg, err)
	}

	return surfaceserrors.NewValidationError("config", err.Error(), err)
}

var yamlFieldNames = map[string]string{
	"RemoveAttribute":  "remove_attribute",
	"PreserveExisting": "preserve_existing",
	"ReplaceDefaults":  "replace_defaults",
	"CacheSize":        "cache_size",
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	var lowered []string
	for _, part := range parts {
		name, index := part, ""
		if i := strings.Index(part, "["); i >= 0 {
			name, index = part[:i], part[i:]
		}
		if mapped, ok := yamlFieldNames[name]; ok {
			lowered = append(lowered, mapped+index)
			continue
		}
		lowered = append(lowered, strings.ToLower(name)+index)
	}
	return strings.Join(lowered, ".")
}

func fieldForMapping(key, field string) string {
	if field == "" {
		return fmt.Sprintf("mappings.%s", key)
	}
	return fmt.Sprintf("mappings.%s.%s", key, field)
}
