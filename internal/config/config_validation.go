package config

import (
	"fmt"
	"sort"
	"strings"

	surfaceserrors "github.com/alexisbeaulieu97/surfaces/pkg/errors"
)

// ValidateConfig performs structural and cross-field validation on an entire configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return surfaceserrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	if cfg.ReplaceDefaults && len(cfg.Mappings) == 0 {
		return surfaceserrors.NewValidationError("mappings", "replace_defaults requires at least one mapping", nil)
	}

	keys := make([]string, 0, len(cfg.Mappings))
	for key := range cfg.Mappings {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := validateMapping(key, cfg.Mappings[key]); err != nil {
			return err
		}
	}

	return nil
}

func validateMapping(key string, m Mapping) error {
	tokens := strings.Fields(m.Classes)
	if len(tokens) == 0 {
		return surfaceserrors.NewValidationError(fieldForMapping(key, "classes"), "classes must not be blank", nil)
	}

	v := validatorInstance()
	for i, token := range tokens {
		if err := v.Var(token, "class_token"); err != nil {
			return surfaceserrors.NewValidationError(
				fmt.Sprintf("%s[%d]", fieldForMapping(key, "classes"), i),
				fmt.Sprintf("invalid class token %q", token),
				err,
			)
		}
	}
	return nil
}
