package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"trialbench/internal/users"
)

var historyTypes = []string{"json", "sqlite", "sqlite3", "postgres", "postgresql"}

// ValidateConfig validates configuration values and returns an error if any are invalid.
// This function should be called after viper has loaded the configuration.
func ValidateConfig() error {
	s := Current()
	var errors []string

	if s.MaxRecursion <= 0 {
		errors = append(errors, fmt.Sprintf("%s must be positive, got: %d", KeyMaxRecursion, s.MaxRecursion))
	}

	// Recursive variants recurse once per element: sizes are capped instead
	// of recovering from stack exhaustion.
	for _, key := range []string{KeyTextSizes, KeyListSizes} {
		sizes, err := intSliceE(key)
		if err != nil {
			errors = append(errors, fmt.Sprintf("%s: %v", key, err))
			continue
		}
		if len(sizes) == 0 {
			errors = append(errors, fmt.Sprintf("%s must list at least one size", key))
		}
		for _, n := range sizes {
			if n < 0 {
				errors = append(errors, fmt.Sprintf("%s must not contain negative sizes, got: %d", key, n))
			}
			if s.MaxRecursion > 0 && n > s.MaxRecursion {
				errors = append(errors, fmt.Sprintf("%s entry %d exceeds %s (%d)", key, n, KeyMaxRecursion, s.MaxRecursion))
			}
		}
	}

	if s.SearchSize < 0 {
		errors = append(errors, fmt.Sprintf("%s must not be negative, got: %d", KeySearchSize, s.SearchSize))
	}
	if targets, err := intSliceE(KeySearchTargets); err != nil {
		errors = append(errors, fmt.Sprintf("%s: %v", KeySearchTargets, err))
	} else if len(targets) == 0 {
		errors = append(errors, fmt.Sprintf("%s must list at least one target", KeySearchTargets))
	}

	if !contains(historyTypes, strings.ToLower(s.HistoryType)) {
		errors = append(errors, fmt.Sprintf("%s must be one of %s, got: %q", KeyHistoryType, strings.Join(historyTypes, ", "), s.HistoryType))
	}

	if _, err := users.PolicyByName(s.PatternsPolicy); err != nil {
		errors = append(errors, fmt.Sprintf("%s: %v", KeyPatternsPolicy, err))
	}

	if viper.IsSet(KeyCompareThreshold) && s.CompareThreshold < 0 {
		errors = append(errors, fmt.Sprintf("%s must not be negative, got: %v", KeyCompareThreshold, s.CompareThreshold))
	}

	// If there are any errors, return them
	if len(errors) > 0 {
		errorMsg := errors[0]
		for i := 1; i < len(errors); i++ {
			errorMsg += "\n  " + errors[i]
		}
		return fmt.Errorf("configuration validation failed:\n  %s", errorMsg)
	}

	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
