package config

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name      string
		setup     func()
		wantError bool
		errMsg    string
	}{
		{
			name:      "Valid Configuration",
			setup:     func() {},
			wantError: false,
		},
		{
			name: "Size Above Recursion Cap",
			setup: func() {
				viper.Set(KeyTextSizes, []int{5, 5000})
			},
			wantError: true,
			errMsg:    "recursion.text_sizes entry 5000 exceeds recursion.max_size",
		},
		{
			name: "Lower Cap",
			setup: func() {
				viper.Set(KeyMaxRecursion, 100)
			},
			wantError: true,
			errMsg:    "recursion.list_sizes entry 200 exceeds",
		},
		{
			name: "Non Positive Cap",
			setup: func() {
				viper.Set(KeyMaxRecursion, 0)
			},
			wantError: true,
			errMsg:    "recursion.max_size must be positive",
		},
		{
			name: "Negative Size",
			setup: func() {
				viper.Set(KeyListSizes, []int{-1})
			},
			wantError: true,
			errMsg:    "must not contain negative sizes",
		},
		{
			name: "Empty Targets",
			setup: func() {
				viper.Set(KeySearchTargets, []int{})
			},
			wantError: true,
			errMsg:    "search.targets must list at least one target",
		},
		{
			name: "Non Integer Size From Env",
			setup: func() {
				viper.Set(KeyTextSizes, "5,abc,7")
			},
			wantError: true,
			errMsg:    `recursion.text_sizes: invalid entry "abc": not an integer`,
		},
		{
			name: "Non Integer Target In File",
			setup: func() {
				viper.Set(KeySearchTargets, []any{3, "x9"})
			},
			wantError: true,
			errMsg:    `search.targets: invalid entry "x9"`,
		},
		{
			name: "Env Style Lists",
			setup: func() {
				viper.Set(KeyTextSizes, "5, 10 20")
				viper.Set(KeySearchTargets, "1,2")
			},
			wantError: false,
		},
		{
			name: "Negative Search Size",
			setup: func() {
				viper.Set(KeySearchSize, -5)
			},
			wantError: true,
			errMsg:    "search.size must not be negative",
		},
		{
			name: "Unknown History Backend",
			setup: func() {
				viper.Set(KeyHistoryType, "mongo")
			},
			wantError: true,
			errMsg:    "history.type must be one of",
		},
		{
			name: "Unknown Policy",
			setup: func() {
				viper.Set(KeyPatternsPolicy, "paranoid")
			},
			wantError: true,
			errMsg:    "unknown password policy",
		},
		{
			name: "Negative Threshold",
			setup: func() {
				viper.Set(KeyCompareThreshold, -1.0)
			},
			wantError: true,
			errMsg:    "compare.threshold must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			SetDefaults()
			defer viper.Reset()

			tt.setup()

			err := ValidateConfig()
			if (err != nil) != tt.wantError {
				t.Errorf("ValidateConfig() error = %v, wantError %v", err, tt.wantError)
				return
			}

			if tt.wantError && tt.errMsg != "" {
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("ValidateConfig() error = %v, want error containing %q", err, tt.errMsg)
				}
			}
		})
	}
}

func TestValidateConfig_BadEntryIsNotReportedAsEmpty(t *testing.T) {
	viper.Reset()
	SetDefaults()
	defer viper.Reset()

	viper.Set(KeyListSizes, "10 ten")

	err := ValidateConfig()
	if err == nil {
		t.Fatal("ValidateConfig() expected an error")
	}
	if strings.Contains(err.Error(), "must list at least one size") {
		t.Errorf("ValidateConfig() error = %v, want the bad entry named instead", err)
	}
	if !strings.Contains(err.Error(), `invalid entry "ten"`) {
		t.Errorf("ValidateConfig() error = %v, want error naming \"ten\"", err)
	}
}

func TestIntSliceE(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set(KeyTextSizes, "3, 4,5")
	got, err := intSliceE(KeyTextSizes)
	if err != nil || len(got) != 3 || got[0] != 3 || got[2] != 5 {
		t.Errorf("intSliceE() = %v, %v; want [3 4 5]", got, err)
	}

	viper.Set(KeyTextSizes, "3,abc")
	if got := intSlice(KeyTextSizes); got != nil {
		t.Errorf("intSlice() = %v, want nil for an unparseable list", got)
	}
}
