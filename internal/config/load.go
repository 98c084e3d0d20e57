package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"trialbench/internal/telemetry"
)

// Configuration keys.
const (
	KeyVerbose          = "verbose"
	KeyLogFile          = "log_file"
	KeyNoColor          = "no_color"
	KeyTextSizes        = "recursion.text_sizes"
	KeyListSizes        = "recursion.list_sizes"
	KeyMaxRecursion     = "recursion.max_size"
	KeySearchSize       = "search.size"
	KeySearchTargets    = "search.targets"
	KeyHistoryType      = "history.type"
	KeyHistoryPath      = "history.path"
	KeyPatternsPolicy   = "patterns.policy"
	KeyCompareThreshold = "compare.threshold"
)

// Defaults mirror the fixed inputs of the original benchmark scripts. Sizes
// stay well below the depth at which the recursive variants become a problem.
var (
	DefaultTextSizes     = []int{5, 10, 20, 50, 100, 200, 300, 400, 600, 800}
	DefaultListSizes     = []int{10, 50, 100, 200, 300, 400, 500, 600, 700, 800}
	DefaultSearchTargets = []int{3, 3433, 6778, 6, 15000, 19999, 50, 12345, 9876, 1}
)

const (
	DefaultMaxRecursion = 1000
	DefaultSearchSize   = 20000
	DefaultHistoryType  = "json"
	DefaultHistoryPath  = "" // backend default
	DefaultPolicy       = "strong"
	DefaultThreshold    = 10.0
)

// SetDefaults registers every default on viper.
func SetDefaults() {
	viper.SetDefault(KeyVerbose, false)
	viper.SetDefault(KeyLogFile, "")
	viper.SetDefault(KeyNoColor, false)
	viper.SetDefault(KeyTextSizes, DefaultTextSizes)
	viper.SetDefault(KeyListSizes, DefaultListSizes)
	viper.SetDefault(KeyMaxRecursion, DefaultMaxRecursion)
	viper.SetDefault(KeySearchSize, DefaultSearchSize)
	viper.SetDefault(KeySearchTargets, DefaultSearchTargets)
	viper.SetDefault(KeyHistoryType, DefaultHistoryType)
	viper.SetDefault(KeyHistoryPath, DefaultHistoryPath)
	viper.SetDefault(KeyPatternsPolicy, DefaultPolicy)
	viper.SetDefault(KeyCompareThreshold, DefaultThreshold)
}

// Load initializes the configuration from an optional file, a .env file and
// TRIALBENCH_* environment variables. A missing config file is not an error;
// nothing is ever written back.
func Load(cfgFile string) error {
	// .env is optional
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("trialbench")
	}

	viper.SetEnvPrefix("TRIALBENCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	SetDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	} else {
		telemetry.LogDebug("using config file", "path", viper.ConfigFileUsed())
	}

	return nil
}
