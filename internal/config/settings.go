package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Settings is a typed snapshot of the loaded configuration.
type Settings struct {
	Verbose          bool
	LogFile          string
	NoColor          bool
	TextSizes        []int
	ListSizes        []int
	MaxRecursion     int
	SearchSize       int
	SearchTargets    []int
	HistoryType      string
	HistoryPath      string
	PatternsPolicy   string
	CompareThreshold float64
}

// Current reads the settings from viper.
func Current() Settings {
	return Settings{
		Verbose:          viper.GetBool(KeyVerbose),
		LogFile:          viper.GetString(KeyLogFile),
		NoColor:          viper.GetBool(KeyNoColor),
		TextSizes:        intSlice(KeyTextSizes),
		ListSizes:        intSlice(KeyListSizes),
		MaxRecursion:     viper.GetInt(KeyMaxRecursion),
		SearchSize:       viper.GetInt(KeySearchSize),
		SearchTargets:    intSlice(KeySearchTargets),
		HistoryType:      viper.GetString(KeyHistoryType),
		HistoryPath:      viper.GetString(KeyHistoryPath),
		PatternsPolicy:   viper.GetString(KeyPatternsPolicy),
		CompareThreshold: viper.GetFloat64(KeyCompareThreshold),
	}
}

// intSlice accepts YAML lists as well as space or comma separated strings
// from the environment. Unparseable lists read as empty; ValidateConfig
// reports them through intSliceE.
func intSlice(key string) []int {
	v, err := intSliceE(key)
	if err != nil {
		return nil
	}
	return v
}

// intSliceE is intSlice with the first entry that is not an integer
// reported as an error.
func intSliceE(key string) ([]int, error) {
	var items []any
	switch raw := viper.Get(key).(type) {
	case nil:
		return nil, nil
	case string:
		for _, f := range splitList(raw) {
			items = append(items, f)
		}
	case []any:
		items = raw
	case []string:
		for _, f := range raw {
			items = append(items, f)
		}
	default:
		return cast.ToIntSliceE(raw)
	}

	out := make([]int, 0, len(items))
	for _, item := range items {
		n, err := cast.ToIntE(item)
		if err != nil {
			return nil, fmt.Errorf("invalid entry %q: not an integer", fmt.Sprint(item))
		}
		out = append(out, n)
	}
	return out, nil
}

func splitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
}
