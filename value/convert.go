package value

import (
	"fmt"
	"net/url"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"
)

var (
	DefaultTrue  = []string{"1", "yes", "true", "on"}  // DefaultTrue are the raw values [Bool] accepts as true, and can be changed.
	DefaultFalse = []string{"0", "no", "false", "off"} // DefaultFalse are the raw values [Bool] accepts as false, and can be changed.
)

// String is the identity converter, binding the raw token unchanged.
func String(raw string) (any, error) {
	return raw, nil
}

// Int converts the raw token to an int.
func Int(raw string) (any, error) {
	val, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return val, nil
}

// Int64 converts the raw token to an int64.
func Int64(raw string) (any, error) {
	val, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	return val, nil
}

// Uint converts the raw token to a uint64.
func Uint(raw string) (any, error) {
	val, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	return val, nil
}

// Float64 converts the raw token to a float64.
func Float64(raw string) (any, error) {
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return val, nil
}

// Bool translates the raw token case-insensitively using [DefaultTrue] and
// [DefaultFalse].
func Bool(raw string) (any, error) {
	lowered := strings.ToLower(strings.TrimSpace(raw))
	if slices.Contains(DefaultTrue, lowered) {
		return true, nil
	}
	if slices.Contains(DefaultFalse, lowered) {
		return false, nil
	}
	return nil, fmt.Errorf("cannot interpret %q as a boolean", raw)
}

// Duration converts the raw token with [time.ParseDuration].
func Duration(raw string) (any, error) {
	val, err := time.ParseDuration(raw)
	if err != nil {
		return nil, err
	}
	return val, nil
}

// URL converts the raw token to a [*url.URL].
func URL(raw string) (any, error) {
	val, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	return val, nil
}

// ExistingFile requires the raw token to name an existing regular file,
// binding the path unchanged.
func ExistingFile(raw string) (any, error) {
	info, err := os.Stat(raw)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%q is a directory, not a file", raw)
	}
	return raw, nil
}

// ExistingDir requires the raw token to name an existing directory, binding
// the path unchanged.
func ExistingDir(raw string) (any, error) {
	info, err := os.Stat(raw)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%q is not a directory", raw)
	}
	return raw, nil
}
