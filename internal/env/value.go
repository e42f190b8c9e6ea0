package env

import (
	"os"
	"strings"
)

// Source looks up a configuration value by key.
// Keys are compared case-insensitive by the sources in this package.
type Source func(key string) (string, bool)

// OS reads from the process environment.
func OS() Source {
	return Map(environ())
}

func environ() map[string]string {
	envMap := map[string]string{}
	environ := os.Environ()
	for i := 0; i < len(environ); i++ {
		key, val, found := strings.Cut(environ[i], "=")
		if !found {
			continue
		}
		envMap[key] = val
	}
	return envMap
}

// Map creates a [Source] from a static map, which is mostly useful for tests.
func Map(vals map[string]string) Source {
	lowered := make(map[string]string, len(vals))
	for k, v := range vals {
		lowered[strings.ToLower(k)] = v
	}
	return func(key string) (string, bool) {
		val, ok := lowered[strings.ToLower(key)]
		return val, ok
	}
}

// Val will attempt to get a value using the given key.
// If the variable isn't set, or is empty after trimming whitespace, then the defaultVal will be returned.
func (s Source) Val(key string, defaultVal string) string {
	if s == nil {
		return defaultVal
	}
	val, ok := s(key)
	if !ok {
		return defaultVal
	}
	trimmed := strings.TrimSpace(val)
	if len(trimmed) == 0 {
		return defaultVal
	}
	return trimmed
}

var (
	DefaultTrue  = []string{"1", "yes", "true", "on"}  // DefaultTrue are the values considered "true" when using [Source.Bool], and can be changed.
	DefaultFalse = []string{"0", "no", "false", "off"} // DefaultFalse are the values considered "false" when using [Source.Bool], and can be changed.
)

// Bool interprets a value as a boolean, using [DefaultTrue] and [DefaultFalse].
// The defaultVal will be returned if the variable isn't set, is empty, or can't be a boolean value.
func (s Source) Bool(key string, defaultVal bool) bool {
	sval := strings.ToLower(s.Val(key, ""))
	if len(sval) == 0 {
		return defaultVal
	}
	for _, v := range DefaultTrue {
		if sval == v {
			return true
		}
	}
	for _, v := range DefaultFalse {
		if sval == v {
			return false
		}
	}
	return defaultVal
}

// OneOf returns the value for key if it case-insensitively matches one of the allowed values.
// The matching allowed value is returned, so callers can compare without normalizing.
// Otherwise, defaultVal is returned.
func (s Source) OneOf(key string, defaultVal string, allowed ...string) string {
	sval := s.Val(key, "")
	for _, a := range allowed {
		if strings.EqualFold(sval, a) {
			return a
		}
	}
	return defaultVal
}
