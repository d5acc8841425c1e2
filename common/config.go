package common

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Configuration is a runtime concern.  Values are looked up by dotted key
// with a default supplied at the call site, so a missing key is never an
// error.  A key holding the wrong type is a programming error and panics.
type ConfigType string

const (
	Bool   ConfigType = "bool"
	Int    ConfigType = "int"
	String ConfigType = "string"
)

type ConfigMissingError struct {
	key string
}

func (c ConfigMissingError) Error() string {
	return fmt.Sprintf("Config is missing key [%s]", c.key)
}

type ConfigParsingError struct {
	expected ConfigType
	key      string
	val      interface{}
}

func (c ConfigParsingError) Error() string {
	return fmt.Sprintf("Error parsing config key [%s].  Expected type [%s], which can't be converted from [%v]", c.key, c.expected, c.val)
}

type Config interface {
	OptionalInt(key string, def int) int
	OptionalBool(key string, def bool) bool
	OptionalString(key string, def string) string
}

func NewEmptyConfig() Config {
	return NewConfig(nil)
}

func NewConfig(internal map[string]interface{}) Config {
	if internal == nil {
		internal = make(map[string]interface{})
	}

	return &config{internal}
}

// Reads a toml file.  Nested tables are flattened into dotted keys, so
//
//	[rendezvous.match]
//	highest = true
//
// is available as "rendezvous.match.highest".
func ReadConfigFile(path string) (Config, error) {
	var raw map[string]interface{}
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, errors.Wrapf(err, "Error reading config file [%v]", path)
	}

	flat := make(map[string]interface{})
	flatten("", raw, flat)
	return NewConfig(flat), nil
}

func flatten(prefix string, raw map[string]interface{}, out map[string]interface{}) {
	for k, v := range raw {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		if nested, ok := v.(map[string]interface{}); ok {
			flatten(key, nested, out)
			continue
		}

		out[key] = v
	}
}

type config struct {
	internal map[string]interface{}
}

func (c *config) OptionalInt(key string, def int) int {
	val, err := readInt(c.internal, key)
	return orDefault(val, def, err)
}

func (c *config) OptionalBool(key string, def bool) bool {
	val, err := readBool(c.internal, key)
	return orDefault(val, def, err)
}

func (c *config) OptionalString(key string, def string) string {
	val, err := readString(c.internal, key)
	return orDefault(val, def, err)
}

func orDefault[T any](val T, def T, err error) T {
	if err == nil {
		return val
	}

	switch err.(type) {
	case ConfigMissingError:
		return def
	}

	panic(err)
}

func readInt(m map[string]interface{}, key string) (int, error) {
	val, ok := m[key]
	if !ok {
		return 0, ConfigMissingError{key}
	}

	// toml decodes every integer as int64
	switch ret := val.(type) {
	case int:
		return ret, nil
	case int64:
		return int(ret), nil
	}

	return 0, ConfigParsingError{Int, key, val}
}

func readBool(m map[string]interface{}, key string) (bool, error) {
	val, ok := m[key]
	if !ok {
		return false, ConfigMissingError{key}
	}

	ret, ok := val.(bool)
	if !ok {
		return false, ConfigParsingError{Bool, key, val}
	}

	return ret, nil
}

func readString(m map[string]interface{}, key string) (string, error) {
	val, ok := m[key]
	if !ok {
		return "", ConfigMissingError{key}
	}

	ret, ok := val.(string)
	if !ok {
		return "", ConfigParsingError{String, key, val}
	}

	return ret, nil
}
