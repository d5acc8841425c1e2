package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Empty(t *testing.T) {
	conf := NewEmptyConfig()
	assert.Equal(t, 1, conf.OptionalInt("key", 1))
	assert.Equal(t, true, conf.OptionalBool("key", true))
	assert.Equal(t, "def", conf.OptionalString("key", "def"))
}

func TestConfig_Values(t *testing.T) {
	conf := NewConfig(map[string]interface{}{
		"int":    2,
		"int64":  int64(3),
		"bool":   true,
		"string": "val",
	})

	assert.Equal(t, 2, conf.OptionalInt("int", 1))
	assert.Equal(t, 3, conf.OptionalInt("int64", 1))
	assert.Equal(t, true, conf.OptionalBool("bool", false))
	assert.Equal(t, "val", conf.OptionalString("string", "def"))
}

func TestConfig_WrongType(t *testing.T) {
	conf := NewConfig(map[string]interface{}{
		"key": "val",
	})

	assert.Panics(t, func() { conf.OptionalInt("key", 1) })
	assert.Panics(t, func() { conf.OptionalBool("key", false) })
	assert.Equal(t, "val", conf.OptionalString("key", "def"))
}

func TestReadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rendezvous.toml")
	assert.Nil(t, os.WriteFile(path, []byte(`
name = "bus"

[rendezvous.log]
level = 2

[rendezvous.match]
highest = true
`), 0600))

	conf, err := ReadConfigFile(path)
	assert.Nil(t, err)
	assert.Equal(t, "bus", conf.OptionalString("name", ""))
	assert.Equal(t, 2, conf.OptionalInt("rendezvous.log.level", 0))
	assert.Equal(t, true, conf.OptionalBool("rendezvous.match.highest", false))
}

func TestReadConfigFile_Missing(t *testing.T) {
	_, err := ReadConfigFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
