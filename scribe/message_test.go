package scribe

import (
	"bytes"
	"encoding/json"
	"testing"

	uuid "github.com/satori/go.uuid"
	"github.com/stretchr/testify/assert"
)

type item struct {
	name string
}

func (i item) Write(w Writer) {
	w.WriteString("name", i.name)
}

func readItem(r Reader) (interface{}, error) {
	var ret item
	if err := r.ReadString("name", &ret.name); err != nil {
		return nil, err
	}
	return ret, nil
}

func TestReadBool_Empty(t *testing.T) {
	msg := Build(func(w Writer) {})

	var field bool
	assert.Error(t, msg.ReadBool("field", &field))
}

func TestReadString_Empty(t *testing.T) {
	msg := Build(func(w Writer) {})

	var field string
	err := msg.ReadString("field", &field)
	assert.IsType(t, &MissingFieldError{}, err)
}

func TestReadOptionalMessage_Empty(t *testing.T) {
	msg := Build(func(w Writer) {})

	var field Message
	err := msg.ReadOptionalMessage("field", &field)

	assert.Nil(t, field)
	assert.Nil(t, err)
}

func TestReadMessages_Empty(t *testing.T) {
	msg := Build(func(w Writer) {})

	var field []Message
	assert.Error(t, msg.ReadMessages("field", &field))
}

func TestReadBool_WrongType(t *testing.T) {
	msg := Build(func(w Writer) {
		w.WriteString("field", "true")
	})

	var field bool
	assert.Error(t, msg.ReadBool("field", &field))
}

func TestReadInt_NotANumber(t *testing.T) {
	msg := Build(func(w Writer) {
		w.WriteString("field", "abc")
	})

	var field int
	assert.Error(t, msg.ReadInt("field", &field))
}

func TestBool_ReadWrite(t *testing.T) {
	msg := Build(func(w Writer) {
		w.WriteBool("field", true)
	})

	var val bool
	assert.Nil(t, msg.ReadBool("field", &val))
	assert.True(t, val)
}

func TestString_ReadWrite(t *testing.T) {
	msg := Build(func(w Writer) {
		w.WriteString("field", "hello")
	})

	var val string
	assert.Nil(t, msg.ReadString("field", &val))
	assert.Equal(t, "hello", val)
}

func TestInt_ReadWrite(t *testing.T) {
	msg := Build(func(w Writer) {
		w.WriteInt("field", -65535)
	})

	var val int
	assert.Nil(t, msg.ReadInt("field", &val))
	assert.Equal(t, -65535, val)
}

func TestUUID_ReadWrite(t *testing.T) {
	exp := uuid.NewV4()
	msg := Build(func(w Writer) {
		w.WriteUUID("field", exp)
	})

	var val uuid.UUID
	assert.Nil(t, msg.ReadUUID("field", &val))
	assert.Equal(t, exp, val)
}

func TestMessage_ReadWrite(t *testing.T) {
	msg := Build(func(w Writer) {
		w.WriteMessage("field", item{"a"})
	})

	var val Message
	assert.Nil(t, msg.ReadMessage("field", &val))

	var name string
	assert.Nil(t, val.ReadString("name", &name))
	assert.Equal(t, "a", name)
}

func TestMessages_ReadWrite(t *testing.T) {
	msg := Build(func(w Writer) {
		w.WriteMessages("field", []item{{"a"}, {"b"}})
	})

	var msgs []Message
	assert.Nil(t, msg.ReadMessages("field", &msgs))

	var items []item
	assert.Nil(t, ParseMessages(msgs, &items, readItem))
	assert.Equal(t, []item{{"a"}, {"b"}}, items)
}

func TestWriteMessages_NotASlice(t *testing.T) {
	assert.Panics(t, func() {
		Build(func(w Writer) {
			w.WriteMessages("field", item{"a"})
		})
	})
}

func TestMessage_Immutable(t *testing.T) {
	msg := Build(func(w Writer) {
		w.WriteString("field", "a")
	})

	next := Build(func(w Writer) {
		msg.Write(w)
		w.WriteString("field", "b")
	})

	var val string
	assert.Nil(t, msg.ReadString("field", &val))
	assert.Equal(t, "a", val)
	assert.Nil(t, next.ReadString("field", &val))
	assert.Equal(t, "b", val)
}

func TestMessage_BytesParse(t *testing.T) {
	msg := Build(func(w Writer) {
		w.WriteBool("bool", true)
		w.WriteInt("int", 7)
		w.WriteMessages("items", []item{{"a"}})
	})

	parsed, err := Parse(msg.Bytes())
	assert.Nil(t, err)
	assert.Equal(t, msg, parsed)
}

func TestParse_Garbage(t *testing.T) {
	_, err := Parse([]byte("{"))
	assert.Error(t, err)
}

func TestParse_UnsupportedValue(t *testing.T) {
	_, err := Parse([]byte(`{"field": 1.5}`))
	assert.Error(t, err)
}

func TestMessage_StreamJson(t *testing.T) {
	msg := Build(func(w Writer) {
		w.WriteString("field", "a")
		w.WriteMessage("nested", item{"b"})
	})

	buf := new(bytes.Buffer)
	assert.Nil(t, msg.Stream(json.NewEncoder(buf)))

	decoded, err := Decode(json.NewDecoder(buf))
	assert.Nil(t, err)
	assert.Equal(t, msg, decoded)
}
