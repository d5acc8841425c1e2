package scribe

import (
	"encoding/json"
	"reflect"
	"strconv"

	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
)

var EmptyMessage = newWriter().Build()

// Builds a message from the given builder func
func Build(fn func(w Writer)) (msg Message) {
	writer := newWriter()
	defer func() { msg = writer.Build() }()

	fn(writer)
	return
}

// Encodes the writable onto a message and returns it.
func Write(w Writable) Message {
	return Build(w.Write)
}

// Encodes a writable onto the stream.
func Encode(enc Encoder, w Writable) error {
	return Write(w).Stream(enc)
}

// Decodes a message from the stream.
func Decode(e Decoder) (Message, error) {
	var raw map[string]interface{}
	if err := e.Decode(&raw); err != nil {
		return nil, err
	}

	obj, err := parseObject(raw)
	if err != nil {
		return nil, err
	}

	return message(obj), nil
}

// Parses a message from the given bytes.  This assumes
// the message was encoded with: Message#Bytes()
func Parse(val []byte) (Message, error) {
	var raw map[string]interface{}
	if err := json.Unmarshal(val, &raw); err != nil {
		return nil, errors.Wrap(err, "Unable to parse message")
	}

	obj, err := parseObject(raw)
	if err != nil {
		return nil, err
	}

	return message(obj), nil
}

// Parses every message with the given parser and assigns the result to the
// slice pointed to by ptr.
func ParseMessages(msgs []Message, ptr interface{}, fn Parser) error {
	valReflect := reflect.ValueOf(ptr)
	if valReflect.Kind() != reflect.Ptr || valReflect.IsNil() {
		return NewIncompatibleTypeError(new([]interface{}), ptr)
	}

	slice := reflect.MakeSlice(valReflect.Type().Elem(), len(msgs), len(msgs))
	for i, m := range msgs {
		new, err := fn(m)
		if err != nil {
			return err
		}

		slice.Index(i).Set(reflect.ValueOf(new))
	}

	valReflect.Elem().Set(slice)
	return nil
}

type writer Object

func newWriter() writer {
	return writer(make(Object))
}

func (w writer) WriteBool(field string, val bool) {
	w[field] = Bool(val)
}

func (w writer) WriteString(field string, val string) {
	w[field] = String(val)
}

func (w writer) WriteInt(field string, val int) {
	w.WriteString(field, strconv.Itoa(val))
}

func (w writer) WriteUUID(field string, val uuid.UUID) {
	w.WriteString(field, val.String())
}

func (w writer) WriteMessage(field string, val Writable) {
	w[field] = Object(Write(val).(message))
}

func (w writer) WriteMessages(field string, raw interface{}) {
	arr := reflect.ValueOf(raw)
	if arr.Kind() != reflect.Slice && arr.Kind() != reflect.Array {
		panic(errors.Wrapf(NewUnsupportedTypeError(raw), "Error writing field [%v]", field))
	}

	num := arr.Len()
	val := make([]Object, num)
	for i := 0; i < num; i++ {
		item, ok := arr.Index(i).Interface().(Writable)
		if !ok {
			panic(errors.Wrapf(NewUnsupportedTypeError(arr.Index(i).Interface()), "Error writing field [%v]", field))
		}

		val[i] = Object(Write(item).(message))
	}

	w[field] = Array(val)
}

func (w writer) Build() Message {
	return message(Object(w).Copy())
}

type message Object

func (m message) ReadBool(field string, val *bool) error {
	return Object(m).Read(field, val)
}

func (m message) ReadString(field string, val *string) error {
	return Object(m).Read(field, val)
}

func (m message) ReadInt(field string, val *int) error {
	var str string
	if err := m.ReadString(field, &str); err != nil {
		return err
	}

	i, err := strconv.Atoi(str)
	if err != nil {
		return errors.Wrapf(err, "Unable to convert [%v] to int", str)
	}

	*val = i
	return nil
}

func (m message) ReadUUID(field string, val *uuid.UUID) error {
	var str string
	if err := m.ReadString(field, &str); err != nil {
		return err
	}

	id, err := uuid.FromString(str)
	if err != nil {
		return errors.Wrapf(err, "Unable to convert [%v] to uuid", str)
	}

	*val = id
	return nil
}

func (m message) ReadMessage(field string, val *Message) error {
	var raw Object
	if err := Object(m).Read(field, &raw); err != nil {
		return err
	}

	*val = message(raw)
	return nil
}

func (m message) ReadOptionalMessage(field string, val *Message) error {
	var raw Object
	if ok, err := Object(m).ReadOptional(field, &raw); !ok || err != nil {
		return err
	}

	*val = message(raw)
	return nil
}

func (m message) ReadMessages(field string, val *[]Message) error {
	var raw []Object
	if err := Object(m).Read(field, &raw); err != nil {
		return err
	}

	ret := make([]Message, 0, len(raw))
	for _, v := range raw {
		ret = append(ret, message(v))
	}

	*val = ret
	return nil
}

func (m message) Write(w Writer) {
	for k, v := range m {
		w.(writer)[k] = v
	}
}

func (m message) Stream(e Encoder) error {
	return e.Encode(Object(m).Dump())
}

func (m message) Bytes() []byte {
	bytes, err := json.Marshal(Object(m).Dump())
	if err != nil {
		panic(err) // only strings, bools, arrays and objects are representable.
	}
	return bytes
}
