package scribe

import (
	"fmt"

	uuid "github.com/satori/go.uuid"
)

// A small, map-like message format used to carry session descriptions
// between the protocol layer and the matching code.  Objects describe
// themselves by implementing Writable and are read back field by field
// with a Reader, so neither side needs exported struct fields or a
// compile-time schema.  Messages dump to plain maps, which makes them
// encodable with any stream encoder (json, cbor, ...).
//
//	func (o Opts) Write(w scribe.Writer) {
//		w.WriteInt("traffic", int(o.traffic))
//	}

// To be returned when a requested field does not exist.
type MissingFieldError struct {
	field string
}

func (m *MissingFieldError) Error() string {
	return fmt.Sprintf("Missing field [%v].", m.field)
}

// To be returned when a field holds a value of the wrong type.
type IncompatibleTypeError struct {
	expected string
	actual   string
}

func NewIncompatibleTypeError(e interface{}, a interface{}) *IncompatibleTypeError {
	return &IncompatibleTypeError{fmt.Sprintf("%T", e), fmt.Sprintf("%T", a)}
}

func (m *IncompatibleTypeError) Error() string {
	return fmt.Sprintf("Incompatible types. Expected [%v]; Actual [%v]", m.expected, m.actual)
}

// Returned when an unknown type is encountered.
type UnsupportedTypeError struct {
	actual string
}

func NewUnsupportedTypeError(e interface{}) *UnsupportedTypeError {
	return &UnsupportedTypeError{fmt.Sprintf("%T", e)}
}

func (u *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("Unsupported type: %v", u.actual)
}

type Writable interface {
	Write(Writer)
}

// Parses a message into a consumer type.
type Parser func(Reader) (interface{}, error)

type Writer interface {
	WriteBool(field string, val bool)
	WriteString(field string, val string)
	WriteInt(field string, val int)
	WriteUUID(field string, val uuid.UUID)
	WriteMessage(field string, val Writable)
	WriteMessages(field string, val interface{}) // must be a slice of writables.
}

type Reader interface {
	ReadBool(field string, val *bool) error
	ReadString(field string, val *string) error
	ReadInt(field string, val *int) error
	ReadUUID(field string, val *uuid.UUID) error
	ReadMessage(field string, val *Message) error
	ReadOptionalMessage(field string, val *Message) error
	ReadMessages(field string, val *[]Message) error
}

// An immutable data object.
type Message interface {
	Reader
	Writable
	Streamer

	// Json encoding of the message.  See: Parse
	Bytes() []byte
}

// Satisfied by json.Encoder and cbor.Encoder.
type Encoder interface {
	Encode(interface{}) error
}

// Satisfied by json.Decoder and cbor.Decoder.
type Decoder interface {
	Decode(interface{}) error
}

type Streamer interface {
	Stream(Encoder) error
}
