package scribe

import (
	"github.com/pkg/errors"
)

// A deliberately tiny type system.  Only booleans, strings, arrays and
// objects are representable so that every encoding scheme round trips
// the same values.  Numbers travel as strings.
type Value interface {

	// Assigns the value to the value pointed to by ptr.
	AssignTo(ptr interface{}) error

	// Dumps the value to a raw go type
	Dump() interface{}
}

type Bool bool

func (b Bool) AssignTo(raw interface{}) error {
	ptr, ok := raw.(*bool)
	if !ok {
		return NewIncompatibleTypeError(new(bool), raw)
	}

	*ptr = bool(b)
	return nil
}

func (b Bool) Dump() interface{} {
	return bool(b)
}

type String string

func (s String) AssignTo(raw interface{}) error {
	ptr, ok := raw.(*string)
	if !ok {
		return NewIncompatibleTypeError(new(string), raw)
	}

	*ptr = string(s)
	return nil
}

func (s String) Dump() interface{} {
	return string(s)
}

// an array of objects
type Array []Object

func (a Array) AssignTo(raw interface{}) error {
	ptr, ok := raw.(*[]Object)
	if !ok {
		return NewIncompatibleTypeError(new([]Object), raw)
	}

	arr := make([]Object, len(a))
	copy(arr, a)
	*ptr = arr
	return nil
}

func (a Array) Dump() interface{} {
	arr := make([]interface{}, len(a))
	for i := 0; i < len(a); i++ {
		arr[i] = a[i].Dump()
	}
	return arr
}

// a generic field indexed value
type Object map[string]Value

func (o Object) AssignTo(raw interface{}) error {
	ptr, ok := raw.(*Object)
	if !ok {
		return NewIncompatibleTypeError(new(Object), raw)
	}

	*ptr = o
	return nil
}

func (o Object) Read(field string, ptr interface{}) error {
	value, ok := o[field]
	if !ok {
		return &MissingFieldError{field}
	}

	if err := value.AssignTo(ptr); err != nil {
		return errors.Wrapf(err, "Error while reading field [%v]", field)
	}

	return nil
}

func (o Object) ReadOptional(field string, ptr interface{}) (bool, error) {
	if _, ok := o[field]; !ok {
		return false, nil
	}

	return true, o.Read(field, ptr)
}

func (o Object) Copy() Object {
	ret := make(map[string]Value, len(o))
	for k, v := range o {
		ret[k] = v
	}

	return Object(ret)
}

func (o Object) Dump() interface{} {
	ret := make(map[string]interface{}, len(o))
	for k, v := range o {
		ret[k] = v.Dump()
	}

	return ret
}

func parseObject(data map[string]interface{}) (Object, error) {
	obj := make(map[string]Value, len(data))
	for k, v := range data {
		val, err := parseValue(v)
		if err != nil {
			return nil, errors.Wrapf(err, "Error parsing field [%v]", k)
		}

		obj[k] = val
	}

	return Object(obj), nil
}

func parseArray(arr []interface{}) (Array, error) {
	ret := make([]Object, 0, len(arr))
	for _, cur := range arr {
		raw, ok := cur.(map[string]interface{})
		if !ok {
			return nil, NewUnsupportedTypeError(cur)
		}

		obj, err := parseObject(raw)
		if err != nil {
			return nil, err
		}

		ret = append(ret, obj)
	}

	return Array(ret), nil
}

// parses the dumped format of value
func parseValue(data interface{}) (Value, error) {
	switch val := data.(type) {
	default:
		return nil, NewUnsupportedTypeError(val)
	case bool:
		return Bool(val), nil
	case string:
		return String(val), nil
	case []interface{}:
		return parseArray(val)
	case map[string]interface{}:
		return parseObject(val)
	}
}
