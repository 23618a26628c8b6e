// Package hamlet provides tiny "to be, or not to be" style test assertions.
package hamlet

import (
	"fmt"
	"reflect"
	"testing"
)

type Hamlet struct {
	t      *testing.T
	tobe   bool
	prefix string
}

// Specifications returns a positive and a negative assertion handle for
// the given test, conventionally named `must` and `wont`.
func Specifications(t *testing.T) (*Hamlet, *Hamlet) {
	t.Helper()
	return &Hamlet{t, true, "must be"}, &Hamlet{t, false, "wont be"}
}

func (it *Hamlet) fail(form string, details ...interface{}) {
	it.t.Helper()
	it.t.Errorf("%s: %s", it.prefix, fmt.Sprintf(form, details...))
}

func (it *Hamlet) True(value bool) {
	it.t.Helper()
	if value != it.tobe {
		it.fail("true, got %v", value)
	}
}

func (it *Hamlet) Nil(value interface{}) {
	it.t.Helper()
	if isNil(value) != it.tobe {
		it.fail("nil, got %#v", value)
	}
}

func (it *Hamlet) Equal(expected, actual interface{}) {
	it.t.Helper()
	if reflect.DeepEqual(expected, actual) != it.tobe {
		it.fail("equal; expected %#v, actual %#v", expected, actual)
	}
}

func (it *Hamlet) Text(expected string, actual interface{}) {
	it.t.Helper()
	if (fmt.Sprintf("%v", actual) == expected) != it.tobe {
		it.fail("text %q, got %q", expected, fmt.Sprintf("%v", actual))
	}
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	reflected := reflect.ValueOf(value)
	switch reflected.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return reflected.IsNil()
	}
	return false
}
