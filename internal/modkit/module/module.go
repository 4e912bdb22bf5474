// Package module defines the contract every API module satisfies and the port lookup between modules
// it is a sibling of modkit so a module's ports type can import it without a cycle
package module

import (
	"fmt"
	"reflect"

	phttp "gdpchart/internal/platform/net/http"
)

// Module mounts its routes and exposes ports for cross wiring
type Module interface {
	MountRoutes(r phttp.Router)
	// Ports returns the module's port set, usually a struct of interfaces, or nil
	Ports() any
	Name() string
}

// PortsOf finds a T in m's ports
// the port set itself matches first, then each exported field of a struct or pointer to struct in order
// nil fields never match
func PortsOf[T any](m Module) (T, bool) {
	var zero T
	p := m.Ports()
	if p == nil {
		return zero, false
	}
	if v, ok := p.(T); ok {
		return v, true
	}

	rv := reflect.ValueOf(p)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return zero, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return zero, false
	}
	for i := range rv.NumField() {
		f := rv.Field(i)
		if !f.CanInterface() || isNil(f) {
			continue
		}
		if v, ok := f.Interface().(T); ok {
			return v, true
		}
	}
	return zero, false
}

// MustPortsOf is PortsOf for wiring code, a missing port is a programming error
func MustPortsOf[T any](m Module) T {
	if v, ok := PortsOf[T](m); ok {
		return v
	}
	panic(fmt.Sprintf("module %s: no port of type %s in %T", m.Name(), reflect.TypeFor[T](), m.Ports()))
}

func isNil(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
