package proxy

import (
	"fmt"
	"math"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ib-77/nullchain/pkg/rop"
)

// PropertyGetter lets a type serve Get steps itself. A false second return
// reads as a missing property.
type PropertyGetter interface {
	GetProperty(name string) (any, bool)
}

// IndexGetter lets a type serve Index steps itself. A false second return
// fails the chain.
type IndexGetter interface {
	GetIndex(key any) (any, bool)
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

func apply(v any, op Operation) (any, error) {
	switch op := op.(type) {
	case GetOp:
		return getProperty(v, op.Name)
	case CallOp:
		return callMethod(v, op.Name, op.Args)
	case IndexOp:
		return getIndex(v, op.Key)
	default:
		return nil, fmt.Errorf("unknown operation %T", op)
	}
}

func getProperty(v any, name string) (any, error) {
	if rop.IsNil(v) {
		return nil, nil
	}

	if g, ok := implements[PropertyGetter](v); ok {
		out, found := g.GetProperty(name)
		if !found {
			return nil, nil
		}
		return normalize(out), nil
	}

	rv := indirect(reflect.ValueOf(v))
	if !rv.IsValid() {
		return nil, nil
	}

	switch rv.Kind() {
	case reflect.Map:
		key, err := convertValue(name, rv.Type().Key())
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrNotAccessible, rv.Type(), err)
		}
		out := rv.MapIndex(key)
		if !out.IsValid() {
			return nil, nil
		}
		return valueOf(out), nil
	case reflect.Struct:
		f, ok := structField(rv, name)
		if !ok {
			return nil, nil
		}
		return valueOf(f), nil
	}

	return nil, fmt.Errorf("%w: %s", ErrNotAccessible, rv.Type())
}

// implements checks v for I, including the pointer method set of a copy of
// a non-pointer v, as methodByName does.
func implements[I any](v any) (I, bool) {
	if i, ok := v.(I); ok {
		return i, true
	}

	var zero I
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		return zero, false
	}

	ptr := reflect.New(rv.Type())
	ptr.Elem().Set(rv)
	i, ok := ptr.Interface().(I)
	return i, ok
}

// structField finds an exported field by its Go name, then by its json name.
// A field promoted through a nil embedded pointer counts as missing.
func structField(rv reflect.Value, name string) (reflect.Value, bool) {
	t := rv.Type()

	if sf, ok := t.FieldByName(name); ok && sf.IsExported() {
		f, err := rv.FieldByIndexErr(sf.Index)
		return f, err == nil
	}

	for _, sf := range reflect.VisibleFields(t) {
		if !sf.IsExported() || sf.Anonymous {
			continue
		}
		if n := jsonName(sf); n != "" && n == name {
			f, err := rv.FieldByIndexErr(sf.Index)
			return f, err == nil
		}
	}

	return reflect.Value{}, false
}

func jsonName(sf reflect.StructField) string {
	tag, ok := sf.Tag.Lookup("json")
	if !ok || tag == "-" {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	return name
}

func callMethod(v any, name string, args []any) (out any, err error) {
	if rop.IsNil(v) {
		return nil, fmt.Errorf("%w: call %s", ErrOperationOnAbsent, name)
	}

	rv := reflect.ValueOf(v)
	m := methodByName(rv, name)
	if !m.IsValid() {
		return nil, fmt.Errorf("%w: %s.%s", ErrMethodMissing, rv.Type(), name)
	}

	in, err := callArgs(m.Type(), args)
	if err != nil {
		return nil, fmt.Errorf("%w: %s.%s: %w", ErrInvocation, rv.Type(), name, err)
	}

	defer func() {
		if p := recover(); p != nil {
			out, err = nil, fmt.Errorf("%w: %s.%s panicked: %v", ErrInvocation, rv.Type(), name, p)
		}
	}()

	return callResult(m.Call(in))
}

// methodByName matches name exactly, then with its first letter upper-cased.
// Pointer receiver methods of non-pointer values are called on a copy.
func methodByName(rv reflect.Value, name string) reflect.Value {
	candidates := []string{name}
	if exported := exportedName(name); exported != name {
		candidates = append(candidates, exported)
	}

	var ptr reflect.Value
	if rv.Kind() != reflect.Ptr {
		ptr = reflect.New(rv.Type())
		ptr.Elem().Set(rv)
	}

	for _, n := range candidates {
		if m := rv.MethodByName(n); m.IsValid() {
			return m
		}
		if ptr.IsValid() {
			if m := ptr.MethodByName(n); m.IsValid() {
				return m
			}
		}
	}
	return reflect.Value{}
}

func exportedName(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

func callArgs(t reflect.Type, args []any) ([]reflect.Value, error) {
	n := t.NumIn()
	if t.IsVariadic() {
		if len(args) < n-1 {
			return nil, fmt.Errorf("want at least %d arguments, got %d", n-1, len(args))
		}
	} else if len(args) != n {
		return nil, fmt.Errorf("want %d arguments, got %d", n, len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, a := range args {
		var pt reflect.Type
		if t.IsVariadic() && i >= n-1 {
			pt = t.In(n - 1).Elem()
		} else {
			pt = t.In(i)
		}

		av, err := convertValue(a, pt)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		in[i] = av
	}
	return in, nil
}

// callResult maps method results to a single value. A trailing non-nil error
// is a failure.
func callResult(out []reflect.Value) (any, error) {
	if n := len(out); n > 0 && out[n-1].Type() == errorType {
		if !out[n-1].IsNil() {
			return nil, fmt.Errorf("%w: %w", ErrInvocation, out[n-1].Interface().(error))
		}
		out = out[:n-1]
	}

	switch len(out) {
	case 0:
		return nil, nil
	case 1:
		return valueOf(out[0]), nil
	}

	values := make([]any, len(out))
	for i, o := range out {
		values[i] = valueOf(o)
	}
	return values, nil
}

func getIndex(v any, key any) (any, error) {
	if rop.IsNil(v) {
		return nil, fmt.Errorf("%w: index %#v", ErrOperationOnAbsent, key)
	}

	if g, ok := implements[IndexGetter](v); ok {
		out, found := g.GetIndex(key)
		if !found {
			return nil, fmt.Errorf("%w: %#v", ErrKeyMissing, key)
		}
		return normalize(out), nil
	}

	rv := indirect(reflect.ValueOf(v))
	if !rv.IsValid() {
		return nil, fmt.Errorf("%w: index %#v", ErrOperationOnAbsent, key)
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.String:
		i, ok := toIndex(key)
		if !ok {
			return nil, fmt.Errorf("%w: %#v is not an integer", ErrInvalidKey, key)
		}
		if i < 0 || i >= rv.Len() {
			return nil, fmt.Errorf("%w: %d with length %d", ErrIndexOutOfRange, i, rv.Len())
		}
		return valueOf(rv.Index(i)), nil
	case reflect.Map:
		k, err := convertValue(key, rv.Type().Key())
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
		}
		out := rv.MapIndex(k)
		if !out.IsValid() {
			return nil, fmt.Errorf("%w: %#v", ErrKeyMissing, key)
		}
		return valueOf(out), nil
	}

	return nil, fmt.Errorf("%w: %s", ErrNotIndexable, rv.Type())
}

func toIndex(key any) (int, bool) {
	if key == nil {
		return 0, false
	}

	kv := reflect.ValueOf(key)
	switch kv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := kv.Int()
		if i < math.MinInt || i > math.MaxInt {
			return 0, false
		}
		return int(i), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := kv.Uint()
		if u > math.MaxInt {
			return 0, false
		}
		return int(u), true
	}
	return 0, false
}

// convertValue adapts a to type t. Numbers convert between numeric kinds when
// no precision is lost; nil becomes the zero value of a nillable type.
func convertValue(a any, t reflect.Type) (reflect.Value, error) {
	if a == nil {
		if nillable(t.Kind()) {
			return reflect.Zero(t), nil
		}
		return reflect.Value{}, fmt.Errorf("cannot use nil as %s", t)
	}

	v := reflect.ValueOf(a)
	if v.Type().AssignableTo(t) {
		return v, nil
	}

	if v.Kind() == reflect.String && t.Kind() == reflect.String {
		return v.Convert(t), nil
	}

	if numeric(v.Kind()) && numeric(t.Kind()) {
		c := v.Convert(t)
		if negative(v) != negative(c) || !c.Convert(v.Type()).Equal(v) {
			return reflect.Value{}, fmt.Errorf("%v overflows or truncates as %s", a, t)
		}
		return c, nil
	}

	return reflect.Value{}, fmt.Errorf("cannot use %s as %s", v.Type(), t)
}

func indirect(rv reflect.Value) reflect.Value {
	for rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}

func valueOf(rv reflect.Value) any {
	return normalize(rv.Interface())
}

// normalize turns typed nils into an untyped nil.
func normalize(v any) any {
	if rop.IsNil(v) {
		return nil
	}
	return v
}

func nillable(k reflect.Kind) bool {
	switch k {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return true
	}
	return false
}

func negative(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() < 0
	case reflect.Float32, reflect.Float64:
		return v.Float() < 0
	}
	return false
}

func numeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
