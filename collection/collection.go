// Package collection turns the loosely typed arguments of bulk cache
// operations into sequences, rejecting anything that is not one before a
// single element is visited.
package collection

import (
	"fmt"
	"iter"
	"reflect"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/krisalay/ttl-cache/types"
)

var pairType = reflect.TypeOf(types.Pair{})

/*
Keys returns the elements of v as a sequence of keys.

Accepted: any slice or array, iter.Seq[any].
Everything else, a nil value or a string passed in place of a list
included, fails with types.ErrInvalidCollection. A []byte is treated like
the string it usually is.
*/
func Keys(v any) (iter.Seq[any], error) {
	switch c := v.(type) {
	case nil, []byte:
		return nil, invalid(v)
	case iter.Seq[any]:
		if c == nil {
			return nil, invalid(v)
		}
		return c, nil
	case func(func(any) bool):
		if c == nil {
			return nil, invalid(v)
		}
		return c, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return func(yield func(any) bool) {
			for i := 0; i < rv.Len(); i++ {
				if !yield(rv.Index(i).Interface()) {
					return
				}
			}
		}, nil
	default:
		return nil, invalid(v)
	}
}

/*
Pairs returns the elements of v as a sequence of key-value pairs.

Accepted:
  - any map (iteration order is Go's map order)
  - a slice or array of types.Pair, in order
  - *orderedmap.OrderedMap[any, any], oldest first
  - iter.Seq2[any, any]
*/
func Pairs(v any) (iter.Seq2[any, any], error) {
	switch c := v.(type) {
	case nil:
		return nil, invalid(v)
	case *orderedmap.OrderedMap[any, any]:
		if c == nil {
			return nil, invalid(v)
		}
		return func(yield func(any, any) bool) {
			for p := c.Oldest(); p != nil; p = p.Next() {
				if !yield(p.Key, p.Value) {
					return
				}
			}
		}, nil
	case iter.Seq2[any, any]:
		if c == nil {
			return nil, invalid(v)
		}
		return c, nil
	case func(func(any, any) bool):
		if c == nil {
			return nil, invalid(v)
		}
		return c, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		return func(yield func(any, any) bool) {
			it := rv.MapRange()
			for it.Next() {
				if !yield(it.Key().Interface(), it.Value().Interface()) {
					return
				}
			}
		}, nil
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem() != pairType {
			return nil, invalid(v)
		}
		return func(yield func(any, any) bool) {
			for i := 0; i < rv.Len(); i++ {
				p := rv.Index(i).Interface().(types.Pair)
				if !yield(p.Key, p.Value) {
					return
				}
			}
		}, nil
	default:
		return nil, invalid(v)
	}
}

func invalid(v any) error {
	return fmt.Errorf("%w: %T", types.ErrInvalidCollection, v)
}
