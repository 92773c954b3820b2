package types

import (
	"fmt"
	"math"
)

/*
ValidateKey checks that key is a scalar and returns the form it is stored under.

Integer kinds are widened to int64 (uint values above math.MaxInt64 stay uint64)
and float32 becomes float64, so the same number addresses the same entry
whatever Go type the caller happened to hold it in.

Anything composite (slices, maps, structs, pointers, nil) and NaN floats fail
with ErrInvalidKey.
*/
func ValidateKey(key any) (any, error) {
	switch k := key.(type) {
	case string, bool, int64:
		return k, nil
	case int:
		return int64(k), nil
	case int8:
		return int64(k), nil
	case int16:
		return int64(k), nil
	case int32:
		return int64(k), nil
	case uint:
		return widenUnsigned(uint64(k)), nil
	case uint8:
		return int64(k), nil
	case uint16:
		return int64(k), nil
	case uint32:
		return int64(k), nil
	case uint64:
		return widenUnsigned(k), nil
	case float32:
		return checkFloat(float64(k))
	case float64:
		return checkFloat(k)
	default:
		return nil, fmt.Errorf("%w: %T is not a scalar", ErrInvalidKey, key)
	}
}

func widenUnsigned(u uint64) any {
	if u > math.MaxInt64 {
		return u
	}
	return int64(u)
}

// NaN never equals itself, so an entry stored under it could never be read back.
func checkFloat(f float64) (any, error) {
	if math.IsNaN(f) {
		return nil, fmt.Errorf("%w: NaN", ErrInvalidKey)
	}
	return f, nil
}
