package pure

import (
	"errors"
	"fmt"
	"reflect"
)

// Key is a comparable table key derived from a function argument.
type Key any

// ErrUnhashable reports an argument that is neither comparable nor a fmt.Stringer.
var ErrUnhashable = errors.New("pure: argument is neither comparable nor a fmt.Stringer")

// Tableize1 memoizes a pure unary function.
func Tableize1[I1 any, O any](pureFn func(I1) O, maxTableSize uint32) func(I1) O {
	tableized := tableize(
		func(args ...any) O {
			return pureFn(args[0].(I1))
		},
		maxTableSize,
	)
	return func(i1 I1) O {
		return tableized(i1)
	}
}

// Tableize2 memoizes a pure binary function.
func Tableize2[I1, I2 any, O any](pureFn func(I1, I2) O, maxTableSize uint32) func(I1, I2) O {
	tableized := tableize(
		func(args ...any) O {
			return pureFn(args[0].(I1), args[1].(I2))
		},
		maxTableSize,
	)
	return func(i1 I1, i2 I2) O {
		return tableized(i1, i2)
	}
}

func keyOf(arg any) Key {
	if stringer, ok := arg.(fmt.Stringer); ok {
		return stringer.String()
	}
	if arg != nil && !reflect.TypeOf(arg).Comparable() {
		panic(fmt.Errorf("%w: %T", ErrUnhashable, arg))
	}
	return arg
}

func tableize[O any](pureFn func(...any) O, maxTableSize uint32) func(...any) O {
	memo := NewTable[O](maxTableSize)
	return func(args ...any) O {
		keys := make([]Key, len(args))
		for i, arg := range args {
			keys[i] = keyOf(arg)
		}
		v, ok := memo.Load(keys)
		if !ok {
			v = pureFn(args...)
			memo.Store(keys, v)
		}
		return v
	}
}
