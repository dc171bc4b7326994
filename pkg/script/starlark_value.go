// Copyright 2024 The Jinjitsu Authors.
// SPDX-License-Identifier: Apache-2.0

package script

import (
	"fmt"

	"github.com/k14s/starlark-go/starlark"
	"github.com/k14s/starlark-go/starlarkstruct"
)

func asGoValue(val starlark.Value) (interface{}, error) {
	switch typedVal := val.(type) {
	case nil, starlark.NoneType:
		return nil, nil

	case starlark.Bool:
		return bool(typedVal), nil

	case starlark.String:
		return string(typedVal), nil

	case starlark.Int:
		if i1, ok := typedVal.Int64(); ok {
			return i1, nil
		}
		if i2, ok := typedVal.Uint64(); ok {
			return i2, nil
		}
		return nil, fmt.Errorf("int value does not fit in 64 bits")

	case starlark.Float:
		return float64(typedVal), nil

	case *starlark.Dict:
		return dictAsGoValue(typedVal)

	case *starlark.List:
		return iterableAsGoValue(typedVal)

	case starlark.Tuple:
		return iterableAsGoValue(typedVal)

	case *starlark.Set:
		return iterableAsGoValue(typedVal)

	case *starlarkstruct.Struct:
		return structAsGoValue(typedVal)

	default:
		return nil, fmt.Errorf("unsupported type %T for conversion to go value", val)
	}
}

func dictAsGoValue(val *starlark.Dict) (interface{}, error) {
	result := map[string]interface{}{}
	for _, item := range val.Items() {
		if item.Len() != 2 {
			return nil, fmt.Errorf("expected dict item to be a KV pair")
		}

		key, ok := item.Index(0).(starlark.String)
		if !ok {
			return nil, fmt.Errorf("expected dict key to be a string, but was %T", item.Index(0))
		}

		goVal, err := asGoValue(item.Index(1))
		if err != nil {
			return nil, err
		}
		result[string(key)] = goVal
	}
	return result, nil
}

func iterableAsGoValue(val starlark.Iterable) (interface{}, error) {
	result := []interface{}{}

	iter := val.Iterate()
	defer iter.Done()

	var item starlark.Value
	for iter.Next(&item) {
		goVal, err := asGoValue(item)
		if err != nil {
			return nil, err
		}
		result = append(result, goVal)
	}
	return result, nil
}

func structAsGoValue(val *starlarkstruct.Struct) (interface{}, error) {
	result := map[string]interface{}{}
	for _, name := range val.AttrNames() {
		attr, err := val.Attr(name)
		if err != nil {
			return nil, err
		}

		goVal, err := asGoValue(attr)
		if err != nil {
			return nil, err
		}
		result[name] = goVal
	}
	return result, nil
}
