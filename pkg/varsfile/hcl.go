// Copyright 2024 The Jinjitsu Authors.
// SPDX-License-Identifier: Apache-2.0

package varsfile

import (
	"fmt"
	"math/big"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// parseHCL decodes top-level attributes of an HCL file. Attribute
// expressions are evaluated without an EvalContext, so only constant values
// are accepted.
func parseHCL(data []byte, filename string) (map[string]interface{}, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%s", diags.Error())
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("%s", diags.Error())
	}

	vars := map[string]interface{}{}
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("evaluating attribute '%s': %s", name, diags.Error())
		}

		goVal, err := ctyAsGoValue(val)
		if err != nil {
			return nil, fmt.Errorf("converting attribute '%s': %s", name, err)
		}
		vars[name] = goVal
	}

	if len(vars) == 0 {
		return nil, nil
	}

	return vars, nil
}

func ctyAsGoValue(val cty.Value) (interface{}, error) {
	if val.IsNull() {
		return nil, nil
	}

	ty := val.Type()

	switch {
	case ty.Equals(cty.String):
		return val.AsString(), nil

	case ty.Equals(cty.Bool):
		return val.True(), nil

	case ty.Equals(cty.Number):
		bf := val.AsBigFloat()
		if i, acc := bf.Int64(); acc == big.Exact {
			return i, nil
		}
		f, _ := bf.Float64()
		return f, nil

	case ty.IsTupleType() || ty.IsListType() || ty.IsSetType():
		var items []interface{}
		for it := val.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			goElem, err := ctyAsGoValue(elem)
			if err != nil {
				return nil, err
			}
			items = append(items, goElem)
		}
		return items, nil

	case ty.IsObjectType() || ty.IsMapType():
		result := map[string]interface{}{}
		for it := val.ElementIterator(); it.Next(); {
			key, elem := it.Element()
			goElem, err := ctyAsGoValue(elem)
			if err != nil {
				return nil, err
			}
			result[key.AsString()] = goElem
		}
		return result, nil

	default:
		return nil, fmt.Errorf("unsupported value type %s", ty.FriendlyName())
	}
}
