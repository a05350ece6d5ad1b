package designfile

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/katalvlaran/cinemath/speaker"
)

// value evaluates expr without variables or functions. A missing attribute
// evaluates to null.
func value(attr string, expr hcl.Expression) (cty.Value, error) {
	if expr == nil {
		return cty.NullVal(cty.DynamicPseudoType), nil
	}
	v, diags := expr.Value(nil)
	if diags.HasErrors() {
		return cty.NilVal, fmt.Errorf("%w: %s: %w", ErrDecode, attr, diags)
	}

	return v, nil
}

// nullableNumber reads a number where null means "absent" (0).
func nullableNumber(attr string, expr hcl.Expression) (float64, error) {
	v, err := value(attr, expr)
	if err != nil || v.IsNull() {
		return 0, err
	}

	return toFloat(attr, v)
}

// autoNumber reads "Auto", null or a number; the first two mean 0.
func autoNumber(attr string, expr hcl.Expression) (float64, error) {
	v, err := value(attr, expr)
	if err != nil || v.IsNull() || isAuto(v) {
		return 0, err
	}

	return toFloat(attr, v)
}

// autoInt is autoNumber for whole numbers.
func autoInt(attr string, expr hcl.Expression) (int, error) {
	v, err := value(attr, expr)
	if err != nil || v.IsNull() || isAuto(v) {
		return 0, err
	}

	n, err := convert.Convert(v, cty.Number)
	if err != nil || !n.IsKnown() {
		return 0, fmt.Errorf("%w: %s", ErrNotAutoOrNumber, attr)
	}
	var i int
	if err := gocty.FromCtyValue(n, &i); err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrNotAutoOrNumber, attr, err)
	}

	return i, nil
}

func isAuto(v cty.Value) bool {
	return v.IsKnown() && v.Type() == cty.String && speaker.IsAuto(v.AsString())
}

func toFloat(attr string, v cty.Value) (float64, error) {
	n, err := convert.Convert(v, cty.Number)
	if err != nil || !n.IsKnown() || n.IsNull() {
		return 0, fmt.Errorf("%w: %s", ErrNotAutoOrNumber, attr)
	}
	var f float64
	if err := gocty.FromCtyValue(n, &f); err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrNotAutoOrNumber, attr, err)
	}

	return f, nil
}
