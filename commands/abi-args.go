package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/holiman/uint256"
	"github.com/jaanek/abienc/abi"
	"github.com/jaanek/abienc/abistr"
	"github.com/jaanek/abienc/word"
	"github.com/urfave/cli"
)

// PackValues builds one value per argument type and wraps them all in a
// single tuple, ready for encoding.
func PackValues(argTypes []*abistr.Type, argValues []string) (abi.Value, error) {
	values, err := ValuesFromTypes(argTypes, argValues)
	if err != nil {
		return nil, err
	}
	return abi.PackTuple(values...), nil
}

// parse provided argument values against their types
func ValuesFromTypes(argTypes []*abistr.Type, values []string) ([]abi.Value, error) {
	if len(values) != len(argTypes) {
		return nil, errors.New("abi arg type's len != values len")
	}
	params := make([]abi.Value, 0, len(argTypes))
	for i, typ := range argTypes {
		param, err := BuildValue(typ, values[i])
		if err != nil {
			return nil, err
		}
		params = append(params, param)
	}
	return params, nil
}

// BuildValue converts one textual argument into a value tree matching
// the parsed type. Uints are decimal strings, sequences of uints are
// comma-separated, sequences of uint tuples are semicolon-separated
// groups of comma-separated values. Deeper nesting is not supported on
// the command line.
func BuildValue(typ *abistr.Type, input string) (abi.Value, error) {
	switch typ.T {
	case abistr.UintTy:
		return uintValue(input)
	case abistr.TupleTy:
		return tupleValue(typ, input)
	case abistr.ArrayTy, abistr.SliceTy:
		return sequenceValue(typ, input)
	default:
		return nil, fmt.Errorf("abi: unknown type %v", typ.T)
	}
}

func uintValue(input string) (abi.Value, error) {
	num, err := uint256.FromDecimal(strings.TrimSpace(input))
	if err != nil {
		return nil, fmt.Errorf("abi: cannot parse provided integer, provided: %v. Error: %w", input, err)
	}
	return abi.PackWord(word.FromUint256(num)), nil
}

func tupleValue(typ *abistr.Type, input string) (abi.Value, error) {
	args := splitList(input, ",")
	if len(args) != len(typ.TupleElems) {
		return nil, fmt.Errorf("abi: provided args != tuple elems, type: %s, value: %v", typ, input)
	}
	elems := make([]abi.Value, 0, len(args))
	for i, elem := range typ.TupleElems {
		if elem.T != abistr.UintTy {
			return nil, fmt.Errorf("abi: unimplemented nested tuple element type: %s", elem)
		}
		v, err := uintValue(args[i])
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)
	}
	return abi.PackTuple(elems...), nil
}

func sequenceValue(typ *abistr.Type, input string) (abi.Value, error) {
	var groups []string
	switch typ.Elem.T {
	case abistr.UintTy:
		groups = splitList(input, ",")
	case abistr.TupleTy:
		groups = splitList(input, ";")
	default:
		return nil, fmt.Errorf("abi: unimplemented sequence element type: %s", typ.Elem)
	}
	elems := make([]abi.Value, 0, len(groups))
	for _, group := range groups {
		v, err := BuildValue(typ.Elem, group)
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)
	}
	if typ.T == abistr.ArrayTy {
		if len(elems) != typ.Size {
			return nil, fmt.Errorf("abi: array needs %d elements, got %d, value: %v", typ.Size, len(elems), input)
		}
		return abi.PackArray(elems...), nil
	}
	return abi.PackDynArray(elems...), nil
}

// splitList splits a separated list; an empty or blank input is an
// empty list, not one empty element.
func splitList(input, sep string) []string {
	if strings.TrimSpace(input) == "" {
		return nil
	}
	return strings.Split(input, sep)
}

func ValuesFromCli(ctx *cli.Context, argTypes []*abistr.Type) ([]string, error) {
	values := []string{}
	for i := range argTypes {
		argNum := strconv.FormatInt(int64(i), 10)
		if !ctx.IsSet(argNum) {
			return nil, fmt.Errorf("argument --%s not set", argNum)
		}
		values = append(values, ctx.String(argNum))
	}
	return values, nil
}
