package commands

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jaanek/abienc/abi"
	"github.com/jaanek/abienc/abistr"
	"github.com/jaanek/abienc/flags"
	"github.com/jaanek/abienc/ui"
	"github.com/urfave/cli"
)

type PackedValuesOutput struct {
	TypeSignature string `json:"typeSignature"`
	PackedValues  string `json:"packedValues"`
}

func PackValuesCommand(term ui.Screen, ctx *cli.Context) error {
	if !ctx.IsSet(flags.TypesParam.Name) {
		return errors.New(fmt.Sprintf("Missing types param --%s", flags.TypesParam.Name))
	}
	typ, err := abistr.Parse(ctx.String(flags.TypesParam.Name))
	if err != nil {
		return err
	}
	argTypes := argumentTypes(typ)
	argValues, err := ValuesFromCli(ctx, argTypes)
	if err != nil {
		return err
	}
	value, err := PackValues(argTypes, argValues)
	if err != nil {
		return err
	}
	term.Logf("encoding %d argument(s), %d hex chars", len(argTypes), value.EncodedLen())

	out := PackedValuesOutput{
		TypeSignature: typ.String(),
		PackedValues:  abi.EncodeToString(value),
	}
	if ctx.IsSet(flags.Plain.Name) {
		term.Print(fmt.Sprintf("type signature: %s", out.TypeSignature))
		term.Print(fmt.Sprintf("packed values: %s", out.PackedValues))
	}
	b, err := json.Marshal(&out)
	if err != nil {
		return err
	}
	term.Output(fmt.Sprintf("%s\n", string(b)))
	return nil
}

// argumentTypes flattens a top-level tuple signature into one type per
// --N value flag. A non-tuple signature is a single argument.
func argumentTypes(typ *abistr.Type) []*abistr.Type {
	if typ.T == abistr.TupleTy {
		return typ.TupleElems
	}
	return []*abistr.Type{typ}
}
