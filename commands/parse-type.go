package commands

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jaanek/abienc/abistr"
	"github.com/jaanek/abienc/flags"
	"github.com/jaanek/abienc/ui"
	"github.com/urfave/cli"
)

type ParsedTypeOutput struct {
	TypeSignature string `json:"typeSignature"`
	Dynamic       bool   `json:"dynamic"`
	HeadSize      int    `json:"headSize"`
}

func ParseTypeCommand(term ui.Screen, ctx *cli.Context) error {
	if !ctx.IsSet(flags.TypesParam.Name) {
		return errors.New(fmt.Sprintf("Missing types param --%s", flags.TypesParam.Name))
	}
	typ, err := abistr.Parse(ctx.String(flags.TypesParam.Name))
	if err != nil {
		return err
	}
	out := ParsedTypeOutput{
		TypeSignature: typ.String(),
		Dynamic:       abistr.IsDynamicType(typ),
		HeadSize:      abistr.TypeSize(typ),
	}
	if ctx.IsSet(flags.Plain.Name) {
		term.Print(fmt.Sprintf("type signature: %s", out.TypeSignature))
		term.Print(fmt.Sprintf("dynamic: %v", out.Dynamic))
		term.Print(fmt.Sprintf("head size: %d bytes", out.HeadSize))
	}
	b, err := json.Marshal(&out)
	if err != nil {
		return err
	}
	term.Output(fmt.Sprintf("%s\n", string(b)))
	return nil
}
