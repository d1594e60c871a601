package flags

import "github.com/urfave/cli"

var (
	Verbose = cli.BoolFlag{
		Name:  "verbose",
		Usage: "print progress messages to stderr",
	}
	Plain = cli.BoolFlag{
		Name:  "plain",
		Usage: "print results as plain lines in addition to json",
	}
	TypesParam = cli.StringFlag{
		Name:  "types",
		Usage: "argument types as one abi type signature, example: --types=\"(uint256,(uint,uint)[])\"",
	}
	Param0 = cli.StringFlag{Name: "0", Usage: "1st argument value"}
	Param1 = cli.StringFlag{Name: "1", Usage: "2nd argument value"}
	Param2 = cli.StringFlag{Name: "2", Usage: "3rd argument value"}
	Param3 = cli.StringFlag{Name: "3", Usage: "4th argument value"}
	Param4 = cli.StringFlag{Name: "4", Usage: "5th argument value"}
	Param5 = cli.StringFlag{Name: "5", Usage: "6th argument value"}
	Param6 = cli.StringFlag{Name: "6", Usage: "7th argument value"}
	Param7 = cli.StringFlag{Name: "7", Usage: "8th argument value"}
	Param8 = cli.StringFlag{Name: "8", Usage: "9th argument value"}
	Param9 = cli.StringFlag{Name: "9", Usage: "10th argument value"}
)
