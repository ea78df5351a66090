package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/xernobyl/oglmath/src/mode"
)

type unaryCmd struct {
	V string `arg:"" help:"Vector as comma separated components, e.g. 3,4,0."`
}

type binaryCmd struct {
	A string `arg:"" help:"First vector."`
	B string `arg:"" help:"Second vector."`
}

type scalarCmd struct {
	V string  `arg:"" help:"Vector as comma separated components."`
	S float32 `arg:"" help:"Scalar."`
}

var CLI struct {
	Mode    string `help:"Library mode, debug or release." enum:"debug,release" default:"debug" env:"OGLMATH_MODE"`
	Verbose bool   `help:"Whether to enable debug logging." short:"v"`

	Length    unaryCmd  `cmd:"" help:"Length of a vector."`
	Normalize unaryCmd  `cmd:"" help:"Unit vector with the same direction."`
	Negate    unaryCmd  `cmd:"" help:"Vector pointing the other way."`
	Array     unaryCmd  `cmd:"" help:"Flat component array of a vector."`
	Add       binaryCmd `cmd:"" help:"Sum of two vectors."`
	Subtract  binaryCmd `cmd:"" help:"Difference of two vectors."`
	Dot       binaryCmd `cmd:"" help:"Dot product of two vectors."`
	Cross     binaryCmd `cmd:"" help:"Cross product of two 3 component vectors."`
	Multiply  scalarCmd `cmd:"" help:"Vector times a scalar."`
	Divide    scalarCmd `cmd:"" help:"Vector divided by a scalar."`
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	ctx := kong.Parse(&CLI,
		kong.Name("oglmath"),
		kong.Description("vector arithmetic on the command line, use -- before negative values"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if CLI.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Warn().Msg("debug logging enabled")
	}

	m, err := mode.Parse(CLI.Mode)
	if err != nil {
		writeError(err)
	}
	mode.Set(m)

	var result string
	switch ctx.Command() {
	case "length <v>":
		result, err = evaluate("length", 0, CLI.Length.V)
	case "normalize <v>":
		result, err = evaluate("normalize", 0, CLI.Normalize.V)
	case "negate <v>":
		result, err = evaluate("negate", 0, CLI.Negate.V)
	case "array <v>":
		result, err = evaluate("array", 0, CLI.Array.V)
	case "add <a> <b>":
		result, err = evaluate("add", 0, CLI.Add.A, CLI.Add.B)
	case "subtract <a> <b>":
		result, err = evaluate("subtract", 0, CLI.Subtract.A, CLI.Subtract.B)
	case "dot <a> <b>":
		result, err = evaluate("dot", 0, CLI.Dot.A, CLI.Dot.B)
	case "cross <a> <b>":
		result, err = evaluate("cross", 0, CLI.Cross.A, CLI.Cross.B)
	case "multiply <v> <s>":
		result, err = evaluate("multiply", CLI.Multiply.S, CLI.Multiply.V)
	case "divide <v> <s>":
		result, err = evaluate("divide", CLI.Divide.S, CLI.Divide.V)
	default:
		err = fmt.Errorf("unknown command %q", ctx.Command())
	}
	if err != nil {
		writeError(err)
	}

	fmt.Println(result)
}
