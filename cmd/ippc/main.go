// Command ippc is the IPPcode18 interpreter: it loads an XML-encoded
// program, executes it, and exits with the code the specification assigns
// to whatever error (if any) the run produced.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"ipp18/ippcerr"
	"ipp18/loader"
	"ipp18/version"
	"ipp18/vm"
)

func main() {
	app := &cli.Command{
		Name:  "ippc",
		Usage: "interpret an IPPcode18 XML source file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "source",
				Aliases: []string{"s"},
				Usage:   "path to the IPPcode18 XML source",
			},
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "path to the file backing the program's READ instructions (defaults to stdin)",
			},
			&cli.BoolFlag{
				Name:  "version",
				Usage: "print the interpreter version and exit",
			},
		},
		Action: run,
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ippcerr.CodeOf(err))
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	if cmd.Bool("version") {
		fmt.Println(version.Version())
		return nil
	}

	sourcePath := cmd.String("source")
	if sourcePath == "" {
		return ippcerr.New(ippcerr.ErrCLIUsage, "--source is required")
	}
	sourceFile, err := os.Open(sourcePath)
	if err != nil {
		return ippcerr.New(ippcerr.ErrSourceNotFound, "cannot open source %q: %v", sourcePath, err)
	}
	defer sourceFile.Close()

	prog, err := loader.Load(sourceFile)
	if err != nil {
		return err
	}

	stdin := os.Stdin
	if inputPath := cmd.String("input"); inputPath != "" {
		f, err := os.Open(inputPath)
		if err != nil {
			return ippcerr.New(ippcerr.ErrSourceNotFound, "cannot open input %q: %v", inputPath, err)
		}
		defer f.Close()
		stdin = f
	}

	interp := vm.New(prog, stdin, os.Stdout, os.Stderr)
	return interp.Run()
}
