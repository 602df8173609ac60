package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/napalu/argparser"
	"github.com/napalu/argparser/procname"
)

const longDescription = `Demonstrates every arity understood by argparser.

Options may be clustered (-hl LINE), given values inline (--line=LINE)
and "--" makes every following argument a file.`

func main() {
	if parent, ok := procname.Parent(); ok {
		fmt.Println("Parent: " + parent)
	}

	configs := []argparser.ConfigureParserFunc{
		argparser.WithDescription("A test for argparser"),
		argparser.WithUsage("argparser-demo [options] [files]"),
		argparser.WithLongDescription(longDescription),
		argparser.WithStderr(true),
		argparser.WithAbbreviations(argparser.StandardAbbreviations),
	}
	if os.Getenv("ARGPARSER_DEBUG") != "" {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		configs = append(configs, argparser.WithLogger(logger))
	}

	parser, err := argparser.NewParserWith(configs...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for _, err := range []error{
		parser.AddArgumentless("Prints this help message\n(and exits)", "-h", "-?", "--help"),
		parser.AddArgumentless("Prints the text: hello world", "--hello"),
		parser.AddArgumentless("", "++hidden"),
		parser.AddArgumented("LINE", "Prints the chosen line", "-l", "--line"),
		parser.AddVariadic("LINE", "Prints the chosen lines", "--l", "--lines"),
	} {
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	parser.Parse(os.Args[1:])
	parser.SupportAlternatives()
	result := parser.Result()

	if parser.Used("-?") {
		if err := parser.Help(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	parser.TestExclusiveness([]string{"-l", "--l"}, argparser.ExitWith(2))

	if result.Clean() && result.ArgumentCount() > 0 && len(result.Files()) == 0 {
		for i := 0; i < result.Count("--hello"); i++ {
			fmt.Println("Hello World")
		}
		for _, line := range result.Strings("--line") {
			fmt.Println(line)
		}
		if result.Used("--lines") {
			for _, line := range result.Strings("--l") {
				fmt.Println(line)
			}
			if result.Count("--l") == 0 {
				fmt.Println("--l(--lines) is used without any arguments")
			}
		}
		if result.Used("++hidden") {
			fmt.Println("Congratulations, you have found the secret option!")
		}
		return
	}

	fmt.Printf("Number of unrecognised options: %d\n", result.UnrecognisedCount())
	message, _ := result.Message()
	fmt.Println("Entered message: " + message)
	fmt.Println("Entered files:")
	for _, file := range result.Files() {
		fmt.Println("\t" + file)
	}
}
