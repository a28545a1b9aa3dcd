package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"syntaxcheck/internal/analyzer"
	"syntaxcheck/internal/reporter"
	"syntaxcheck/internal/scanner"
)

var (
	version = "1.0.0"
)

func main() {
	// Define flags
	excludeFlag := flag.String("exclude", "", "Comma-separated list of directories to exclude (e.g., vendor,build,third_party)")
	jsonFlag := flag.Bool("json", false, "Output results in JSON format")
	tokensFlag := flag.Bool("tokens", false, "Include the token report")
	symbolsFlag := flag.Bool("symbols", false, "Include the symbol table report")
	requireMainFlag := flag.Bool("require-main", true, "Report sources without a main function")
	redeclFlag := flag.Bool("redeclarations", false, "Warn when a variable is declared twice in one scope")
	noColorFlag := flag.Bool("no-color", false, "Disable colored output")
	versionFlag := flag.Bool("version", false, "Print version and exit")
	helpFlag := flag.Bool("help", false, "Show help message")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: syntaxcheck [options] <path|-> [paths...]\n\n")
		fmt.Fprintf(os.Stderr, "C++ Syntax Checker - Heuristic tokenizer and syntax/semantic checker for C++ sources\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  syntaxcheck ./src                    Check all C++ files in ./src\n")
		fmt.Fprintf(os.Stderr, "  syntaxcheck --tokens --symbols a.cpp Print the token and symbol reports\n")
		fmt.Fprintf(os.Stderr, "  syntaxcheck - < snippet.cpp          Check a snippet read from stdin\n")
		fmt.Fprintf(os.Stderr, "  syntaxcheck --json ./src > out.json  Output results as JSON\n")
	}

	flag.Parse()

	if *helpFlag {
		flag.Usage()
		os.Exit(0)
	}

	if *versionFlag {
		fmt.Printf("syntaxcheck version %s\n", version)
		os.Exit(0)
	}

	// Get paths to check
	paths := flag.Args()
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "Error: No paths specified")
		fmt.Fprintln(os.Stderr, "Run 'syntaxcheck --help' for usage")
		os.Exit(1)
	}

	// Parse exclude patterns
	var excludes []string
	if *excludeFlag != "" {
		excludes = strings.Split(*excludeFlag, ",")
		for i := range excludes {
			excludes[i] = strings.TrimSpace(excludes[i])
		}
	}

	// Resolve sources
	s := scanner.NewScanner(excludes)
	sources, err := s.ScanPaths(paths)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error scanning paths: %v\n", err)
		os.Exit(1)
	}

	if len(sources) == 0 {
		fmt.Fprintln(os.Stderr, "No C++ files found")
		os.Exit(0)
	}

	if !*jsonFlag {
		fmt.Printf("Scanning %d file(s)...\n", len(sources))
	}

	// Every source gets its own isolated run
	a := analyzer.NewAnalyzer(analyzer.Options{
		RequireMain:          *requireMainFlag,
		ReportRedeclarations: *redeclFlag,
	})
	var files []reporter.FileReport
	failed := false
	for _, src := range sources {
		name, text, err := src.Source()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Error reading %s: %v\n", name, err)
			continue
		}
		res := a.Analyze(text)
		failed = failed || res.HasErrors()
		files = append(files, reporter.FileReport{Name: name, Result: res})
	}

	// Report results
	r := reporter.NewReporter(os.Stdout, reporter.Options{
		JSON:    *jsonFlag,
		Tokens:  *tokensFlag,
		Symbols: *symbolsFlag,
		Color:   !*noColorFlag,
	})
	if err := r.Report(files); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		os.Exit(1)
	}

	// Exit with error code if any source has errors
	if failed {
		os.Exit(1)
	}
}
