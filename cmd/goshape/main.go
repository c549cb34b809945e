package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	goshape "github.com/reoring/goshape"
	"github.com/reoring/goshape/internal/catalog"
	"github.com/reoring/goshape/report"
	"github.com/reoring/goshape/source/gojson"
	"github.com/reoring/goshape/source/yamlv3"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "check":
		os.Exit(checkCmd(os.Args[2:]))
	case "describe":
		describeCmd(os.Args[2:])
	case "list":
		listCmd()
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "goshape CLI\n\nUsage:\n  goshape check -spec NAME [-format auto|json|yaml] [-max N] [-fail-fast] [-color auto|always|never] FILE...\n  goshape describe -spec NAME\n  goshape list\n\nNotes:\n  - FILE may be - for standard input.\n  - GOSHAPE_COLOR sets the default color mode.")
}

func checkCmd(args []string) int {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	var specName, format, colorMode string
	var maxIssues int
	var failFast, verbose bool
	fs.StringVar(&specName, "spec", "", "name of the catalog spec to check against (see goshape list)")
	fs.StringVar(&format, "format", "auto", "input format: auto, json or yaml")
	fs.IntVar(&maxIssues, "max", 0, "stop after N issues per document (0 means unlimited)")
	fs.BoolVar(&failFast, "fail-fast", false, "report only the first issue per document")
	fs.StringVar(&colorMode, "color", os.Getenv("GOSHAPE_COLOR"), "color output: auto, always or never")
	fs.BoolVar(&verbose, "v", false, "enable verbose logs")
	_ = fs.Parse(args)
	if specName == "" || fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	logf := func(format string, a ...any) {
		if verbose {
			fmt.Fprintf(os.Stderr, format+"\n", a...)
		}
	}

	entry, ok := catalog.Lookup(specName)
	if !ok {
		fatalf("unknown spec %q (see goshape list)", specName)
	}
	mode, err := report.ParseColorMode(colorMode)
	if err != nil {
		fatalf("%v", err)
	}
	out := report.New(os.Stdout, mode)
	opt := goshape.ErrorsOpt{FailFast: failFast, MaxIssues: maxIssues}

	status := 0
	for _, name := range fs.Args() {
		docs, err := readDocuments(name, format)
		if err != nil {
			_ = out.Error(name, err)
			status = 1
			continue
		}
		logf("check: %s: %d document(s) against %s", name, len(docs), entry.Name)
		for i, doc := range docs {
			label := name
			if len(docs) > 1 {
				label = fmt.Sprintf("%s#%d", name, i)
			}
			iss := entry.Spec.GetErrors(doc, opt)
			if len(iss) > 0 {
				status = 1
			}
			if err := out.Result(label, iss); err != nil {
				fatalf("writing output: %v", err)
			}
		}
	}
	return status
}

func describeCmd(args []string) {
	fs := flag.NewFlagSet("describe", flag.ExitOnError)
	var specName string
	fs.StringVar(&specName, "spec", "", "name of the catalog spec")
	_ = fs.Parse(args)
	if specName == "" {
		fs.Usage()
		os.Exit(2)
	}
	entry, ok := catalog.Lookup(specName)
	if !ok {
		fatalf("unknown spec %q (see goshape list)", specName)
	}
	fmt.Println(entry.Spec.Describe())
}

func listCmd() {
	for _, e := range catalog.All() {
		fmt.Printf("%-14s %s\n", e.Name, e.Summary)
	}
}

// readDocuments loads every document of the named file ("-" is stdin).
func readDocuments(name, format string) ([]any, error) {
	var data []byte
	var err error
	if name == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, err
	}
	if format == "auto" {
		format = formatFor(name)
	}
	switch format {
	case "json":
		v, err := gojson.Decode(data)
		if err != nil {
			return nil, err
		}
		return []any{v}, nil
	case "yaml":
		return yamlv3.Decode(data)
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

func formatFor(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return "yaml"
	}
	return "json"
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
