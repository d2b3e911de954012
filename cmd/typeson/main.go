package main

import (
	"flag"
	"fmt"
	"os"

	typeson "github.com/argonlab/typeson"
	"github.com/argonlab/typeson/document"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "validate":
		validateCmd(os.Args[2:])
	case "pretty":
		prettyCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "typeson CLI\n\nUsage:\n  typeson validate <file>\n  typeson pretty [-o out.json] <file>\n\nNotes:\n  - validate checks the envelope header of a serialized-object file.\n  - pretty reformats a JSON or YAML document (4-space indent).")
}

func validateCmd(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}
	path := fs.Arg(0)

	doc, err := typeson.LoadJSONFromFile(path)
	if err != nil {
		fatalf("%v", err)
	}
	if err := typeson.ValidateHeader(doc); err != nil {
		fatalf("%s: %v", path, err)
	}

	name, _ := mustFindString(doc, typeson.ClassNameTag)
	version := int64(0)
	if v, ok := doc.Find(typeson.VersionTag); ok {
		version, _ = v.Int64()
	}
	fmt.Printf("%s: valid %s file (ClassName=%s, Version=%d)\n", path, typeson.FileType, name, version)
}

func prettyCmd(args []string) {
	fs := flag.NewFlagSet("pretty", flag.ExitOnError)
	var out string
	fs.StringVar(&out, "o", "", "output filename (default stdout)")
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}

	doc, err := typeson.LoadJSONFromFile(fs.Arg(0))
	if err != nil {
		fatalf("%v", err)
	}

	w := os.Stdout
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			fatalf("creating output: %v", err)
		}
		defer f.Close()
		w = f
	}
	if err := document.Write(w, doc); err != nil {
		fatalf("writing output: %v", err)
	}
}

func mustFindString(doc *document.Value, key string) (string, bool) {
	node, ok := doc.Find(key)
	if !ok {
		return "", false
	}
	return node.StringValue()
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
