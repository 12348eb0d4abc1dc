// Command markergen generates a Go source file declaring zero sized marker
// components, one per name given on the command line. Names may be passed
// as separate arguments or comma separated.
//
// It is meant to be used with go generate:
//
//	//go:generate go run github.com/PokeJofeJr4th/byke-restrict/cmd/markergen -package tags -out tags.go Player Enemy Wall
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/token"
	"os"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"
)

var fileTemplate = template.Must(template.New("markers").Parse(`// Code generated by markergen. DO NOT EDIT.

package {{ .Package }}

import "github.com/oliverbestmann/byke"

{{ range .Markers }}
// {{ . }} tags entities for query filtering. It carries no data.
type {{ . }} struct {
	byke.ImmutableComponent[{{ . }}]
}

var _ = byke.ValidateComponent[{{ . }}]()
{{ end }}`))

type templateContext struct {
	Package string
	Markers []string
}

func main() {
	pkg := flag.String("package", "main", "package name of the generated file")
	out := flag.String("out", "", "output file, write to stdout if empty")
	flag.Parse()

	markers, err := markerNames(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "markergen: %s\n", err)
		flag.Usage()
		os.Exit(1)
	}

	source, err := render(*pkg, markers)
	if err != nil {
		fmt.Fprintf(os.Stderr, "markergen: %s\n", err)
		os.Exit(1)
	}

	if *out == "" {
		_, _ = os.Stdout.Write(source)
		return
	}

	if err := os.WriteFile(*out, source, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "markergen: %s\n", err)
		os.Exit(1)
	}
}

func markerNames(args []string) ([]string, error) {
	var markers []string

	for _, arg := range args {
		for _, name := range strings.Split(arg, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}

			if !token.IsIdentifier(name) {
				return nil, fmt.Errorf("not a valid marker name: %q", name)
			}

			markers = append(markers, name)
		}
	}

	if len(markers) == 0 {
		return nil, fmt.Errorf("no marker names given")
	}

	return markers, nil
}

func render(pkg string, markers []string) ([]byte, error) {
	var buf bytes.Buffer

	err := fileTemplate.Execute(&buf, templateContext{Package: pkg, Markers: markers})
	if err != nil {
		return nil, err
	}

	return imports.Process(pkg+".go", buf.Bytes(), nil)
}
