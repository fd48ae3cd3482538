// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Program bigjson scans a JSON document and prints one line per token.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/tailscale/hujson"

	bigjson "github.com/jsy-0526/big-json-handler"
)

var (
	doJWCC = flag.Bool("jwcc", false, "Standardize comments and trailing commas before scanning.")
	doLoc  = flag.Bool("loc", false, "Print the line:column of each token.")
)

func init() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), `Usage: %s [options] [file]

Scan a JSON document and print one line per token. With no file, or
with "-", input is read from stdin.

Options:
`, os.Args[0])
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	logger := log.New(os.Stderr, "bigjson: ", 0)

	data, err := readInput(flag.Arg(0))
	if err != nil {
		logger.Fatalf("Reading input: %v", err)
	}
	if *doJWCC {
		std, err := hujson.Standardize(data)
		if err != nil {
			logger.Fatalf("Standardizing input: %v", err)
		}
		data = std
	}

	r := bigjson.NewReader(data)
	for {
		v := r.Scan()
		if v.Kind == bigjson.Error {
			logger.Fatalf("Scan failed at %v: %v", r.Location(), r.Err())
		}
		if *doLoc {
			fmt.Printf("%v\t%v\t%s\n", r.LocationOf(v), v.Kind, r.Text(v))
		} else {
			fmt.Printf("%v\t%s\n", v.Kind, r.Text(v))
		}
		if v.Depth == 0 {
			break
		}
	}
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
