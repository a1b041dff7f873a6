package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"lwhlisp/pkg/evaluator"
	"lwhlisp/pkg/parser"
)

func formatCommand(args []string) error {
	fs := flag.NewFlagSet("format", flag.ExitOnError)
	replace := fs.Bool("replace", false, "overwrite PATH atomically instead of printing to stdout")
	fs.Usage = usage
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		usage()
		return fmt.Errorf("format requires exactly one PATH argument")
	}
	path := fs.Arg(0)

	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	forms, diagnostics := parser.Parse(string(src))
	if len(diagnostics) > 0 {
		parts := make([]string, len(diagnostics))
		for i, d := range diagnostics {
			parts[i] = d.String()
		}
		return fmt.Errorf("%s: %s", path, strings.Join(parts, "; "))
	}

	rendered := make([]string, len(forms))
	for i, f := range forms {
		rendered[i] = evaluator.Pretty(f)
	}
	output := strings.Join(rendered, "\n\n")
	if len(output) > 0 {
		output += "\n"
	}

	if !*replace {
		fmt.Print(output)
		return nil
	}
	return atomicWriteFile(path, []byte(output))
}

// atomicWriteFile writes data to a temp file in path's directory and
// renames it over path, so a reader never observes a partially written
// file.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".lwhlisp-format-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if info, err := os.Stat(path); err == nil {
		os.Chmod(tmpPath, info.Mode())
	}
	return os.Rename(tmpPath, path)
}
