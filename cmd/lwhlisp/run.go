package main

import (
	"flag"
	"os"

	"lwhlisp/pkg/interp"
	"lwhlisp/pkg/repl"
)

const defaultLibrary = "lib/lib.lisp"

func runCommand(args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	var libraries, files stringSlice
	fs.Var(&libraries, "library", "library file to load before any --files (repeatable, default lib/lib.lisp)")
	fs.Var(&files, "files", "source file to load (repeatable)")
	replFlag := fs.Bool("repl", false, "start the REPL, even if files were given")
	debug := fs.Bool("debug", false, "trace each top-level form in --files and its result")
	debugLibrary := fs.Bool("debug-library", false, "trace each top-level form in --library and its result")

	fs.Usage = func() {
		usage()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	usingDefaultLibrary := len(libraries) == 0
	if usingDefaultLibrary {
		libraries = stringSlice{defaultLibrary}
	}

	session := interp.New()

	for _, path := range libraries {
		if usingDefaultLibrary {
			if _, statErr := os.Stat(path); statErr != nil {
				continue
			}
		}
		if err := session.LoadFile(path, *debugLibrary, os.Stdout); err != nil {
			return err
		}
	}

	for _, path := range files {
		if err := session.LoadFile(path, *debug, os.Stdout); err != nil {
			return err
		}
	}

	if *replFlag || len(files) == 0 {
		return repl.Run(session)
	}
	return nil
}
