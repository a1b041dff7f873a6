// Package repl implements the interactive read-eval-print loop: a
// `user> ` prompt, persistent history, and colorized `=> `/`!! `
// result/error lines.
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"lwhlisp/pkg/interp"
)

const historyFile = ".lisphistory.txt"

// Run starts the REPL against interp, reading from and writing to the
// terminal via readline until EOF or an explicit quit/exit.
func Run(interp *interp.Interpreter) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      promptText(),
		HistoryFile: historyFile,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	formatter := NewErrorFormatter()
	resultColor := color.New(color.FgGreen)

	for {
		input, err := readCompleteExpression(rl)
		if err != nil {
			if err == io.EOF || err == readline.ErrInterrupt {
				break
			}
			fmt.Fprintf(rl.Stderr(), "input error: %v\n", err)
			continue
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == "quit" || input == "exit" {
			break
		}

		result, err := interp.Interpret(input)
		if err != nil {
			fmt.Println(formatter.Format(input, err))
			continue
		}
		resultColor.Printf("=> %s\n", result.Debug())
	}
	return nil
}

func promptText() string {
	return color.New(color.FgCyan).Sprint("user> ")
}

// readCompleteExpression reads lines until the accumulated input has
// balanced parentheses and quotes, so a form spanning multiple lines can
// be entered without submitting on every newline.
func readCompleteExpression(rl *readline.Instance) (string, error) {
	var b strings.Builder
	rl.SetPrompt(promptText())
	for {
		line, err := rl.Readline()
		if err != nil {
			if b.Len() > 0 && err == io.EOF {
				return b.String(), nil
			}
			return "", err
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		if balanced(b.String()) {
			return b.String(), nil
		}
		rl.SetPrompt(color.New(color.FgCyan).Sprint("   ... "))
	}
}

// balanced reports whether s has balanced, unquoted parentheses.
func balanced(s string) bool {
	depth := 0
	inString := false
	escaped := false
	for _, r := range s {
		if inString {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
			}
			continue
		}
		switch r {
		case '"':
			inString = true
		case '(':
			depth++
		case ')':
			depth--
		}
	}
	return !inString && depth <= 0
}
