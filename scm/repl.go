/*
Copyright (C) 2023  Carl-Philip Hänsch
Copyright (C) 2013  Pieter Kelchtermans (originally licensed unter WTFPL 2.0)

    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package scm

import (
	"fmt"
	"io"
	"log"
	"runtime/debug"

	"github.com/chzyer/readline"
	"github.com/dc0d/onexit"
	"github.com/google/uuid"
)

const (
	newPrompt    = "\033[32mlispy>\033[0m "
	contPrompt   = "\033[32m  ...>\033[0m "
	resultPrompt = "\033[31m=\033[0m "
)

// Repl runs an interactive read-eval-print loop against env until EOF or
// interrupt, mirroring prompt.go's Repl. Every session gets a uuid purely
// for log correlation when -listen is also serving concurrent clients.
func Repl(env *Environment) {
	sessionID := uuid.New()

	l, err := readline.NewEx(&readline.Config{
		Prompt:            newPrompt,
		HistoryFile:       ".lispy_history",
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		log.Fatalf("repl %s: %s", sessionID, err)
	}
	defer l.Close()
	l.CaptureExitSignal()

	onexit.Register(func() { _ = l.Close() })

	grammar := NewGrammar()
	oldline := ""
	for {
		line, err := l.Readline()
		line = oldline + line
		switch {
		case err == readline.ErrInterrupt:
			if len(line) == 0 {
				return
			}
			oldline = ""
			continue
		case err == io.EOF:
			return
		case err != nil:
			log.Printf("repl %s: %s", sessionID, err)
			return
		}
		if line == "" {
			continue
		}

		if needsContinuation(line) {
			oldline = line + "\n"
			l.SetPrompt(contPrompt)
			continue
		}

		fmt.Print(resultPrompt)
		fmt.Println(EvalSource(env, grammar, line))
		oldline = ""
		l.SetPrompt(newPrompt)
	}
}

// EvalSource parses src with grammar and evaluates the whole input in env as
// one S-Expression, so "+ 1 2 3" yields 6, and returns the result. A panic
// from a built-in (e.g. an unexpected internal invariant failure) is
// recovered and reported as an Error Value, the way prompt.go's anti-panic
// wrapper keeps one bad expression from killing the REPL.
func EvalSource(env *Environment, grammar *Grammar, src string) (result *Value) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("panic: %v\n%s", r, debug.Stack())
			result = errf("%v", r)
		}
	}()

	node, err := grammar.Parse(src)
	if err != nil {
		return errf("%s", err)
	}

	return Eval(env, Read(node))
}

// needsContinuation is a crude but effective balance check: more opens than
// closes across both bracket families means the reader would still be
// mid-expression, so the REPL should keep accumulating lines instead of
// attempting (and failing) to parse.
func needsContinuation(line string) bool {
	depth := 0
	inString := false
	escaped := false
	for _, r := range line {
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
		case '(', '{':
			depth++
		case ')', '}':
			depth--
		}
	}
	return depth > 0
}
