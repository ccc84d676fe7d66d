/*
Copyright (C) 2023  Carl-Philip Hänsch

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
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/launix-de/lispy/scm"
)

func main() {
	watch := flag.String("watch", "", "reload this file whenever it changes on disk")
	listen := flag.String("listen", "", "serve a websocket REPL bridge on this address (e.g. :8080) instead of/alongside the terminal REPL")
	flag.Parse()

	env := scm.NewGlobalEnvironment()

	for _, path := range flag.Args() {
		result := scm.Eval(env, scm.NewSExpr(scm.NewSymbol("load"), scm.NewString(path)))
		if result.IsError() {
			log.Print(result)
		}
	}

	if *watch != "" {
		w, err := scm.Watch(env, *watch)
		if err != nil {
			log.Fatalf("watch: %s", err)
		}
		defer w.Close()
	}

	if *listen != "" {
		go func() {
			if err := scm.ListenAndServe(*listen, env); err != nil {
				log.Fatalf("listen: %s", err)
			}
		}()
	}

	// Batch mode: with files and neither -watch nor -listen, exit after the
	// last file.
	if len(flag.Args()) > 0 && *watch == "" && *listen == "" {
		return
	}

	fmt.Print("lispy Copyright (C) 2026  the authors, free software with ABSOLUTELY NO WARRANTY\n" +
		"Press Ctrl+D (or Ctrl+C on an empty line) to exit\n")
	scm.Repl(env)
}
