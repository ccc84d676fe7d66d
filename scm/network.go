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
package scm

import (
	"log"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// ListenAndServe exposes env over a websocket bridge: one JSON-free, plain
// text expression per message in, one printed result per message out. A
// single mutex serializes evaluation across every connection, so -listen
// only ever adds concurrent front-ends, never concurrent evaluation, per
// SPEC_FULL.md §5.
func ListenAndServe(addr string, env *Environment) error {
	var mu sync.Mutex
	grammar := NewGrammar()

	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("listen: upgrade: %s", err)
			return
		}
		defer conn.Close()

		sessionID := uuid.New()
		log.Printf("listen: session %s connected from %s", sessionID, r.RemoteAddr)

		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				log.Printf("listen: session %s: %s", sessionID, err)
				return
			}

			mu.Lock()
			result := EvalSource(env, grammar, string(msg))
			mu.Unlock()

			if err := conn.WriteMessage(websocket.TextMessage, []byte(result.String())); err != nil {
				log.Printf("listen: session %s: %s", sessionID, err)
				return
			}
		}
	})

	log.Printf("listen: serving on %s", addr)
	return http.ListenAndServe(addr, nil)
}
