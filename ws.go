package main

import (
	"github.com/gorilla/websocket"
	"io"
)

type WebsocketFeed struct {
	Conn *websocket.Conn
}

// Pump copies command lines from the websocket into dst, one message per
// line, calling rearm after every message so an idled scan loop picks the
// new commands up.
func (w *WebsocketFeed) Pump(dst io.Writer, rearm func()) error {
	for {
		_, msg, err := w.Conn.ReadMessage()
		if err != nil {
			return err
		}

		_, err = dst.Write(terminated(msg))
		if err != nil {
			return err
		}

		if rearm != nil {
			rearm()
		}
	}
}
