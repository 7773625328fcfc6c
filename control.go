package main

import (
	"github.com/allape/openkscan/config"
	"github.com/allape/openkscan/kscan/script"
	"github.com/allape/openkscan/kscan/source"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"io"
	"net/http"
)

// RunControlServer exposes the injector to a remote test runner: commands
// can be appended over HTTP or streamed over a websocket, and the driver's
// diagnostics polled. Feeding endpoints only work with a writable source,
// which in practice means the in-memory pipe.
func RunControlServer(conf config.Config, driver *script.Driver, src source.Source) error {
	feed, _ := src.(io.Writer)

	engine := gin.Default()

	if conf.HTTP.Cors {
		engine.Use(cors.Default())
	}

	engine.POST("/inject", func(c *gin.Context) {
		if feed == nil {
			c.String(http.StatusNotImplemented, "source is not feedable")
			return
		}

		data, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.String(http.StatusBadRequest, "read body: "+err.Error())
			return
		}

		_, err = feed.Write(terminated(data))
		if err != nil {
			c.String(http.StatusInternalServerError, "feed source: "+err.Error())
			return
		}

		// the loop idles out once the pipe drains, re-arm it
		_ = driver.Enable()

		c.String(http.StatusOK, "ok")
	})

	engine.GET("/state", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"command_index": driver.CommandIndex(),
			"terminated":    driver.Terminated(),
		})
	})

	upgrader := websocket.Upgrader{}
	if conf.HTTP.Cors {
		upgrader.CheckOrigin = func(r *http.Request) bool {
			return true
		}
	}

	engine.GET(conf.HTTP.Path, func(c *gin.Context) {
		if feed == nil {
			c.String(http.StatusNotImplemented, "source is not feedable")
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Println("upgrade:", err)
			return
		}
		defer func() {
			_ = conn.Close()
		}()

		wsf := &WebsocketFeed{Conn: conn}
		err = wsf.Pump(feed, func() {
			_ = driver.Enable()
		})
		if err != nil {
			log.Println("websocket feed:", err)
		}
	})

	SetupUI(engine)

	return engine.Run(conf.HTTP.Addr)
}

// terminated makes sure a chunk of command text ends with a newline so that
// partial feeds never glue two commands together.
func terminated(data []byte) []byte {
	if len(data) == 0 || data[len(data)-1] != '\n' {
		return append(data, '\n')
	}
	return data
}
