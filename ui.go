package main

import (
	_ "embed"
	"github.com/gin-gonic/gin"
	"net/http"
	"os"
)

const (
	FeedHTMLPath = "./ui/feed.html"
)

//go:embed ui/feed.html
var FeedHTML string

func SetupUI(engine *gin.Engine) {
	engine.GET("/ui/feed.html", func(c *gin.Context) {
		if stat, err := os.Stat(FeedHTMLPath); err == nil && !stat.IsDir() {
			c.File(FeedHTMLPath)
		} else {
			c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(FeedHTML))
		}
	})
}
