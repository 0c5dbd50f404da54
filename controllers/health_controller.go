package controllers

import (
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

var greetings = []string{
	"Hello world!",
	"Welcome back!",
	"Let's get things done!",
}

func Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func Greeting(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"greeting": greetings[rand.Intn(len(greetings))],
	})
}
