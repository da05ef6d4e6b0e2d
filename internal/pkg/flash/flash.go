// Package flash stores one-shot user-facing messages in the session,
// read and cleared on the next rendered page.
package flash

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	LevelSuccess = "success"
	LevelError   = "error"
	LevelWarning = "warning"
)

type Message struct {
	Level string
	Text  string
}

// Add queues a message under its level. The session is saved by the caller
// before redirecting, or implicitly by Take on the rendering side.
func Add(c *gin.Context, level, text string) {
	session := sessions.Default(c)
	session.AddFlash(text, level)
	_ = session.Save()
}

// Take drains all queued messages and persists the cleared session.
func Take(c *gin.Context) []Message {
	session := sessions.Default(c)

	var out []Message
	for _, level := range []string{LevelSuccess, LevelError, LevelWarning} {
		for _, v := range session.Flashes(level) {
			if s, ok := v.(string); ok {
				out = append(out, Message{Level: level, Text: s})
			}
		}
	}
	_ = session.Save()
	return out
}
