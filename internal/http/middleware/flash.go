package middleware

import (
	"encoding/base64"
	"encoding/json"

	"github.com/gin-gonic/gin"
)

const (
	flashCookie = "messages"
	pendingKey  = "pending_messages"
)

// Message levels used by templates for styling.
const (
	LevelSuccess = "success"
	LevelError   = "error"
	LevelInfo    = "info"
)

type Message struct {
	Level string `json:"level"`
	Text  string `json:"text"`
}

// AddMessage queues a message for the page rendered by this request, or the
// next one if the request ends in a redirect.
func AddMessage(c *gin.Context, level, text string) {
	c.Set(pendingKey, append(pending(c), Message{Level: level, Text: text}))
}

// KeepMessages stores queued messages in a cookie so they survive a redirect.
func KeepMessages(c *gin.Context) {
	msgs := append(fromCookie(c), pending(c)...)
	c.Set(pendingKey, []Message(nil))
	if len(msgs) == 0 {
		return
	}
	raw, err := json.Marshal(msgs)
	if err != nil {
		return
	}
	c.SetCookie(flashCookie, base64.RawURLEncoding.EncodeToString(raw), 0, "/", "", false, true)
}

// TakeMessages returns every message for the page being rendered and clears
// the cookie.
func TakeMessages(c *gin.Context) []Message {
	msgs := append(fromCookie(c), pending(c)...)
	c.Set(pendingKey, []Message(nil))
	if _, err := c.Cookie(flashCookie); err == nil {
		c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	}
	return msgs
}

func pending(c *gin.Context) []Message {
	if v, ok := c.Get(pendingKey); ok {
		if msgs, ok := v.([]Message); ok {
			return msgs
		}
	}
	return nil
}

func fromCookie(c *gin.Context) []Message {
	val, err := c.Cookie(flashCookie)
	if err != nil || val == "" {
		return nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(val)
	if err != nil {
		return nil
	}
	var msgs []Message
	if err := json.Unmarshal(raw, &msgs); err != nil {
		return nil
	}
	return msgs
}
