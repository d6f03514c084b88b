// Package flash carries a one-shot notification across a redirect.
//
// It is a single-slot channel: setting a new message replaces whatever is
// pending, and a message is consumed by the first page render that follows.
// The banner itself auto-dismisses in the page template.
package flash

import (
	"encoding/base64"
	"encoding/json"

	"github.com/gin-gonic/gin"
)

const cookieName = "trade_admin_flash"

// Severity classifies a notification.
type Severity string

const (
	// SeveritySuccess reports a completed write.
	SeveritySuccess Severity = "success"
	// SeverityError reports a failed write or load.
	SeverityError Severity = "error"
)

// Message is one pending notification.
type Message struct {
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// Set stores the notification for the next rendered page, replacing any
// pending one.
func Set(c *gin.Context, msg string, severity Severity) {
	data, err := json.Marshal(Message{Message: msg, Severity: severity})
	if err != nil {
		return
	}
	c.SetCookie(cookieName, base64.URLEncoding.EncodeToString(data), 60, "/", "", false, true)
}

// Take returns the pending notification, if any, and clears it.
func Take(c *gin.Context) *Message {
	raw, err := c.Cookie(cookieName)
	if err != nil {
		return nil
	}
	c.SetCookie(cookieName, "", -1, "/", "", false, true)

	data, err := base64.URLEncoding.DecodeString(raw)
	if err != nil {
		return nil
	}
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil
	}
	return &msg
}
