package api

import (
	"net/http" // HTTP status codes

	"fitness_tracker/internal/chat" // Keyword responder

	"github.com/gin-gonic/gin" // Gin web framework
)

// ChatRequest is the chat message body
type ChatRequest struct {
	Message string `json:"message"` // Free text from the user
}

// ChatbotHandler renders the chat page
func ChatbotHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		render(c, http.StatusOK, "chatbot.html", gin.H{"Title": "Coach"})
	}
}

// ChatHandler answers a message with the first matching canned reply
func ChatHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ChatRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"response": chat.Respond(req.Message)})
	}
}
