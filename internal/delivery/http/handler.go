package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// PriceLookup is the slice of the price service the HTTP layer needs.
type PriceLookup interface {
	LookupPrice(ctx context.Context, searchTerm, displayName string) (string, error)
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	prices PriceLookup
}

// NewHandler creates a new HTTP handler
func NewHandler(prices PriceLookup) *Handler {
	return &Handler{prices: prices}
}

// HealthCheck reports liveness with a fixed plain-text body.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// GetPrice answers GET /price?card=<term>&user=<name> with a plain-text chat
// message. Chat integrations relay the body verbatim, so every outcome
// ships as 200 with a user-facing message, scrape failures included.
func (h *Handler) GetPrice(c *gin.Context) {
	card := c.Query("card")
	if card == "" {
		card = c.Query("q")
	}
	user := c.Query("user")

	// The error only distinguishes failure classes for callers that need a
	// success flag; the message is already chat-ready either way.
	message, _ := h.prices.LookupPrice(c.Request.Context(), card, user)
	c.String(http.StatusOK, message)
}
