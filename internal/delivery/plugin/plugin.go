package plugin

import (
	"context"
	"strings"
)

// PriceLookup is the capability the plugin needs from the price service.
type PriceLookup interface {
	LookupPrice(ctx context.Context, searchTerm, displayName string) (string, error)
}

// ChatMessage is a single chat effect the automation host should perform.
type ChatMessage struct {
	Action  string `json:"action"`
	Message string `json:"message"`
}

// Response is the envelope returned to the automation host.
type Response struct {
	Success  bool          `json:"success"`
	Messages []ChatMessage `json:"messages"`
}

// Bot adapts the price service to the chatbot plugin contract.
type Bot struct {
	prices PriceLookup
}

// NewBot creates a new Bot with the given price lookup service
func NewBot(prices PriceLookup) *Bot {
	return &Bot{prices: prices}
}

// Execute runs one price lookup. The command arguments are joined with
// spaces to form the search term, and the invoking user's name is used
// as the display name in the reply.
func (b *Bot) Execute(ctx context.Context, args []string, username string) Response {
	searchTerm := strings.TrimSpace(strings.Join(args, " "))

	message, err := b.prices.LookupPrice(ctx, searchTerm, username)

	return Response{
		Success: err == nil,
		Messages: []ChatMessage{
			{Action: "say", Message: message},
		},
	}
}
