package plugin

import (
	"context"
	"testing"

	"github.com/accold/mtg-price-api/internal/domain"
)

type fakeLookup struct {
	message  string
	err      error
	lastTerm string
	lastName string
}

func (f *fakeLookup) LookupPrice(ctx context.Context, searchTerm, displayName string) (string, error) {
	f.lastTerm = searchTerm
	f.lastName = displayName
	return f.message, f.err
}

func TestBotExecute(t *testing.T) {
	t.Run("joins arguments into one search term", func(t *testing.T) {
		lookup := &fakeLookup{message: "Ash, Card: charizard vmax (Darkness Ablaze) | Regular: $25.00 | Foil: N/A"}
		bot := NewBot(lookup)

		resp := bot.Execute(context.Background(), []string{"charizard", "vmax"}, "Ash")

		if lookup.lastTerm != "charizard vmax" {
			t.Errorf("search term = %q, want %q", lookup.lastTerm, "charizard vmax")
		}
		if lookup.lastName != "Ash" {
			t.Errorf("display name = %q, want Ash", lookup.lastName)
		}
		if !resp.Success {
			t.Error("Success = false, want true")
		}
		if len(resp.Messages) != 1 {
			t.Fatalf("len(Messages) = %d, want 1", len(resp.Messages))
		}
		if resp.Messages[0].Action != "say" {
			t.Errorf("Action = %q, want say", resp.Messages[0].Action)
		}
		if resp.Messages[0].Message != lookup.message {
			t.Errorf("Message = %q, want %q", resp.Messages[0].Message, lookup.message)
		}
	})

	t.Run("reports failure but still carries the chat message", func(t *testing.T) {
		lookup := &fakeLookup{
			message: `Ash, failed to fetch card/product "pikachu" - timeout`,
			err:     domain.ErrScrapeFailure,
		}
		bot := NewBot(lookup)

		resp := bot.Execute(context.Background(), []string{"pikachu"}, "Ash")

		if resp.Success {
			t.Error("Success = true, want false")
		}
		if len(resp.Messages) != 1 || resp.Messages[0].Message != lookup.message {
			t.Errorf("Messages = %+v, want the failure message passed through", resp.Messages)
		}
	})

	t.Run("empty arguments produce the invalid input prompt", func(t *testing.T) {
		lookup := &fakeLookup{
			message: "Ash, please provide a card name!",
			err:     domain.ErrInvalidQuery,
		}
		bot := NewBot(lookup)

		resp := bot.Execute(context.Background(), nil, "Ash")

		if lookup.lastTerm != "" {
			t.Errorf("search term = %q, want empty", lookup.lastTerm)
		}
		if resp.Success {
			t.Error("Success = true, want false")
		}
	})
}
