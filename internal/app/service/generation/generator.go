// Package generation runs the gated prayer flows: generating a prayer
// through the AI collaborator, downloading a share card, listening and
// sharing.
package generation

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatflowers/prayerbook/internal/models"
	"github.com/fatflowers/prayerbook/pkg/types"
)

const (
	minScriptures = 1
	maxScriptures = 5
)

type Request struct {
	Type          types.PrayerType `json:"type" binding:"required"`
	RecipientName string           `json:"recipient_name" binding:"required"`
	Language      types.Language   `json:"language" binding:"required"`
	UserInput     string           `json:"user_input" binding:"required"`
}

func (r Request) Validate() error {
	switch {
	case !r.Type.Valid():
		return fmt.Errorf("%w: type %q", ErrInvalidRequest, r.Type)
	case !r.Language.Valid():
		return fmt.Errorf("%w: language %q", ErrInvalidRequest, r.Language)
	case strings.TrimSpace(r.RecipientName) == "":
		return fmt.Errorf("%w: recipient name is empty", ErrInvalidRequest)
	case strings.TrimSpace(r.UserInput) == "":
		return fmt.Errorf("%w: user input is empty", ErrInvalidRequest)
	}
	return nil
}

// Result is the structured object the AI collaborator returns.
type Result struct {
	Prayer     string                      `json:"prayer"`
	Scriptures []models.ScriptureReference `json:"scriptures"`
}

func (r *Result) Validate() error {
	if r == nil || strings.TrimSpace(r.Prayer) == "" {
		return fmt.Errorf("%w: empty prayer", ErrInvalidGeneration)
	}
	if n := len(r.Scriptures); n < minScriptures || n > maxScriptures {
		return fmt.Errorf("%w: %d scriptures, want %d-%d", ErrInvalidGeneration, n, minScriptures, maxScriptures)
	}
	for i, s := range r.Scriptures {
		if strings.TrimSpace(s.Reference) == "" || strings.TrimSpace(s.Verse) == "" {
			return fmt.Errorf("%w: scripture %d is incomplete", ErrInvalidGeneration, i)
		}
	}
	return nil
}

// Generator produces a prayer for a request. Any error is terminal for the
// attempt from the caller's point of view.
type Generator interface {
	Generate(ctx context.Context, req Request) (*Result, error)
}

type disabledGenerator struct{}

func (disabledGenerator) Generate(context.Context, Request) (*Result, error) {
	return nil, ErrGeneratorNotEnabled
}
