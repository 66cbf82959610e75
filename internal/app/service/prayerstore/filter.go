package prayerstore

import (
	"strings"

	"github.com/samber/lo"

	"github.com/fatflowers/prayerbook/internal/models"
	"github.com/fatflowers/prayerbook/pkg/types"
)

// matchesQuery reports whether q, already lower-cased, occurs in the
// recipient name, generated text or user input.
func matchesQuery(p models.Prayer, q string) bool {
	return strings.Contains(strings.ToLower(p.RecipientName), q) ||
		strings.Contains(strings.ToLower(p.GeneratedPrayer), q) ||
		strings.Contains(strings.ToLower(p.UserInput), q)
}

func applyFilter(prayers []models.Prayer, f types.PrayerFilter) []models.Prayer {
	q := f.NormalizedQuery()
	return lo.Filter(prayers, func(p models.Prayer, _ int) bool {
		if f.FavoritesOnly && !p.IsFavorite {
			return false
		}
		if f.FolderID != nil && !p.InFolder(*f.FolderID) {
			return false
		}
		return q == "" || matchesQuery(p, q)
	})
}
