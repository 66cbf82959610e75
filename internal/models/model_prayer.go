package models

import (
	"slices"
	"time"

	"github.com/fatflowers/prayerbook/pkg/types"
)

type ScriptureReference struct {
	Reference string `json:"reference"`
	Verse     string `json:"verse"`
}

// Prayer is a generated prayer saved by the user. FolderID is a weak
// reference: deleting the folder clears it.
type Prayer struct {
	ID                  string               `json:"id"`
	Type                types.PrayerType     `json:"type"`
	RecipientName       string               `json:"recipientName"`
	Language            types.Language       `json:"language"`
	UserInput           string               `json:"userInput"`
	GeneratedPrayer     string               `json:"generatedPrayer"`
	Scriptures          []ScriptureReference `json:"scriptures"`
	CreatedAt           time.Time            `json:"createdAt"`
	IsFavorite          bool                 `json:"isFavorite"`
	FolderID            *string              `json:"folderId,omitempty"`
	CardBackgroundIndex *int                 `json:"cardBackgroundIndex,omitempty"`
	HasDownloadedCard   bool                 `json:"hasDownloadedCard,omitempty"`
	CardImageBase64     string               `json:"cardImageBase64,omitempty"`
}

// Clone returns a deep copy so callers cannot alias store state.
func (p Prayer) Clone() Prayer {
	p.Scriptures = slices.Clone(p.Scriptures)
	if p.FolderID != nil {
		id := *p.FolderID
		p.FolderID = &id
	}
	if p.CardBackgroundIndex != nil {
		idx := *p.CardBackgroundIndex
		p.CardBackgroundIndex = &idx
	}
	return p
}

// InFolder reports whether the prayer references folderID.
func (p Prayer) InFolder(folderID string) bool {
	return p.FolderID != nil && *p.FolderID == folderID
}

type Folder struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
