package types

import "strings"

// PrayerFilter narrows a prayer listing. Zero value matches everything.
type PrayerFilter struct {
	Query         string  `form:"q" json:"q"`
	FavoritesOnly bool    `form:"favorites" json:"favorites"`
	FolderID      *string `form:"folder_id" json:"folder_id"`
}

// NormalizedQuery returns the lower-cased query, or "" when it is blank.
func (f PrayerFilter) NormalizedQuery() string {
	if strings.TrimSpace(f.Query) == "" {
		return ""
	}
	return strings.ToLower(f.Query)
}
