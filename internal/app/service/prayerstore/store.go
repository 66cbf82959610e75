// Package prayerstore owns an installation's saved prayers, folders and
// profile. Prayers are kept newest first.
package prayerstore

import (
	"context"
	"strings"
	"sync"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/fatflowers/prayerbook/internal/app/service/persist"
	"github.com/fatflowers/prayerbook/internal/models"
	"github.com/fatflowers/prayerbook/internal/platform/kv"
	"github.com/fatflowers/prayerbook/pkg/clock"
	"github.com/fatflowers/prayerbook/pkg/tool"
	"github.com/fatflowers/prayerbook/pkg/types"
)

// Snapshotter durably stores JSON snapshots without blocking the caller.
type Snapshotter interface {
	EnqueueJSON(key string, v any)
}

type Deps struct {
	Store  kv.Store
	Writer Snapshotter
	Clock  clock.Clock
	Logger *zap.SugaredLogger
}

type Store struct {
	mu     sync.RWMutex
	clock  clock.Clock
	writer Snapshotter
	l      *zap.SugaredLogger

	prayersKey string
	foldersKey string
	profileKey string

	prayers []models.Prayer
	folders []models.Folder
	profile models.UserProfile
}

// Load restores the store for installationID. Each family falls back to
// its default independently when unreadable.
func Load(ctx context.Context, installationID string, d Deps) *Store {
	s := &Store{
		clock:      d.Clock,
		writer:     d.Writer,
		l:          d.Logger.With("component", "prayerstore"),
		prayersKey: models.StorageKey(installationID, models.KeyPrayers),
		foldersKey: models.StorageKey(installationID, models.KeyFolders),
		profileKey: models.StorageKey(installationID, models.KeyProfile),
		prayers:    []models.Prayer{},
		folders:    []models.Folder{},
		profile:    models.DefaultProfile(),
	}
	if v, ok := persist.LoadJSON[[]models.Prayer](ctx, d.Store, d.Logger, s.prayersKey); ok && v != nil {
		s.prayers = v
	}
	if v, ok := persist.LoadJSON[[]models.Folder](ctx, d.Store, d.Logger, s.foldersKey); ok && v != nil {
		s.folders = v
	}
	if v, ok := persist.LoadJSON[*models.UserProfile](ctx, d.Store, d.Logger, s.profileKey); ok && v != nil {
		s.profile = *v
		if s.profile.PreferredLanguage == "" {
			s.profile.PreferredLanguage = types.LanguageEnglish
		}
	}
	s.l.Debugw("loaded", "prayers", len(s.prayers), "folders", len(s.folders))
	return s
}

func ValidatePrayer(p models.Prayer) error {
	switch {
	case p.ID == "":
		return ErrInvalidPrayer
	case !p.Type.Valid():
		return ErrInvalidPrayer
	case !p.Language.Valid():
		return ErrInvalidPrayer
	}
	return nil
}

// AddPrayer puts p at the front of the sequence. Ids are not deduplicated.
func (s *Store) AddPrayer(p models.Prayer) error {
	if err := ValidatePrayer(p); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prayers = append([]models.Prayer{p.Clone()}, s.prayers...)
	s.savePrayersLocked()
	s.l.Infow("prayer added", "prayer_id", p.ID, "total", len(s.prayers))
	return nil
}

// ToggleFavorite flips the favorite flag on every prayer with id. It reports
// false, changing nothing, when no prayer matches.
func (s *Store) ToggleFavorite(id string) (models.Prayer, bool) {
	return s.updatePrayer(id, func(p *models.Prayer) {
		p.IsFavorite = !p.IsFavorite
	})
}

func (s *Store) DeletePrayer(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.prayers)
	s.prayers = lo.Reject(s.prayers, func(p models.Prayer, _ int) bool { return p.ID == id })
	if len(s.prayers) == n {
		return false
	}
	s.savePrayersLocked()
	return true
}

// MovePrayerToFolder sets or, with a nil folderID, clears the folder
// reference. The folder is not required to exist.
func (s *Store) MovePrayerToFolder(prayerID string, folderID *string) (models.Prayer, bool) {
	return s.updatePrayer(prayerID, func(p *models.Prayer) {
		if folderID == nil {
			p.FolderID = nil
			return
		}
		id := *folderID
		p.FolderID = &id
	})
}

func (s *Store) MarkPrayerCardDownloaded(prayerID, imageData string) (models.Prayer, bool) {
	return s.updatePrayer(prayerID, func(p *models.Prayer) {
		p.HasDownloadedCard = true
		p.CardImageBase64 = imageData
	})
}

func (s *Store) updatePrayer(id string, fn func(p *models.Prayer)) (models.Prayer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var (
		last  models.Prayer
		found bool
	)
	for i := range s.prayers {
		if s.prayers[i].ID != id {
			continue
		}
		fn(&s.prayers[i])
		last = s.prayers[i]
		found = true
	}
	if !found {
		return models.Prayer{}, false
	}
	s.savePrayersLocked()
	return last.Clone(), true
}

// AddFolder appends a folder with name exactly as given. Blank names are
// rejected.
func (s *Store) AddFolder(name string) (models.Folder, error) {
	if strings.TrimSpace(name) == "" {
		return models.Folder{}, ErrEmptyFolderName
	}
	f := models.Folder{
		ID:        tool.GenerateUUIDV7(),
		Name:      name,
		CreatedAt: s.clock.Now(),
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.folders = append(s.folders, f)
	s.saveFoldersLocked()
	return f, nil
}

// DeleteFolder removes the folder and clears the reference on every prayer
// that pointed at it. Prayers are never deleted. It reports whether the
// folder existed.
func (s *Store) DeleteFolder(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.folders)
	s.folders = lo.Reject(s.folders, func(f models.Folder, _ int) bool { return f.ID == id })
	existed := len(s.folders) != n
	if existed {
		s.saveFoldersLocked()
	}

	cleared := 0
	for i := range s.prayers {
		if s.prayers[i].InFolder(id) {
			s.prayers[i].FolderID = nil
			cleared++
		}
	}
	if cleared > 0 {
		s.savePrayersLocked()
	}
	s.l.Infow("folder deleted", "folder_id", id, "existed", existed, "prayers_cleared", cleared)
	return existed
}

func (s *Store) UpdateProfile(patch ProfilePatch) (models.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	updated, err := patch.apply(s.profile)
	if err != nil {
		return s.profile.Clone(), err
	}
	s.profile = updated
	s.saveProfileLocked()
	return s.profile.Clone(), nil
}

// CompleteOnboarding replaces the whole profile; the image and notification
// settings are dropped.
func (s *Store) CompleteOnboarding(name string, language types.Language) (models.UserProfile, error) {
	if !language.Valid() {
		return models.UserProfile{}, ErrInvalidLanguage
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = models.UserProfile{
		Name:                   name,
		PreferredLanguage:      language,
		HasCompletedOnboarding: true,
	}
	s.saveProfileLocked()
	return s.profile.Clone(), nil
}

func (s *Store) Prayers() []models.Prayer {
	return s.Query(types.PrayerFilter{})
}

// FilteredPrayers matches query case-insensitively against recipient name,
// generated text and user input. A blank query returns every prayer.
func (s *Store) FilteredPrayers(query string) []models.Prayer {
	return s.Query(types.PrayerFilter{Query: query})
}

func (s *Store) FavoritePrayers() []models.Prayer {
	return s.Query(types.PrayerFilter{FavoritesOnly: true})
}

func (s *Store) PrayersInFolder(folderID string) []models.Prayer {
	return s.Query(types.PrayerFilter{FolderID: &folderID})
}

// Query applies every condition in f, preserving newest-first order.
func (s *Store) Query(f types.PrayerFilter) []models.Prayer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clonePrayers(applyFilter(s.prayers, f))
}

// Prayer returns the first prayer with id.
func (s *Store) Prayer(id string) (models.Prayer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := lo.Find(s.prayers, func(p models.Prayer) bool { return p.ID == id })
	if !ok {
		return models.Prayer{}, false
	}
	return p.Clone(), true
}

func (s *Store) Folders() []models.Folder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Folder, len(s.folders))
	copy(out, s.folders)
	return out
}

func (s *Store) Profile() models.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile.Clone()
}

func clonePrayers(ps []models.Prayer) []models.Prayer {
	return lo.Map(ps, func(p models.Prayer, _ int) models.Prayer { return p.Clone() })
}

func (s *Store) savePrayersLocked() { s.writer.EnqueueJSON(s.prayersKey, s.prayers) }
func (s *Store) saveFoldersLocked() { s.writer.EnqueueJSON(s.foldersKey, s.folders) }
func (s *Store) saveProfileLocked() { s.writer.EnqueueJSON(s.profileKey, s.profile) }
