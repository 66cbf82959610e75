package prayerstore

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fatflowers/prayerbook/internal/app/service/persist"
	"github.com/fatflowers/prayerbook/internal/models"
	"github.com/fatflowers/prayerbook/internal/platform/kv"
	"github.com/fatflowers/prayerbook/pkg/clock"
	"github.com/fatflowers/prayerbook/pkg/types"
)

const inst = "inst-1"

var now = time.Date(2025, 5, 4, 18, 30, 0, 0, time.UTC)

type fixture struct {
	kv     *kv.MemoryStore
	writer *persist.Writer
	clock  *clock.Manual
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := kv.NewMemoryStore()
	w := persist.NewWriter(store, zap.NewNop().Sugar(), nil, persist.Options{Timeout: time.Second, RetryBase: time.Millisecond})
	t.Cleanup(func() { _ = w.Close(context.Background()) })
	return &fixture{kv: store, writer: w, clock: clock.NewManual(now)}
}

func (f *fixture) load() *Store {
	return Load(context.Background(), inst, Deps{Store: f.kv, Writer: f.writer, Clock: f.clock, Logger: zap.NewNop().Sugar()})
}

func (f *fixture) stored(t *testing.T, family string, dst any) {
	t.Helper()
	require.NoError(t, f.writer.Flush(context.Background()))
	raw, err := f.kv.Get(context.Background(), models.StorageKey(inst, family))
	require.NoError(t, err)
	require.NotNil(t, raw)
	require.NoError(t, json.Unmarshal(raw, dst))
}

func prayer(id, recipient, text, input string) models.Prayer {
	return models.Prayer{
		ID:              id,
		Type:            types.PrayerTypeSend,
		RecipientName:   recipient,
		Language:        types.LanguageEnglish,
		UserInput:       input,
		GeneratedPrayer: text,
		Scriptures:      []models.ScriptureReference{{Reference: "Psalm 23:1", Verse: "The Lord is my shepherd"}},
		CreatedAt:       now,
	}
}

func ids(ps []models.Prayer) []string {
	return lo.Map(ps, func(p models.Prayer, _ int) string { return p.ID })
}

func TestLoad_Defaults(t *testing.T) {
	s := newFixture(t).load()

	require.Empty(t, s.Prayers())
	require.Empty(t, s.Folders())
	require.Equal(t, models.UserProfile{PreferredLanguage: types.LanguageEnglish}, s.Profile())
}

func TestLoad_CorruptFamiliesFallBackIndependently(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	good, _ := json.Marshal([]models.Folder{{ID: "f1", Name: "Morning", CreatedAt: now}})
	require.NoError(t, f.kv.Set(ctx, models.StorageKey(inst, models.KeyFolders), good))
	require.NoError(t, f.kv.Set(ctx, models.StorageKey(inst, models.KeyPrayers), []byte("{oops")))
	require.NoError(t, f.kv.Set(ctx, models.StorageKey(inst, models.KeyProfile), []byte("null")))

	s := f.load()
	require.Empty(t, s.Prayers())
	require.Len(t, s.Folders(), 1)
	require.Equal(t, types.LanguageEnglish, s.Profile().PreferredLanguage)
}

func TestAddPrayer_NewestFirst(t *testing.T) {
	f := newFixture(t)
	s := f.load()

	for i := 0; i < 5; i++ {
		p := prayer(fmt.Sprintf("p%d", i), "Ana", "text", "input")
		require.NoError(t, s.AddPrayer(p))
		got := s.Prayers()
		require.Equal(t, p, got[0])
		require.Len(t, got, i+1)
	}
	require.Equal(t, []string{"p4", "p3", "p2", "p1", "p0"}, ids(s.Prayers()))

	var stored []models.Prayer
	f.stored(t, models.KeyPrayers, &stored)
	require.Equal(t, []string{"p4", "p3", "p2", "p1", "p0"}, ids(stored))

	reloaded := f.load()
	require.Equal(t, s.Prayers(), reloaded.Prayers())
}

func TestAddPrayer_NoDedup(t *testing.T) {
	s := newFixture(t).load()
	p := prayer("same", "Ana", "text", "input")
	require.NoError(t, s.AddPrayer(p))
	require.NoError(t, s.AddPrayer(p))
	require.Len(t, s.Prayers(), 2)
}

func TestAddPrayer_Validates(t *testing.T) {
	s := newFixture(t).load()

	bad := prayer("", "Ana", "t", "i")
	require.ErrorIs(t, s.AddPrayer(bad), ErrInvalidPrayer)
	bad = prayer("x", "Ana", "t", "i")
	bad.Type = "group"
	require.ErrorIs(t, s.AddPrayer(bad), ErrInvalidPrayer)
	bad = prayer("x", "Ana", "t", "i")
	bad.Language = "fr"
	require.ErrorIs(t, s.AddPrayer(bad), ErrInvalidPrayer)
	require.Empty(t, s.Prayers())
}

func TestReturnedValuesDoNotAliasState(t *testing.T) {
	s := newFixture(t).load()
	require.NoError(t, s.AddPrayer(prayer("p1", "Ana", "t", "i")))

	got := s.Prayers()
	got[0].RecipientName = "changed"
	got[0].Scriptures[0].Reference = "changed"

	p, ok := s.Prayer("p1")
	require.True(t, ok)
	require.Equal(t, "Ana", p.RecipientName)
	require.Equal(t, "Psalm 23:1", p.Scriptures[0].Reference)
}

func TestToggleFavorite(t *testing.T) {
	s := newFixture(t).load()
	require.NoError(t, s.AddPrayer(prayer("p1", "Ana", "t", "i")))
	require.NoError(t, s.AddPrayer(prayer("p2", "Bo", "t", "i")))

	p, ok := s.ToggleFavorite("p1")
	require.True(t, ok)
	require.True(t, p.IsFavorite)
	require.Equal(t, []string{"p1"}, ids(s.FavoritePrayers()))

	p, ok = s.ToggleFavorite("p1")
	require.True(t, ok)
	require.False(t, p.IsFavorite)
	require.Empty(t, s.FavoritePrayers())

	_, ok = s.ToggleFavorite("missing")
	require.False(t, ok)
	require.Equal(t, []string{"p2", "p1"}, ids(s.Prayers()))
}

func TestDeletePrayer(t *testing.T) {
	f := newFixture(t)
	s := f.load()
	require.NoError(t, s.AddPrayer(prayer("p1", "Ana", "t", "i")))
	require.NoError(t, s.AddPrayer(prayer("p2", "Bo", "t", "i")))

	require.True(t, s.DeletePrayer("p1"))
	require.False(t, s.DeletePrayer("p1"))
	require.Equal(t, []string{"p2"}, ids(s.Prayers()))

	var stored []models.Prayer
	f.stored(t, models.KeyPrayers, &stored)
	require.Equal(t, []string{"p2"}, ids(stored))
}

func TestAddFolder(t *testing.T) {
	f := newFixture(t)
	s := f.load()

	first, err := s.AddFolder("Evening")
	require.NoError(t, err)
	require.Equal(t, "Evening", first.Name)
	require.NotEmpty(t, first.ID)
	require.True(t, now.Equal(first.CreatedAt))

	second, err := s.AddFolder("Family")
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)
	require.Equal(t, []string{"Evening", "Family"}, lo.Map(s.Folders(), func(f models.Folder, _ int) string { return f.Name }))

	var stored []models.Folder
	f.stored(t, models.KeyFolders, &stored)
	require.Len(t, stored, 2)
}

func TestAddFolder_KeepsNameAsGiven(t *testing.T) {
	f := newFixture(t)
	s := f.load()

	folder, err := s.AddFolder("  Evening ")
	require.NoError(t, err)
	require.Equal(t, "  Evening ", folder.Name)

	var stored []models.Folder
	f.stored(t, models.KeyFolders, &stored)
	require.Equal(t, "  Evening ", stored[0].Name)
}

func TestAddFolder_RejectsBlank(t *testing.T) {
	s := newFixture(t).load()
	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := s.AddFolder(name)
		require.ErrorIs(t, err, ErrEmptyFolderName)
	}
	require.Empty(t, s.Folders())
}

func TestDeleteFolder_ClearsReferencesKeepsPrayers(t *testing.T) {
	f := newFixture(t)
	s := f.load()
	evening, err := s.AddFolder("Evening")
	require.NoError(t, err)
	other, err := s.AddFolder("Other")
	require.NoError(t, err)

	require.NoError(t, s.AddPrayer(prayer("p1", "Ana", "t", "i")))
	require.NoError(t, s.AddPrayer(prayer("p2", "Bo", "t", "i")))
	require.NoError(t, s.AddPrayer(prayer("p3", "Cy", "t", "i")))
	_, ok := s.MovePrayerToFolder("p1", &evening.ID)
	require.True(t, ok)
	_, ok = s.MovePrayerToFolder("p2", &evening.ID)
	require.True(t, ok)
	_, ok = s.MovePrayerToFolder("p3", &other.ID)
	require.True(t, ok)
	require.Equal(t, []string{"p2", "p1"}, ids(s.PrayersInFolder(evening.ID)))

	require.True(t, s.DeleteFolder(evening.ID))

	require.Len(t, s.Prayers(), 3)
	require.Empty(t, s.PrayersInFolder(evening.ID))
	for _, id := range []string{"p1", "p2"} {
		p, ok := s.Prayer(id)
		require.True(t, ok)
		require.Nil(t, p.FolderID)
	}
	p3, _ := s.Prayer("p3")
	require.Equal(t, other.ID, *p3.FolderID)
	require.Len(t, s.Folders(), 1)

	var stored []models.Prayer
	f.stored(t, models.KeyPrayers, &stored)
	for _, p := range stored {
		if p.ID != "p3" {
			require.Nil(t, p.FolderID)
		}
	}

	require.False(t, s.DeleteFolder(evening.ID))
}

func TestMovePrayerToFolder(t *testing.T) {
	s := newFixture(t).load()
	require.NoError(t, s.AddPrayer(prayer("p1", "Ana", "t", "i")))

	// the folder does not have to exist
	p, ok := s.MovePrayerToFolder("p1", lo.ToPtr("nowhere"))
	require.True(t, ok)
	require.Equal(t, "nowhere", *p.FolderID)

	p, ok = s.MovePrayerToFolder("p1", nil)
	require.True(t, ok)
	require.Nil(t, p.FolderID)

	_, ok = s.MovePrayerToFolder("missing", nil)
	require.False(t, ok)
}

func TestMarkPrayerCardDownloaded(t *testing.T) {
	f := newFixture(t)
	s := f.load()
	require.NoError(t, s.AddPrayer(prayer("p1", "Ana", "t", "i")))

	p, ok := s.MarkPrayerCardDownloaded("p1", "aGVsbG8=")
	require.True(t, ok)
	require.True(t, p.HasDownloadedCard)
	require.Equal(t, "aGVsbG8=", p.CardImageBase64)

	var stored []models.Prayer
	f.stored(t, models.KeyPrayers, &stored)
	require.True(t, stored[0].HasDownloadedCard)

	_, ok = s.MarkPrayerCardDownloaded("missing", "x")
	require.False(t, ok)
}

func TestFilteredPrayers(t *testing.T) {
	s := newFixture(t).load()
	require.NoError(t, s.AddPrayer(prayer("p1", "Maria", "Lord, give Maria peace", "new job")))
	require.NoError(t, s.AddPrayer(prayer("p2", "John", "Heal JOHN's body", "surgery tomorrow")))
	require.NoError(t, s.AddPrayer(prayer("p3", "", "Grant me patience", "Patience at work")))

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"p3", "p2", "p1"}},
		{"   ", []string{"p3", "p2", "p1"}},
		{"maria", []string{"p1"}},
		{"MARIA", []string{"p1"}},
		{"john", []string{"p2"}},
		{"patience", []string{"p3"}},
		{"JoB", []string{"p1"}},
		{"o", []string{"p3", "p2", "p1"}},
		{" job", []string{"p1"}},
		{"zzz", []string{}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.query), func(t *testing.T) {
			require.Equal(t, tt.want, ids(s.FilteredPrayers(tt.query)))
		})
	}
}

func TestFilteredPrayers_EmptyQueryIsUnfiltered(t *testing.T) {
	s := newFixture(t).load()
	for i := 0; i < 4; i++ {
		require.NoError(t, s.AddPrayer(prayer(fmt.Sprintf("p%d", i), "n", "t", "i")))
	}
	require.Equal(t, s.Prayers(), s.FilteredPrayers(""))
}

func TestQuery_CombinesConditions(t *testing.T) {
	s := newFixture(t).load()
	require.NoError(t, s.AddPrayer(prayer("p1", "Ana", "peace", "i")))
	require.NoError(t, s.AddPrayer(prayer("p2", "Ana", "joy", "i")))
	require.NoError(t, s.AddPrayer(prayer("p3", "Bo", "peace", "i")))
	s.ToggleFavorite("p1")
	s.ToggleFavorite("p3")
	s.MovePrayerToFolder("p1", lo.ToPtr("f"))

	got := s.Query(types.PrayerFilter{Query: "PEACE", FavoritesOnly: true})
	assert.Equal(t, []string{"p3", "p1"}, ids(got))

	got = s.Query(types.PrayerFilter{Query: "peace", FavoritesOnly: true, FolderID: lo.ToPtr("f")})
	assert.Equal(t, []string{"p1"}, ids(got))
}

func TestUpdateProfile_MergesOnlySetFields(t *testing.T) {
	f := newFixture(t)
	s := f.load()

	p, err := s.UpdateProfile(ProfilePatch{Name: lo.ToPtr("Ana"), ProfileImageURI: lo.ToPtr("file:///a.png")})
	require.NoError(t, err)
	require.Equal(t, "Ana", p.Name)
	require.Equal(t, types.LanguageEnglish, p.PreferredLanguage)
	require.Equal(t, "file:///a.png", *p.ProfileImageURI)

	p, err = s.UpdateProfile(ProfilePatch{PreferredLanguage: lo.ToPtr(types.LanguageSpanish)})
	require.NoError(t, err)
	require.Equal(t, "Ana", p.Name)
	require.Equal(t, types.LanguageSpanish, p.PreferredLanguage)
	require.NotNil(t, p.ProfileImageURI)

	p, err = s.UpdateProfile(ProfilePatch{ProfileImageURI: lo.ToPtr("")})
	require.NoError(t, err)
	require.Nil(t, p.ProfileImageURI)

	var stored models.UserProfile
	f.stored(t, models.KeyProfile, &stored)
	require.Equal(t, p, stored)
}

func TestUpdateProfile_RejectsInvalid(t *testing.T) {
	s := newFixture(t).load()
	_, err := s.UpdateProfile(ProfilePatch{Name: lo.ToPtr("Ana")})
	require.NoError(t, err)

	_, err = s.UpdateProfile(ProfilePatch{Name: lo.ToPtr("Bo"), PreferredLanguage: lo.ToPtr(types.Language("fr"))})
	require.ErrorIs(t, err, ErrInvalidLanguage)

	_, err = s.UpdateProfile(ProfilePatch{Name: lo.ToPtr("Bo"), NotificationSettings: &models.NotificationSettings{Days: []int{7}, Time: "08:00"}})
	require.ErrorIs(t, err, ErrInvalidNotificationSettings)

	require.Equal(t, "Ana", s.Profile().Name)
}

func TestNormalizeNotificationSettings(t *testing.T) {
	ns, err := NormalizeNotificationSettings(models.NotificationSettings{Enabled: true, Days: []int{5, 1, 1, 0}, Time: "07:30"})
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 5}, ns.Days)

	ns, err = NormalizeNotificationSettings(models.NotificationSettings{Time: "23:59"})
	require.NoError(t, err)
	require.Equal(t, []int{}, ns.Days)

	for _, bad := range []string{"7:30", "24:00", "12:60", "noon", ""} {
		_, err := NormalizeNotificationSettings(models.NotificationSettings{Time: bad})
		require.ErrorIs(t, err, ErrInvalidNotificationSettings, bad)
	}
	_, err = NormalizeNotificationSettings(models.NotificationSettings{Days: []int{-1}, Time: "08:00"})
	require.ErrorIs(t, err, ErrInvalidNotificationSettings)
}

func TestCompleteOnboarding_Overwrites(t *testing.T) {
	f := newFixture(t)
	s := f.load()
	_, err := s.UpdateProfile(ProfilePatch{
		ProfileImageURI:      lo.ToPtr("file:///a.png"),
		NotificationSettings: &models.NotificationSettings{Enabled: true, Days: []int{1}, Time: "08:00"},
	})
	require.NoError(t, err)

	p, err := s.CompleteOnboarding("Ana", types.LanguageSpanish)
	require.NoError(t, err)
	require.Equal(t, models.UserProfile{Name: "Ana", PreferredLanguage: types.LanguageSpanish, HasCompletedOnboarding: true}, p)

	var stored models.UserProfile
	f.stored(t, models.KeyProfile, &stored)
	require.Equal(t, p, stored)

	_, err = s.CompleteOnboarding("Ana", "fr")
	require.ErrorIs(t, err, ErrInvalidLanguage)
}

func TestScenario_FolderLifecycle(t *testing.T) {
	f := newFixture(t)
	s := f.load()
	require.NoError(t, s.AddPrayer(prayer("P1", "Ana", "t", "i")))

	evening, err := s.AddFolder("Evening")
	require.NoError(t, err)
	_, ok := s.MovePrayerToFolder("P1", &evening.ID)
	require.True(t, ok)
	s.DeleteFolder(evening.ID)

	p, ok := s.Prayer("P1")
	require.True(t, ok)
	require.Nil(t, p.FolderID)

	require.NoError(t, f.writer.Flush(context.Background()))
	reloaded := f.load()
	p, ok = reloaded.Prayer("P1")
	require.True(t, ok)
	require.Nil(t, p.FolderID)
	require.Empty(t, reloaded.Folders())
}
