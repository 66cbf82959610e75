package generation

import (
	"context"
	"encoding/base64"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	"github.com/fatflowers/prayerbook/internal/app/service/entitlement"
	"github.com/fatflowers/prayerbook/internal/models"
	"github.com/fatflowers/prayerbook/pkg/clock"
	"github.com/fatflowers/prayerbook/pkg/config"
	"github.com/fatflowers/prayerbook/pkg/logctx"
	"github.com/fatflowers/prayerbook/pkg/metrics"
	"github.com/fatflowers/prayerbook/pkg/tool"
	"github.com/fatflowers/prayerbook/pkg/types"
)

const qrSize = 256

// Quota is the slice of the entitlement tracker the flows need.
type Quota interface {
	Reserve(f types.Feature) (*entitlement.Reservation, error)
	RecordUse(f types.Feature) error
}

// Prayers is the slice of the prayer store the flows need.
type Prayers interface {
	AddPrayer(p models.Prayer) error
	Prayer(id string) (models.Prayer, bool)
	MarkPrayerCardDownloaded(prayerID, imageData string) (models.Prayer, bool)
}

type Service struct {
	gen             Generator
	clock           clock.Clock
	l               *zap.SugaredLogger
	metrics         *metrics.Business
	cardBackgrounds int
	shareBaseURL    string
	intn            func(n int) int
}

func NewService(gen Generator, c clock.Clock, l *zap.SugaredLogger, m *metrics.Business, cfg *config.Config) *Service {
	return &Service{
		gen:             gen,
		clock:           c,
		l:               l,
		metrics:         m,
		cardBackgrounds: cfg.CardBackgrounds,
		shareBaseURL:    strings.TrimRight(cfg.Share.BaseURL, "/"),
		intn:            rand.IntN,
	}
}

// Generate reserves the allowance for the request's prayer type, calls the
// generator and records the use only when a prayer came back. A failed
// generation releases the reservation. With save the prayer is also added
// to the store.
func (s *Service) Generate(ctx context.Context, quota Quota, prayers Prayers, req Request, save bool) (models.Prayer, error) {
	if err := req.Validate(); err != nil {
		return models.Prayer{}, err
	}
	hold, err := quota.Reserve(req.Type.Feature())
	if err != nil {
		return models.Prayer{}, err
	}
	defer hold.Release()

	lg := logctx.FromCtx(ctx, s.l)
	start := time.Now()
	res, err := s.gen.Generate(ctx, req)
	if err == nil {
		err = res.Validate()
	}
	s.metrics.GenerationObserved(start, err)
	if err != nil {
		lg.Errorw("prayer generation failed, usage not recorded", "type", req.Type, "err", err)
		return models.Prayer{}, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	p := models.Prayer{
		ID:              tool.GenerateUUIDV7(),
		Type:            req.Type,
		RecipientName:   req.RecipientName,
		Language:        req.Language,
		UserInput:       req.UserInput,
		GeneratedPrayer: res.Prayer,
		Scriptures:      res.Scriptures,
		CreatedAt:       s.clock.Now(),
	}
	if s.cardBackgrounds > 0 {
		p.CardBackgroundIndex = lo.ToPtr(s.intn(s.cardBackgrounds))
	}
	hold.Commit()
	if save {
		if err := prayers.AddPrayer(p); err != nil {
			return models.Prayer{}, err
		}
	}
	lg.Infow("prayer generated", "prayer_id", p.ID, "type", p.Type, "saved", save, "scriptures", len(p.Scriptures))
	return p, nil
}

// DownloadCard stores the rendered card image on a saved prayer. A prayer
// whose card was already downloaded can be downloaded again without using
// the allowance.
func (s *Service) DownloadCard(ctx context.Context, quota Quota, prayers Prayers, prayerID, imageBase64 string) (models.Prayer, error) {
	p, ok := prayers.Prayer(prayerID)
	if !ok {
		return models.Prayer{}, ErrPrayerNotFound
	}
	if p.HasDownloadedCard {
		return p, nil
	}
	if imageBase64 == "" {
		return models.Prayer{}, fmt.Errorf("%w: card image is empty", ErrInvalidRequest)
	}
	if _, err := base64.StdEncoding.DecodeString(imageBase64); err != nil {
		return models.Prayer{}, fmt.Errorf("%w: card image is not base64", ErrInvalidRequest)
	}
	hold, err := quota.Reserve(types.FeatureCardDownload)
	if err != nil {
		return models.Prayer{}, err
	}
	defer hold.Release()
	p, ok = prayers.MarkPrayerCardDownloaded(prayerID, imageBase64)
	if !ok {
		return models.Prayer{}, ErrPrayerNotFound
	}
	hold.Commit()
	logctx.FromCtx(ctx, s.l).Infow("prayer card downloaded", "prayer_id", prayerID)
	return p, nil
}

// Listen gates and records audio playback of a saved prayer. Speech
// synthesis itself happens on the client.
func (s *Service) Listen(ctx context.Context, quota Quota, prayers Prayers, prayerID string) (models.Prayer, error) {
	p, ok := prayers.Prayer(prayerID)
	if !ok {
		return models.Prayer{}, ErrPrayerNotFound
	}
	hold, err := quota.Reserve(types.FeatureAudioListen)
	if err != nil {
		return models.Prayer{}, err
	}
	hold.Commit()
	logctx.FromCtx(ctx, s.l).Infow("prayer listened", "prayer_id", prayerID)
	return p, nil
}

type ShareCard struct {
	Text string `json:"text"`
	URL  string `json:"url,omitempty"`
	// QRCodePNG is a base64 PNG of URL, present only when URL is.
	QRCodePNG string `json:"qr_code_png,omitempty"`
}

// Share builds the share payload for a saved prayer. Sharing is never gated.
func (s *Service) Share(ctx context.Context, quota Quota, prayers Prayers, prayerID string) (*ShareCard, error) {
	p, ok := prayers.Prayer(prayerID)
	if !ok {
		return nil, ErrPrayerNotFound
	}
	card := &ShareCard{Text: ShareText(p)}
	if s.shareBaseURL != "" {
		card.URL = s.shareBaseURL + "/" + p.ID
		png, err := qrcode.Encode(card.URL, qrcode.Medium, qrSize)
		if err != nil {
			return nil, fmt.Errorf("encode share qr code: %w", err)
		}
		card.QRCodePNG = base64.StdEncoding.EncodeToString(png)
	}
	if err := quota.RecordUse(types.FeaturePrayerSharing); err != nil {
		return nil, err
	}
	logctx.FromCtx(ctx, s.l).Infow("prayer shared", "prayer_id", prayerID)
	return card, nil
}

// ShareText is the prayer followed by its scripture references and verses.
func ShareText(p models.Prayer) string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(p.GeneratedPrayer))
	for _, sc := range p.Scriptures {
		fmt.Fprintf(&b, "\n\n%s\n%s", sc.Verse, sc.Reference)
	}
	return b.String()
}
