// Package purchase turns a verified App Store transaction into a paid term
// on an installation's entitlement tracker.
package purchase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/awa/go-iap/appstore/api"
	"go.uber.org/zap"

	"github.com/fatflowers/prayerbook/internal/app/service/entitlement"
	"github.com/fatflowers/prayerbook/internal/models"
	"github.com/fatflowers/prayerbook/internal/platform/apple/apple_iap"
	"github.com/fatflowers/prayerbook/pkg/clock"
	"github.com/fatflowers/prayerbook/pkg/config"
	"github.com/fatflowers/prayerbook/pkg/logctx"
	"github.com/fatflowers/prayerbook/pkg/types"
)

// TransactionSource fetches and decodes signed transactions. *api.StoreClient
// satisfies it.
type TransactionSource interface {
	GetTransactionInfo(ctx context.Context, transactionID string) (*api.TransactionInfoResponse, error)
	ParseSignedTransaction(transaction string) (*api.JWSTransaction, error)
}

type Upgrader interface {
	UpgradeFrom(source string, tier types.SubscriptionTier) (models.Subscription, error)
}

type Service struct {
	source TransactionSource
	cfg    *config.Config
	clock  clock.Clock
	l      *zap.SugaredLogger
}

// NewService returns a service that rejects every verification when source
// is nil.
func NewService(source TransactionSource, cfg *config.Config, c clock.Clock, l *zap.SugaredLogger) *Service {
	return &Service{source: source, cfg: cfg, clock: c, l: l}
}

func (s *Service) Enabled() bool { return s.source != nil }

// VerifyApple looks the transaction up with the App Store and, when it is a
// live purchase made by installationID for a known product, upgrades the
// tracker to that product's tier.
func (s *Service) VerifyApple(ctx context.Context, up Upgrader, installationID, transactionID string) (models.Subscription, error) {
	if s.source == nil {
		return models.Subscription{}, ErrNotEnabled
	}
	transactionID = strings.TrimSpace(transactionID)
	if transactionID == "" {
		return models.Subscription{}, fmt.Errorf("%w: transaction id is empty", ErrInvalidTransaction)
	}

	lg := logctx.FromCtx(ctx, s.l).With("transaction_id", transactionID)
	info, err := s.source.GetTransactionInfo(ctx, transactionID)
	if err != nil {
		lg.Errorw("get transaction info failed", "err", err)
		return models.Subscription{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	tx, err := s.source.ParseSignedTransaction(info.SignedTransactionInfo)
	if err != nil {
		return models.Subscription{}, fmt.Errorf("%w: %w", ErrInvalidTransaction, err)
	}

	plan, err := s.check(tx, installationID)
	if err != nil {
		lg.Warnw("transaction rejected", "product_id", tx.ProductID, "err", err)
		return models.Subscription{}, err
	}

	sub, err := up.UpgradeFrom(entitlement.SourceAppStore, plan.Tier)
	if err != nil {
		return models.Subscription{}, err
	}
	lg.Infow("purchase verified", "product_id", tx.ProductID, "tier", plan.Tier)
	return sub, nil
}

func (s *Service) check(tx *api.JWSTransaction, installationID string) (*types.Plan, error) {
	if s.cfg.AppleIAP.IsProd && tx.Environment != api.Production {
		return nil, ErrWrongEnvironment
	}
	if bundle := s.cfg.AppleIAP.BundleID; bundle != "" && tx.BundleID != bundle {
		return nil, fmt.Errorf("%w: bundle %q", ErrInvalidTransaction, tx.BundleID)
	}
	if tx.RevocationDate > 0 {
		return nil, ErrTransactionRevoked
	}
	if tx.ExpiresDate > 0 && !s.clock.Now().Before(time.UnixMilli(int64(tx.ExpiresDate))) {
		return nil, ErrTransactionExpired
	}
	if !apple_iap.TokenMatches(tx.AppAccountToken, installationID) {
		return nil, ErrTransactionNotOwned
	}
	plan, err := s.cfg.GetPlanByProviderItemID(types.PaymentProviderApple, tx.ProductID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnknownProduct, err)
	}
	return plan, nil
}
