package oracleservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/alphapoints/platform/internal/domain"
	"github.com/alphapoints/platform/internal/pg"
	oraclerepo "github.com/alphapoints/platform/internal/repo/oracle-repo"
	"github.com/alphapoints/platform/internal/service/capservice"
	"github.com/alphapoints/platform/pkg/fixedpoint"
)

type Repo interface {
	CreateOracle(ctx context.Context, oracle *domain.Oracle) error
	FindOracle(ctx context.Context) (*domain.Oracle, error)
	UpdateRate(ctx context.Context, rate string, lastUpdateTime uint64) error
	UpdateThreshold(ctx context.Context, threshold uint64) error
}

type EventRepo interface {
	Insert(ctx context.Context, event *domain.LedgerEvent) error
}

var (
	ErrInvalidRate     = errors.New("rate must be greater than zero")
	ErrInvalidDecimals = errors.New("decimals exceed supported precision")
	ErrOracleStale     = errors.New("oracle rate is stale")
	ErrOracleExists    = errors.New("oracle already created")
	ErrOracleNotFound  = errors.New("oracle not found")
)

type Service struct {
	repo      Repo
	eventRepo EventRepo
	txManager pg.TXManager
}

func New(repo Repo, eventRepo EventRepo, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		eventRepo: eventRepo,
		txManager: txManager,
	}
}

// Stale is the staleness predicate. A last update of zero means the oracle
// was never updated and reads as fresh. The strict comparison before the
// subtraction keeps the unsigned math from underflowing when time has not
// advanced.
func Stale(lastUpdateTime, stalenessThreshold, currentTime uint64) bool {
	if lastUpdateTime == 0 {
		return false
	}
	return currentTime > lastUpdateTime && currentTime-lastUpdateTime > stalenessThreshold
}

// CreateOracle installs the singleton rate feed.
func (s *Service) CreateOracle(ctx context.Context, cap capservice.OracleCap, rate string, decimals uint8, stalenessThreshold uint64) (*domain.Oracle, error) {
	if !cap.Valid() {
		return nil, capservice.ErrUnauthorized
	}
	if _, err := fixedpoint.ParseRate(rate); err != nil {
		return nil, ErrInvalidRate
	}
	if decimals > fixedpoint.MaxDecimals {
		return nil, ErrInvalidDecimals
	}

	oracle := &domain.Oracle{
		ID:                 1,
		Rate:               rate,
		Decimals:           decimals,
		LastUpdateTime:     0,
		StalenessThreshold: stalenessThreshold,
	}
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.repo.CreateOracle(ctx, oracle); err != nil {
			return err
		}
		return s.eventRepo.Insert(ctx, &domain.LedgerEvent{
			Operation: domain.EventOracleCreated,
			EntityID:  "oracle",
			Actor:     cap.Holder(),
			Reference: rate,
		})
	})
	if err != nil {
		if errors.Is(err, oraclerepo.ErrDuplicateOracle) {
			return nil, ErrOracleExists
		}
		zap.L().Error("failed to create oracle", zap.Error(err))
		return nil, err
	}

	zap.L().Info("oracle created", zap.String("rate", rate), zap.Uint8("decimals", decimals))
	return oracle, nil
}

// UpdateRate sets a new positive rate and stamps the supplied time. The core
// never reads the wall clock; the caller owns the time source.
func (s *Service) UpdateRate(ctx context.Context, cap capservice.OracleCap, newRate string, currentTime uint64) error {
	if !cap.Valid() {
		return capservice.ErrUnauthorized
	}
	if _, err := fixedpoint.ParseRate(newRate); err != nil {
		return ErrInvalidRate
	}

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		oracle, err := s.repo.FindOracle(ctx)
		if err != nil {
			return err
		}
		if oracle == nil {
			return ErrOracleNotFound
		}
		if err := s.repo.UpdateRate(ctx, newRate, currentTime); err != nil {
			return err
		}
		return s.eventRepo.Insert(ctx, &domain.LedgerEvent{
			Operation: domain.EventRateUpdate,
			EntityID:  "oracle",
			Actor:     cap.Holder(),
			Reference: newRate,
		})
	})
	if err != nil {
		if !errors.Is(err, ErrOracleNotFound) {
			zap.L().Error("failed to update rate", zap.Error(err))
		}
		return err
	}
	return nil
}

func (s *Service) UpdateStalenessThreshold(ctx context.Context, cap capservice.OracleCap, threshold uint64) error {
	if !cap.Valid() {
		return capservice.ErrUnauthorized
	}
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.getOracle(ctx); err != nil {
			return err
		}
		if err := s.repo.UpdateThreshold(ctx, threshold); err != nil {
			return err
		}
		return s.eventRepo.Insert(ctx, &domain.LedgerEvent{
			Operation: domain.EventThresholdUpdate,
			EntityID:  "oracle",
			Amount:    threshold,
			Actor:     cap.Holder(),
		})
	})
	if err != nil {
		if !errors.Is(err, ErrOracleNotFound) {
			zap.L().Error("failed to update staleness threshold", zap.Error(err))
		}
		return err
	}
	return nil
}

func (s *Service) GetOracle(ctx context.Context) (*domain.Oracle, error) {
	return s.getOracle(ctx)
}

func (s *Service) IsStale(ctx context.Context, currentTime uint64) (bool, error) {
	oracle, err := s.getOracle(ctx)
	if err != nil {
		return false, err
	}
	return Stale(oracle.LastUpdateTime, oracle.StalenessThreshold, currentTime), nil
}

func (s *Service) AssertNotStale(ctx context.Context, currentTime uint64) error {
	stale, err := s.IsStale(ctx, currentTime)
	if err != nil {
		return err
	}
	if stale {
		return ErrOracleStale
	}
	return nil
}

// ConvertPointsToAsset values a point amount in backing-asset units at the
// current rate, refusing a stale feed.
func (s *Service) ConvertPointsToAsset(ctx context.Context, points uint64, currentTime uint64) (uint64, error) {
	oracle, err := s.freshOracle(ctx, currentTime)
	if err != nil {
		return 0, err
	}
	rate, err := fixedpoint.ParseRate(oracle.Rate)
	if err != nil {
		return 0, ErrInvalidRate
	}
	asset, err := fixedpoint.PointsToAsset(points, rate, oracle.Decimals)
	if err != nil {
		return 0, translateConversionErr(err)
	}
	return asset, nil
}

// ConvertAssetToPoints is the inverse conversion, same staleness policy.
func (s *Service) ConvertAssetToPoints(ctx context.Context, asset uint64, currentTime uint64) (uint64, error) {
	oracle, err := s.freshOracle(ctx, currentTime)
	if err != nil {
		return 0, err
	}
	rate, err := fixedpoint.ParseRate(oracle.Rate)
	if err != nil {
		return 0, ErrInvalidRate
	}
	points, err := fixedpoint.AssetToPoints(asset, rate, oracle.Decimals)
	if err != nil {
		return 0, translateConversionErr(err)
	}
	return points, nil
}

func (s *Service) freshOracle(ctx context.Context, currentTime uint64) (*domain.Oracle, error) {
	oracle, err := s.getOracle(ctx)
	if err != nil {
		return nil, err
	}
	if Stale(oracle.LastUpdateTime, oracle.StalenessThreshold, currentTime) {
		return nil, ErrOracleStale
	}
	return oracle, nil
}

func (s *Service) getOracle(ctx context.Context) (*domain.Oracle, error) {
	oracle, err := s.repo.FindOracle(ctx)
	if err != nil {
		zap.L().Error("failed to get oracle", zap.Error(err))
		return nil, err
	}
	if oracle == nil {
		return nil, ErrOracleNotFound
	}
	return oracle, nil
}

func translateConversionErr(err error) error {
	switch {
	case errors.Is(err, fixedpoint.ErrInvalidRate):
		return ErrInvalidRate
	case errors.Is(err, fixedpoint.ErrInvalidDecimals):
		return ErrInvalidDecimals
	default:
		return err
	}
}
