package escrowservice

import (
	"context"
	"errors"
	"math"

	"go.uber.org/zap"

	"github.com/alphapoints/platform/internal/domain"
	"github.com/alphapoints/platform/internal/pg"
	escrowrepo "github.com/alphapoints/platform/internal/repo/escrow-repo"
	"github.com/alphapoints/platform/internal/service/capservice"
)

type Repo interface {
	CreateVault(ctx context.Context, assetType string) (*domain.Vault, error)
	FindVault(ctx context.Context, assetType string) (*domain.Vault, error)
	FindVaultForUpdate(ctx context.Context, assetType string) (*domain.Vault, error)
	SaveVault(ctx context.Context, vault *domain.Vault) error
}

type EventRepo interface {
	Insert(ctx context.Context, event *domain.LedgerEvent) error
}

// Vault balances persist as BIGINT, so anything past MaxInt64 cannot be stored.
const maxStoredBalance = uint64(math.MaxInt64)

var (
	ErrInsufficientFunds = errors.New("insufficient vault funds")
	ErrVaultExists       = errors.New("vault already exists for asset type")
	ErrVaultNotFound     = errors.New("vault not found")
	ErrVaultOverflow     = errors.New("deposit overflows vault balance")
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

// CreateVault instantiates the single vault for an asset type. The unique
// constraint on asset_type closes the accidental-second-vault gap.
func (s *Service) CreateVault(ctx context.Context, cap capservice.GovernCap, assetType string) (*domain.Vault, error) {
	if !cap.Valid() {
		return nil, capservice.ErrUnauthorized
	}

	var out *domain.Vault
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		vault, err := s.repo.CreateVault(ctx, assetType)
		if err != nil {
			return err
		}
		out = vault
		return s.eventRepo.Insert(ctx, &domain.LedgerEvent{
			Operation: domain.EventVaultCreated,
			EntityID:  assetType,
			Actor:     cap.Holder(),
		})
	})
	if err != nil {
		if errors.Is(err, escrowrepo.ErrDuplicateAssetType) {
			return nil, ErrVaultExists
		}
		zap.L().Error("failed to create vault", zap.String("asset_type", assetType), zap.Error(err))
		return nil, err
	}

	zap.L().Info("vault created", zap.String("asset_type", assetType))
	return out, nil
}

// Deposit adds custodied value to the vault. Overflow is the only failure
// mode and it aborts before any write.
func (s *Service) Deposit(ctx context.Context, cap capservice.GovernCap, assetType string, value uint64) (*domain.Vault, error) {
	if !cap.Valid() {
		return nil, capservice.ErrUnauthorized
	}

	var out *domain.Vault
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		vault, err := s.repo.FindVaultForUpdate(ctx, assetType)
		if err != nil {
			return err
		}
		if vault == nil {
			return ErrVaultNotFound
		}
		if value > maxStoredBalance-vault.Balance {
			return ErrVaultOverflow
		}

		vault.Balance += value
		if err := s.repo.SaveVault(ctx, vault); err != nil {
			return err
		}
		out = vault
		return s.eventRepo.Insert(ctx, &domain.LedgerEvent{
			Operation: domain.EventDeposit,
			EntityID:  assetType,
			Amount:    value,
			Actor:     cap.Holder(),
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Withdraw releases custodied value to a recipient, all-or-nothing: the
// balance either decreases by exactly amount or not at all.
func (s *Service) Withdraw(ctx context.Context, cap capservice.GovernCap, assetType string, amount uint64, recipient string) (*domain.Vault, error) {
	if !cap.Valid() {
		return nil, capservice.ErrUnauthorized
	}

	var out *domain.Vault
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		vault, err := s.repo.FindVaultForUpdate(ctx, assetType)
		if err != nil {
			return err
		}
		if vault == nil {
			return ErrVaultNotFound
		}
		if vault.Balance < amount {
			return ErrInsufficientFunds
		}

		vault.Balance -= amount
		if err := s.repo.SaveVault(ctx, vault); err != nil {
			return err
		}
		out = vault
		return s.eventRepo.Insert(ctx, &domain.LedgerEvent{
			Operation: domain.EventWithdraw,
			EntityID:  assetType,
			Amount:    amount,
			Actor:     cap.Holder(),
			Reference: recipient,
		})
	})
	if err != nil {
		if !errors.Is(err, ErrInsufficientFunds) {
			zap.L().Error("withdraw failed", zap.String("asset_type", assetType), zap.Error(err))
		}
		return nil, err
	}
	return out, nil
}

// TotalValue reports the custodied balance for an asset type.
func (s *Service) TotalValue(ctx context.Context, assetType string) (uint64, error) {
	vault, err := s.repo.FindVault(ctx, assetType)
	if err != nil {
		zap.L().Error("failed to get vault", zap.String("asset_type", assetType), zap.Error(err))
		return 0, err
	}
	if vault == nil {
		return 0, ErrVaultNotFound
	}
	return vault.Balance, nil
}
