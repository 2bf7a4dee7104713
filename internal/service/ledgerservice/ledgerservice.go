package ledgerservice

import (
	"context"
	"errors"
	"math"

	"go.uber.org/zap"

	"github.com/alphapoints/platform/internal/domain"
	"github.com/alphapoints/platform/internal/pg"
	"github.com/alphapoints/platform/internal/service/capservice"
)

type Repo interface {
	FindBalance(ctx context.Context, accountID string) (*domain.Balance, error)
	FindBalanceForUpdate(ctx context.Context, accountID string) (*domain.Balance, error)
	CreateBalance(ctx context.Context, accountID string) (*domain.Balance, error)
	SaveBalance(ctx context.Context, balance *domain.Balance) error
	Supply(ctx context.Context) (uint64, error)
	SupplyForUpdate(ctx context.Context) (uint64, error)
	SaveSupply(ctx context.Context, total uint64) error
}

type EventRepo interface {
	Insert(ctx context.Context, event *domain.LedgerEvent) error
}

// Balances and the supply persist as BIGINT, so anything past MaxInt64
// cannot be stored.
const maxStoredAmount = uint64(math.MaxInt64)

var (
	ErrInsufficientBalance       = errors.New("insufficient balance")
	ErrInsufficientLockedBalance = errors.New("insufficient locked balance")
	ErrSupplyOverflow            = errors.New("amount overflows balance or supply")
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

// Earn credits amount to the account's available balance and the global
// supply in one transaction. The balance row is created on first earn.
// A zero amount is a harmless no-op.
func (s *Service) Earn(ctx context.Context, cap capservice.PartnerCap, accountID string, amount uint64) (*domain.Balance, error) {
	if !cap.Valid() {
		return nil, capservice.ErrUnauthorized
	}
	if amount == 0 {
		return s.currentOrZero(ctx, accountID)
	}

	var out *domain.Balance
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		balance, err := s.repo.FindBalanceForUpdate(ctx, accountID)
		if err != nil {
			return err
		}
		if balance == nil {
			balance, err = s.repo.CreateBalance(ctx, accountID)
			if err != nil {
				return err
			}
		}
		if amount > maxStoredAmount-balance.Available {
			return ErrSupplyOverflow
		}

		supply, err := s.repo.SupplyForUpdate(ctx)
		if err != nil {
			return err
		}
		if amount > maxStoredAmount-supply {
			return ErrSupplyOverflow
		}

		balance.Available += amount
		if err := s.repo.SaveBalance(ctx, balance); err != nil {
			return err
		}
		if err := s.repo.SaveSupply(ctx, supply+amount); err != nil {
			return err
		}
		out = balance
		return s.emit(ctx, domain.EventEarn, cap, balance, amount, "")
	})
	if err != nil {
		zap.L().Error("earn failed", zap.String("account_id", accountID), zap.Error(err))
		return nil, err
	}
	return out, nil
}

// Spend debits amount from available and decreases supply. The orderRef ties
// the spend to a redemption order and lands in the event stream.
func (s *Service) Spend(ctx context.Context, cap capservice.PartnerCap, accountID string, amount uint64, orderRef string) (*domain.Balance, error) {
	if !cap.Valid() {
		return nil, capservice.ErrUnauthorized
	}
	if amount == 0 {
		return s.currentOrZero(ctx, accountID)
	}

	var out *domain.Balance
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		balance, err := s.repo.FindBalanceForUpdate(ctx, accountID)
		if err != nil {
			return err
		}
		if balance == nil || balance.Available < amount {
			return ErrInsufficientBalance
		}

		supply, err := s.repo.SupplyForUpdate(ctx)
		if err != nil {
			return err
		}

		balance.Available -= amount
		if err := s.repo.SaveBalance(ctx, balance); err != nil {
			return err
		}
		if err := s.repo.SaveSupply(ctx, supply-amount); err != nil {
			return err
		}
		out = balance
		return s.emit(ctx, domain.EventSpend, cap, balance, amount, orderRef)
	})
	if err != nil {
		if !errors.Is(err, ErrInsufficientBalance) {
			zap.L().Error("spend failed", zap.String("account_id", accountID), zap.Error(err))
		}
		return nil, err
	}
	return out, nil
}

// Lock moves amount from available to locked; supply is unchanged.
func (s *Service) Lock(ctx context.Context, cap capservice.PartnerCap, accountID string, amount uint64) (*domain.Balance, error) {
	if !cap.Valid() {
		return nil, capservice.ErrUnauthorized
	}
	if amount == 0 {
		return s.currentOrZero(ctx, accountID)
	}

	var out *domain.Balance
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		balance, err := s.repo.FindBalanceForUpdate(ctx, accountID)
		if err != nil {
			return err
		}
		if balance == nil || balance.Available < amount {
			return ErrInsufficientBalance
		}

		balance.Available -= amount
		balance.Locked += amount
		if err := s.repo.SaveBalance(ctx, balance); err != nil {
			return err
		}
		out = balance
		return s.emit(ctx, domain.EventLock, cap, balance, amount, "")
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Unlock moves amount from locked back to available; supply is unchanged.
func (s *Service) Unlock(ctx context.Context, cap capservice.PartnerCap, accountID string, amount uint64) (*domain.Balance, error) {
	if !cap.Valid() {
		return nil, capservice.ErrUnauthorized
	}
	if amount == 0 {
		return s.currentOrZero(ctx, accountID)
	}

	var out *domain.Balance
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		balance, err := s.repo.FindBalanceForUpdate(ctx, accountID)
		if err != nil {
			return err
		}
		if balance == nil || balance.Locked < amount {
			return ErrInsufficientLockedBalance
		}

		balance.Locked -= amount
		balance.Available += amount
		if err := s.repo.SaveBalance(ctx, balance); err != nil {
			return err
		}
		out = balance
		return s.emit(ctx, domain.EventUnlock, cap, balance, amount, "")
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// BalanceOf returns the account balance; accounts that never earned read as
// all zeroes.
func (s *Service) BalanceOf(ctx context.Context, accountID string) (*domain.Balance, error) {
	return s.currentOrZero(ctx, accountID)
}

func (s *Service) AvailableOf(ctx context.Context, accountID string) (uint64, error) {
	balance, err := s.currentOrZero(ctx, accountID)
	if err != nil {
		return 0, err
	}
	return balance.Available, nil
}

func (s *Service) LockedOf(ctx context.Context, accountID string) (uint64, error) {
	balance, err := s.currentOrZero(ctx, accountID)
	if err != nil {
		return 0, err
	}
	return balance.Locked, nil
}

func (s *Service) TotalOf(ctx context.Context, accountID string) (uint64, error) {
	balance, err := s.currentOrZero(ctx, accountID)
	if err != nil {
		return 0, err
	}
	return balance.Total(), nil
}

func (s *Service) Supply(ctx context.Context) (uint64, error) {
	supply, err := s.repo.Supply(ctx)
	if err != nil {
		zap.L().Error("failed to read supply", zap.Error(err))
		return 0, err
	}
	return supply, nil
}

func (s *Service) currentOrZero(ctx context.Context, accountID string) (*domain.Balance, error) {
	balance, err := s.repo.FindBalance(ctx, accountID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.String("account_id", accountID), zap.Error(err))
		return nil, err
	}
	if balance == nil {
		return &domain.Balance{AccountID: accountID}, nil
	}
	return balance, nil
}

func (s *Service) emit(ctx context.Context, operation string, cap capservice.PartnerCap, balance *domain.Balance, amount uint64, reference string) error {
	return s.eventRepo.Insert(ctx, &domain.LedgerEvent{
		Operation:      operation,
		EntityID:       balance.AccountID,
		Amount:         amount,
		AvailableAfter: balance.Available,
		LockedAfter:    balance.Locked,
		Actor:          cap.Holder(),
		Reference:      reference,
	})
}
