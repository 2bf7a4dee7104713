package withdrawalservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/alphapoints/platform/internal/domain"
	"github.com/alphapoints/platform/internal/pg"
	withdrawalrepo "github.com/alphapoints/platform/internal/repo/withdrawal-repo"
	"github.com/alphapoints/platform/internal/service/capservice"
)

type Repo interface {
	Insert(ctx context.Context, ticket *domain.WithdrawalTicket) (*domain.WithdrawalTicket, error)
	FindByStakeID(ctx context.Context, stakeID string) (*domain.WithdrawalTicket, error)
}

type EventRepo interface {
	Insert(ctx context.Context, event *domain.LedgerEvent) error
}

var (
	ErrDuplicateTicket = errors.New("pending withdrawal already recorded for stake")
	ErrTicketNotFound  = errors.New("pending withdrawal not found")
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

// StorePendingWithdrawalInfo records the expected amount for an in-flight
// unstake. At most one ticket may exist per stake id.
func (s *Service) StorePendingWithdrawalInfo(ctx context.Context, cap capservice.PartnerCap, ticket *domain.WithdrawalTicket) (*domain.WithdrawalTicket, error) {
	if !cap.Valid() {
		return nil, capservice.ErrUnauthorized
	}
	if ticket.MaturesAt.IsZero() {
		ticket.MaturesAt = time.Now()
	}

	var out *domain.WithdrawalTicket
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		stored, err := s.repo.Insert(ctx, ticket)
		if err != nil {
			return err
		}
		out = stored
		return s.eventRepo.Insert(ctx, &domain.LedgerEvent{
			Operation: domain.EventTicketStored,
			EntityID:  ticket.StakeID,
			Amount:    ticket.ExpectedAmount,
			Actor:     cap.Holder(),
			Reference: ticket.AccountID,
		})
	})
	if err != nil {
		if errors.Is(err, withdrawalrepo.ErrDuplicateStakeID) {
			return nil, ErrDuplicateTicket
		}
		zap.L().Error("failed to store pending withdrawal", zap.String("stake_id", ticket.StakeID), zap.Error(err))
		return nil, err
	}
	return out, nil
}

// HasPendingWithdrawalInfo is a pure lookup; it never fails on a miss.
func (s *Service) HasPendingWithdrawalInfo(ctx context.Context, stakeID string) (bool, error) {
	ticket, err := s.repo.FindByStakeID(ctx, stakeID)
	if err != nil {
		zap.L().Error("failed to look up pending withdrawal", zap.String("stake_id", stakeID), zap.Error(err))
		return false, err
	}
	return ticket != nil, nil
}

// GetPendingWithdrawalExpectedAmount fails distinctly on a miss so callers
// can tell "absent" from "zero".
func (s *Service) GetPendingWithdrawalExpectedAmount(ctx context.Context, stakeID string) (uint64, error) {
	ticket, err := s.repo.FindByStakeID(ctx, stakeID)
	if err != nil {
		zap.L().Error("failed to get pending withdrawal", zap.String("stake_id", stakeID), zap.Error(err))
		return 0, err
	}
	if ticket == nil {
		return 0, ErrTicketNotFound
	}
	return ticket.ExpectedAmount, nil
}
