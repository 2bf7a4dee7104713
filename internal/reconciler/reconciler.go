// Package reconciler settles matured pending withdrawals against the custody
// gateway: once custody confirms a release whose amount matches the stored
// ticket, the escrow bookkeeping is updated and the ticket retired.
package reconciler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/alphapoints/platform/internal/config"
	"github.com/alphapoints/platform/internal/domain"
	"github.com/alphapoints/platform/internal/pg"
	"github.com/alphapoints/platform/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

const (
	statusReleased = "RELEASED"
	statusPending  = "PENDING"
	statusRejected = "REJECTED"
)

var processingTickets sync.Map

// Response is the custody gateway's release report for one stake.
type Response struct {
	StakeID string `json:"stake_id"`
	Status  string `json:"status"`
	Amount  uint64 `json:"amount,omitempty"`
}

type TicketRepo interface {
	FindMatured(ctx context.Context, now time.Time, limit uint32) ([]domain.WithdrawalTicket, error)
	Delete(ctx context.Context, stakeID string) error
}

type VaultRepo interface {
	FindVaultForUpdate(ctx context.Context, assetType string) (*domain.Vault, error)
	SaveVault(ctx context.Context, vault *domain.Vault) error
}

type LedgerRepo interface {
	FindBalanceForUpdate(ctx context.Context, accountID string) (*domain.Balance, error)
	SaveBalance(ctx context.Context, balance *domain.Balance) error
	SupplyForUpdate(ctx context.Context) (uint64, error)
	SaveSupply(ctx context.Context, total uint64) error
}

type EventRepo interface {
	Insert(ctx context.Context, event *domain.LedgerEvent) error
}

type Service struct {
	url            string
	ticketRepo     TicketRepo
	vaultRepo      VaultRepo
	ledgerRepo     LedgerRepo
	eventRepo      EventRepo
	txManager      pg.TXManager
	client         clients.HTTPClientI
	limit          uint32
	workerPool     SettlementPoolI
	updateInterval time.Duration
}

func New(cfg *config.Config, ticketRepo TicketRepo, vaultRepo VaultRepo, ledgerRepo LedgerRepo, eventRepo EventRepo, txManager pg.TXManager, client clients.HTTPClientI) *Service {
	return &Service{
		url:            cfg.CustodyAddress,
		ticketRepo:     ticketRepo,
		vaultRepo:      vaultRepo,
		ledgerRepo:     ledgerRepo,
		eventRepo:      eventRepo,
		txManager:      txManager,
		client:         client,
		limit:          1000,
		workerPool:     NewSettlementPool(10),
		updateInterval: time.Second * 5,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Reconciler started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping reconciler")
			return
		case <-ticker.C:
			s.processTickets(ctx)
		}
	}
}

func (s *Service) processTickets(ctx context.Context) {
	tickets, err := s.ticketRepo.FindMatured(ctx, time.Now(), atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch matured withdrawals", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, ticket := range tickets {
		ticket := ticket

		if _, loaded := processingTickets.LoadOrStore(ticket.StakeID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.Submit(ctx, func() error {
				defer processingTickets.Delete(ticket.StakeID)
				return s.handleTicket(ctx, ticket)
			})
			if err != nil {
				processingTickets.Delete(ticket.StakeID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error reconciling withdrawals", zap.Error(err))
	}
}

func (s *Service) handleTicket(ctx context.Context, ticket domain.WithdrawalTicket) error {
	url := s.url + "/api/custody/releases/" + ticket.StakeID
	var err error
	var statusCode int
	var respBody []byte
	var respHeaders http.Header

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			statusCode, respBody, respHeaders, err = s.client.Get(url, nil)
			if err != nil {
				if attempt < maxRetries {
					retryAfter := retryInterval * time.Duration(attempt)
					time.Sleep(retryAfter)
					continue
				}
				return fmt.Errorf("failed to query custody for stake %s after %d retries: %w", ticket.StakeID, maxRetries, err)
			}

			switch statusCode {
			case http.StatusTooManyRequests:
				return s.handleRateLimit(ticket, respHeaders, attempt)
			case http.StatusNoContent:
				zap.L().Warn("Release not yet known to custody, retrying", zap.String("stakeID", ticket.StakeID), zap.Int("attempt", attempt))
				if attempt < maxRetries {
					retryAfter := retryInterval * time.Duration(attempt)
					time.Sleep(retryAfter)
					continue
				}
				return fmt.Errorf("release for stake %s unknown after %d retries", ticket.StakeID, maxRetries)

			case http.StatusOK:
				return s.processRelease(ctx, ticket, respBody)

			default:
				zap.L().Error("Unexpected status code", zap.Int("status", statusCode), zap.String("stakeID", ticket.StakeID))
				return errors.New("unexpected status code")
			}
		}
	}
	return nil
}

func (s *Service) processRelease(ctx context.Context, ticket domain.WithdrawalTicket, respBody []byte) error {
	var response Response
	if err := json.Unmarshal(respBody, &response); err != nil {
		return fmt.Errorf("failed to parse response body: %w", err)
	}

	if response.StakeID != ticket.StakeID {
		return fmt.Errorf("stake id mismatch: expected %s, got %s", ticket.StakeID, response.StakeID)
	}

	switch response.Status {
	case statusReleased:
		if response.Amount != ticket.ExpectedAmount {
			zap.L().Error("Released amount does not match ticket, leaving for operator",
				zap.String("stakeID", ticket.StakeID),
				zap.Uint64("expected", ticket.ExpectedAmount),
				zap.Uint64("released", response.Amount),
			)
			return nil
		}
		return s.settle(ctx, ticket)
	case statusPending:
		zap.L().Info("Release still in cooldown at custody", zap.String("stakeID", ticket.StakeID))
	case statusRejected:
		zap.L().Warn("Release rejected by custody, leaving ticket for operator", zap.String("stakeID", ticket.StakeID))
	default:
		zap.L().Warn("Unrecognized custody status", zap.String("stakeID", ticket.StakeID), zap.String("status", response.Status))
	}
	return nil
}

// settle decrements the vault by the released amount, burns the matching
// locked points (the account's locked balance and the global supply shrink
// together), and retires the ticket in one transaction.
func (s *Service) settle(ctx context.Context, ticket domain.WithdrawalTicket) error {
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		vault, err := s.vaultRepo.FindVaultForUpdate(ctx, ticket.AssetType)
		if err != nil {
			return err
		}
		if vault == nil {
			return fmt.Errorf("no vault for asset type %s", ticket.AssetType)
		}
		if vault.Balance < ticket.ExpectedAmount {
			return fmt.Errorf("vault %s cannot cover release of %d", ticket.AssetType, ticket.ExpectedAmount)
		}

		balance, err := s.ledgerRepo.FindBalanceForUpdate(ctx, ticket.AccountID)
		if err != nil {
			return err
		}
		if balance == nil || balance.Locked < ticket.ExpectedAmount {
			return fmt.Errorf("account %s has no %d locked points to release", ticket.AccountID, ticket.ExpectedAmount)
		}
		supply, err := s.ledgerRepo.SupplyForUpdate(ctx)
		if err != nil {
			return err
		}
		if supply < ticket.ExpectedAmount {
			return fmt.Errorf("supply cannot cover release of %d", ticket.ExpectedAmount)
		}

		vault.Balance -= ticket.ExpectedAmount
		if err := s.vaultRepo.SaveVault(ctx, vault); err != nil {
			return err
		}
		balance.Locked -= ticket.ExpectedAmount
		if err := s.ledgerRepo.SaveBalance(ctx, balance); err != nil {
			return err
		}
		if err := s.ledgerRepo.SaveSupply(ctx, supply-ticket.ExpectedAmount); err != nil {
			return err
		}
		if err := s.ticketRepo.Delete(ctx, ticket.StakeID); err != nil {
			return err
		}
		return s.eventRepo.Insert(ctx, &domain.LedgerEvent{
			Operation:      domain.EventTicketSettled,
			EntityID:       ticket.StakeID,
			Amount:         ticket.ExpectedAmount,
			AvailableAfter: balance.Available,
			LockedAfter:    balance.Locked,
			Actor:          "reconciler",
			Reference:      ticket.AccountID,
		})
	})
	if err != nil {
		return fmt.Errorf("failed to settle stake %s: %w", ticket.StakeID, err)
	}

	zap.L().Info("Pending withdrawal settled", zap.String("stakeID", ticket.StakeID), zap.Uint64("amount", ticket.ExpectedAmount))
	return nil
}

func (s *Service) handleRateLimit(ticket domain.WithdrawalTicket, respHeaders http.Header, attempt int) error {
	retryAfterHeader := respHeaders.Get("Retry-After")
	retryAfter := retryInterval * time.Duration(attempt)

	if retryAfterHeader != "" {
		if seconds, err := strconv.Atoi(retryAfterHeader); err == nil {
			retryAfter = time.Duration(seconds) * time.Second
		}
	}
	zap.L().Warn(
		"Rate limit detected, retrying",
		zap.String("stakeID", ticket.StakeID),
		zap.Int("attempt", attempt),
		zap.Duration("retryAfter", retryAfter),
	)
	time.Sleep(retryAfter)
	return nil
}
