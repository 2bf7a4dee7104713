package capservice

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/alphapoints/platform/internal/domain"
	"github.com/alphapoints/platform/internal/pg"
	caprepo "github.com/alphapoints/platform/internal/repo/capability-repo"
	"github.com/alphapoints/platform/pkg/auth"
)

type Repo interface {
	Create(ctx context.Context, cap *domain.Capability) error
	FindByID(ctx context.Context, id string) (*domain.Capability, error)
	UpdateHolder(ctx context.Context, id string, holder string) error
	Delete(ctx context.Context, id string) (bool, error)
}

type EventRepo interface {
	Insert(ctx context.Context, event *domain.LedgerEvent) error
}

var (
	ErrUnauthorized      = errors.New("capability missing or revoked")
	ErrGenesisAlreadyRun = errors.New("genesis capabilities already minted")
	ErrCannotRevokeRoot  = errors.New("root capabilities cannot be revoked")
)

const tokenTTL = 24 * time.Hour

// MintedCapability carries the plaintext secret back to the caller exactly
// once; only its bcrypt hash is stored.
type MintedCapability struct {
	ID     string
	Kind   domain.CapabilityKind
	Holder string
	Secret string
}

type Service struct {
	repo        Repo
	eventRepo   EventRepo
	txManager   pg.TXManager
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(repo Repo, eventRepo EventRepo, txManager pg.TXManager, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		repo:        repo,
		eventRepo:   eventRepo,
		txManager:   txManager,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

// Genesis mints the Admin and Govern trust anchors. A partial unique index on
// the root kinds makes a second run fail, so the pair exists at most once.
func (s *Service) Genesis(ctx context.Context, adminHolder, governHolder string) (*MintedCapability, *MintedCapability, error) {
	admin, err := s.newMinted(domain.CapabilityAdmin, adminHolder)
	if err != nil {
		return nil, nil, err
	}
	govern, err := s.newMinted(domain.CapabilityGovern, governHolder)
	if err != nil {
		return nil, nil, err
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.create(ctx, admin); err != nil {
			return err
		}
		if err := s.create(ctx, govern); err != nil {
			return err
		}
		if err := s.audit(ctx, domain.EventCapMinted, admin.ID, "genesis", string(admin.Kind)); err != nil {
			return err
		}
		return s.audit(ctx, domain.EventCapMinted, govern.ID, "genesis", string(govern.Kind))
	})
	if err != nil {
		if errors.Is(err, caprepo.ErrRootKindExists) {
			return nil, nil, ErrGenesisAlreadyRun
		}
		return nil, nil, err
	}

	zap.L().Info("genesis capabilities minted",
		zap.String("admin_id", admin.ID),
		zap.String("govern_id", govern.ID),
	)
	return admin, govern, nil
}

// MintPartnerCap issues a new partner capability; only a governance holder can
// call it because the GovernCap type is constructible only by this package.
func (s *Service) MintPartnerCap(ctx context.Context, cap GovernCap, holder string) (*MintedCapability, error) {
	if !cap.Valid() {
		return nil, ErrUnauthorized
	}
	return s.mint(ctx, domain.CapabilityPartner, holder, cap.Holder())
}

func (s *Service) MintOracleCap(ctx context.Context, cap GovernCap, holder string) (*MintedCapability, error) {
	if !cap.Valid() {
		return nil, ErrUnauthorized
	}
	return s.mint(ctx, domain.CapabilityOracle, holder, cap.Holder())
}

// Transfer moves a capability to a new holder; identity and validity are
// unchanged. The caller transfers the capability it resolved itself.
func (s *Service) Transfer(ctx context.Context, capID, newHolder string) error {
	existing, err := s.repo.FindByID(ctx, capID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrUnauthorized
	}
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.repo.UpdateHolder(ctx, capID, newHolder); err != nil {
			return err
		}
		return s.audit(ctx, domain.EventCapTransferred, capID, existing.Holder, newHolder)
	})
	if err != nil {
		zap.L().Error("failed to transfer capability", zap.Error(err))
		return err
	}
	return nil
}

// Revoke destroys a partner or oracle capability. There is no revoked flag:
// the row is gone, so resolution simply stops succeeding.
func (s *Service) Revoke(ctx context.Context, cap GovernCap, capID string) error {
	if !cap.Valid() {
		return ErrUnauthorized
	}
	existing, err := s.repo.FindByID(ctx, capID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrUnauthorized
	}
	if existing.Kind == domain.CapabilityAdmin || existing.Kind == domain.CapabilityGovern {
		return ErrCannotRevokeRoot
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		deleted, err := s.repo.Delete(ctx, capID)
		if err != nil {
			return err
		}
		if !deleted {
			return ErrUnauthorized
		}
		return s.audit(ctx, domain.EventCapRevoked, capID, cap.Holder(), string(existing.Kind))
	})
	if err != nil {
		if !errors.Is(err, ErrUnauthorized) {
			zap.L().Error("failed to revoke capability", zap.Error(err))
		}
		return err
	}
	return nil
}

// IssueToken exchanges a capability id and its secret for a bearer token.
func (s *Service) IssueToken(ctx context.Context, capID, secret string) (string, error) {
	existing, err := s.repo.FindByID(ctx, capID)
	if err != nil {
		return "", err
	}
	if existing == nil {
		return "", ErrUnauthorized
	}
	if !s.hashService.CompareSecret(existing.SecretHash, secret) {
		return "", ErrUnauthorized
	}
	return s.jwtService.GenerateJWT(existing.ID, string(existing.Kind), time.Now().Add(tokenTTL))
}

func (s *Service) ResolveAdmin(ctx context.Context, capID string) (AdminCap, error) {
	c, err := s.resolve(ctx, capID, domain.CapabilityAdmin)
	if err != nil {
		return AdminCap{}, err
	}
	return AdminCap{id: c.ID, holder: c.Holder}, nil
}

func (s *Service) ResolveGovern(ctx context.Context, capID string) (GovernCap, error) {
	c, err := s.resolve(ctx, capID, domain.CapabilityGovern)
	if err != nil {
		return GovernCap{}, err
	}
	return GovernCap{id: c.ID, holder: c.Holder}, nil
}

func (s *Service) ResolveOracle(ctx context.Context, capID string) (OracleCap, error) {
	c, err := s.resolve(ctx, capID, domain.CapabilityOracle)
	if err != nil {
		return OracleCap{}, err
	}
	return OracleCap{id: c.ID, holder: c.Holder}, nil
}

func (s *Service) ResolvePartner(ctx context.Context, capID string) (PartnerCap, error) {
	c, err := s.resolve(ctx, capID, domain.CapabilityPartner)
	if err != nil {
		return PartnerCap{}, err
	}
	return PartnerCap{id: c.ID, holder: c.Holder}, nil
}

func (s *Service) resolve(ctx context.Context, capID string, kind domain.CapabilityKind) (*domain.Capability, error) {
	existing, err := s.repo.FindByID(ctx, capID)
	if err != nil {
		return nil, err
	}
	if existing == nil || existing.Kind != kind {
		return nil, ErrUnauthorized
	}
	return existing, nil
}

func (s *Service) mint(ctx context.Context, kind domain.CapabilityKind, holder, actor string) (*MintedCapability, error) {
	minted, err := s.newMinted(kind, holder)
	if err != nil {
		return nil, err
	}
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.create(ctx, minted); err != nil {
			return err
		}
		return s.audit(ctx, domain.EventCapMinted, minted.ID, actor, string(kind))
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("capability minted", zap.String("kind", string(kind)), zap.String("holder", holder))
	return minted, nil
}

// audit writes the capability lifecycle change into the event stream in the
// same transaction as the change itself.
func (s *Service) audit(ctx context.Context, operation, capID, actor, reference string) error {
	return s.eventRepo.Insert(ctx, &domain.LedgerEvent{
		Operation: operation,
		EntityID:  capID,
		Actor:     actor,
		Reference: reference,
	})
}

func (s *Service) create(ctx context.Context, minted *MintedCapability) error {
	hash, err := s.hashService.HashSecret(minted.Secret)
	if err != nil {
		return err
	}
	return s.repo.Create(ctx, &domain.Capability{
		ID:         minted.ID,
		Kind:       minted.Kind,
		Holder:     minted.Holder,
		SecretHash: hash,
	})
}

func (s *Service) newMinted(kind domain.CapabilityKind, holder string) (*MintedCapability, error) {
	secret, err := newSecret()
	if err != nil {
		return nil, err
	}
	return &MintedCapability{
		ID:     uuid.NewString(),
		Kind:   kind,
		Holder: holder,
		Secret: secret,
	}, nil
}

func newSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
