package domain

import "time"

// Balance is the per-account point record. Total is always derived from
// Available+Locked and never stored.
type Balance struct {
	ID        int       `db:"id"`
	AccountID string    `db:"account_id"`
	Available uint64    `db:"available"`
	Locked    uint64    `db:"locked"`
	CreatedAt time.Time `db:"created_at"`
}

func (b *Balance) Total() uint64 {
	return b.Available + b.Locked
}

// Vault custodies the backing asset for issued points, one row per asset type.
type Vault struct {
	ID        int       `db:"id"`
	AssetType string    `db:"asset_type"`
	Balance   uint64    `db:"balance"`
	CreatedAt time.Time `db:"created_at"`
}

// Oracle is the singleton conversion-rate feed. Rate is a fixed-point value
// scaled by 10^Decimals, carried as a decimal string so the full u128 range
// round-trips through Postgres NUMERIC without loss.
type Oracle struct {
	ID                 int    `db:"id"`
	Rate               string `db:"rate"`
	Decimals           uint8  `db:"decimals"`
	LastUpdateTime     uint64 `db:"last_update_time"`
	StalenessThreshold uint64 `db:"staleness_threshold"`
}

type CapabilityKind string

const (
	CapabilityAdmin   CapabilityKind = "ADMIN"
	CapabilityGovern  CapabilityKind = "GOVERN"
	CapabilityOracle  CapabilityKind = "ORACLE"
	CapabilityPartner CapabilityKind = "PARTNER"
)

// Capability is the persisted half of an authorization token: the row existing
// is what makes the token valid, revocation deletes it.
type Capability struct {
	ID         string         `db:"id"`
	Kind       CapabilityKind `db:"kind"`
	Holder     string         `db:"holder"`
	SecretHash string         `db:"secret_hash"`
	CreatedAt  time.Time      `db:"created_at"`
}

// WithdrawalTicket records an in-flight unstake awaiting cooldown, keyed by the
// original stake id.
type WithdrawalTicket struct {
	ID             int       `db:"id"`
	StakeID        string    `db:"stake_id"`
	AccountID      string    `db:"account_id"`
	AssetType      string    `db:"asset_type"`
	ExpectedAmount uint64    `db:"expected_amount"`
	MaturesAt      time.Time `db:"matures_at"`
	CreatedAt      time.Time `db:"created_at"`
}

// LedgerEvent is one audit-trail row; inserted in the same transaction as the
// mutation it describes.
type LedgerEvent struct {
	ID             string    `db:"id"`
	Operation      string    `db:"operation"`
	EntityID       string    `db:"entity_id"`
	Amount         uint64    `db:"amount"`
	AvailableAfter uint64    `db:"available_after"`
	LockedAfter    uint64    `db:"locked_after"`
	Actor          string    `db:"actor"`
	Reference      string    `db:"reference"`
	CreatedAt      time.Time `db:"created_at"`
}

const (
	EventEarn          = "EARN"
	EventSpend         = "SPEND"
	EventLock          = "LOCK"
	EventUnlock        = "UNLOCK"
	EventDeposit       = "ESCROW_DEPOSIT"
	EventWithdraw      = "ESCROW_WITHDRAW"
	EventRateUpdate    = "RATE_UPDATE"
	EventTicketStored  = "TICKET_STORED"
	EventTicketSettled = "TICKET_SETTLED"

	EventVaultCreated    = "VAULT_CREATED"
	EventOracleCreated   = "ORACLE_CREATED"
	EventThresholdUpdate = "THRESHOLD_UPDATE"

	EventCapMinted      = "CAP_MINTED"
	EventCapTransferred = "CAP_TRANSFERRED"
	EventCapRevoked     = "CAP_REVOKED"
)
