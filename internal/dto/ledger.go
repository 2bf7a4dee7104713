package dto

import "time"

type EarnRequestDTO struct {
	AccountID string `json:"account_id" example:"0x1a2b3c"`
	Amount    uint64 `json:"amount" example:"1000"`
}

type SpendRequestDTO struct {
	AccountID string `json:"account_id" example:"0x1a2b3c"`
	Amount    uint64 `json:"amount" example:"500"`
	Order     string `json:"order" example:"2377225624"`
}

type LockRequestDTO struct {
	AccountID string `json:"account_id" example:"0x1a2b3c"`
	Amount    uint64 `json:"amount" example:"500"`
}

type UnlockRequestDTO struct {
	AccountID string `json:"account_id" example:"0x1a2b3c"`
	Amount    uint64 `json:"amount" example:"500"`
}

type BalanceResponseDTO struct {
	AccountID string `json:"account_id" example:"0x1a2b3c"`
	Available uint64 `json:"available" example:"500"`
	Locked    uint64 `json:"locked" example:"100"`
	Total     uint64 `json:"total" example:"600"`
}

type SupplyResponseDTO struct {
	Supply uint64 `json:"supply" example:"1000000"`
}

type PointsPreviewResponseDTO struct {
	Points uint64 `json:"points" example:"2700"`
}

type EventResponseDTO struct {
	ID             string    `json:"id"`
	Operation      string    `json:"operation" example:"EARN"`
	EntityID       string    `json:"entity_id" example:"0x1a2b3c"`
	Amount         uint64    `json:"amount" example:"1000"`
	AvailableAfter uint64    `json:"available_after" example:"1000"`
	LockedAfter    uint64    `json:"locked_after" example:"0"`
	Actor          string    `json:"actor" example:"partner-acme"`
	Reference      string    `json:"reference,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
