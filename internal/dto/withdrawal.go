package dto

import "time"

type StoreTicketRequestDTO struct {
	StakeID        string    `json:"stake_id" example:"stake-7f3a"`
	AccountID      string    `json:"account_id" example:"0x1a2b3c"`
	AssetType      string    `json:"asset_type" example:"SUI"`
	ExpectedAmount uint64    `json:"expected_amount" example:"42"`
	MaturesAt      time.Time `json:"matures_at" example:"2025-01-09T16:09:57+03:00"`
}

type TicketResponseDTO struct {
	StakeID        string    `json:"stake_id" example:"stake-7f3a"`
	ExpectedAmount uint64    `json:"expected_amount" example:"42"`
	MaturesAt      time.Time `json:"matures_at"`
}

type HasTicketResponseDTO struct {
	Exists bool `json:"exists" example:"true"`
}
