package dto

type CreateVaultRequestDTO struct {
	AssetType string `json:"asset_type" example:"SUI"`
}

type DepositRequestDTO struct {
	AssetType string `json:"asset_type" example:"SUI"`
	Value     uint64 `json:"value" example:"1000000"`
}

type WithdrawRequestDTO struct {
	AssetType string `json:"asset_type" example:"SUI"`
	Amount    uint64 `json:"amount" example:"500000"`
	Recipient string `json:"recipient" example:"0x9f8e7d"`
}

type VaultResponseDTO struct {
	AssetType string `json:"asset_type" example:"SUI"`
	Balance   uint64 `json:"balance" example:"1000000"`
}
