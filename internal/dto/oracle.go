package dto

type CreateOracleRequestDTO struct {
	Rate               string `json:"rate" example:"100"`
	Decimals           uint8  `json:"decimals" example:"2"`
	StalenessThreshold uint64 `json:"staleness_threshold" example:"300"`
}

type UpdateRateRequestDTO struct {
	Rate        string `json:"rate" example:"200"`
	CurrentTime uint64 `json:"current_time" example:"1700000000"`
}

type UpdateThresholdRequestDTO struct {
	Threshold uint64 `json:"threshold" example:"600"`
}

type OracleResponseDTO struct {
	Rate               string `json:"rate" example:"100"`
	Decimals           uint8  `json:"decimals" example:"2"`
	LastUpdateTime     uint64 `json:"last_update_time" example:"1700000000"`
	StalenessThreshold uint64 `json:"staleness_threshold" example:"300"`
	Stale              bool   `json:"stale" example:"false"`
}

type ConvertResponseDTO struct {
	Amount uint64 `json:"amount" example:"42"`
}
