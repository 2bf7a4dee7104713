package dto

type GenesisRequestDTO struct {
	AdminHolder  string `json:"admin_holder" example:"ops@alphapoints"`
	GovernHolder string `json:"govern_holder" example:"governance@alphapoints"`
}

type CapabilityResponseDTO struct {
	ID     string `json:"id"`
	Kind   string `json:"kind" example:"PARTNER"`
	Holder string `json:"holder" example:"partner-acme"`
	Secret string `json:"secret,omitempty"`
}

type GenesisResponseDTO struct {
	Admin  CapabilityResponseDTO `json:"admin"`
	Govern CapabilityResponseDTO `json:"govern"`
}

type TokenRequestDTO struct {
	CapabilityID string `json:"capability_id"`
	Secret       string `json:"secret"`
}

type TokenResponseDTO struct {
	Token string `json:"token"`
}

type MintRequestDTO struct {
	Kind   string `json:"kind" example:"PARTNER"`
	Holder string `json:"holder" example:"partner-acme"`
}

type TransferRequestDTO struct {
	NewHolder string `json:"new_holder" example:"partner-acme-emea"`
}

type RevokeRequestDTO struct {
	CapabilityID string `json:"capability_id"`
}
