package dto

import "vocab-master/internal/domain"

// SettingsResponse represents the stored settings. api_key is masked.
type SettingsResponse struct {
	APIKey    string `json:"api_key"`
	APIKeySet bool   `json:"api_key_set"`
	Model     string `json:"model"`
}

// UpdateSettingsRequest is the body of POST /api/settings. Omitted fields are unchanged.
type UpdateSettingsRequest struct {
	APIKey string `json:"api_key" validate:"max=512"`
	Model  string `json:"model" validate:"max=200"`
}

func NewSettingsResponse(s *domain.Settings) SettingsResponse {
	return SettingsResponse{APIKey: s.MaskedAPIKey, APIKeySet: s.APIKeySet, Model: s.Model}
}

func (r UpdateSettingsRequest) ToDomain() domain.SettingsUpdate {
	return domain.SettingsUpdate{APIKey: r.APIKey, Model: r.Model}
}
