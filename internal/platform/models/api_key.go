package models

type APIKey struct {
	ID         string `json:"id"`
	AccountID  string `json:"account_id"`
	Name       string `json:"name"`
	KeyHash    string `json:"-"`
	KeyPrefix  string `json:"key_prefix"`
	CreatedAt  int64  `json:"created_at"`
	ExpiresAt  *int64 `json:"expires_at,omitempty"`
	RevokedAt  *int64 `json:"revoked_at,omitempty"`
	LastUsedAt *int64 `json:"last_used_at,omitempty"`
}

func (k *APIKey) Usable(now int64) bool {
	if k.RevokedAt != nil {
		return false
	}
	if k.ExpiresAt != nil && *k.ExpiresAt < now {
		return false
	}
	return true
}
