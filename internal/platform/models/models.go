package models

// Account owns links and carries the usage counter the quota gate
// reads. ClickLimit 0 means unlimited; ClicksUsed is only ever moved by
// the data service's atomic increment and the monthly reset worker.
type Account struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Plan       string `json:"plan"`
	ClickLimit int64  `json:"click_limit"`
	ClicksUsed int64  `json:"clicks_used"`
	CreatedAt  int64  `json:"created_at"`
	UpdatedAt  int64  `json:"updated_at"`
}
