package analytics

import "time"

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Window defaults: last 30 days when the caller sends nothing.
func normalizeWindow(start, end int64) (int64, int64) {
	now := time.Now().Unix()
	if end <= 0 {
		end = now
	}
	if start <= 0 {
		start = end - 30*24*3600
	}
	return start, end
}

func (s *Service) LinkSummary(linkID string, start, end int64) (*Summary, error) {
	start, end = normalizeWindow(start, end)

	total, err := s.repo.CountClicks(linkID, start, end)
	if err != nil {
		return nil, err
	}

	summary := &Summary{TotalClicks: total}

	byCountry, err := s.repo.BreakdownBy("country_code", linkID, start, end, 10)
	if err != nil {
		return nil, err
	}
	summary.ByCountry = byCountry

	byDevice, err := s.repo.BreakdownBy("device_type", linkID, start, end, 5)
	if err != nil {
		return nil, err
	}
	summary.ByDevice = byDevice

	byRedirect, err := s.repo.BreakdownBy("redirect_type", linkID, start, end, 5)
	if err != nil {
		return nil, err
	}
	summary.ByRedirect = byRedirect

	return summary, nil
}

func (s *Service) LinkClicks(linkID string, start, end int64, limit, offset int) ([]ClickRow, error) {
	start, end = normalizeWindow(start, end)
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.GetClicks(linkID, start, end, limit, offset)
}
