package links

import (
	"time"

	"github.com/google/uuid"
	"smartlink/internal/engine/deeplink"
	"smartlink/internal/engine/platforms"
)

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// CreateLink classifies the destination, synthesizes the per-device
// deep links once, and persists everything on the row. The redirect
// path only ever reads the stored URIs; it never resynthesizes.
func (s *Service) CreateLink(accountID, destinationURL, customShortCode string) (*Link, error) {
	if err := ValidateDestination(destinationURL); err != nil {
		return nil, err
	}

	platform, ok := platforms.Classify(destinationURL)
	if !ok {
		return nil, ErrUnsupportedDestination
	}

	shortCode, err := GenerateShortCode(platform, customShortCode, s.repo)
	if err != nil {
		return nil, err
	}

	uris := deeplink.Synthesize(destinationURL, platform)

	now := time.Now().Unix()
	link := &Link{
		ID:             uuid.New().String(),
		AccountID:      accountID,
		DestinationURL: destinationURL,
		AndroidURI:     deepLinkOrNil(uris.Android, destinationURL),
		IOSURI:         deepLinkOrNil(uris.IOS, destinationURL),
		Platform:       platform,
		ShortCode:      shortCode,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(link); err != nil {
		return nil, err
	}

	return link, nil
}

func (s *Service) GetLink(id string) (*Link, error) {
	return s.repo.GetByID(id)
}

func (s *Service) ListLinks(accountID string, limit, offset int) ([]*Link, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.ListByAccount(accountID, limit, offset)
}

func (s *Service) SetActive(id string, active bool) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return err
	}
	return s.repo.SetActive(id, active)
}

func (s *Service) DeleteLink(id string) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return err
	}
	return s.repo.SoftDelete(id)
}

// deepLinkOrNil stores NULL when synthesis degraded to the destination;
// a null URI is what tells the resolver there is no deep link for that
// OS.
func deepLinkOrNil(uri, dest string) *string {
	if uri == dest {
		return nil
	}
	return &uri
}
