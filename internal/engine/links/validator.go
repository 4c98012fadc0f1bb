package links

import (
	"errors"
	"net/url"
)

func ValidateDestination(dest string) error {
	if dest == "" {
		return errors.New("destination_url is required")
	}

	u, err := url.Parse(dest)
	if err != nil {
		return errors.New("invalid destination_url format")
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("destination_url must start with http:// or https://")
	}

	if u.Host == "" {
		return errors.New("destination_url must include a host")
	}

	return nil
}
