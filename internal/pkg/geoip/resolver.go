package geoip

import (
	"net"

	"github.com/oschwald/geoip2-golang"
)

// Resolver answers country lookups for client IPs. Implementations
// must be in-memory and safe for unlimited concurrent readers; the
// click path calls this inside its latency budget and will not wait on
// anything slower.
type Resolver interface {
	Country(ip string) (string, bool)
}

// MaxMindResolver reads an offline MaxMind country dataset. Opened once
// at process startup and immutable afterwards, so request handlers
// share it without locking.
type MaxMindResolver struct {
	reader *geoip2.Reader
}

func Open(path string) (*MaxMindResolver, error) {
	reader, err := geoip2.Open(path)
	if err != nil {
		return nil, err
	}
	return &MaxMindResolver{reader: reader}, nil
}

// Country returns the ISO 3166-1 alpha-2 code for an IP, or false when
// the IP is unparseable or not in the dataset. Best effort, never an
// error the caller has to handle.
func (r *MaxMindResolver) Country(ip string) (string, bool) {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return "", false
	}

	record, err := r.reader.Country(parsed)
	if err != nil || record == nil || record.Country.IsoCode == "" {
		return "", false
	}
	return record.Country.IsoCode, true
}

func (r *MaxMindResolver) Close() error {
	return r.reader.Close()
}

// NopResolver stands in when no dataset is configured; every lookup
// misses and clicks persist with a null country.
type NopResolver struct{}

func (NopResolver) Country(string) (string, bool) {
	return "", false
}
