package server

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/nhl-fantasy-update/internal/providers"
)

type namedProvider interface {
	Name() string
}

// providerName picks the label used for metrics and logs: the provider's own name, then the
// configured value, then its type.
func providerName(raw string, provider providers.DataProvider) string {
	if named, ok := provider.(namedProvider); ok && named.Name() != "" {
		return strings.ToLower(named.Name())
	}
	if raw != "" {
		return strings.ToLower(raw)
	}
	if provider != nil {
		return strings.ToLower(fmt.Sprintf("%T", provider))
	}
	return "provider"
}
