package provider

import (
	"fmt"
	"strings"
	"sync"

	"github.com/stellarops/gsbooker/internal/domain"
	"github.com/stellarops/gsbooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// Registry hands out provider clients keyed by provider type. Clients are
// built lazily and shared, so all callers reuse one authenticated session
// per provider.
type Registry struct {
	isocsBaseURL  string
	isocsEmail    string
	isocsPassword string
	log           logger.Logger

	mu      sync.Mutex
	clients map[string]ports.GSClient
}

func NewRegistry(isocsBaseURL, isocsEmail, isocsPassword string, log logger.Logger) *Registry {
	return &Registry{
		isocsBaseURL:  isocsBaseURL,
		isocsEmail:    isocsEmail,
		isocsPassword: isocsPassword,
		log:           log,
		clients:       make(map[string]ports.GSClient),
	}
}

func (r *Registry) IsSupported(providerKey string) bool {
	return strings.ToLower(providerKey) == "dhruva"
}

// Resolve returns the shared client for the provider. The support check
// happens before any construction, so unknown providers never cost a
// network round trip.
func (r *Registry) Resolve(providerKey string) (ports.GSClient, error) {
	key := strings.ToLower(providerKey)
	if !r.IsSupported(key) {
		return nil, fmt.Errorf("%w: %s", domain.ErrProviderNotSupported, providerKey)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if client, ok := r.clients[key]; ok {
		return client, nil
	}

	client := NewIsocsClient(r.isocsBaseURL, r.isocsEmail, r.isocsPassword, r.log)
	r.clients[key] = client

	r.log.Info("provider client created", logger.String("provider", key))
	return client, nil
}
