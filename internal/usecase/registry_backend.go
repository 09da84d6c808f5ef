package usecase

import "github.com/khmm12/chats-service/internal/ports"

// RegistryBackend is a discovery registry labelled with the backend name used in logs and metrics.
type RegistryBackend struct {
	Name     string
	Registry ports.ServiceRegistry
}
