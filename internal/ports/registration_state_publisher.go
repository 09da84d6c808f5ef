package ports

import "context"

type RegistrationStatePublisher interface {
	Publish(ctx context.Context, backend string, registered bool) error
}
