package ports

import "context"

type ServiceRegistry interface {
	Register(ctx context.Context, instance Instance) error
	Deregister(ctx context.Context, instance Instance) error
}

type ServiceResolver interface {
	Resolve(ctx context.Context, name string) ([]Instance, error)
}
