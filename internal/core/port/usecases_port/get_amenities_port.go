package usecases_port

import "context"

type GetAmenitiesUseCasePort interface {
	Execute(ctx context.Context) ([]string, error)
}
