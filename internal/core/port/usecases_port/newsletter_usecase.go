package usecases_port

import "context"

type SubscribeNewsletterUseCase interface {
	Execute(ctx context.Context, email string) error
}
