package usecase

import (
	"context"
	"fmt"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/port"
	"strings"
)

// SubscribeNewsletterUseCase - заглушка: подписка только логируется, внешнего сервиса рассылок нет
type SubscribeNewsletterUseCase struct{}

func NewSubscribeNewsletterUseCase() *SubscribeNewsletterUseCase {
	return &SubscribeNewsletterUseCase{}
}

func (uc *SubscribeNewsletterUseCase) Execute(ctx context.Context, email string) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "SubscribeNewsletter",
	})

	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("email is required")
	}

	// сам адрес в лог не пишем
	ucLogger.Info("Newsletter subscription accepted", port.Fields{"email_domain": emailDomain(email)})
	return nil
}

func emailDomain(email string) string {
	if i := strings.LastIndex(email, "@"); i >= 0 && i < len(email)-1 {
		return email[i+1:]
	}
	return ""
}
