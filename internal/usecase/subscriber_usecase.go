package usecase

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"boutique/internal/domain/model"
	repo "boutique/internal/repository"
	"boutique/internal/validator"
)

type SubscriberUsecase struct {
	subscribers repo.SubscriberRepository
	idGen       IDGenerator
}

// DI
func NewSubscriberUsecase(subscribers repo.SubscriberRepository, idGen IDGenerator) *SubscriberUsecase {
	return &SubscriberUsecase{subscribers: subscribers, idGen: idGen}
}

func (u *SubscriberUsecase) Subscribe(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return NewHTTPError(http.StatusBadRequest, "email required")
	}
	if !validator.IsEmailLike(email) {
		return NewHTTPError(http.StatusBadRequest, "invalid email format")
	}

	err := u.subscribers.Create(ctx, model.Subscriber{
		ID:    u.idGen.NewID(),
		Email: email,
	})
	if err != nil {
		slog.Error("add subscriber failed", "error", err)
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *SubscriberUsecase) ListSubscribers(ctx context.Context) ([]model.Subscriber, error) {
	subscribers, err := u.subscribers.ListAll(ctx)
	if err != nil {
		slog.Error("list subscribers failed", "error", err)
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return subscribers, nil
}

func (u *SubscriberUsecase) DeleteSubscriber(ctx context.Context, id string) error {
	if id == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid subscriber id")
	}

	err := u.subscribers.Delete(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		slog.Error("delete subscriber failed", "subscriber_id", id, "error", err)
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
