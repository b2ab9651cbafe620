package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"boutique/internal/domain/model"
	repo "boutique/internal/repository"
	"boutique/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSubscriberUsecase_Subscribe_InvalidEmail(t *testing.T) {
	uc := usecase.NewSubscriberUsecase(new(SubscriberRepoMock), &seqIDGen{})
	ctx := context.Background()

	err := uc.Subscribe(ctx, "")
	assertHTTPStatus(t, err, http.StatusBadRequest)

	err = uc.Subscribe(ctx, "no-at-sign")
	assertHTTPStatus(t, err, http.StatusBadRequest)

	err = uc.Subscribe(ctx, "a b@example.com")
	assertHTTPStatus(t, err, http.StatusBadRequest)
}

func TestSubscriberUsecase_Subscribe_Success(t *testing.T) {
	sRepo := new(SubscriberRepoMock)
	uc := usecase.NewSubscriberUsecase(sRepo, &seqIDGen{})

	// 前後の空白はtrimして保存
	sRepo.On("Create", mock.Anything, mock.MatchedBy(func(s model.Subscriber) bool {
		return s.Email == "amina@example.com" && s.ID != ""
	})).Return(nil)

	err := uc.Subscribe(context.Background(), "  amina@example.com  ")
	assert.NoError(t, err)

	sRepo.AssertExpectations(t)
}

func TestSubscriberUsecase_DeleteSubscriber_NotFound(t *testing.T) {
	sRepo := new(SubscriberRepoMock)
	uc := usecase.NewSubscriberUsecase(sRepo, &seqIDGen{})

	sRepo.On("Delete", mock.Anything, "missing").Return(repo.ErrNotFound)

	err := uc.DeleteSubscriber(context.Background(), "missing")
	assertHTTPStatus(t, err, http.StatusNotFound)
}

func TestSubscriberUsecase_DeleteSubscriber_Success(t *testing.T) {
	sRepo := new(SubscriberRepoMock)
	uc := usecase.NewSubscriberUsecase(sRepo, &seqIDGen{})

	sRepo.On("Delete", mock.Anything, "s1").Return(nil)

	err := uc.DeleteSubscriber(context.Background(), "s1")
	assert.NoError(t, err)

	sRepo.AssertExpectations(t)
}
