package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/bookmyfield/backend/internal/domains/contact/dto"
	"github.com/bookmyfield/backend/internal/domains/contact/mock"
	"github.com/bookmyfield/backend/internal/domains/contact/repository"
	"github.com/bookmyfield/backend/pkg/failure"
	log "github.com/bookmyfield/backend/pkg/logger/mock"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestContactService_Submit(t *testing.T) {
	ctx := context.Background()
	mockError := errors.New("error")

	req := dto.ContactUsRequest{
		Name:    "Test User",
		Email:   "test@gmail.com",
		Message: "How do I list my field?",
	}

	t.Run("error: failure inserting message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQuerier := mock.NewMockQuerier(ctrl)
		mockPgx, _ := pgxmock.NewPool()
		mockLogger := log.NewMockInterface(ctrl)
		service := New(mockPgx, mockQuerier, mockLogger)

		mockQuerier.EXPECT().
			InsertContactMessage(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(repository.ContactMessage{}, mockError)

		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any())

		err := service.Submit(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("success: message stored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQuerier := mock.NewMockQuerier(ctrl)
		mockPgx, _ := pgxmock.NewPool()
		mockLogger := log.NewMockInterface(ctrl)
		service := New(mockPgx, mockQuerier, mockLogger)

		mockQuerier.EXPECT().
			InsertContactMessage(gomock.Any(), gomock.Any(), repository.InsertContactMessageParams{
				Name:    "Test User",
				Email:   "test@gmail.com",
				Message: "How do I list my field?",
			}).
			Return(repository.ContactMessage{Name: "Test User"}, nil)

		err := service.Submit(ctx, req)

		assert.NoError(t, err)
	})
}
