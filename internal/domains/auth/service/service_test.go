package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/bookmyfield/backend/internal/domains/user/dto"
	"github.com/bookmyfield/backend/internal/domains/user/mock"
	"github.com/bookmyfield/backend/internal/domains/user/repository"
	"github.com/bookmyfield/backend/pkg/failure"
	"github.com/bookmyfield/backend/pkg/jwt"
	log "github.com/bookmyfield/backend/pkg/logger/mock"
	mail "github.com/bookmyfield/backend/pkg/mail/mock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func init() {
	jwt.Initialize("test-app", "test-secret-key", time.Hour, time.Hour*24)
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()
	mockError := errors.New("error")

	registerReq := dto.UserRegisterRequest{
		Username:     "testuser1",
		Email:        "test@gmail.com",
		MobileNumber: "9876543210",
		FullName:     "Test User",
		Password:     "Password1!",
		Role:         "Customer",
	}

	mockID := uuid.New()
	mockUser := repository.User{
		ID:           pgtype.UUID{Bytes: mockID, Valid: true},
		Username:     "testuser1",
		Email:        "test@gmail.com",
		MobileNumber: "9876543210",
		FullName:     "Test User",
		Password:     "hashedpassword",
		Role:         "Customer",
		CreatedAt:    pgtype.Timestamp{Time: time.Now(), Valid: true},
	}

	t.Run("error: weak password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQuerier := mock.NewMockQuerier(ctrl)
		mockPgx, _ := pgxmock.NewPool()
		mockLogger := log.NewMockInterface(ctrl)
		mockMail := mail.NewMockService(ctrl)
		service := New(mockPgx, mockQuerier, mockMail, mockLogger)

		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any())

		weakReq := registerReq
		weakReq.Password = "password"

		res, err := service.Register(ctx, weakReq)

		assert.Error(t, err)
		assert.Nil(t, res)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("error: invalid mobile number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQuerier := mock.NewMockQuerier(ctrl)
		mockPgx, _ := pgxmock.NewPool()
		mockLogger := log.NewMockInterface(ctrl)
		mockMail := mail.NewMockService(ctrl)
		service := New(mockPgx, mockQuerier, mockMail, mockLogger)

		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any())

		badReq := registerReq
		badReq.MobileNumber = "1234567890"

		res, err := service.Register(ctx, badReq)

		assert.Error(t, err)
		assert.Nil(t, res)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("error: unknown role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQuerier := mock.NewMockQuerier(ctrl)
		mockPgx, _ := pgxmock.NewPool()
		mockLogger := log.NewMockInterface(ctrl)
		mockMail := mail.NewMockService(ctrl)
		service := New(mockPgx, mockQuerier, mockMail, mockLogger)

		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any())

		badReq := registerReq
		badReq.Role = "customer"

		res, err := service.Register(ctx, badReq)

		assert.Error(t, err)
		assert.Nil(t, res)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("error: transaction begin failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQuerier := mock.NewMockQuerier(ctrl)
		mockPgx, _ := pgxmock.NewPool()
		mockLogger := log.NewMockInterface(ctrl)
		mockMail := mail.NewMockService(ctrl)
		service := New(mockPgx, mockQuerier, mockMail, mockLogger)

		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any())
		mockPgx.ExpectBegin().WillReturnError(mockError)

		res, err := service.Register(ctx, registerReq)

		assert.Error(t, err)
		assert.Nil(t, res)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("error: failure getting user by email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQuerier := mock.NewMockQuerier(ctrl)
		mockPgx, _ := pgxmock.NewPool()
		mockLogger := log.NewMockInterface(ctrl)
		mockMail := mail.NewMockService(ctrl)
		service := New(mockPgx, mockQuerier, mockMail, mockLogger)

		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any())

		mockPgx.ExpectBegin()
		mockPgx.ExpectRollback()

		mockQuerier.EXPECT().
			GetUserByEmail(gomock.Any(), gomock.Any(), "test@gmail.com").
			Return(repository.User{}, mockError)

		res, err := service.Register(ctx, registerReq)

		assert.Error(t, err)
		assert.Nil(t, res)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("error: user already exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQuerier := mock.NewMockQuerier(ctrl)
		mockPgx, _ := pgxmock.NewPool()
		mockLogger := log.NewMockInterface(ctrl)
		mockMail := mail.NewMockService(ctrl)
		service := New(mockPgx, mockQuerier, mockMail, mockLogger)

		mockLogger.EXPECT().Error(gomock.Any())

		mockPgx.ExpectBegin()
		mockPgx.ExpectRollback()

		mockQuerier.EXPECT().
			GetUserByEmail(gomock.Any(), gomock.Any(), "test@gmail.com").
			Return(mockUser, nil)

		res, err := service.Register(ctx, registerReq)

		assert.Error(t, err)
		assert.Nil(t, res)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("error: failure creating user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQuerier := mock.NewMockQuerier(ctrl)
		mockPgx, _ := pgxmock.NewPool()
		mockLogger := log.NewMockInterface(ctrl)
		mockMail := mail.NewMockService(ctrl)
		service := New(mockPgx, mockQuerier, mockMail, mockLogger)

		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any())

		mockPgx.ExpectBegin()
		mockPgx.ExpectRollback()

		mockQuerier.EXPECT().
			GetUserByEmail(gomock.Any(), gomock.Any(), "test@gmail.com").
			Return(repository.User{}, pgx.ErrNoRows)

		mockQuerier.EXPECT().
			CreateUser(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(repository.User{}, mockError)

		res, err := service.Register(ctx, registerReq)

		assert.Error(t, err)
		assert.Nil(t, res)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("error: transaction commit failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQuerier := mock.NewMockQuerier(ctrl)
		mockPgx, _ := pgxmock.NewPool()
		mockLogger := log.NewMockInterface(ctrl)
		mockMail := mail.NewMockService(ctrl)
		service := New(mockPgx, mockQuerier, mockMail, mockLogger)

		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any())

		mockPgx.ExpectBegin()
		mockPgx.ExpectRollback()

		mockQuerier.EXPECT().
			GetUserByEmail(gomock.Any(), gomock.Any(), "test@gmail.com").
			Return(repository.User{}, pgx.ErrNoRows)

		mockQuerier.EXPECT().
			CreateUser(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(mockUser, nil)

		mockPgx.ExpectCommit().WillReturnError(mockError)

		res, err := service.Register(ctx, registerReq)

		assert.Error(t, err)
		assert.Nil(t, res)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("success: user registered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQuerier := mock.NewMockQuerier(ctrl)
		mockPgx, _ := pgxmock.NewPool()
		mockLogger := log.NewMockInterface(ctrl)
		mockMail := mail.NewMockService(ctrl)
		service := New(mockPgx, mockQuerier, mockMail, mockLogger)

		mockPgx.ExpectBegin()

		mockQuerier.EXPECT().
			GetUserByEmail(gomock.Any(), gomock.Any(), "test@gmail.com").
			Return(repository.User{}, pgx.ErrNoRows)

		mockQuerier.EXPECT().
			CreateUser(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(mockUser, nil)

		mockPgx.ExpectCommit()
		mockPgx.ExpectRollback() // For the deferred rollback function

		// The welcome email is sent from a goroutine
		mockMail.EXPECT().
			SendWelcomeEmail(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := service.Register(ctx, registerReq)

		assert.NoError(t, err)
		assert.NotNil(t, res)
		assert.Equal(t, mockID.String(), res.ID)
		assert.Equal(t, "testuser1", res.Username)
		assert.Equal(t, "Customer", res.Role)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	mockError := errors.New("error")

	loginReq := dto.UserLoginRequest{
		Email:    "test@gmail.com",
		Password: "Password1!",
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("Password1!"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	mockID := uuid.New()
	mockUser := repository.User{
		ID:           pgtype.UUID{Bytes: mockID, Valid: true},
		Username:     "testuser1",
		Email:        "test@gmail.com",
		MobileNumber: "9876543210",
		FullName:     "Test User",
		Password:     string(hashed),
		Role:         "Customer",
	}

	t.Run("error: user not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQuerier := mock.NewMockQuerier(ctrl)
		mockPgx, _ := pgxmock.NewPool()
		mockLogger := log.NewMockInterface(ctrl)
		mockMail := mail.NewMockService(ctrl)
		service := New(mockPgx, mockQuerier, mockMail, mockLogger)

		mockLogger.EXPECT().Error(gomock.Any())

		mockPgx.ExpectBegin()
		mockPgx.ExpectRollback()

		mockQuerier.EXPECT().
			GetUserByEmail(gomock.Any(), gomock.Any(), "test@gmail.com").
			Return(repository.User{}, pgx.ErrNoRows)

		res, err := service.Login(ctx, loginReq)

		assert.Error(t, err)
		assert.Nil(t, res)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("error: wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQuerier := mock.NewMockQuerier(ctrl)
		mockPgx, _ := pgxmock.NewPool()
		mockLogger := log.NewMockInterface(ctrl)
		mockMail := mail.NewMockService(ctrl)
		service := New(mockPgx, mockQuerier, mockMail, mockLogger)

		mockLogger.EXPECT().Error(gomock.Any())

		mockPgx.ExpectBegin()
		mockPgx.ExpectRollback()

		mockQuerier.EXPECT().
			GetUserByEmail(gomock.Any(), gomock.Any(), "test@gmail.com").
			Return(mockUser, nil)

		wrongReq := loginReq
		wrongReq.Password = "WrongPass1!"

		res, err := service.Login(ctx, wrongReq)

		assert.Error(t, err)
		assert.Nil(t, res)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})

	t.Run("error: failure updating last login", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQuerier := mock.NewMockQuerier(ctrl)
		mockPgx, _ := pgxmock.NewPool()
		mockLogger := log.NewMockInterface(ctrl)
		mockMail := mail.NewMockService(ctrl)
		service := New(mockPgx, mockQuerier, mockMail, mockLogger)

		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any())

		mockPgx.ExpectBegin()
		mockPgx.ExpectRollback()

		mockQuerier.EXPECT().
			GetUserByEmail(gomock.Any(), gomock.Any(), "test@gmail.com").
			Return(mockUser, nil)

		mockQuerier.EXPECT().
			UpdateLastLogin(gomock.Any(), gomock.Any(), mockUser.ID).
			Return(pgtype.UUID{}, mockError)

		res, err := service.Login(ctx, loginReq)

		assert.Error(t, err)
		assert.Nil(t, res)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("success: tokens issued with role claim", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQuerier := mock.NewMockQuerier(ctrl)
		mockPgx, _ := pgxmock.NewPool()
		mockLogger := log.NewMockInterface(ctrl)
		mockMail := mail.NewMockService(ctrl)
		service := New(mockPgx, mockQuerier, mockMail, mockLogger)

		mockPgx.ExpectBegin()

		mockQuerier.EXPECT().
			GetUserByEmail(gomock.Any(), gomock.Any(), "test@gmail.com").
			Return(mockUser, nil)

		mockQuerier.EXPECT().
			UpdateLastLogin(gomock.Any(), gomock.Any(), mockUser.ID).
			Return(mockUser.ID, nil)

		mockPgx.ExpectCommit()
		mockPgx.ExpectRollback() // For the deferred rollback function

		res, err := service.Login(ctx, loginReq)

		assert.NoError(t, err)
		assert.NotNil(t, res)
		assert.NotEmpty(t, res.AccessToken)
		assert.NotEmpty(t, res.RefreshToken)
		assert.Equal(t, "Customer", res.Role)

		claims, err := jwt.ValidateToken(res.AccessToken)
		assert.NoError(t, err)
		assert.Equal(t, "Customer", claims.Role)
		assert.Equal(t, "test@gmail.com", claims.Email)
	})
}
