package service

import (
	"context"
	"errors"

	"github.com/bookmyfield/backend/internal/domains/user/dto"
	"github.com/bookmyfield/backend/internal/domains/user/repository"
	"github.com/bookmyfield/backend/pkg/constant"
	"github.com/bookmyfield/backend/pkg/failure"
	"github.com/bookmyfield/backend/pkg/helper"
	"github.com/bookmyfield/backend/pkg/jwt"
	"github.com/bookmyfield/backend/pkg/logger"
	"github.com/bookmyfield/backend/pkg/mail"
	"github.com/bookmyfield/backend/pkg/postgres"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Register(ctx context.Context, req dto.UserRegisterRequest) (res *dto.UserRegisterResponse, err error)
	Login(ctx context.Context, req dto.UserLoginRequest) (*dto.UserLoginResponse, error)
}

type authService struct {
	db     postgres.PgxIface
	repo   repository.Querier
	mail   mail.Service
	logger logger.Interface
}

func New(db postgres.PgxIface, r repository.Querier, m mail.Service, l logger.Interface) AuthService {
	return &authService{
		db:     db,
		repo:   r,
		mail:   m,
		logger: l,
	}
}

func validateRegisterRequest(req dto.UserRegisterRequest) error {
	if !helper.IsValidUsername(req.Username) {
		return failure.BadRequestFromString("username must be 5-50 alphanumeric characters")
	}

	if !helper.IsValidMobileNumber(req.MobileNumber) {
		return failure.BadRequestFromString("mobile number must be 10 digits starting with 9, 8 or 7")
	}

	if !helper.IsValidFullName(req.FullName) {
		return failure.BadRequestFromString("full name must be 5-50 letters and spaces")
	}

	if !helper.IsStrongPassword(req.Password) {
		return failure.BadRequestFromString("password must be at least 8 characters with an uppercase letter, a digit and a special character")
	}

	return nil
}

func (s *authService) Register(ctx context.Context, req dto.UserRegisterRequest) (res *dto.UserRegisterResponse, err error) {
	if err = validateRegisterRequest(req); err != nil {
		s.logger.Error("register - service - invalid request: %w", err)

		return nil, err
	}

	role, err := constant.ParseRole(req.Role)
	if err != nil {
		s.logger.Error("register - service - invalid role: %w", err)

		return nil, failure.BadRequestFromString("role must be Customer, FieldOwner or Admin")
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.logger.Error("register - service - failed to begin transaction: %w", err)

		return nil, failure.InternalError(err)
	}
	defer func(tx pgx.Tx, ctx context.Context) {
		err := tx.Rollback(ctx)
		if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			s.logger.Error("register - service - failed to rollback transaction: %w", err)
		}
	}(tx, ctx)

	exist, err := s.repo.GetUserByEmail(ctx, tx, req.Email)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		s.logger.Error("register - service - failed to get user by email: %w", err)

		return nil, failure.InternalError(err)
	}

	if exist.Email != "" {
		s.logger.Error("register - service - user with email already exists")

		return nil, failure.BadRequestFromString("user already exists")
	}

	password, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("register - service - failed to generate password: %w", err)

		return nil, failure.InternalError(err)
	}

	newUser, err := s.repo.CreateUser(ctx, tx, repository.CreateUserParams{
		Username:     req.Username,
		Email:        req.Email,
		MobileNumber: req.MobileNumber,
		FullName:     req.FullName,
		Password:     string(password),
		Role:         role.String(),
	})
	if err != nil {
		s.logger.Error("register - service - failed to create user: %w", err)

		return nil, failure.InternalError(err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error("register - service - failed to commit transaction: %w", err)

		return nil, failure.InternalError(err)
	}

	go func() {
		mailErr := s.mail.SendWelcomeEmail(newUser.Email, mail.WelcomeData{
			Name: newUser.FullName,
			Role: newUser.Role,
		})
		if mailErr != nil {
			s.logger.Error("register - service - failed to send welcome email: %w", mailErr)
		}
	}()

	res = new(dto.UserRegisterResponse).ToRegisterResponse(newUser)

	return res, nil
}

func (s *authService) Login(ctx context.Context, req dto.UserLoginRequest) (*dto.UserLoginResponse, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.logger.Error("login - service - failed to begin transaction: %w", err)

		return nil, failure.InternalError(err)
	}
	defer func(tx pgx.Tx, ctx context.Context) {
		err := tx.Rollback(ctx)
		if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			s.logger.Error("login - service - failed to rollback transaction: %w", err)
		}
	}(tx, ctx)

	user, err := s.repo.GetUserByEmail(ctx, tx, req.Email)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		s.logger.Error("login - service - failed to get user by email: %w", err)

		return nil, failure.InternalError(err)
	}

	if user.Email == "" {
		s.logger.Error("login - service - user not found")

		return nil, failure.NotFound("user not found")
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		s.logger.Error("login - service - unauthorized")

		return nil, failure.Unauthorized("unauthorized")
	}

	role, err := constant.ParseRole(user.Role)
	if err != nil {
		s.logger.Error("login - service - stored role is invalid: %w", err)

		return nil, failure.InternalError(err)
	}

	_, err = s.repo.UpdateLastLogin(ctx, tx, user.ID)
	if err != nil {
		s.logger.Error("login - service - failed to update last login: %w", err)

		return nil, failure.InternalError(err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error("login - service - failed to commit transaction: %w", err)

		return nil, failure.InternalError(err)
	}

	accessToken, err := jwt.GenerateAccessToken(user.ID.String(), user.Email, role)
	if err != nil {
		s.logger.Error("login - service - failed to generate access token: %w", err)

		return nil, failure.InternalError(err)
	}

	refreshToken, err := jwt.GenerateRefreshToken(user.ID.String(), user.Email, role)
	if err != nil {
		s.logger.Error("login - service - failed to generate refresh token: %w", err)

		return nil, failure.InternalError(err)
	}

	return new(dto.UserLoginResponse).ToLoginResponse(accessToken, refreshToken, role.String()), nil
}
