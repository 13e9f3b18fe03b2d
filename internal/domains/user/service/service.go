package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bookmyfield/backend/config"
	"github.com/bookmyfield/backend/internal/domains/user/dto"
	"github.com/bookmyfield/backend/internal/domains/user/repository"
	"github.com/bookmyfield/backend/pkg/failure"
	"github.com/bookmyfield/backend/pkg/logger"
	"github.com/bookmyfield/backend/pkg/postgres"
	"github.com/bookmyfield/backend/pkg/redis"
	"github.com/jackc/pgx/v5"
)

type UserService interface {
	Profile(ctx context.Context, email string) (res dto.UserProfileResponse, err error)
}

const (
	cacheGetUserKey     = "cache:get_user:%s"
	defaultCacheTimeout = 5 * time.Second
)

type userService struct {
	db     postgres.PgxIface
	repo   repository.Querier
	cache  redis.IRedisCache
	config *config.Config
	logger logger.Interface
}

func New(db postgres.PgxIface, repo repository.Querier, cache redis.IRedisCache, cfg *config.Config, l logger.Interface) UserService {
	return &userService{
		db:     db,
		repo:   repo,
		cache:  cache,
		config: cfg,
		logger: l,
	}
}

func (s *userService) Profile(ctx context.Context, email string) (res dto.UserProfileResponse, err error) {
	cacheKey := fmt.Sprintf(cacheGetUserKey, email)

	var cacheRes dto.UserProfileResponse
	err = s.cache.Get(ctx, cacheKey, &cacheRes)

	if err == nil {
		s.logger.Info("service - user %s - profile - cache hit", email)

		return cacheRes, nil
	}

	user, err := s.repo.GetUserByEmail(ctx, s.db, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Error("service - user - profile - user not found")

			return dto.UserProfileResponse{}, failure.NotFound("user not found")
		}

		s.logger.Error("service - user - profile - failed to get user by email", err)

		return dto.UserProfileResponse{}, failure.InternalError(err)
	}

	var profileResponse dto.UserProfileResponse
	profileResponse = profileResponse.ToProfileResponse(user)

	go func() {
		cacheCtx, cancel := context.WithTimeout(context.Background(), defaultCacheTimeout)
		defer cancel()

		cacheErr := s.cache.Save(cacheCtx, cacheKey, profileResponse, s.config.Cache.Duration)
		if cacheErr != nil {
			s.logger.Error("service - user - profile - failed to set cache", cacheErr)
		}
	}()

	return profileResponse, nil
}
