package service

import (
	"context"

	"github.com/bookmyfield/backend/internal/domains/contact/dto"
	"github.com/bookmyfield/backend/internal/domains/contact/repository"
	"github.com/bookmyfield/backend/pkg/failure"
	"github.com/bookmyfield/backend/pkg/logger"
	"github.com/bookmyfield/backend/pkg/postgres"
)

type ContactService interface {
	Submit(ctx context.Context, req dto.ContactUsRequest) error
}

type contactService struct {
	db     postgres.PgxIface
	repo   repository.Querier
	logger logger.Interface
}

func New(db postgres.PgxIface, r repository.Querier, l logger.Interface) ContactService {
	return &contactService{
		db:     db,
		repo:   r,
		logger: l,
	}
}

func (s *contactService) Submit(ctx context.Context, req dto.ContactUsRequest) error {
	_, err := s.repo.InsertContactMessage(ctx, s.db, repository.InsertContactMessageParams{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		s.logger.Error("service - contact - submit - failed to insert message: %w", err)

		return failure.InternalError(err)
	}

	return nil
}
