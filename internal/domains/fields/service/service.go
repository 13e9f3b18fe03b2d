package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strconv"

	"github.com/bookmyfield/backend/config"
	"github.com/bookmyfield/backend/internal/domains/fields/dto"
	"github.com/bookmyfield/backend/internal/domains/fields/repository"
	"github.com/bookmyfield/backend/pkg/constant"
	"github.com/bookmyfield/backend/pkg/failure"
	"github.com/bookmyfield/backend/pkg/gdto"
	"github.com/bookmyfield/backend/pkg/helper"
	"github.com/bookmyfield/backend/pkg/logger"
	"github.com/bookmyfield/backend/pkg/postgres"
	"github.com/bookmyfield/backend/pkg/redis"
	"github.com/bookmyfield/backend/pkg/storage"
	"github.com/jackc/pgx/v5"
)

type FieldService interface {
	Create(ctx context.Context, ownerID string, req dto.FieldCreateRequest, image *multipart.FileHeader) (dto.FieldResponse, error)
	Update(ctx context.Context, ownerID, id string, req dto.FieldUpdateRequest, image *multipart.FileHeader) (dto.FieldResponse, error)
	Delete(ctx context.Context, ownerID, id string) error
	GetMyFields(ctx context.Context, ownerID string) ([]dto.FieldResponse, error)
	GetApprovalStatus(ctx context.Context, ownerID string) ([]dto.FieldApprovalStatusResponse, error)
	GetPending(ctx context.Context) ([]dto.PendingFieldResponse, error)
	UpdateApproval(ctx context.Context, id string, req dto.FieldApprovalRequest) (dto.FieldResponse, error)
	GetApprovedFields(ctx context.Context, req gdto.PaginationRequest) (dto.GetFieldsResponse, error)
	Categories() dto.CategoriesResponse
}

type fieldService struct {
	db            postgres.PgxIface
	repo          repository.Querier
	cache         redis.IRedisCache
	cfg           *config.Config
	logger        logger.Interface
	storageClient *storage.Client
}

func New(db postgres.PgxIface, repo repository.Querier, cache redis.IRedisCache, cfg *config.Config, l logger.Interface, storageClient *storage.Client) FieldService {
	return &fieldService{
		db:            db,
		repo:          repo,
		cache:         cache,
		cfg:           cfg,
		logger:        l,
		storageClient: storageClient,
	}
}

const (
	cacheGetFieldsKey   = "fields:approved"
	cacheCountFieldsKey = "fields:approved:count"

	identifier = "service - field - %s"

	MaxFileSize = 10 << 20 // 10MB
)

func (s *fieldService) uploadImage(ctx context.Context, image *multipart.FileHeader) (string, error) {
	if image.Size > MaxFileSize {
		return "", failure.BadRequestFromString("image exceeds the 10MB limit")
	}

	file, err := image.Open()
	if err != nil {
		return "", failure.InternalError(err)
	}
	defer file.Close()

	url, err := s.storageClient.UploadFile(ctx, file, image.Filename)
	if err != nil {
		return "", failure.InternalError(err)
	}

	return url, nil
}

func (s *fieldService) invalidateApprovedCache(ctx context.Context) {
	ctx = context.WithoutCancel(ctx)

	if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheCountFieldsKey, "*")); err != nil {
		s.logger.Error(identifier, "failed to clear count cache: %w", err)
	}

	if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheGetFieldsKey, "*")); err != nil {
		s.logger.Error(identifier, "failed to clear fields cache: %w", err)
	}
}

func (s *fieldService) Create(ctx context.Context, ownerID string, req dto.FieldCreateRequest, image *multipart.FileHeader) (res dto.FieldResponse, err error) {
	imageURL, err := s.uploadImage(ctx, image)
	if err != nil {
		s.logger.Error(identifier, "create - failed to upload image: %w", err)

		return res, err
	}

	newField, err := s.repo.CreateField(ctx, s.db, repository.CreateFieldParams{
		OwnerID:          helper.PgUUID(ownerID),
		Name:             req.Name,
		Location:         req.Location,
		Description:      helper.PgString(req.Description),
		AvailableTimings: req.AvailableTimings,
		PricePerHour:     helper.PgInt64(req.PricePerHour),
		Category:         req.Category,
		ImageUrl:         imageURL,
	})
	if err != nil {
		s.logger.Error(identifier, "create - failed to create field: %w", err)

		return res, failure.InternalError(err)
	}

	return res.FromModel(newField), nil
}

func (s *fieldService) Update(ctx context.Context, ownerID, id string, req dto.FieldUpdateRequest, image *multipart.FileHeader) (res dto.FieldResponse, err error) {
	current, err := s.repo.GetFieldByIdAndOwner(ctx, s.db, repository.GetFieldByIdAndOwnerParams{
		ID:      helper.PgUUID(id),
		OwnerID: helper.PgUUID(ownerID),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = failure.NotFound(fmt.Sprintf("field %s - not found", id))
			s.logger.Error(identifier, "update - field not found: %w", err)

			return res, err
		}

		s.logger.Error(identifier, "update - failed to get field: %w", err)

		return res, failure.InternalError(err)
	}

	params := repository.UpdateFieldParams{
		ID:               current.ID,
		OwnerID:          current.OwnerID,
		Name:             current.Name,
		Location:         current.Location,
		Description:      current.Description,
		AvailableTimings: current.AvailableTimings,
		PricePerHour:     current.PricePerHour,
		Category:         current.Category,
		ImageUrl:         current.ImageUrl,
	}

	if req.Name != "" {
		params.Name = req.Name
	}

	if req.Location != "" {
		params.Location = req.Location
	}

	if req.Description != "" {
		params.Description = helper.PgString(req.Description)
	}

	if req.AvailableTimings != "" {
		params.AvailableTimings = req.AvailableTimings
	}

	if req.PricePerHour > 0 {
		params.PricePerHour = helper.PgInt64(req.PricePerHour)
	}

	if req.Category != "" {
		params.Category = req.Category
	}

	oldImageURL := ""

	if image != nil {
		imageURL, uploadErr := s.uploadImage(ctx, image)
		if uploadErr != nil {
			s.logger.Error(identifier, "update - failed to upload image: %w", uploadErr)

			return res, uploadErr
		}

		oldImageURL = current.ImageUrl
		params.ImageUrl = imageURL
	}

	updated, err := s.repo.UpdateField(ctx, s.db, params)
	if err != nil {
		s.logger.Error(identifier, "update - failed to update field: %w", err)

		return res, failure.InternalError(err)
	}

	if oldImageURL != "" {
		go func() {
			if delErr := s.storageClient.DeleteFile(context.WithoutCancel(ctx), oldImageURL); delErr != nil {
				s.logger.Warn(identifier, "update - failed to delete old image: %w", delErr)
			}
		}()
	}

	go s.invalidateApprovedCache(ctx)

	return res.FromModel(updated), nil
}

func (s *fieldService) Delete(ctx context.Context, ownerID, id string) error {
	current, err := s.repo.GetFieldByIdAndOwner(ctx, s.db, repository.GetFieldByIdAndOwnerParams{
		ID:      helper.PgUUID(id),
		OwnerID: helper.PgUUID(ownerID),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = failure.NotFound(fmt.Sprintf("field %s - not found", id))
			s.logger.Error(identifier, "delete - field not found: %w", err)

			return err
		}

		s.logger.Error(identifier, "delete - failed to get field: %w", err)

		return failure.InternalError(err)
	}

	affected, err := s.repo.DeleteFieldByOwner(ctx, s.db, repository.DeleteFieldByOwnerParams{
		ID:      helper.PgUUID(id),
		OwnerID: helper.PgUUID(ownerID),
	})
	if err != nil {
		s.logger.Error(identifier, "delete - failed to delete field: %w", err)

		return failure.InternalError(err)
	}

	if affected == 0 {
		return failure.NotFound(fmt.Sprintf("field %s - not found", id))
	}

	if current.ImageUrl != "" {
		go func() {
			if delErr := s.storageClient.DeleteFile(context.WithoutCancel(ctx), current.ImageUrl); delErr != nil {
				s.logger.Warn(identifier, "delete - failed to delete image: %w", delErr)
			}
		}()
	}

	go s.invalidateApprovedCache(ctx)

	return nil
}

func (s *fieldService) GetMyFields(ctx context.Context, ownerID string) ([]dto.FieldResponse, error) {
	fields, err := s.repo.GetFieldsByOwner(ctx, s.db, helper.PgUUID(ownerID))
	if err != nil {
		s.logger.Error(identifier, "getMyFields - failed to get fields: %w", err)

		return nil, failure.InternalError(err)
	}

	res := make([]dto.FieldResponse, len(fields))
	for i, field := range fields {
		res[i] = dto.FieldResponse{}.FromModel(field)
	}

	return res, nil
}

func (s *fieldService) GetApprovalStatus(ctx context.Context, ownerID string) ([]dto.FieldApprovalStatusResponse, error) {
	rows, err := s.repo.GetApprovalStatusByOwner(ctx, s.db, helper.PgUUID(ownerID))
	if err != nil {
		s.logger.Error(identifier, "getApprovalStatus - failed to get statuses: %w", err)

		return nil, failure.InternalError(err)
	}

	res := make([]dto.FieldApprovalStatusResponse, len(rows))
	for i, row := range rows {
		res[i] = dto.FieldApprovalStatusResponse{}.FromModel(row)
	}

	return res, nil
}

func (s *fieldService) GetPending(ctx context.Context) ([]dto.PendingFieldResponse, error) {
	rows, err := s.repo.GetPendingFields(ctx, s.db)
	if err != nil {
		s.logger.Error(identifier, "getPending - failed to get pending fields: %w", err)

		return nil, failure.InternalError(err)
	}

	res := make([]dto.PendingFieldResponse, len(rows))
	for i, row := range rows {
		res[i] = dto.PendingFieldResponse{}.FromModel(row)
	}

	return res, nil
}

func (s *fieldService) UpdateApproval(ctx context.Context, id string, req dto.FieldApprovalRequest) (res dto.FieldResponse, err error) {
	status, err := constant.ParseApprovalStatus(req.Status)
	if err != nil || status == constant.ApprovalPending {
		s.logger.Error(identifier, "updateApproval - invalid status %s", req.Status)

		return res, failure.BadRequestFromString("status must be Approved or Rejected")
	}

	updated, err := s.repo.UpdateApprovalStatus(ctx, s.db, repository.UpdateApprovalStatusParams{
		ID:             helper.PgUUID(id),
		ApprovalStatus: status.String(),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = failure.NotFound(fmt.Sprintf("field %s - not found", id))
			s.logger.Error(identifier, "updateApproval - field not found: %w", err)

			return res, err
		}

		s.logger.Error(identifier, "updateApproval - failed to update status: %w", err)

		return res, failure.InternalError(err)
	}

	go s.invalidateApprovedCache(ctx)

	return res.FromModel(updated), nil
}

func (s *fieldService) GetApprovedFields(ctx context.Context, req gdto.PaginationRequest) (res dto.GetFieldsResponse, err error) {
	page, limit := helper.DefaultPagination(req.Page, req.Limit)

	keyArgs := map[string]string{
		"page":  strconv.Itoa(page),
		"limit": strconv.Itoa(limit),
	}
	cacheKey := helper.BuildCacheKey(cacheGetFieldsKey, helper.GenerateUniqueKey(keyArgs))

	var cacheRes dto.GetFieldsResponse

	err = s.cache.Get(ctx, cacheKey, &cacheRes)
	if err == nil {
		s.logger.Info(identifier, "getApprovedFields - cache hit")

		return cacheRes, nil
	}

	fields, err := s.repo.GetApprovedFields(ctx, s.db, repository.GetApprovedFieldsParams{
		Limit:  int32(limit),
		Offset: int32(helper.CalculateOffset(page, limit)),
	})
	if err != nil {
		s.logger.Error(identifier, "getApprovedFields - failed to get fields: %w", err)

		return res, failure.InternalError(err)
	}

	total, err := s.repo.CountApprovedFields(ctx, s.db)
	if err != nil {
		s.logger.Error(identifier, "getApprovedFields - failed to count fields: %w", err)

		return res, failure.InternalError(err)
	}

	res.FromModel(fields, int(total), limit)

	go func() {
		cacheErr := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.Duration)
		if cacheErr != nil {
			s.logger.Error(identifier, "getApprovedFields - failed to save cache: %w", cacheErr)
		}
	}()

	return res, nil
}

func (s *fieldService) Categories() dto.CategoriesResponse {
	return dto.CategoriesResponse{Categories: constant.SportsCategories}
}
