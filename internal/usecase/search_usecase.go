package usecase

import (
	"context"
	"strings"

	"healthcare-management-system/internal/converter"
	"healthcare-management-system/internal/delivery/dto"
	"healthcare-management-system/internal/domain/entity"
	"healthcare-management-system/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type SearchUsecase interface {
	Patients(ctx context.Context, query string) ([]dto.UserResponse, error)
	Doctors(ctx context.Context, query string) ([]dto.UserResponse, error)
	Users(ctx context.Context, query, role string) ([]dto.UserResponse, error)
	Advanced(ctx context.Context, req *dto.SearchRequest) ([]dto.UserResponse, error)
}

type searchUsecase struct {
	db       repository.Transactor
	log      *logrus.Logger
	userRepo repository.UserRepository
}

func NewSearchUsecase(db repository.Transactor, log *logrus.Logger, userRepo repository.UserRepository) SearchUsecase {
	return &searchUsecase{
		db:       db,
		log:      log,
		userRepo: userRepo,
	}
}

func (u *searchUsecase) Patients(ctx context.Context, query string) ([]dto.UserResponse, error) {
	return u.required(ctx, entity.UserFilter{Query: query, Role: entity.RolePatient})
}

func (u *searchUsecase) Doctors(ctx context.Context, query string) ([]dto.UserResponse, error) {
	return u.required(ctx, entity.UserFilter{Query: query, Role: entity.RoleDoctor})
}

// Users searches every role unless role names one
func (u *searchUsecase) Users(ctx context.Context, query, role string) ([]dto.UserResponse, error) {
	filter := entity.UserFilter{Query: query}
	if role != "" {
		r := entity.Role(role)
		if !r.Valid() {
			return nil, ErrInvalidRole
		}
		filter.Role = r
	}
	return u.required(ctx, filter)
}

func (u *searchUsecase) Advanced(ctx context.Context, req *dto.SearchRequest) ([]dto.UserResponse, error) {
	filter := entity.UserFilter{
		Query:      strings.TrimSpace(req.Query),
		Department: req.Department,
		Gender:     req.Gender,
		SortBy:     req.SortBy,
		Order:      req.Order,
	}
	if req.Role != "" {
		r := entity.Role(req.Role)
		if !r.Valid() {
			return nil, ErrInvalidRole
		}
		filter.Role = r
	}
	return u.search(ctx, filter)
}

func (u *searchUsecase) required(ctx context.Context, filter entity.UserFilter) ([]dto.UserResponse, error) {
	filter.Query = strings.TrimSpace(filter.Query)
	if filter.Query == "" {
		return nil, ErrQueryRequired
	}
	return u.search(ctx, filter)
}

func (u *searchUsecase) search(ctx context.Context, filter entity.UserFilter) ([]dto.UserResponse, error) {
	users, err := u.userRepo.Search(u.db.Conn(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to search users: %+v", err)
		return nil, err
	}
	return converter.UsersToResponses(users), nil
}
