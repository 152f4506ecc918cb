package service

import (
	"context"
	"os"
	"time"

	"gym-retention-be/internal/dto"
	"gym-retention-be/internal/entity"
	"gym-retention-be/internal/pkg/apperror"
	"gym-retention-be/internal/repository/unitofwork"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const accessTokenTTL = 24 * time.Hour

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterStaffRequest) (*dto.RegisterStaffResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory) IAuthService {
	return &authService{
		uowFactory: uowFactory,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterStaffRequest) (*dto.RegisterStaffResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.StaffRepository().GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewValidation("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	staff := entity.StaffUser{
		Id:           uuid.New(),
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Role:         entity.StaffRole(req.Role),
		CreatedAt:    time.Now(),
	}

	if err := uow.StaffRepository().Create(ctx, &staff); err != nil {
		return nil, err
	}

	return &dto.RegisterStaffResponse{
		Id:    staff.Id,
		Email: staff.Email,
	}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	staff, err := uow.StaffRepository().GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, apperror.NewValidation("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperror.NewValidation("invalid email or password")
	}

	claims := jwt.MapClaims{
		"user_id": staff.Id.String(),
		"role":    string(staff.Role),
		"exp":     time.Now().Add(accessTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken: signedToken,
		User: dto.StaffDTO{
			Id:       staff.Id,
			Email:    staff.Email,
			FullName: staff.FullName,
			Role:     string(staff.Role),
		},
	}, nil
}
