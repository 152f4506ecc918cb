package service

import (
	"context"
	"time"

	"gym-retention-be/internal/dto"
	"gym-retention-be/internal/entity"
	"gym-retention-be/internal/pkg/apperror"
	"gym-retention-be/internal/repository/memory"
	"gym-retention-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IMemberService interface {
	Create(ctx context.Context, req *dto.CreateMemberRequest) (*dto.CreateMemberResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.MemberResponse, error)
	List(ctx context.Context, limit, offset int) ([]*dto.MemberResponse, error)
	UpdateStatus(ctx context.Context, req *dto.UpdateMemberStatusRequest) error
	RecordAttendance(ctx context.Context, req *dto.RecordAttendanceRequest) error
	RecordFeedback(ctx context.Context, req *dto.RecordFeedbackRequest) error
}

type memberService struct {
	uowFactory      unitofwork.RepositoryFactory
	predictionCache *memory.PredictionCache
}

func NewMemberService(uowFactory unitofwork.RepositoryFactory, predictionCache *memory.PredictionCache) IMemberService {
	return &memberService{
		uowFactory:      uowFactory,
		predictionCache: predictionCache,
	}
}

func (s *memberService) Create(ctx context.Context, req *dto.CreateMemberRequest) (*dto.CreateMemberResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	member := entity.Member{
		Id:        uuid.New(),
		FullName:  req.FullName,
		Email:     req.Email,
		Age:       req.Age,
		Gender:    req.Gender,
		Status:    entity.MemberStatusActive,
		CreatedAt: time.Now(),
	}

	if err := uow.MemberRepository().Create(ctx, &member); err != nil {
		return nil, err
	}

	return &dto.CreateMemberResponse{Id: member.Id}, nil
}

func (s *memberService) Show(ctx context.Context, id uuid.UUID) (*dto.MemberResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	member, err := uow.MemberRepository().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, apperror.NewNotFound("member", id.String())
	}

	return memberToResponse(member), nil
}

func (s *memberService) List(ctx context.Context, limit, offset int) ([]*dto.MemberResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	members, err := uow.MemberRepository().FindAll(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.MemberResponse, 0, len(members))
	for _, member := range members {
		res = append(res, memberToResponse(member))
	}
	return res, nil
}

func (s *memberService) UpdateStatus(ctx context.Context, req *dto.UpdateMemberStatusRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	member, err := uow.MemberRepository().GetByID(ctx, req.Id)
	if err != nil {
		return err
	}
	if member == nil {
		return apperror.NewNotFound("member", req.Id.String())
	}

	if err := uow.MemberRepository().UpdateStatus(ctx, req.Id, req.Status); err != nil {
		return err
	}

	// The cached latest prediction is stale once the status flips.
	s.predictionCache.Delete(req.Id)
	return nil
}

func (s *memberService) RecordAttendance(ctx context.Context, req *dto.RecordAttendanceRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	member, err := uow.MemberRepository().GetByID(ctx, req.MemberId)
	if err != nil {
		return err
	}
	if member == nil {
		return apperror.NewNotFound("member", req.MemberId.String())
	}

	attendance := entity.Attendance{
		Id:              uuid.New(),
		MemberId:        req.MemberId,
		ClassType:       req.ClassType,
		Date:            req.Date,
		DurationMinutes: req.DurationMinutes,
		CreatedAt:       time.Now(),
	}
	return uow.AttendanceRepository().Create(ctx, &attendance)
}

func (s *memberService) RecordFeedback(ctx context.Context, req *dto.RecordFeedbackRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	member, err := uow.MemberRepository().GetByID(ctx, req.MemberId)
	if err != nil {
		return err
	}
	if member == nil {
		return apperror.NewNotFound("member", req.MemberId.String())
	}

	feedback := entity.Feedback{
		Id:        uuid.New(),
		MemberId:  req.MemberId,
		Date:      req.Date,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: time.Now(),
	}
	return uow.FeedbackRepository().Create(ctx, &feedback)
}

func memberToResponse(m *entity.Member) *dto.MemberResponse {
	return &dto.MemberResponse{
		Id:        m.Id,
		FullName:  m.FullName,
		Email:     m.Email,
		Age:       m.Age,
		Gender:    m.Gender,
		Status:    m.Status,
		CreatedAt: m.CreatedAt,
	}
}
