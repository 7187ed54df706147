package service

import (
	"context"
	"fmt"

	"github.com/aditya-1310/experiment-dehix-sub000/internal/domain"
	"github.com/google/uuid"
)

// HireStore — контракт HireRequestStore; реализуется repository.HireRepo.
type HireStore interface {
	CreateWithDebit(ctx context.Context, req domain.HireRequest, cost int) (domain.HireRequest, error)
	Get(ctx context.Context, id string) (domain.HireRequest, error)
	Update(ctx context.Context, id string, req domain.HireRequest) (domain.HireRequest, error)
	Delete(ctx context.Context, id string) error
	ListByBusiness(ctx context.Context, businessID string) ([]domain.HireRequest, error)
	SetStatusVisibility(ctx context.Context, id string, status *string, visible *bool) (domain.HireRequest, error)
	SetBookmarked(ctx context.Context, id string, bookmarked bool) (domain.HireRequest, error)
}

type BusinessLookup interface {
	BusinessByID(ctx context.Context, id string) (domain.Business, error)
}

// PipelineService оркестрирует жизненный цикл HireRequest: создание со
// списанием connects, правки полей и терминальные уведомления.
type PipelineService struct {
	store      HireStore
	businesses BusinessLookup
	dispatcher *Dispatcher
	cost       int
}

func NewPipelineService(store HireStore, businesses BusinessLookup, dispatcher *Dispatcher, cost int) *PipelineService {
	return &PipelineService{store: store, businesses: businesses, dispatcher: dispatcher, cost: cost}
}

type CreateInput struct {
	DomainID           string
	DomainName         string
	SkillID            string
	SkillName          string
	Description        string
	Experience         string
	Status             string
	Visible            bool
	Bookmarked         bool
	FreelancerRequired *int
}

// Create валидирует вход и создаёт запрос; списание и вставка — одна единица
// работы в хранилище, при нехватке connects ничего не создаётся.
func (s *PipelineService) Create(ctx context.Context, businessID string, in CreateInput) (domain.HireRequest, error) {
	if businessID == "" {
		return domain.HireRequest{}, fmt.Errorf("%w: business id required", domain.ErrValidation)
	}
	if in.Description == "" {
		return domain.HireRequest{}, fmt.Errorf("%w: description required", domain.ErrValidation)
	}
	if in.Experience == "" {
		return domain.HireRequest{}, fmt.Errorf("%w: experience required", domain.ErrValidation)
	}
	required := 1
	if in.FreelancerRequired != nil {
		required = *in.FreelancerRequired
	}
	if required < 1 {
		return domain.HireRequest{}, fmt.Errorf("%w: freelancerRequired must be >= 1", domain.ErrValidation)
	}
	status := domain.HireStatus(in.Status)
	if status == "" {
		status = domain.HireAdded
	}

	req := domain.HireRequest{
		ID:                 uuid.NewString(),
		BusinessID:         businessID,
		DomainID:           in.DomainID,
		DomainName:         in.DomainName,
		SkillID:            in.SkillID,
		SkillName:          in.SkillName,
		Description:        in.Description,
		Experience:         in.Experience,
		Status:             status,
		Visible:            in.Visible,
		Bookmarked:         in.Bookmarked,
		FreelancerRequired: required,
	}
	return s.store.CreateWithDebit(ctx, req, s.cost)
}

// Update — полная замена редактируемых полей (PUT).
func (s *PipelineService) Update(ctx context.Context, id string, in CreateInput) (domain.HireRequest, error) {
	if in.Description == "" {
		return domain.HireRequest{}, fmt.Errorf("%w: description required", domain.ErrValidation)
	}
	if in.Experience == "" {
		return domain.HireRequest{}, fmt.Errorf("%w: experience required", domain.ErrValidation)
	}
	required := 1
	if in.FreelancerRequired != nil {
		required = *in.FreelancerRequired
	}
	if required < 1 {
		return domain.HireRequest{}, fmt.Errorf("%w: freelancerRequired must be >= 1", domain.ErrValidation)
	}
	status := domain.HireStatus(in.Status)
	if status == "" {
		status = domain.HireAdded
	}

	return s.store.Update(ctx, id, domain.HireRequest{
		DomainID:           in.DomainID,
		DomainName:         in.DomainName,
		SkillID:            in.SkillID,
		SkillName:          in.SkillName,
		Description:        in.Description,
		Experience:         in.Experience,
		Status:             status,
		Visible:            in.Visible,
		Bookmarked:         in.Bookmarked,
		FreelancerRequired: required,
	})
}

func (s *PipelineService) Delete(ctx context.Context, id string) error {
	if _, err := s.store.Get(ctx, id); err != nil {
		return err
	}
	return s.store.Delete(ctx, id)
}

func (s *PipelineService) ListByBusiness(ctx context.Context, businessID string) ([]domain.HireRequest, error) {
	if _, err := s.businesses.BusinessByID(ctx, businessID); err != nil {
		return nil, err
	}
	return s.store.ListByBusiness(ctx, businessID)
}

// SetStatusVisibility — PATCH status/visible. Переход в APPROVED дополнительно
// рассылает уведомления; их сбой не откатывает смену статуса.
func (s *PipelineService) SetStatusVisibility(ctx context.Context, businessID, id string, status *string, visible *bool) (domain.HireRequest, error) {
	if _, err := s.businesses.BusinessByID(ctx, businessID); err != nil {
		return domain.HireRequest{}, err
	}
	updated, err := s.store.SetStatusVisibility(ctx, id, status, visible)
	if err != nil {
		return domain.HireRequest{}, err
	}
	if status != nil && domain.HireStatus(*status) == domain.HireApproved {
		s.dispatcher.OnStatusApproved(ctx, id, businessID)
	}
	return updated, nil
}

func (s *PipelineService) SetBookmarked(ctx context.Context, businessID, id string, bookmarked bool) (domain.HireRequest, error) {
	if _, err := s.businesses.BusinessByID(ctx, businessID); err != nil {
		return domain.HireRequest{}, err
	}
	return s.store.SetBookmarked(ctx, id, bookmarked)
}
