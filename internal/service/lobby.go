package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aditya-1310/experiment-dehix-sub000/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type HireGetter interface {
	Get(ctx context.Context, id string) (domain.HireRequest, error)
}

type LobbyAppender interface {
	AppendLobby(ctx context.Context, hireID string, entries []domain.CandidateEntry) error
}

// LobbyService сеет кандидатов в lobby сразу нескольких hire-запросов.
type LobbyService struct {
	hires HireGetter
	cands LobbyAppender
	log   *zap.Logger
}

func NewLobbyService(hires HireGetter, cands LobbyAppender, log *zap.Logger) *LobbyService {
	return &LobbyService{hires: hires, cands: cands, log: log}
}

// AddToLobby — bulk best-effort: неразрешимый hire-запрос пропускается с
// warning, остальные получают по записи на каждый dehixTalentId. Повторный
// вызов с теми же аргументами даёт новые записи — дедупликации нет.
func (s *LobbyService) AddToLobby(ctx context.Context, hireIDs []string, freelancerID string, talentIDs []string) ([]domain.HireRequest, error) {
	if freelancerID == "" {
		return nil, fmt.Errorf("%w: freelancerId required", domain.ErrValidation)
	}
	if len(hireIDs) == 0 {
		return nil, fmt.Errorf("%w: hireDehixTalent_id required", domain.ErrValidation)
	}
	if len(talentIDs) == 0 {
		return nil, fmt.Errorf("%w: dehixTalentId required", domain.ErrValidation)
	}

	results := make([]domain.HireRequest, 0, len(hireIDs))
	for _, hireID := range hireIDs {
		if _, err := s.hires.Get(ctx, hireID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				s.log.Warn("hire request not found, skipping lobby seed",
					zap.String("hire_request_id", hireID))
				continue
			}
			return nil, err
		}

		entries := make([]domain.CandidateEntry, 0, len(talentIDs))
		for _, talentID := range talentIDs {
			entries = append(entries, domain.CandidateEntry{
				ID:            uuid.NewString(),
				FreelancerID:  freelancerID,
				DehixTalentID: talentID,
			})
		}
		if err := s.cands.AppendLobby(ctx, hireID, entries); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				// Запрос исчез между проверкой и записью.
				s.log.Warn("hire request vanished during lobby seed",
					zap.String("hire_request_id", hireID))
				continue
			}
			return nil, err
		}

		updated, err := s.hires.Get(ctx, hireID)
		if err != nil {
			return nil, err
		}
		results = append(results, updated)
	}
	return results, nil
}
