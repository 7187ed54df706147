package service

import (
	"context"
	"errors"
	"testing"

	"github.com/aditya-1310/experiment-dehix-sub000/internal/domain"
)

func TestDecisionService_Select(t *testing.T) {
	ctx := context.Background()

	t.Run("selects invited freelancer", func(t *testing.T) {
		store := newFakeStore()
		store.addRequest(domain.HireRequest{
			ID:      "R1",
			InLobby: []domain.CandidateEntry{{FreelancerID: "F1", DehixTalentID: "T1"}},
			Invited: []domain.CandidateEntry{{FreelancerID: "F1", DehixTalentID: "T1", Status: domain.InvitedPending}},
		})
		svc := NewDecisionService(store, store)

		updated, err := svc.Select(ctx, "R1", "F1", "T1")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(updated.Selected) != 1 {
			t.Fatalf("expected 1 selected entry, got %d", len(updated.Selected))
		}
		if len(updated.Invited) != 1 {
			t.Fatalf("invited entry must survive selection")
		}
	})

	t.Run("fails when not invited", func(t *testing.T) {
		store := newFakeStore()
		store.addRequest(domain.HireRequest{
			ID:      "R1",
			InLobby: []domain.CandidateEntry{{FreelancerID: "F1", DehixTalentID: "T1"}},
		})
		svc := NewDecisionService(store, store)

		_, err := svc.Select(ctx, "R1", "F1", "T1")
		if !errors.Is(err, domain.ErrNotInvited) {
			t.Fatalf("expected ErrNotInvited, got %v", err)
		}
	})
}

func TestDecisionService_Reject(t *testing.T) {
	ctx := context.Background()

	t.Run("requires lobby membership", func(t *testing.T) {
		store := newFakeStore()
		// Приглашение без lobby-записи: состояние достижимо только прямой
		// правкой, но проверка обязана его ловить.
		store.addRequest(domain.HireRequest{
			ID:      "R1",
			Invited: []domain.CandidateEntry{{FreelancerID: "F1", DehixTalentID: "T1"}},
		})
		svc := NewDecisionService(store, store)

		_, err := svc.Reject(ctx, "R1", "F1", "T1")
		if !errors.Is(err, domain.ErrNotInLobby) {
			t.Fatalf("expected ErrNotInLobby, got %v", err)
		}
	})

	t.Run("requires invitation", func(t *testing.T) {
		store := newFakeStore()
		store.addRequest(domain.HireRequest{
			ID:      "R1",
			InLobby: []domain.CandidateEntry{{FreelancerID: "F1", DehixTalentID: "T1"}},
		})
		svc := NewDecisionService(store, store)

		_, err := svc.Reject(ctx, "R1", "F1", "T1")
		if !errors.Is(err, domain.ErrNotInvited) {
			t.Fatalf("expected ErrNotInvited, got %v", err)
		}
	})

	t.Run("rejects invited lobby member", func(t *testing.T) {
		store := newFakeStore()
		store.addRequest(domain.HireRequest{
			ID:      "R1",
			InLobby: []domain.CandidateEntry{{FreelancerID: "F1", DehixTalentID: "T1"}},
			Invited: []domain.CandidateEntry{{FreelancerID: "F1", DehixTalentID: "T1"}},
		})
		svc := NewDecisionService(store, store)

		updated, err := svc.Reject(ctx, "R1", "F1", "T1")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(updated.Rejected) != 1 {
			t.Fatalf("expected 1 rejected entry, got %d", len(updated.Rejected))
		}
	})

	t.Run("reject after select is permitted", func(t *testing.T) {
		store := newFakeStore()
		store.addRequest(domain.HireRequest{
			ID:      "R1",
			InLobby: []domain.CandidateEntry{{FreelancerID: "F1", DehixTalentID: "T1"}},
			Invited: []domain.CandidateEntry{{FreelancerID: "F1", DehixTalentID: "T1"}},
		})
		svc := NewDecisionService(store, store)

		if _, err := svc.Select(ctx, "R1", "F1", "T1"); err != nil {
			t.Fatalf("select: %v", err)
		}
		// Терминальные исходы не взаимоисключающие — отражает текущую
		// продуктовую семантику.
		updated, err := svc.Reject(ctx, "R1", "F1", "T1")
		if err != nil {
			t.Fatalf("reject after select must be permitted, got %v", err)
		}
		if len(updated.Selected) != 1 || len(updated.Rejected) != 1 {
			t.Fatalf("expected entry in both terminal lists, got %d/%d",
				len(updated.Selected), len(updated.Rejected))
		}
	})

	t.Run("fails on missing request", func(t *testing.T) {
		store := newFakeStore()
		svc := NewDecisionService(store, store)

		if _, err := svc.Reject(ctx, "R404", "F1", "T1"); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}
