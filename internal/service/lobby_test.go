package service

import (
	"context"
	"errors"
	"testing"

	"github.com/aditya-1310/experiment-dehix-sub000/internal/domain"
	"go.uber.org/zap"
)

func TestLobbyService_AddToLobby(t *testing.T) {
	ctx := context.Background()

	t.Run("seeds every request and talent pair", func(t *testing.T) {
		store := newFakeStore()
		store.addRequest(domain.HireRequest{ID: "R1"})
		store.addRequest(domain.HireRequest{ID: "R2"})
		svc := NewLobbyService(store, store, zap.NewNop())

		results, err := svc.AddToLobby(ctx, []string{"R1", "R2"}, "F1", []string{"T1", "T2"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(results) != 2 {
			t.Fatalf("expected 2 updated requests, got %d", len(results))
		}
		for _, hr := range results {
			if len(hr.InLobby) != 2 {
				t.Fatalf("expected 2 lobby entries in %s, got %d", hr.ID, len(hr.InLobby))
			}
			if hr.InLobby[0].ID == hr.InLobby[1].ID {
				t.Fatalf("lobby entry ids must be distinct")
			}
		}
	})

	t.Run("skips unresolvable request ids", func(t *testing.T) {
		store := newFakeStore()
		store.addRequest(domain.HireRequest{ID: "R1"})
		svc := NewLobbyService(store, store, zap.NewNop())

		results, err := svc.AddToLobby(ctx, []string{"R_MISSING", "R1"}, "F1", []string{"T1"})
		if err != nil {
			t.Fatalf("bulk seed must not fail on missing id, got %v", err)
		}
		if len(results) != 1 || results[0].ID != "R1" {
			t.Fatalf("expected only R1 in results, got %v", results)
		}
	})

	t.Run("repeat call appends duplicates", func(t *testing.T) {
		store := newFakeStore()
		store.addRequest(domain.HireRequest{ID: "R1"})
		svc := NewLobbyService(store, store, zap.NewNop())

		if _, err := svc.AddToLobby(ctx, []string{"R1"}, "F1", []string{"T1"}); err != nil {
			t.Fatalf("first seed: %v", err)
		}
		results, err := svc.AddToLobby(ctx, []string{"R1"}, "F1", []string{"T1"})
		if err != nil {
			t.Fatalf("second seed: %v", err)
		}
		// Дедупликации нет: одинаковая пара даёт две записи.
		if got := len(results[0].InLobby); got != 2 {
			t.Fatalf("expected 2 lobby entries after repeat seed, got %d", got)
		}
		if results[0].InLobby[0].ID == results[0].InLobby[1].ID {
			t.Fatalf("duplicate entries must keep distinct ids")
		}
	})

	t.Run("validates input", func(t *testing.T) {
		store := newFakeStore()
		svc := NewLobbyService(store, store, zap.NewNop())

		if _, err := svc.AddToLobby(ctx, nil, "F1", []string{"T1"}); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("expected validation error for empty request ids, got %v", err)
		}
		if _, err := svc.AddToLobby(ctx, []string{"R1"}, "", []string{"T1"}); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("expected validation error for empty freelancer, got %v", err)
		}
		if _, err := svc.AddToLobby(ctx, []string{"R1"}, "F1", nil); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("expected validation error for empty talents, got %v", err)
		}
	})
}
