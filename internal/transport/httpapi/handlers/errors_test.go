package handlers

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/aditya-1310/experiment-dehix-sub000/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantHTTP int
		wantCode string
	}{
		{"validation", fmt.Errorf("%w: description required", domain.ErrValidation), http.StatusBadRequest, "VALIDATION"},
		{"insufficient connects", domain.ErrInsufficientConnects, http.StatusPaymentRequired, "INSUFFICIENT_CONNECTS"},
		{"not in lobby", domain.ErrNotInLobby, http.StatusNotFound, "FREELANCER_NOT_IN_LOBBY"},
		{"not invited", domain.ErrNotInvited, http.StatusNotFound, "FREELANCER_NOT_INVITED"},
		{"business missing", domain.ErrBusinessNotFound, http.StatusNotFound, "BUSINESS_NOT_FOUND"},
		{"freelancer missing", domain.ErrFreelancerNotFound, http.StatusNotFound, "FREELANCER_NOT_FOUND"},
		{"hire request missing", domain.ErrNotFound, http.StatusNotFound, "HIRE_DEHIX_TALENT_NOT_FOUND"},
		{"raw no rows", sql.ErrNoRows, http.StatusNotFound, "NOT_FOUND"},
		{"unique violation", &pgconn.PgError{Code: "23505"}, http.StatusConflict, "CONFLICT"},
		{"other pg error", &pgconn.PgError{Code: "40001"}, http.StatusInternalServerError, "INTERNAL"},
		{"opaque error", errors.New("boom"), http.StatusInternalServerError, "INTERNAL"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ae := mapError(tc.err)
			if ae.HTTP != tc.wantHTTP {
				t.Errorf("status: got %d, want %d", ae.HTTP, tc.wantHTTP)
			}
			if ae.Code != tc.wantCode {
				t.Errorf("code: got %s, want %s", ae.Code, tc.wantCode)
			}
		})
	}

	t.Run("wrapped errors unwrap", func(t *testing.T) {
		err := fmt.Errorf("get hire request: %w", domain.ErrNotFound)
		if ae := mapError(err); ae.Code != "HIRE_DEHIX_TALENT_NOT_FOUND" {
			t.Errorf("code: got %s", ae.Code)
		}
	})
}
