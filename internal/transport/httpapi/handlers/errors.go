package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aditya-1310/experiment-dehix-sub000/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
)

// apiError описывает маппинг ошибок домена в контракт API.
type apiError struct {
	HTTP   int
	Code   string
	Detail string
}

// writeError сериализует ответ в формат {"error":{"code","message"}}.
func writeError(w http.ResponseWriter, ae apiError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(ae.HTTP)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{
			"code":    ae.Code,
			"message": ae.Detail,
		},
	})
}

// mapError принимает исходную ошибку и возвращает готовый apiError.
// Ошибки проверки членства называют непройденное предусловие, чтобы
// вызывающий мог его восстановить (пересеять lobby, перепригласить).
func mapError(err error) apiError {
	if err == nil {
		return apiError{HTTP: http.StatusOK, Code: "OK", Detail: "ok"}
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		return apiError{HTTP: http.StatusBadRequest, Code: "VALIDATION", Detail: err.Error()}
	case errors.Is(err, domain.ErrInsufficientConnects):
		return apiError{HTTP: http.StatusPaymentRequired, Code: "INSUFFICIENT_CONNECTS", Detail: "insufficient connects to create a hire request"}
	case errors.Is(err, domain.ErrNotInLobby):
		return apiError{HTTP: http.StatusNotFound, Code: "FREELANCER_NOT_IN_LOBBY", Detail: "freelancer id not present in lobby"}
	case errors.Is(err, domain.ErrNotInvited):
		return apiError{HTTP: http.StatusNotFound, Code: "FREELANCER_NOT_INVITED", Detail: "freelancer is not invited"}
	case errors.Is(err, domain.ErrBusinessNotFound):
		return apiError{HTTP: http.StatusNotFound, Code: "BUSINESS_NOT_FOUND", Detail: "business not found"}
	case errors.Is(err, domain.ErrFreelancerNotFound):
		return apiError{HTTP: http.StatusNotFound, Code: "FREELANCER_NOT_FOUND", Detail: "freelancer not found"}
	case errors.Is(err, domain.ErrNotFound):
		return apiError{HTTP: http.StatusNotFound, Code: "HIRE_DEHIX_TALENT_NOT_FOUND", Detail: "hire dehix talent not found"}
	}

	if errors.Is(err, sql.ErrNoRows) {
		return apiError{HTTP: http.StatusNotFound, Code: "NOT_FOUND", Detail: "resource not found"}
	}

	// Конфликт уникальности -> 409; прочее от Postgres остаётся INTERNAL
	// без утечки деталей.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return apiError{HTTP: http.StatusConflict, Code: "CONFLICT", Detail: "unique constraint violation"}
	}

	return apiError{HTTP: http.StatusInternalServerError, Code: "INTERNAL", Detail: "internal error"}
}

// BadRequest 400.
func BadRequest(w http.ResponseWriter, msg string) {
	writeError(w, apiError{HTTP: http.StatusBadRequest, Code: "BAD_REQUEST", Detail: msg})
}

// Unauthorized 401 — нет заголовка идентичности бизнеса.
func Unauthorized(w http.ResponseWriter) {
	writeError(w, apiError{HTTP: http.StatusUnauthorized, Code: "UNAUTHORIZED", Detail: "business identity required"})
}
