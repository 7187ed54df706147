package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/aditya-1310/experiment-dehix-sub000/internal/repository"
	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"
)

// RegisterConnects — баланс connects бизнеса: чтение и пополнение.
// Списание живёт в транзакции создания hire-запроса.
func RegisterConnects(r chi.Router, db *sqlx.DB) {
	ledger := repository.NewLedgerRepo(db)

	r.Get("/connects", func(w http.ResponseWriter, r *http.Request) {
		bid := businessID(r)
		if bid == "" {
			Unauthorized(w)
			return
		}
		connects, err := ledger.Balance(r.Context(), bid)
		if err != nil {
			writeError(w, mapError(err))
			return
		}
		writeData(w, http.StatusOK, map[string]int{"connects": connects})
	})

	r.Put("/connects/add", func(w http.ResponseWriter, r *http.Request) {
		bid := businessID(r)
		if bid == "" {
			Unauthorized(w)
			return
		}
		var body struct {
			Amount int `json:"amount"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			BadRequest(w, "invalid json")
			return
		}
		if body.Amount <= 0 {
			BadRequest(w, "amount must be positive")
			return
		}
		if err := ledger.Credit(r.Context(), bid, body.Amount); err != nil {
			writeError(w, mapError(err))
			return
		}
		connects, err := ledger.Balance(r.Context(), bid)
		if err != nil {
			writeError(w, mapError(err))
			return
		}
		writeData(w, http.StatusOK, map[string]int{"connects": connects})
	})
}
