package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/aditya-1310/experiment-dehix-sub000/internal/domain"
	"github.com/aditya-1310/experiment-dehix-sub000/internal/metrics"
	"github.com/aditya-1310/experiment-dehix-sub000/internal/repository"
	"github.com/aditya-1310/experiment-dehix-sub000/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type candidateBody struct {
	FreelancerID  string `json:"freelancerId"`
	DehixTalentID string `json:"dehixTalentId"`
}

func RegisterCandidates(r chi.Router, db *sqlx.DB, log *zap.Logger) {
	hires := repository.NewHireRepo(db)
	cands := repository.NewCandidatesRepo(db)
	profiles := repository.NewProfilesRepo(db)

	lobby := service.NewLobbyService(hires, cands, log)
	invitations := service.NewInvitationService(hires, cands)
	decisions := service.NewDecisionService(hires, cands)
	roster := service.NewRosterService(hires, cands, profiles)

	// Bulk-сев lobby по многим запросам сразу; неразрешимые id пропускаются.
	r.Put("/hire-dehixtalent/add_into_lobby", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			HireDehixTalentID []string `json:"hireDehixTalent_id"`
			FreelancerID      string   `json:"freelancerId"`
			DehixTalentID     []string `json:"dehixTalentId"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			BadRequest(w, "invalid json")
			return
		}
		updated, err := lobby.AddToLobby(r.Context(), body.HireDehixTalentID, body.FreelancerID, body.DehixTalentID)
		if err != nil {
			writeError(w, mapError(err))
			return
		}
		metrics.LobbyAddsTotal.Add(float64(len(updated) * len(body.DehixTalentID)))
		writeData(w, http.StatusOK, toHireViews(updated))
	})

	r.Put("/hire-dehixtalent/{id}/invite", func(w http.ResponseWriter, r *http.Request) {
		var body candidateBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			BadRequest(w, "invalid json")
			return
		}
		updated, err := invitations.Invite(r.Context(), chi.URLParam(r, "id"), body.FreelancerID, body.DehixTalentID)
		if err != nil {
			writeError(w, mapError(err))
			return
		}
		metrics.InvitationsTotal.Inc()
		writeData(w, http.StatusOK, toHireView(updated))
	})

	r.Put("/hire-dehixtalent/{id}/select", func(w http.ResponseWriter, r *http.Request) {
		var body candidateBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			BadRequest(w, "invalid json")
			return
		}
		updated, err := decisions.Select(r.Context(), chi.URLParam(r, "id"), body.FreelancerID, body.DehixTalentID)
		if err != nil {
			writeError(w, mapError(err))
			return
		}
		metrics.SelectionsTotal.Inc()
		writeData(w, http.StatusOK, toHireView(updated))
	})

	r.Put("/hire-dehixtalent/{id}/reject", func(w http.ResponseWriter, r *http.Request) {
		var body candidateBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			BadRequest(w, "invalid json")
			return
		}
		updated, err := decisions.Reject(r.Context(), chi.URLParam(r, "id"), body.FreelancerID, body.DehixTalentID)
		if err != nil {
			writeError(w, mapError(err))
			return
		}
		metrics.RejectionsTotal.Inc()
		writeData(w, http.StatusOK, toHireView(updated))
	})

	rosterGet := func(stage domain.Stage) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			entries, err := roster.Resolve(r.Context(), chi.URLParam(r, "id"), stage)
			if err != nil {
				writeError(w, mapError(err))
				return
			}
			writeData(w, http.StatusOK, toRosterViews(entries, stage))
		}
	}
	r.Get("/hire-dehixtalent/{id}/in-lobby", rosterGet(domain.StageLobby))
	r.Get("/hire-dehixtalent/{id}/invited", rosterGet(domain.StageInvited))
	r.Get("/hire-dehixtalent/{id}/selected", rosterGet(domain.StageSelected))
	r.Get("/hire-dehixtalent/{id}/rejected", rosterGet(domain.StageRejected))
}
