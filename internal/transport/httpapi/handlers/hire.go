package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aditya-1310/experiment-dehix-sub000/internal/domain"
	"github.com/aditya-1310/experiment-dehix-sub000/internal/metrics"
	"github.com/aditya-1310/experiment-dehix-sub000/internal/repository"
	"github.com/aditya-1310/experiment-dehix-sub000/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// businessID извлекает идентичность бизнеса; в проде здесь auth-токен,
// в этом сервисе — заголовок от внешнего шлюза.
func businessID(r *http.Request) string {
	return r.Header.Get("X-Business-ID")
}

type hireBody struct {
	DomainID           string `json:"domainId"`
	DomainName         string `json:"domainName"`
	SkillID            string `json:"skillId"`
	SkillName          string `json:"skillName"`
	Description        string `json:"description"`
	Experience         string `json:"experience"`
	Status             string `json:"status"`
	Visible            bool   `json:"visible"`
	Bookmarked         bool   `json:"bookmarked"`
	FreelancerRequired *int   `json:"freelancerRequired"`
}

func (b hireBody) toInput() service.CreateInput {
	return service.CreateInput{
		DomainID:           b.DomainID,
		DomainName:         b.DomainName,
		SkillID:            b.SkillID,
		SkillName:          b.SkillName,
		Description:        b.Description,
		Experience:         b.Experience,
		Status:             b.Status,
		Visible:            b.Visible,
		Bookmarked:         b.Bookmarked,
		FreelancerRequired: b.FreelancerRequired,
	}
}

func writeData(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"data": data})
}

// RegisterHire монтирует CRUD hire-запросов. dedupeMW вешается только на
// создание: это единственный маршрут, где тихий double-submit дорого стоит
// (двойное списание connects).
func RegisterHire(r chi.Router, db *sqlx.DB, log *zap.Logger, hireCost int, dedupeMW func(http.Handler) http.Handler) {
	hires := repository.NewHireRepo(db)
	profiles := repository.NewProfilesRepo(db)
	dispatcher := service.NewDispatcher(repository.NewNotificationsRepo(db), log)
	pipeline := service.NewPipelineService(hires, profiles, dispatcher, hireCost)

	r.With(dedupeMW).Post("/hire-dehixtalent", func(w http.ResponseWriter, r *http.Request) {
		bid := businessID(r)
		if bid == "" {
			Unauthorized(w)
			return
		}
		var body hireBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			BadRequest(w, "invalid json")
			return
		}
		created, err := pipeline.Create(r.Context(), bid, body.toInput())
		if err != nil {
			if errors.Is(err, domain.ErrInsufficientConnects) {
				metrics.InsufficientConnectsTotal.Inc()
			}
			writeError(w, mapError(err))
			return
		}
		metrics.HireCreatedTotal.Inc()
		writeData(w, http.StatusCreated, toHireView(created))
	})

	r.Get("/hire-dehixtalent", func(w http.ResponseWriter, r *http.Request) {
		bid := businessID(r)
		if bid == "" {
			Unauthorized(w)
			return
		}
		list, err := pipeline.ListByBusiness(r.Context(), bid)
		if err != nil {
			writeError(w, mapError(err))
			return
		}
		if len(list) == 0 {
			writeError(w, apiError{HTTP: http.StatusNotFound, Code: "HIRE_DEHIX_TALENT_NOT_FOUND", Detail: "hire dehix talent not found"})
			return
		}
		writeData(w, http.StatusOK, toHireViews(list))
	})

	r.Put("/hire-dehixtalent/{id}", func(w http.ResponseWriter, r *http.Request) {
		var body hireBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			BadRequest(w, "invalid json")
			return
		}
		updated, err := pipeline.Update(r.Context(), chi.URLParam(r, "id"), body.toInput())
		if err != nil {
			writeError(w, mapError(err))
			return
		}
		writeData(w, http.StatusOK, toHireView(updated))
	})

	r.Delete("/hire-dehixtalent/{id}", func(w http.ResponseWriter, r *http.Request) {
		if err := pipeline.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			writeError(w, mapError(err))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"message": "hire dehix talent deleted"})
	})

	// PATCH status/visible; переход в APPROVED дополнительно рассылает
	// уведомления обеим сторонам.
	r.Patch("/hire-dehixtalent/{id}", func(w http.ResponseWriter, r *http.Request) {
		bid := businessID(r)
		if bid == "" {
			Unauthorized(w)
			return
		}
		var body struct {
			Status  *string `json:"status"`
			Visible *bool   `json:"visible"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			BadRequest(w, "invalid json")
			return
		}
		updated, err := pipeline.SetStatusVisibility(r.Context(), bid, chi.URLParam(r, "id"), body.Status, body.Visible)
		if err != nil {
			writeError(w, mapError(err))
			return
		}
		writeData(w, http.StatusOK, toHireView(updated))
	})

	r.Put("/hire-dehixtalent/bookmarked/{id}", func(w http.ResponseWriter, r *http.Request) {
		bid := businessID(r)
		if bid == "" {
			Unauthorized(w)
			return
		}
		var body struct {
			Bookmarked bool `json:"bookmarked"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			BadRequest(w, "invalid json")
			return
		}
		updated, err := pipeline.SetBookmarked(r.Context(), bid, chi.URLParam(r, "id"), body.Bookmarked)
		if err != nil {
			writeError(w, mapError(err))
			return
		}
		writeData(w, http.StatusOK, toHireView(updated))
	})
}
