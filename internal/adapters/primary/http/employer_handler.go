package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	mw "github.com/consultrack/jobtrack-backend/internal/adapters/primary/http/middleware"
	"github.com/consultrack/jobtrack-backend/internal/adapters/primary/validation"
	"github.com/consultrack/jobtrack-backend/internal/auth"
	"github.com/consultrack/jobtrack-backend/internal/core/domain"
	"github.com/consultrack/jobtrack-backend/internal/core/ports"
)

// EmployerHandler handles HTTP requests for employers
type EmployerHandler struct {
	employerService ports.EmployerService
	errorHandler    *ErrorHandler
	logger          *slog.Logger
}

// NewEmployerHandler creates a new employer handler
func NewEmployerHandler(employerService ports.EmployerService, errorHandler *ErrorHandler, logger *slog.Logger) *EmployerHandler {
	return &EmployerHandler{
		employerService: employerService,
		errorHandler:    errorHandler,
		logger:          logger.With("handler", "employer"),
	}
}

// RegisterRoutes sets up the routing for all employer endpoints.
func (h *EmployerHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.HandleListMyEmployers)
	r.Post("/", h.HandleCreateEmployer)

	r.Route("/{employerID}", func(r chi.Router) {
		r.Put("/", h.HandleUpdateEmployer)
		r.Delete("/", h.HandleDeleteEmployer)
	})
}

// EmployerRequest defines the expected JSON body for creating or updating an employer
type EmployerRequest struct {
	Name         string `json:"name"`
	ContactEmail string `json:"contactEmail"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
}

// Validate validates the employer request
func (r *EmployerRequest) Validate() error {
	v := validation.NewValidator()

	v.Required("name", r.Name).
		MaxLength("name", r.Name, 255)
	v.Email("contactEmail", r.ContactEmail)

	if v.HasErrors() {
		return v.Errors()
	}
	return nil
}

// EmployerDTO defines the JSON response for employers.
type EmployerDTO struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	ContactEmail string  `json:"contactEmail,omitempty"`
	Phone        string  `json:"phone,omitempty"`
	Address      string  `json:"address,omitempty"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    *string `json:"updatedAt"`
}

func toEmployerDTO(employer *domain.Employer) EmployerDTO {
	var updatedAt *string
	if employer.UpdatedAt != nil {
		value := employer.UpdatedAt.Format(time.RFC3339)
		updatedAt = &value
	}

	return EmployerDTO{
		ID:           employer.ID.String(),
		Name:         employer.Name,
		ContactEmail: employer.ContactEmail,
		Phone:        employer.Phone,
		Address:      employer.Address,
		CreatedAt:    employer.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    updatedAt,
	}
}

func toEmployerDTOs(employers []*domain.Employer) []EmployerDTO {
	response := make([]EmployerDTO, 0, len(employers))
	for _, employer := range employers {
		response = append(response, toEmployerDTO(employer))
	}
	return response
}

// HandleListMyEmployers handles GET /employers
func (h *EmployerHandler) HandleListMyEmployers(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.getClaims(w, r)
	if !ok {
		return
	}

	employers, err := h.employerService.ListMyEmployers(r.Context(), claims.UserID)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	WriteList(w, toEmployerDTOs(employers))
}

// HandleCreateEmployer handles POST /employers
func (h *EmployerHandler) HandleCreateEmployer(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.getClaims(w, r)
	if !ok {
		return
	}

	req, err := validation.DecodeAndValidate[EmployerRequest](r)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	if err := req.Validate(); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	employer, err := h.employerService.CreateEmployer(r.Context(), domain.EmployerParams{
		Name:         req.Name,
		ContactEmail: req.ContactEmail,
		Phone:        req.Phone,
		Address:      req.Address,
	}, claims.UserID)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	h.logger.Info("employer created",
		"employer_id", employer.ID,
		"user_id", claims.UserID,
	)

	WriteCreated(w, toEmployerDTO(employer))
}

// HandleUpdateEmployer handles PUT /employers/{employerID}
func (h *EmployerHandler) HandleUpdateEmployer(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.getClaims(w, r)
	if !ok {
		return
	}

	employerID, err := h.parseEmployerID(r)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	req, err := validation.DecodeAndValidate[EmployerRequest](r)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	if err := req.Validate(); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	employer, err := h.employerService.UpdateEmployer(r.Context(), employerID, domain.EmployerParams{
		Name:         req.Name,
		ContactEmail: req.ContactEmail,
		Phone:        req.Phone,
		Address:      req.Address,
	}, claims.UserID)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, toEmployerDTO(employer))
}

// HandleDeleteEmployer handles DELETE /employers/{employerID}
func (h *EmployerHandler) HandleDeleteEmployer(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.getClaims(w, r)
	if !ok {
		return
	}

	employerID, err := h.parseEmployerID(r)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	if err := h.employerService.DeleteEmployer(r.Context(), employerID, claims.UserID); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	WriteNoContent(w)
}

func (h *EmployerHandler) getClaims(w http.ResponseWriter, r *http.Request) (*auth.Claims, bool) {
	claims, ok := mw.GetClaims(r.Context())
	if !ok {
		WriteJSON(w, http.StatusUnauthorized, ErrorResponse{
			Error: "Not authorized",
			Code:  "UNAUTHORIZED",
		})
		return nil, false
	}
	return claims, true
}

func (h *EmployerHandler) parseEmployerID(r *http.Request) (uuid.UUID, error) {
	employerID, err := uuid.Parse(chi.URLParam(r, "employerID"))
	if err != nil {
		v := validation.NewValidator()
		v.Custom("employerID", false, "Invalid employer ID")
		return uuid.Nil, v.Errors()
	}
	return employerID, nil
}
