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

// CallHandler handles HTTP requests for call records
type CallHandler struct {
	callService  ports.CallService
	errorHandler *ErrorHandler
	logger       *slog.Logger
}

// NewCallHandler creates a new call handler
func NewCallHandler(callService ports.CallService, errorHandler *ErrorHandler, logger *slog.Logger) *CallHandler {
	return &CallHandler{
		callService:  callService,
		errorHandler: errorHandler,
		logger:       logger.With("handler", "call"),
	}
}

// RegisterRoutes sets up the routing for all call endpoints.
func (h *CallHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.HandleListMyCalls)
	r.Post("/", h.HandleCreateCall)

	r.Route("/{callID}", func(r chi.Router) {
		r.Put("/", h.HandleUpdateCall)
		r.Delete("/", h.HandleDeleteCall)
	})
}

// CallRequest defines the expected JSON body for creating or updating a call
type CallRequest struct {
	Name          string  `json:"name"`
	Vendor        string  `json:"vendor"`
	PhoneNumber   string  `json:"phoneNumber"`
	Date          string  `json:"date"`
	EmployerID    *string `json:"employerId"`
	JobID         *string `json:"jobId"`
	Notes         string  `json:"notes"`
	MarketingTeam string  `json:"marketingTeam"`
}

// Validate validates the call request
func (r *CallRequest) Validate() error {
	v := validation.NewValidator()

	v.Required("name", r.Name)
	v.Required("date", r.Date)

	if r.EmployerID != nil {
		v.UUID("employerId", *r.EmployerID)
	}
	if r.JobID != nil {
		v.UUID("jobId", *r.JobID)
	}

	if v.HasErrors() {
		return v.Errors()
	}
	return nil
}

func (r *CallRequest) toParams() (domain.CallParams, error) {
	var employerID, jobID *uuid.UUID

	if r.EmployerID != nil && *r.EmployerID != "" {
		id, err := uuid.Parse(*r.EmployerID)
		if err != nil {
			return domain.CallParams{}, err
		}
		employerID = &id
	}
	if r.JobID != nil && *r.JobID != "" {
		id, err := uuid.Parse(*r.JobID)
		if err != nil {
			return domain.CallParams{}, err
		}
		jobID = &id
	}

	return domain.CallParams{
		Name:          r.Name,
		Vendor:        r.Vendor,
		PhoneNumber:   r.PhoneNumber,
		Date:          r.Date,
		EmployerID:    employerID,
		JobID:         jobID,
		Notes:         r.Notes,
		MarketingTeam: r.MarketingTeam,
	}, nil
}

// CallDTO defines the JSON response for calls.
type CallDTO struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Vendor        string  `json:"vendor,omitempty"`
	PhoneNumber   string  `json:"phoneNumber,omitempty"`
	Date          string  `json:"date"`
	EmployerID    *string `json:"employerId"`
	JobID         *string `json:"jobId"`
	Notes         string  `json:"notes,omitempty"`
	MarketingTeam string  `json:"marketingTeam,omitempty"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     *string `json:"updatedAt"`
}

func toCallDTO(call *domain.Call) CallDTO {
	var employerID, jobID *string
	if call.EmployerID != nil {
		value := call.EmployerID.String()
		employerID = &value
	}
	if call.JobID != nil {
		value := call.JobID.String()
		jobID = &value
	}

	var updatedAt *string
	if call.UpdatedAt != nil {
		value := call.UpdatedAt.Format(time.RFC3339)
		updatedAt = &value
	}

	return CallDTO{
		ID:            call.ID.String(),
		Name:          call.Name,
		Vendor:        call.Vendor,
		PhoneNumber:   call.PhoneNumber,
		Date:          call.Date,
		EmployerID:    employerID,
		JobID:         jobID,
		Notes:         call.Notes,
		MarketingTeam: call.MarketingTeam,
		CreatedAt:     call.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     updatedAt,
	}
}

func toCallDTOs(calls []*domain.Call) []CallDTO {
	response := make([]CallDTO, 0, len(calls))
	for _, call := range calls {
		response = append(response, toCallDTO(call))
	}
	return response
}

// HandleListMyCalls handles GET /calls
func (h *CallHandler) HandleListMyCalls(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.getClaims(w, r)
	if !ok {
		return
	}

	calls, err := h.callService.ListMyCalls(r.Context(), claims.UserID)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	WriteList(w, toCallDTOs(calls))
}

// HandleCreateCall handles POST /calls
func (h *CallHandler) HandleCreateCall(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.getClaims(w, r)
	if !ok {
		return
	}

	req, err := validation.DecodeAndValidate[CallRequest](r)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	if err := req.Validate(); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	params, err := req.toParams()
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	call, err := h.callService.CreateCall(r.Context(), params, claims.UserID)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	h.logger.Info("call recorded",
		"call_id", call.ID,
		"user_id", claims.UserID,
	)

	WriteCreated(w, toCallDTO(call))
}

// HandleUpdateCall handles PUT /calls/{callID}
func (h *CallHandler) HandleUpdateCall(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.getClaims(w, r)
	if !ok {
		return
	}

	callID, err := h.parseCallID(r)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	req, err := validation.DecodeAndValidate[CallRequest](r)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	if err := req.Validate(); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	params, err := req.toParams()
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	call, err := h.callService.UpdateCall(r.Context(), callID, params, claims.UserID)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, toCallDTO(call))
}

// HandleDeleteCall handles DELETE /calls/{callID}
func (h *CallHandler) HandleDeleteCall(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.getClaims(w, r)
	if !ok {
		return
	}

	callID, err := h.parseCallID(r)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	if err := h.callService.DeleteCall(r.Context(), callID, claims.UserID); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	WriteNoContent(w)
}

func (h *CallHandler) getClaims(w http.ResponseWriter, r *http.Request) (*auth.Claims, bool) {
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

func (h *CallHandler) parseCallID(r *http.Request) (uuid.UUID, error) {
	callID, err := uuid.Parse(chi.URLParam(r, "callID"))
	if err != nil {
		v := validation.NewValidator()
		v.Custom("callID", false, "Invalid call ID")
		return uuid.Nil, v.Errors()
	}
	return callID, nil
}
