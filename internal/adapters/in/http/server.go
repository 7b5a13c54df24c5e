// Package http exposes the application's use cases over a REST API.
// Handlers translate between JSON payloads and commands/queries, and map
// domain errors to HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"fixmate/internal/core/application/usecases/commands"
	"fixmate/internal/core/application/usecases/queries"
	"fixmate/internal/core/domain/model/kernel"
	"fixmate/internal/core/domain/model/provider"
	"fixmate/internal/core/domain/model/request"
	"fixmate/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createRequestHandler           commands.CreateRequestCommandHandler
	assignProviderHandler          commands.AssignProviderCommandHandler
	updateRequestStatusHandler     commands.UpdateRequestStatusCommandHandler
	createVehicleHandler           commands.CreateVehicleCommandHandler
	createProviderHandler          commands.CreateProviderCommandHandler
	setProviderAvailabilityHandler commands.SetProviderAvailabilityCommandHandler

	// Query handlers
	getRequestHandler            queries.GetRequestQueryHandler
	getVehicleRequestsHandler    queries.GetVehicleRequestsQueryHandler
	getProviderRequestsHandler   queries.GetProviderRequestsQueryHandler
	getAvailableProvidersHandler queries.GetAvailableProvidersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createRequestHandler commands.CreateRequestCommandHandler,
	assignProviderHandler commands.AssignProviderCommandHandler,
	updateRequestStatusHandler commands.UpdateRequestStatusCommandHandler,
	createVehicleHandler commands.CreateVehicleCommandHandler,
	createProviderHandler commands.CreateProviderCommandHandler,
	setProviderAvailabilityHandler commands.SetProviderAvailabilityCommandHandler,
	getRequestHandler queries.GetRequestQueryHandler,
	getVehicleRequestsHandler queries.GetVehicleRequestsQueryHandler,
	getProviderRequestsHandler queries.GetProviderRequestsQueryHandler,
	getAvailableProvidersHandler queries.GetAvailableProvidersQueryHandler,
) *Server {
	return &Server{
		createRequestHandler:           createRequestHandler,
		assignProviderHandler:          assignProviderHandler,
		updateRequestStatusHandler:     updateRequestStatusHandler,
		createVehicleHandler:           createVehicleHandler,
		createProviderHandler:          createProviderHandler,
		setProviderAvailabilityHandler: setProviderAvailabilityHandler,
		getRequestHandler:              getRequestHandler,
		getVehicleRequestsHandler:      getVehicleRequestsHandler,
		getProviderRequestsHandler:     getProviderRequestsHandler,
		getAvailableProvidersHandler:   getAvailableProvidersHandler,
	}
}

// RegisterRoutes binds every handler to its route on the given Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/requests", s.CreateRequest)
	api.GET("/requests/:id", s.GetRequest)
	api.POST("/requests/:id/assign", s.AssignProvider)
	api.PUT("/requests/:id/status", s.UpdateRequestStatus)

	api.POST("/vehicles", s.CreateVehicle)
	api.GET("/vehicles/:id/requests", s.GetVehicleRequests)

	api.POST("/providers", s.CreateProvider)
	api.GET("/providers/available", s.GetAvailableProviders)
	api.PUT("/providers/:id/availability", s.SetProviderAvailability)
	api.GET("/providers/:id/requests", s.GetProviderRequests)
}

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// errorJSON maps a domain error to the appropriate HTTP status code.
func errorJSON(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func pathID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

// NewServiceRequest is the request body for POST /api/v1/requests.
type NewServiceRequest struct {
	VehicleID   string `json:"vehicle_id"`
	ServiceType string `json:"service_type"`
	Notes       string `json:"notes"`
}

// Created is returned from creation endpoints with the new resource's ID.
type Created struct {
	ID string `json:"id"`
}

// CreateRequest handles POST /api/v1/requests - opens a new service request.
func (s *Server) CreateRequest(ctx echo.Context) error {
	var body NewServiceRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	vehicleID, err := kernel.UUIDFromString(body.VehicleID)
	if err != nil {
		return badRequest(ctx, "Invalid vehicle ID")
	}

	serviceType, err := request.ServiceTypeFromString(body.ServiceType)
	if err != nil {
		return errorJSON(ctx, err)
	}

	requestID := kernel.NewUUID()
	cmd, err := commands.NewCreateRequestCommand(requestID, vehicleID, serviceType, body.Notes)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if handleErr := s.createRequestHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorJSON(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: requestID.String()})
}

// ServiceRequestResponse is the JSON shape of a service request read model.
type ServiceRequestResponse struct {
	ID          string     `json:"id"`
	VehicleID   string     `json:"vehicle_id"`
	ProviderID  *string    `json:"provider_id,omitempty"`
	ServiceType string     `json:"service_type"`
	Notes       string     `json:"notes"`
	Status      string     `json:"status"`
	RequestedAt time.Time  `json:"requested_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func toRequestResponse(r queries.RequestResponse) ServiceRequestResponse {
	response := ServiceRequestResponse{
		ID:          r.ID.String(),
		VehicleID:   r.VehicleID.String(),
		ServiceType: r.ServiceType,
		Notes:       r.Notes,
		Status:      r.Status,
		RequestedAt: r.RequestedAt,
		CompletedAt: r.CompletedAt,
	}
	if r.ProviderID != nil {
		id := r.ProviderID.String()
		response.ProviderID = &id
	}
	return response
}

// GetRequest handles GET /api/v1/requests/:id - retrieves a single request.
func (s *Server) GetRequest(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid request ID")
	}

	query, err := queries.NewGetRequestQuery(id)
	if err != nil {
		return errorJSON(ctx, err)
	}

	result, err := s.getRequestHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toRequestResponse(result))
}

// AssignProviderRequest is the request body for POST /api/v1/requests/:id/assign.
type AssignProviderRequest struct {
	ProviderID string `json:"provider_id"`
}

// AssignProvider handles POST /api/v1/requests/:id/assign - binds a provider
// to a pending request.
func (s *Server) AssignProvider(ctx echo.Context) error {
	requestID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid request ID")
	}

	var body AssignProviderRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	providerID, err := kernel.UUIDFromString(body.ProviderID)
	if err != nil {
		return badRequest(ctx, "Invalid provider ID")
	}

	cmd, err := commands.NewAssignProviderCommand(requestID, providerID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if handleErr := s.assignProviderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorJSON(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateStatusRequest is the request body for PUT /api/v1/requests/:id/status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateRequestStatus handles PUT /api/v1/requests/:id/status - moves a
// request along its lifecycle.
func (s *Server) UpdateRequestStatus(ctx echo.Context) error {
	requestID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid request ID")
	}

	var body UpdateStatusRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := request.StatusFromString(body.Status)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewUpdateRequestStatusCommand(requestID, status)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if handleErr := s.updateRequestStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorJSON(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// NewVehicle is the request body for POST /api/v1/vehicles.
type NewVehicle struct {
	Make         string `json:"make"`
	Model        string `json:"model"`
	Year         int    `json:"year"`
	LicensePlate string `json:"license_plate"`
	OwnerID      string `json:"owner_id"`
}

// CreateVehicle handles POST /api/v1/vehicles - registers a new vehicle.
func (s *Server) CreateVehicle(ctx echo.Context) error {
	var body NewVehicle
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	ownerID, err := kernel.UUIDFromString(body.OwnerID)
	if err != nil {
		return badRequest(ctx, "Invalid owner ID")
	}

	cmd, err := commands.NewCreateVehicleCommand(body.Make, body.Model, body.Year, body.LicensePlate, ownerID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if handleErr := s.createVehicleHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorJSON(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: cmd.VehicleID().String()})
}

// GetVehicleRequests handles GET /api/v1/vehicles/:id/requests - lists a
// vehicle's service history.
func (s *Server) GetVehicleRequests(ctx echo.Context) error {
	vehicleID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid vehicle ID")
	}

	query, err := queries.NewGetVehicleRequestsQuery(vehicleID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	results, err := s.getVehicleRequestsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]ServiceRequestResponse, len(results))
	for i, r := range results {
		response[i] = toRequestResponse(r)
	}

	return ctx.JSON(http.StatusOK, response)
}

// NewProvider is the request body for POST /api/v1/providers.
type NewProvider struct {
	FullName       string `json:"full_name"`
	Specialization string `json:"specialization"`
}

// CreateProvider handles POST /api/v1/providers - registers a service provider.
func (s *Server) CreateProvider(ctx echo.Context) error {
	var body NewProvider
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	specialization, err := provider.SpecializationFromString(body.Specialization)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewCreateProviderCommand(body.FullName, specialization)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if handleErr := s.createProviderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorJSON(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: cmd.ProviderID().String()})
}

// SetAvailabilityRequest is the request body for PUT /api/v1/providers/:id/availability.
type SetAvailabilityRequest struct {
	IsAvailable bool `json:"is_available"`
}

// SetProviderAvailability handles PUT /api/v1/providers/:id/availability -
// toggles whether a provider accepts new work.
func (s *Server) SetProviderAvailability(ctx echo.Context) error {
	providerID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid provider ID")
	}

	var body SetAvailabilityRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetProviderAvailabilityCommand(providerID, body.IsAvailable)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if handleErr := s.setProviderAvailabilityHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorJSON(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ProviderResponse is the JSON shape of a provider read model.
type ProviderResponse struct {
	ID             string `json:"id"`
	FullName       string `json:"full_name"`
	Specialization string `json:"specialization"`
}

// GetAvailableProviders handles GET /api/v1/providers/available - lists every
// provider currently accepting work.
func (s *Server) GetAvailableProviders(ctx echo.Context) error {
	query := queries.NewGetAvailableProvidersQuery()

	providers, err := s.getAvailableProvidersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]ProviderResponse, len(providers))
	for i, p := range providers {
		response[i] = ProviderResponse{
			ID:             p.ID.String(),
			FullName:       p.FullName,
			Specialization: p.Specialization,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetProviderRequests handles GET /api/v1/providers/:id/requests - lists the
// requests assigned to a provider.
func (s *Server) GetProviderRequests(ctx echo.Context) error {
	providerID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid provider ID")
	}

	query, err := queries.NewGetProviderRequestsQuery(providerID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	results, err := s.getProviderRequestsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]ServiceRequestResponse, len(results))
	for i, r := range results {
		response[i] = toRequestResponse(r)
	}

	return ctx.JSON(http.StatusOK, response)
}
