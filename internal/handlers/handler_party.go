package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/freightops/erpshipping/internal/apperrors"
	"github.com/freightops/erpshipping/internal/core/domain"
	portssvc "github.com/freightops/erpshipping/internal/core/ports/services"
	"github.com/freightops/erpshipping/internal/dto"
	"github.com/freightops/erpshipping/internal/middleware"
	"github.com/gin-gonic/gin"
)

// customerHandler handles HTTP requests related to customers.
type customerHandler struct {
	customerService portssvc.CustomerSvcFacade
}

// registerCustomerRoutes registers routes related to customers.
func registerCustomerRoutes(rg *gin.RouterGroup, customerService portssvc.CustomerSvcFacade) {
	h := &customerHandler{customerService: customerService}

	customers := rg.Group("/customers")
	{
		customers.POST("", middleware.RequireRole(domain.UserRole.CanEdit), h.createCustomer)
		customers.GET("/:id", h.getCustomer)
		customers.GET("", h.listCustomers)
	}
}

// createCustomer godoc
// @Summary Create a new customer
// @Description Creates a customer with a unique shipping mark
// @Tags customers
// @Accept json
// @Produce json
// @Param customer body dto.CreateCustomerRequest true "Customer details"
// @Success 201 {object} dto.CustomerResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Shipping mark already taken"
// @Failure 500 {object} map[string]string "Failed to create customer"
// @Security BearerAuth
// @Router /customers [post]
func (h *customerHandler) createCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCustomer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Shipping mark already taken", slog.String("s_mark", req.SMark))
			c.JSON(http.StatusConflict, gin.H{"error": "Shipping mark already taken"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating customer", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create customer in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create customer"})
		}
		return
	}

	logger.Info("Customer created successfully", slog.String("customer_id", customer.CustomerID))
	c.JSON(http.StatusCreated, dto.ToCustomerResponse(customer))
}

// getCustomer godoc
// @Summary Get a customer by ID
// @Description Retrieves details for a specific customer
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} dto.CustomerResponse
// @Failure 404 {object} map[string]string "Customer not found"
// @Failure 500 {object} map[string]string "Failed to retrieve customer"
// @Security BearerAuth
// @Router /customers/{id} [get]
func (h *customerHandler) getCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	customerID := c.Param("id")

	customer, err := h.customerService.GetCustomerByID(c.Request.Context(), customerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Customer not found", slog.String("customer_id", customerID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		} else {
			logger.Error("Failed to get customer from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve customer"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

// listCustomers godoc
// @Summary List customers
// @Description Retrieves all customers
// @Tags customers
// @Produce json
// @Success 200 {array} dto.CustomerResponse
// @Failure 500 {object} map[string]string "Failed to list customers"
// @Security BearerAuth
// @Router /customers [get]
func (h *customerHandler) listCustomers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	customers, err := h.customerService.ListCustomers(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list customers from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list customers"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCustomerResponses(customers))
}

// agentHandler handles HTTP requests related to agents.
type agentHandler struct {
	agentService portssvc.AgentSvcFacade
}

// registerAgentRoutes registers routes related to agents.
func registerAgentRoutes(rg *gin.RouterGroup, agentService portssvc.AgentSvcFacade) {
	h := &agentHandler{agentService: agentService}

	agents := rg.Group("/agents")
	{
		agents.POST("", middleware.RequireRole(domain.UserRole.CanEdit), h.createAgent)
		agents.GET("/:id", h.getAgent)
		agents.GET("", h.listAgents)
	}
}

// createAgent godoc
// @Summary Create a new agent
// @Description Creates a freight agent or supplier
// @Tags agents
// @Accept json
// @Produce json
// @Param agent body dto.CreateAgentRequest true "Agent details"
// @Success 201 {object} dto.AgentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create agent"
// @Security BearerAuth
// @Router /agents [post]
func (h *agentHandler) createAgent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAgent", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	agent, err := h.agentService.CreateAgent(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating agent", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create agent in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create agent"})
		}
		return
	}

	logger.Info("Agent created successfully", slog.String("agent_id", agent.AgentID))
	c.JSON(http.StatusCreated, dto.ToAgentResponse(agent))
}

// getAgent godoc
// @Summary Get an agent by ID
// @Description Retrieves details for a specific agent
// @Tags agents
// @Produce json
// @Param id path string true "Agent ID"
// @Success 200 {object} dto.AgentResponse
// @Failure 404 {object} map[string]string "Agent not found"
// @Failure 500 {object} map[string]string "Failed to retrieve agent"
// @Security BearerAuth
// @Router /agents/{id} [get]
func (h *agentHandler) getAgent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	agentID := c.Param("id")

	agent, err := h.agentService.GetAgentByID(c.Request.Context(), agentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Agent not found", slog.String("agent_id", agentID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Agent not found"})
		} else {
			logger.Error("Failed to get agent from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve agent"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToAgentResponse(agent))
}

// listAgents godoc
// @Summary List agents
// @Description Retrieves all agents
// @Tags agents
// @Produce json
// @Success 200 {array} dto.AgentResponse
// @Failure 500 {object} map[string]string "Failed to list agents"
// @Security BearerAuth
// @Router /agents [get]
func (h *agentHandler) listAgents(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	agents, err := h.agentService.ListAgents(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list agents from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list agents"})
		return
	}

	c.JSON(http.StatusOK, dto.ToAgentResponses(agents))
}
