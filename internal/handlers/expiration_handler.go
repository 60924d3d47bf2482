package handlers

import (
	"net/http"

	"chirpynosh_backend/internal/auth"
	"chirpynosh_backend/internal/middleware"
	"chirpynosh_backend/internal/services"
	"chirpynosh_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ExpirationHandler struct {
	*BaseHandler
	expirationService services.ExpirationService
}

func NewExpirationHandler(base *BaseHandler, expirationService services.ExpirationService) *ExpirationHandler {
	return &ExpirationHandler{BaseHandler: base, expirationService: expirationService}
}

func (h *ExpirationHandler) RegisterRoutes(r *gin.RouterGroup, authn *AuthChain) {
	expirations := r.Group("/expirations")
	expirations.Use(authn.Required, middleware.RequireAny(auth.CapExpirationWrite))
	{
		expirations.GET("", h.List)
		expirations.GET("/expiring-soon", h.ListExpiringSoon)
		expirations.GET("/:id", h.GetByID)
		expirations.POST("", h.Create)
		expirations.PUT("/:id", h.Update)
		expirations.DELETE("/:id", h.Delete)
	}
}

func (h *ExpirationHandler) Create(c *gin.Context) {
	var req dto.CreateExpirationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.expirationService.Create(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ExpirationHandler) GetByID(c *gin.Context) {
	resp, err := h.expirationService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ExpirationHandler) ListExpiringSoon(c *gin.Context) {
	days := ParseQueryInt(c, "days", 3)

	resp, err := h.expirationService.ListExpiringSoon(c.Request.Context(), days)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"expirations": resp})
}

func (h *ExpirationHandler) List(c *gin.Context) {
	resp, err := h.expirationService.List(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"expirations": resp})
}

func (h *ExpirationHandler) Update(c *gin.Context) {
	var req dto.UpdateExpirationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.expirationService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ExpirationHandler) Delete(c *gin.Context) {
	if err := h.expirationService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
