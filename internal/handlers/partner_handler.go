package handlers

import (
	"net/http"

	"chirpynosh_backend/internal/auth"
	"chirpynosh_backend/internal/middleware"
	"chirpynosh_backend/internal/services"
	"chirpynosh_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type PartnerHandler struct {
	*BaseHandler
	partnerService services.PartnerService
}

func NewPartnerHandler(base *BaseHandler, partnerService services.PartnerService) *PartnerHandler {
	return &PartnerHandler{BaseHandler: base, partnerService: partnerService}
}

func (h *PartnerHandler) RegisterRoutes(r *gin.RouterGroup, authn *AuthChain) {
	partners := r.Group("/partners")
	{
		partners.GET("", h.List)
		partners.GET("/:id", h.GetByID)

		manage := partners.Group("")
		manage.Use(authn.Required, middleware.RequireAny(auth.CapPartnerManage))
		{
			manage.POST("", h.Create)
			manage.PUT("/:id", h.Update)
			manage.DELETE("/:id", h.Delete)
		}
	}
}

func (h *PartnerHandler) Create(c *gin.Context) {
	var req dto.CreatePartnerRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.partnerService.Create(c.Request.Context(), &req, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *PartnerHandler) GetByID(c *gin.Context) {
	resp, err := h.partnerService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PartnerHandler) List(c *gin.Context) {
	resp, err := h.partnerService.List(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"partners": resp})
}

func (h *PartnerHandler) Update(c *gin.Context) {
	var req dto.UpdatePartnerRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.partnerService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PartnerHandler) Delete(c *gin.Context) {
	if err := h.partnerService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
