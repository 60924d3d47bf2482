package handlers

import (
	"net/http"

	"chirpynosh_backend/internal/auth"
	"chirpynosh_backend/internal/middleware"
	"chirpynosh_backend/internal/services"
	"chirpynosh_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ClaimHandler struct {
	*BaseHandler
	claimService services.ClaimService
}

func NewClaimHandler(base *BaseHandler, claimService services.ClaimService) *ClaimHandler {
	return &ClaimHandler{BaseHandler: base, claimService: claimService}
}

func (h *ClaimHandler) RegisterRoutes(r *gin.RouterGroup, authn *AuthChain) {
	claims := r.Group("/claims")
	{
		// Claim creation is open to anonymous callers; identity, when
		// presented, must verify.
		claims.POST("", authn.Optional, h.Create)

		claims.GET("", authn.Required, h.ListMine)
		claims.GET("/:id", authn.Required, h.GetByID)
		claims.PATCH("/:id/status", authn.Required, middleware.RequireAny(auth.CapClaimUpdate), h.UpdateStatus)
	}
}

func (h *ClaimHandler) Create(c *gin.Context) {
	var req dto.CreateClaimRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	caller, _ := middleware.GetClaims(c)

	resp, err := h.claimService.Create(c.Request.Context(), &req, caller)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ClaimHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateClaimStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.claimService.UpdateStatus(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ClaimHandler) GetByID(c *gin.Context) {
	resp, err := h.claimService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ClaimHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.claimService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"claims": resp})
}
