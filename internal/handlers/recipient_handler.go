package handlers

import (
	"net/http"

	"chirpynosh_backend/internal/auth"
	"chirpynosh_backend/internal/middleware"
	"chirpynosh_backend/internal/services"
	"chirpynosh_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type RecipientHandler struct {
	*BaseHandler
	recipientService services.RecipientService
}

func NewRecipientHandler(base *BaseHandler, recipientService services.RecipientService) *RecipientHandler {
	return &RecipientHandler{BaseHandler: base, recipientService: recipientService}
}

func (h *RecipientHandler) RegisterRoutes(r *gin.RouterGroup, authn *AuthChain) {
	recipients := r.Group("/recipients")
	recipients.Use(authn.Required)
	{
		recipients.GET("/me", h.GetMine)
		recipients.POST("", h.Create)

		// Listing and managing other orgs' profiles is an admin concern.
		recipients.GET("", middleware.RequireAny(auth.CapRecipientList), h.List)
		recipients.GET("/:id", middleware.RequireAny(auth.CapRecipientList), h.GetByID)
		recipients.PUT("/:id", middleware.RequireAny(auth.CapRecipientManage), h.Update)
		recipients.DELETE("/:id", middleware.RequireAny(auth.CapRecipientManage), h.Delete)
	}
}

func (h *RecipientHandler) Create(c *gin.Context) {
	var req dto.CreateRecipientRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.recipientService.Create(c.Request.Context(), &req, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *RecipientHandler) GetMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.recipientService.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RecipientHandler) GetByID(c *gin.Context) {
	resp, err := h.recipientService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RecipientHandler) List(c *gin.Context) {
	resp, err := h.recipientService.List(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipients": resp})
}

func (h *RecipientHandler) Update(c *gin.Context) {
	var req dto.UpdateRecipientRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.recipientService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RecipientHandler) Delete(c *gin.Context) {
	if err := h.recipientService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
