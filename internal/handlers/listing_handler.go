package handlers

import (
	"net/http"

	"chirpynosh_backend/internal/auth"
	"chirpynosh_backend/internal/middleware"
	"chirpynosh_backend/internal/repositories"
	"chirpynosh_backend/internal/services"
	"chirpynosh_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ListingHandler struct {
	*BaseHandler
	listingService services.ListingService
	claimService   services.ClaimService
}

func NewListingHandler(base *BaseHandler, listingService services.ListingService, claimService services.ClaimService) *ListingHandler {
	return &ListingHandler{BaseHandler: base, listingService: listingService, claimService: claimService}
}

func (h *ListingHandler) RegisterRoutes(r *gin.RouterGroup, authn *AuthChain) {
	listings := r.Group("/listings")
	{
		// The browse surface is public.
		listings.GET("", h.List)
		listings.GET("/:id", h.GetByID)
		listings.GET("/:id/claims", authn.Required, middleware.RequireAny(auth.CapListingWrite), h.ListClaims)

		write := listings.Group("")
		write.Use(authn.Required, middleware.RequireAny(auth.CapListingWrite))
		{
			write.POST("", h.Create)
			write.PUT("/:id", h.Update)
		}
		listings.DELETE("/:id", authn.Required, middleware.RequireAny(auth.CapListingDelete), h.Delete)
	}
}

func (h *ListingHandler) Create(c *gin.Context) {
	var req dto.CreateListingRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.listingService.Create(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ListingHandler) GetByID(c *gin.Context) {
	resp, err := h.listingService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ListingHandler) List(c *gin.Context) {
	var criteria repositories.ListingCriteria
	if !h.BindAndValidateQuery(c, &criteria) {
		return
	}

	resp, err := h.listingService.List(c.Request.Context(), criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ListingHandler) ListClaims(c *gin.Context) {
	resp, err := h.claimService.ListByListing(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"claims": resp})
}

func (h *ListingHandler) Update(c *gin.Context) {
	var req dto.UpdateListingRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.listingService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ListingHandler) Delete(c *gin.Context) {
	if err := h.listingService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
