package handlers

import (
	"auctions/internal/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	service *services.AuctionService
}

func NewUserHandler(service *services.AuctionService) *UserHandler {
	return &UserHandler{service: service}
}

// Sales 我卖出的拍品
func (h *UserHandler) Sales(c *gin.Context) {
	listings, err := h.service.ListSales(c.Request.Context(), currentUser(c))
	if err != nil {
		RenderServiceError(c, "Sales", err)
		return
	}

	Render(c, http.StatusOK, "listing/list.html", gin.H{
		"Title":     "Sales",
		"Listings":  listings,
		"EmptyText": "You have not sold anything yet.",
		"Active":    "sales",
	})
}

// Purchases 我拍到的拍品
func (h *UserHandler) Purchases(c *gin.Context) {
	listings, err := h.service.ListPurchases(c.Request.Context(), currentUser(c))
	if err != nil {
		RenderServiceError(c, "Purchases", err)
		return
	}

	Render(c, http.StatusOK, "listing/list.html", gin.H{
		"Title":     "Purchases",
		"Listings":  listings,
		"EmptyText": "You have not won any auctions yet.",
		"Active":    "purchases",
	})
}
