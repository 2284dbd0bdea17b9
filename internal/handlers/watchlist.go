package handlers

import (
	"auctions/internal/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type WatchlistHandler struct {
	service *services.AuctionService
}

func NewWatchlistHandler(service *services.AuctionService) *WatchlistHandler {
	return &WatchlistHandler{service: service}
}

// List 我的关注列表
func (h *WatchlistHandler) List(c *gin.Context) {
	listings, err := h.service.ListWatchlist(c.Request.Context(), currentUser(c))
	if err != nil {
		RenderServiceError(c, "Watchlist", err)
		return
	}

	Render(c, http.StatusOK, "listing/list.html", gin.H{
		"Title":     "Watchlist",
		"Listings":  listings,
		"EmptyText": "Your watchlist is empty.",
		"Active":    "watchlist",
	})
}

// Add 加入关注
func (h *WatchlistHandler) Add(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.service.AddToWatchlist(c.Request.Context(), currentUser(c), id); err != nil {
		RenderServiceError(c, "AddToWatchlist", err)
		return
	}
	flash(c, "Added to your watchlist.")
	c.Redirect(http.StatusFound, listingPath(id))
}

// Remove 取消关注
func (h *WatchlistHandler) Remove(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.service.RemoveFromWatchlist(c.Request.Context(), currentUser(c), id); err != nil {
		RenderServiceError(c, "RemoveFromWatchlist", err)
		return
	}
	flash(c, "Removed from your watchlist.")
	c.Redirect(http.StatusFound, "/watchlist")
}
