package handlers

import (
	"auctions/internal/models"
	"auctions/internal/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	service *services.AuctionService
}

func NewCategoryHandler(service *services.AuctionService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// Categories 分类菜单；带 category 参数时列出该分类下进行中的拍卖
func (h *CategoryHandler) Categories(c *gin.Context) {
	raw, selected := c.GetPostForm("category")
	if !selected {
		raw, selected = c.GetQuery("category")
	}
	if !selected {
		Render(c, http.StatusOK, "listing/categories.html", gin.H{
			"Title":  "Categories",
			"Active": "categories",
		})
		return
	}

	category := models.Category(raw)
	listings, err := h.service.ListByCategory(c.Request.Context(), category)
	if err != nil {
		RenderServiceError(c, "Categories", err)
		return
	}

	Render(c, http.StatusOK, "listing/list.html", gin.H{
		"Title":     "Category: " + category.Label(),
		"Listings":  listings,
		"EmptyText": "No active listings in this category.",
		"Active":    "categories",
	})
}
