package handlers

import (
	"auctions/internal/models"
	"auctions/internal/services"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ListingHandler struct {
	service *services.AuctionService
}

func NewListingHandler(service *services.AuctionService) *ListingHandler {
	return &ListingHandler{service: service}
}

// Index 首页 - 所有进行中的拍卖
func (h *ListingHandler) Index(c *gin.Context) {
	listings, err := h.service.ListActiveListings(c.Request.Context())
	if err != nil {
		RenderServiceError(c, "Index", err)
		return
	}

	Render(c, http.StatusOK, "listing/list.html", gin.H{
		"Title":     "Active Listings",
		"Listings":  listings,
		"EmptyText": "No active listings.",
		"Active":    "index",
	})
}

func (h *ListingHandler) ShowCreate(c *gin.Context) {
	Render(c, http.StatusOK, "listing/create.html", gin.H{"Title": "Create Listing", "Active": "create"})
}

func (h *ListingHandler) Create(c *gin.Context) {
	var form ListingForm
	if err := c.ShouldBind(&form); err != nil {
		Render(c, http.StatusBadRequest, "listing/create.html", gin.H{"Title": "Create Listing", "Error": "Invalid form submission."})
		return
	}

	renderForm := func(err error) {
		status, message := MapErrorToHTTP(err)
		logServiceError(c, "CreateListing", status, err)
		Render(c, status, "listing/create.html", gin.H{
			"Title":  "Create Listing",
			"Error":  message,
			"Form":   form,
			"Active": "create",
		})
	}

	price, err := services.ParseAmount(form.InitialPrice)
	if err != nil {
		renderForm(err)
		return
	}

	listing, err := h.service.CreateListing(c.Request.Context(), currentUser(c), services.ListingInput{
		Name:         form.Name,
		InitialPrice: price,
		Description:  form.Description,
		Image:        form.Image,
		Category:     models.Category(form.Category),
	})
	if err != nil {
		renderForm(err)
		return
	}

	c.Redirect(http.StatusFound, listingPath(listing.ID))
}

// Detail 拍品详情页
func (h *ListingHandler) Detail(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	h.renderDetail(c, id, http.StatusOK, "")
}

// renderDetail shows the listing page, optionally with an error from a failed action on it.
func (h *ListingHandler) renderDetail(c *gin.Context, listingID uint, status int, errMsg string) {
	viewer := currentUser(c)
	detail, err := h.service.GetListingDetail(c.Request.Context(), viewer, listingID)
	if err != nil {
		RenderServiceError(c, "Detail", err)
		return
	}

	listing := detail.Listing
	Render(c, status, "listing/detail.html", gin.H{
		"Title":    listing.Name,
		"Detail":   detail,
		"Listing":  listing,
		"IsSeller": viewer != nil && viewer.ID == listing.SellerID,
		"IsWinner": viewer != nil && listing.BuyerID != nil && *listing.BuyerID == viewer.ID,
		"CanClose": h.service.CanClose(viewer, listing),
		"Error":    errMsg,
	})
}

// actionFailed re-renders the listing page for validation failures and falls back to the error page otherwise.
func (h *ListingHandler) actionFailed(c *gin.Context, handlerName string, listingID uint, err error) {
	status, message := MapErrorToHTTP(err)
	logServiceError(c, handlerName, status, err)
	if status == http.StatusNotFound || status >= http.StatusInternalServerError {
		RenderError(c, status, message)
		return
	}
	h.renderDetail(c, listingID, status, message)
}

// PlaceBid 出价
func (h *ListingHandler) PlaceBid(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	amount, err := services.ParseAmount(c.PostForm("bid"))
	if err != nil {
		h.actionFailed(c, "PlaceBid", id, err)
		return
	}

	bid, err := h.service.PlaceBid(c.Request.Context(), currentUser(c), id, amount)
	if err != nil {
		h.actionFailed(c, "PlaceBid", id, err)
		return
	}

	flash(c, "Bid of $"+bid.Amount.StringFixed(2)+" placed.")
	c.Redirect(http.StatusFound, listingPath(id))
}

// EndAuction 结束拍卖
func (h *ListingHandler) EndAuction(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	listing, err := h.service.EndAuction(c.Request.Context(), currentUser(c), id)
	if err != nil {
		h.actionFailed(c, "EndAuction", id, err)
		return
	}

	flash(c, "Auction closed. Sold for $"+listing.SalePrice.Decimal.StringFixed(2)+".")
	c.Redirect(http.StatusFound, listingPath(id))
}

// CreateComment 发表评论
func (h *ListingHandler) CreateComment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if _, err := h.service.AddComment(c.Request.Context(), currentUser(c), id, c.PostForm("comment")); err != nil {
		h.actionFailed(c, "CreateComment", id, err)
		return
	}
	c.Redirect(http.StatusFound, listingPath(id)+"#comments")
}

func listingPath(id uint) string {
	return "/listing/" + strconv.FormatUint(uint64(id), 10)
}
