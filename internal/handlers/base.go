package handlers

import (
	"auctions/internal/auctionerrors"
	"auctions/internal/middleware"
	"auctions/internal/models"
	"auctions/internal/utils"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Render helper to inject common variables like 'current user'
func Render(c *gin.Context, code int, name string, obj gin.H) {
	if obj == nil {
		obj = gin.H{}
	}

	// Inject Current User
	if user, exists := c.Get(middleware.CheckUserKey); exists {
		obj["CurrentUser"] = user
		if count, ok := c.Get(middleware.UnreadCountKey); ok {
			obj["UnreadCount"] = count.(int64)
		} else {
			obj["UnreadCount"] = int64(0)
		}
	}

	// Flash messages set before a redirect
	session := sessions.Default(c)
	if flashes := session.Flashes(); len(flashes) > 0 {
		obj["Flashes"] = flashes
		_ = session.Save()
	}

	obj["CurrentPath"] = c.Request.URL.Path
	obj["Categories"] = models.Categories

	c.HTML(code, name, obj)
}

// Error helper
func RenderError(c *gin.Context, code int, message string) {
	Render(c, code, "error.html", gin.H{"Title": http.StatusText(code), "Error": message, "Status": code})
}

// RenderServiceError maps err to a status and renders the error page.
func RenderServiceError(c *gin.Context, handlerName string, err error) {
	status, message := MapErrorToHTTP(err)
	logServiceError(c, handlerName, status, err)
	RenderError(c, status, message)
}

func logServiceError(c *gin.Context, handlerName string, status int, err error) {
	_ = c.Error(err)
	fields := map[string]any{
		"handler":    handlerName,
		"status":     status,
		"error":      err.Error(),
		"request_id": c.GetString(middleware.RequestIDKey),
	}
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": request failed", fields)
		return
	}
	utils.Warn(handlerName+": request rejected", fields)
}

// flash stores a one-shot message shown on the next rendered page.
func flash(c *gin.Context, message string) {
	session := sessions.Default(c)
	session.AddFlash(message)
	_ = session.Save()
}

// currentUser returns the logged-in user, or nil for anonymous visitors.
func currentUser(c *gin.Context) *models.User {
	if user, exists := c.Get(middleware.CheckUserKey); exists {
		return user.(*models.User)
	}
	return nil
}

// parseID reads a positive numeric path parameter. It renders a 404 and returns false otherwise.
func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := utils.StringToUint(c.Param(param))
	if err != nil {
		RenderError(c, http.StatusNotFound, "Page not found.")
		return 0, false
	}
	return id, true
}

// detail strips the sentinel suffix from a wrapped validation error, leaving the specific reason.
func detail(err, sentinel error) string {
	reason := strings.TrimSuffix(err.Error(), ": "+sentinel.Error())
	if reason == err.Error() || reason == "" {
		return ""
	}
	return strings.ToUpper(reason[:1]) + reason[1:] + "."
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	// validation
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusBadRequest, "Insufficient bid amount."
	case errors.Is(err, auctionerrors.ErrPasswordMismatch):
		return http.StatusBadRequest, "Passwords must match."
	case errors.Is(err, auctionerrors.ErrMissingCredentials):
		return http.StatusBadRequest, "Username and password are required."
	case errors.Is(err, auctionerrors.ErrPasswordTooLong):
		return http.StatusBadRequest, "Password must be at most 72 bytes."
	case errors.Is(err, auctionerrors.ErrAuctionClosed):
		return http.StatusBadRequest, "This auction is closed."
	case errors.Is(err, auctionerrors.ErrInvalidCategory):
		return http.StatusBadRequest, "Invalid category."
	case errors.Is(err, auctionerrors.ErrInvalidAmount):
		return http.StatusBadRequest, "Enter a positive amount up to 9999999999.99 with at most two decimal places."
	case errors.Is(err, auctionerrors.ErrInvalidComment):
		return http.StatusBadRequest, "Comments must be between 1 and 120 characters."
	case errors.Is(err, auctionerrors.ErrInvalidListing):
		if msg := detail(err, auctionerrors.ErrInvalidListing); msg != "" {
			return http.StatusBadRequest, msg
		}
		return http.StatusBadRequest, "Invalid listing."

	// authentication & authorization
	case errors.Is(err, auctionerrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid username and/or password."
	case errors.Is(err, auctionerrors.ErrLoginRequired):
		return http.StatusForbidden, "You must be logged in."
	case errors.Is(err, auctionerrors.ErrNotSeller):
		return http.StatusForbidden, "Only the seller can close this auction."

	// not found
	case errors.Is(err, auctionerrors.ErrListingNotFound):
		return http.StatusNotFound, "Listing not found."
	case errors.Is(err, auctionerrors.ErrWatchlistEntryNotFound):
		return http.StatusNotFound, "This listing is not on your watchlist."
	case errors.Is(err, auctionerrors.ErrNotificationNotFound):
		return http.StatusNotFound, "Notification not found."

	case errors.Is(err, auctionerrors.ErrUsernameTaken):
		return http.StatusConflict, "Username already taken."
	case errors.Is(err, auctionerrors.ErrAuctionHasNoBids):
		return http.StatusUnprocessableEntity, "This auction has no bids and cannot be closed."

	// kinds
	case errors.Is(err, auctionerrors.ErrValidation):
		return http.StatusBadRequest, "Invalid request."
	case errors.Is(err, auctionerrors.ErrAuthentication):
		return http.StatusUnauthorized, "Authentication failed."
	case errors.Is(err, auctionerrors.ErrAuthorization):
		return http.StatusForbidden, "Permission denied."
	case errors.Is(err, auctionerrors.ErrNotFound):
		return http.StatusNotFound, "Not found."
	case errors.Is(err, auctionerrors.ErrConflict):
		return http.StatusConflict, "Conflict."
	case errors.Is(err, auctionerrors.ErrNoBids):
		return http.StatusUnprocessableEntity, "No bids."
	default:
		return http.StatusInternalServerError, "Internal server error."
	}
}
