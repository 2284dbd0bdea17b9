package middleware

import (
	"auctions/internal/auctionerrors"
	"auctions/internal/repository"
	"auctions/internal/utils"
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const CheckUserKey = "user"
const UnreadCountKey = "unread_count"

// SessionUserKey is the session field holding the logged-in user id.
const SessionUserKey = "user_id"

// AuthRequired ensures a user is logged in
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(CheckUserKey); !exists {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// LoadUser retrieves user from session and sets to context
func LoadUser(store repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID, ok := session.Get(SessionUserKey).(uint)
		if !ok {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		user, err := store.GetUserByID(ctx, userID)
		if err != nil {
			if errors.Is(err, auctionerrors.ErrNotFound) {
				// 用户已被删除，清理失效会话
				session.Delete(SessionUserKey)
				_ = session.Save()
			} else {
				utils.Error("LoadUser: failed to load session user", map[string]any{"user_id": userID, "error": err.Error()})
			}
			c.Next()
			return
		}
		c.Set(CheckUserKey, user)

		count, err := store.CountUnreadNotifications(ctx, user.ID)
		if err != nil {
			utils.Warn("LoadUser: failed to count unread notifications", map[string]any{"user_id": user.ID, "error": err.Error()})
		}
		c.Set(UnreadCountKey, count)

		c.Next()
	}
}
