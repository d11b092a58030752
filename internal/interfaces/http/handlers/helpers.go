// Package handlers exposes the HTTP API. Handlers bind and validate request
// shapes, hand off to the application use cases, and translate results and
// errors into responses.
package handlers

import (
	"github.com/gin-gonic/gin"

	"ministryshare/internal/shared/authorization"
	"ministryshare/internal/shared/constants"
	"ministryshare/internal/shared/i18n"
)

// actor is the authenticated identity the auth middleware put on the context.
type actor struct {
	UserID   uint
	Role     authorization.UserRole
	ChurchID *uint
}

func actorFrom(c *gin.Context) actor {
	a := actor{}
	if v, ok := c.Get(constants.ContextKeyUserID); ok {
		if id, ok := v.(uint); ok {
			a.UserID = id
		}
	}
	a.Role = authorization.UserRole(c.GetString(constants.ContextKeyUserRole))
	if v, ok := c.Get(constants.ContextKeyChurchID); ok {
		if id, ok := v.(uint); ok {
			a.ChurchID = &id
		}
	}
	return a
}

func localeFrom(c *gin.Context) i18n.Locale {
	if v, ok := c.Get(constants.ContextKeyLocale); ok {
		if l, ok := v.(i18n.Locale); ok {
			return l
		}
	}
	return i18n.Negotiate("", c.GetHeader("Accept-Language"))
}
