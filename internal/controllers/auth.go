package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hauskasse/backend/internal/session"
	"github.com/hauskasse/backend/internal/types"
)

// GetRoot redirects to the month view for the current month.
//
//	@Summary		Current month
//	@Description	Redirects to the month view for the current month
//	@Tags			General
//	@Success		302
//	@Router			/ [get]
func GetRoot(c *gin.Context) {
	month := types.MonthOf(time.Now())
	c.Redirect(http.StatusFound, "/budget/"+month.String())
}

// GetLogin renders the login form.
//
//	@Summary		Login form
//	@Description	Renders the login form, or redirects to the month view when no password is configured
//	@Tags			General
//	@Produce		html
//	@Success		200
//	@Router			/login [get]
func GetLogin(c *gin.Context) {
	if !Sessions.Enabled() {
		c.Redirect(http.StatusFound, "/")
		return
	}

	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// PostLogin checks the password and starts a session.
//
//	@Summary		Login
//	@Description	Checks the password and sets the session cookie
//	@Tags			General
//	@Accept			x-www-form-urlencoded
//	@Produce		html
//	@Success		303
//	@Failure		401
//	@Param			password	formData	string	true	"The shared password"
//	@Router			/login [post]
func PostLogin(c *gin.Context) {
	if !Sessions.Enabled() {
		c.Redirect(http.StatusFound, "/")
		return
	}

	token, ok := Sessions.Login(c.PostForm("password"))
	if !ok {
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{
			"Error": "Invalid password",
		})
		return
	}

	c.SetCookie(session.CookieName, token, int(session.TTL.Seconds()), "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/")
}
