package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	authsvc "storefront/internal/service/auth"
	cartstore "storefront/internal/store/cart"
)

type signupRequest struct {
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	DisplayName string `json:"displayName"`
}

type signinRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type profileRequest struct {
	DisplayName string `json:"displayName" binding:"required"`
}

// signinPageHandler is the target of unauthenticated redirects. The
// actual page is rendered by the frontend; the API answers with the
// callback so a client can resume where it left off.
func signinPageHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":     "sign in required",
		"callbackUrl": c.Query("callbackUrl"),
	})
}

func signupHandler(authSvc AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req signupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		user, err := authSvc.SignUp(c.Request.Context(), req.Email, req.Password, req.DisplayName)
		if err != nil {
			if errors.Is(err, authsvc.ErrEmailTaken) {
				c.JSON(http.StatusConflict, gin.H{"error": "email already in use"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"user": user})
	}
}

// signinHandler authenticates and folds the anonymous cart into the
// user's cart, once per sign-in.
func signinHandler(authSvc AuthService, carts *cartstore.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req signinRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		user, token, err := authSvc.SignIn(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, authsvc.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "sign in failed"})
			return
		}

		carts.For(user).MergeAnonymous(c.Request.Context())

		ttl := authSvc.AccessTTLSeconds()
		c.SetCookie(sessionCookie, token, ttl, "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{
			"user":      user,
			"token":     token,
			"expiresIn": ttl,
		})
	}
}

func anonymousHandler(authSvc AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := authSvc.Anonymous(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "session setup failed"})
			return
		}
		c.SetCookie(sessionCookie, token, 0, "/", "", false, true)
		c.JSON(http.StatusCreated, gin.H{"token": token})
	}
}

func signoutHandler(authSvc AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := currentToken(c); token != "" {
			authSvc.SignOut(c.Request.Context(), token)
		}
		c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
		c.Status(http.StatusNoContent)
	}
}

// meHandler reports the session's user; anonymous sessions get null.
func meHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": currentUser(c)})
}

func updateProfileHandler(authSvc AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if currentUser(c) == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		var req profileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		user, err := authSvc.UpdateProfile(c.Request.Context(), currentToken(c), req.DisplayName)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid session"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": user})
	}
}
