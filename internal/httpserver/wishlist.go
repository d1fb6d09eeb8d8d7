package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront/internal/domain"
	"storefront/internal/store/wishlist"
)

func getWishlistHandler(wishlists *wishlist.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := wishlists.For(currentUser(c))
		c.JSON(http.StatusOK, store.Products(c.Request.Context()))
	}
}

func addWishlistHandler(wishlists *wishlist.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product domain.Product
		if err := c.ShouldBindJSON(&product); err != nil || product.ID < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		store := wishlists.For(currentUser(c))
		store.Add(c.Request.Context(), product)
		c.JSON(http.StatusOK, store.Products(c.Request.Context()))
	}
}

func containsWishlistHandler(wishlists *wishlist.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}
		store := wishlists.For(currentUser(c))
		c.JSON(http.StatusOK, gin.H{"inWishlist": store.Contains(c.Request.Context(), id)})
	}
}

func removeWishlistHandler(wishlists *wishlist.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}
		store := wishlists.For(currentUser(c))
		store.Remove(c.Request.Context(), id)
		c.JSON(http.StatusOK, store.Products(c.Request.Context()))
	}
}
