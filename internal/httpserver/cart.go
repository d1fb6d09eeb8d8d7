package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront/internal/domain"
	cartstore "storefront/internal/store/cart"
)

type cartItemRequest struct {
	ID       int     `json:"id" binding:"required"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity"`
}

type quantityRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

type cartResponse struct {
	Items    []domain.CartItem `json:"items"`
	Subtotal float64           `json:"subtotal"`
	Shipping float64           `json:"shipping"`
	Total    float64           `json:"total"`
}

func toCartResponse(cart domain.Cart) cartResponse {
	items := cart.Items
	if items == nil {
		items = []domain.CartItem{}
	}
	return cartResponse{
		Items:    items,
		Subtotal: cart.Subtotal(),
		Shipping: cart.Shipping(),
		Total:    cart.Total(),
	}
}

func getCartHandler(carts *cartstore.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := carts.For(currentUser(c))
		c.JSON(http.StatusOK, toCartResponse(store.Cart(c.Request.Context())))
	}
}

func addCartItemHandler(carts *cartstore.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req cartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		quantity := req.Quantity
		if quantity == 0 {
			quantity = 1
		}
		store := carts.For(currentUser(c))
		item := domain.CartItem{
			ID:       req.ID,
			Title:    req.Title,
			Price:    req.Price,
			Image:    req.Image,
			Quantity: quantity,
		}
		if err := store.Add(c.Request.Context(), item); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, toCartResponse(store.Cart(c.Request.Context())))
	}
}

func updateCartItemHandler(carts *cartstore.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
			return
		}
		var req quantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		store := carts.For(currentUser(c))
		if err := store.UpdateQuantity(c.Request.Context(), id, req.Quantity); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, toCartResponse(store.Cart(c.Request.Context())))
	}
}

func removeCartItemHandler(carts *cartstore.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
			return
		}
		store := carts.For(currentUser(c))
		store.Remove(c.Request.Context(), id)
		c.JSON(http.StatusOK, toCartResponse(store.Cart(c.Request.Context())))
	}
}

func clearCartHandler(carts *cartstore.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := carts.For(currentUser(c))
		store.Clear(c.Request.Context())
		c.JSON(http.StatusOK, toCartResponse(store.Cart(c.Request.Context())))
	}
}
