package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/connectivity"
	"storefront/internal/domain"
	ordersvc "storefront/internal/service/order"
	cartstore "storefront/internal/store/cart"
)

type checkoutRequest struct {
	Shipping domain.ShippingDetails `json:"shippingDetails" binding:"required"`
	Payment  paymentRequest         `json:"paymentDetails" binding:"required"`
}

type paymentRequest struct {
	CardNumber string `json:"cardNumber" binding:"required"`
	CardName   string `json:"cardName"`
	ExpiryDate string `json:"expiryDate"`
	CVV        string `json:"cvv"`
}

// checkoutHandler places the order for the session's cart. Offline
// sessions are refused before anything is submitted, and the cart
// survives every failure path; it is cleared only after the order
// went through.
func checkoutHandler(carts *cartstore.Manager, orders OrderService, network *connectivity.Observer) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		if !network.IsOnline() {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "You're offline. Please connect to the internet to proceed with checkout.",
			})
			return
		}

		var req checkoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		store := carts.For(user)
		cart := store.Cart(c.Request.Context())
		if len(cart.Items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
			return
		}

		products := make([]domain.OrderProduct, 0, len(cart.Items))
		for _, item := range cart.Items {
			products = append(products, domain.OrderProduct{
				ProductID: item.ID,
				Quantity:  item.Quantity,
			})
		}

		order, err := orders.Create(c.Request.Context(), ordersvc.CreateInput{
			UserID:   user.UID,
			Products: products,
			Total:    cart.Total(),
			Shipping: req.Shipping,
			Payment: ordersvc.PaymentInput{
				CardNumber: req.Payment.CardNumber,
				CardName:   req.Payment.CardName,
				ExpiryDate: req.Payment.ExpiryDate,
				CVV:        req.Payment.CVV,
			},
		})
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "order submission failed"})
			return
		}

		store.Clear(c.Request.Context())
		c.JSON(http.StatusCreated, gin.H{"order": order})
	}
}

func listOrdersHandler(orders OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		list, err := orders.ListByUser(c.Request.Context(), user.UID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load orders"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}
