package domain

import "time"

type OrderProduct struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

type ShippingDetails struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state,omitempty"`
	ZipCode  string `json:"zipCode"`
	Country  string `json:"country"`
}

// PaymentDetails never carries the full card number or CVV; CardNumber
// holds the last four digits only.
type PaymentDetails struct {
	CardNumber string `json:"cardNumber"`
	CardName   string `json:"cardName"`
}

type Order struct {
	ID       string          `json:"id"`
	UserID   string          `json:"userId"`
	Products []OrderProduct  `json:"products"`
	Total    float64         `json:"total"`
	Shipping ShippingDetails `json:"shippingDetails"`
	Payment  PaymentDetails  `json:"paymentDetails"`
	Status   string          `json:"status"`
	Date     time.Time       `json:"date"`
}
