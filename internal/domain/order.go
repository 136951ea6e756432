package domain

import (
	"strings"
	"time"
)

// MenuItem is catalog reference data. Orders snapshot the fields they need
// at creation time, so later menu edits never touch historical orders.
type MenuItem struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Price           int64  `json:"price"`
	Category        string `json:"category"`
	Image           string `json:"image"`
	Available       bool   `json:"available"`
	PreparationTime int    `json:"preparationTime"`
}

// CartItem is a menu-item snapshot plus quantity, captured when the order
// is placed.
type CartItem struct {
	ItemID          string `json:"itemId"`
	Name            string `json:"name"`
	Price           int64  `json:"price"`
	Quantity        int    `json:"quantity"`
	PreparationTime int    `json:"preparationTime"`
}

type Order struct {
	ID            string      `json:"id"`
	Items         []CartItem  `json:"items"`
	TotalAmount   int64       `json:"totalAmount"`
	Status        OrderStatus `json:"status"`
	CustomerName  string      `json:"customerName"`
	CustomerPhone string      `json:"customerPhone"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
	EstimatedTime int         `json:"estimatedTime"`
}

type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// Staff reports whether the role grants access to unmasked orders and
// status mutation.
func (r Role) Staff() bool {
	return r == RoleAdmin || r == RoleStaff
}

// Caller is the authorized-caller context produced by the authorization
// gate. The role is always resolved server-side, never from the request.
type Caller struct {
	UserID string
	Role   Role
}

// Public returns the masked projection of the order. Customer contact
// fields are redacted; everything else is shared verbatim with the single
// stored representation.
func (o Order) Public() Order {
	o.CustomerName = maskName(o.CustomerName)
	o.CustomerPhone = maskPhone(o.CustomerPhone)
	return o
}

// Project returns the unmasked order only for staff callers; everyone else
// gets the public projection.
func (o Order) Project(caller *Caller) Order {
	if caller != nil && caller.Role.Staff() {
		return o
	}
	return o.Public()
}

func maskName(name string) string {
	r := []rune(name)
	if len(r) == 0 {
		return ""
	}
	return string(r[0]) + "***"
}

func maskPhone(phone string) string {
	r := []rune(phone)
	if len(r) <= 2 {
		return strings.Repeat("*", len(r))
	}
	return strings.Repeat("*", len(r)-2) + string(r[len(r)-2:])
}

type OrderItemRequest struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

type CreateOrderRequest struct {
	Items         []OrderItemRequest `json:"items"`
	CustomerName  string             `json:"customerName"`
	CustomerPhone string             `json:"customerPhone"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
