// Package shop holds the demo domain: User, Product and Order models with
// their mapping codec, plus the standalone validation predicates. Models
// enforce no invariants of their own; validation is opt-in.
package shop

import (
	"fmt"
	"github.com/ariefcatur/go-shop-demo/internal/money"
)

// Defaults applied by the constructors when the optional argument is
// omitted.
const (
	DefaultAge      = 18
	DefaultCategory = "general"
	DefaultDiscount = 0.10
)

// User is a demo account holder.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   int    `json:"age"`
}

// NewUser builds a User. The optional trailing value overrides the default
// age of 18.
func NewUser(name, email string, age ...int) User {
	a := DefaultAge
	if len(age) > 0 {
		a = age[0]
	}
	return User{Name: name, Email: email, Age: a}
}

// UserFromMap builds a User from a mapping. name and email are required,
// age falls back to the default.
func UserFromMap(m Map) (User, error) {
	name, err := m.stringVal(KeyName)
	if err != nil {
		return User{}, err
	}
	email, err := m.stringVal(KeyEmail)
	if err != nil {
		return User{}, err
	}
	age, err := m.intOr(KeyAge, DefaultAge)
	if err != nil {
		return User{}, err
	}
	return User{Name: name, Email: email, Age: age}, nil
}

// ToMap serializes the user with symbolic keys.
func (u User) ToMap() Map {
	return Map{KeyName: u.Name, KeyEmail: u.Email, KeyAge: u.Age}
}

// IsAdult reports whether the user is 18 or older.
func (u User) IsAdult() bool {
	return u.Age >= 18
}

// FullInfo returns a one-line description, e.g.
// "Alice (alice@example.com), age 30".
func (u User) FullInfo() string {
	return fmt.Sprintf("%s (%s), age %d", u.Name, u.Email, u.Age)
}

// Product is a demo catalog entry. It is a plain comparable value: two
// products are the same product exactly when all three fields match, which
// is also what order item removal compares by.
type Product struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

// NewProduct builds a Product. The optional trailing value overrides the
// default "general" category.
func NewProduct(name string, price float64, category ...string) Product {
	c := DefaultCategory
	if len(category) > 0 {
		c = category[0]
	}
	return Product{Name: name, Price: price, Category: c}
}

// ProductFromMap builds a Product from a mapping. name and price are
// required, category falls back to the default.
func ProductFromMap(m Map) (Product, error) {
	name, err := m.stringVal(KeyName)
	if err != nil {
		return Product{}, err
	}
	price, err := m.floatVal(KeyPrice)
	if err != nil {
		return Product{}, err
	}
	category, err := m.stringOr(KeyCategory, DefaultCategory)
	if err != nil {
		return Product{}, err
	}
	return Product{Name: name, Price: price, Category: category}, nil
}

// ToMap serializes the product with symbolic keys.
func (p Product) ToMap() Map {
	return Map{KeyName: p.Name, KeyPrice: p.Price, KeyCategory: p.Category}
}

// DiscountedPrice returns the price after the given discount rate,
// defaulting to 10%. The result is not rounded.
func (p Product) DiscountedPrice(rate ...float64) float64 {
	r := DefaultDiscount
	if len(rate) > 0 {
		r = rate[0]
	}
	return p.Price * (1 - r)
}

// FormattedPrice renders the price as a two-decimal dollar string.
func (p Product) FormattedPrice() string {
	return money.Format(p.Price)
}

// OrderItem pairs a product with a quantity.
type OrderItem struct {
	Product Product `json:"product"`
	Qty     int     `json:"qty"`
}

// Order is a mutable demo order. Total is maintained by AddItem and
// RemoveItem; nothing cross-checks it against the item sum.
type Order struct {
	ID       string      `json:"id"`
	Customer *User       `json:"customer"`
	Items    []OrderItem `json:"items"`
	Total    float64     `json:"total"`
}

// NewOrder starts an empty order for the given customer. The customer is
// referenced, not copied.
func NewOrder(id string, customer *User) *Order {
	return &Order{ID: id, Customer: customer}
}

// AddItem appends the product with the given quantity (default 1) and bumps
// Total by price*qty.
func (o *Order) AddItem(p Product, qty ...int) {
	q := 1
	if len(qty) > 0 {
		q = qty[0]
	}
	o.Items = append(o.Items, OrderItem{Product: p, Qty: q})
	o.Total += p.Price * float64(q)
}

// RemoveItem drops every item whose product equals p by value, then
// recomputes Total from the remaining items. Removal recomputes in full
// where AddItem increments.
func (o *Order) RemoveItem(p Product) {
	kept := o.Items[:0]
	for _, it := range o.Items {
		if it.Product != p {
			kept = append(kept, it)
		}
	}
	o.Items = kept

	total := 0.0
	for _, it := range o.Items {
		total += it.Product.Price * float64(it.Qty)
	}
	o.Total = total
}

// OrderFromMap builds an Order from a mapping. id and customer are
// required, and customer must be a *User. items and total are taken as
// passed, defaulting to empty and zero.
func OrderFromMap(m Map) (*Order, error) {
	id, err := m.stringVal(KeyID)
	if err != nil {
		return nil, err
	}
	cv, ok := m.lookup(KeyCustomer)
	if !ok {
		return nil, fmt.Errorf("%w: missing key %q", ErrInvalidInput, KeyCustomer)
	}
	customer, ok := cv.(*User)
	if !ok {
		return nil, fmt.Errorf("%w: key %q: want *User, got %T", ErrInvalidInput, KeyCustomer, cv)
	}

	o := NewOrder(id, customer)
	if iv, ok := m.lookup(KeyItems); ok {
		items, ok := iv.([]OrderItem)
		if !ok {
			return nil, fmt.Errorf("%w: key %q: want []OrderItem, got %T", ErrInvalidInput, KeyItems, iv)
		}
		o.Items = items
	}
	total, err := m.floatOr(KeyTotal, 0)
	if err != nil {
		return nil, err
	}
	o.Total = total
	return o, nil
}

// ToMap serializes the order with symbolic keys. Customer and Items go in
// as-is; they are not recursively converted.
func (o *Order) ToMap() Map {
	return Map{KeyID: o.ID, KeyCustomer: o.Customer, KeyItems: o.Items, KeyTotal: o.Total}
}
