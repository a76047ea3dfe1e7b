// Command demo walks the shop models end to end: it builds users and
// products, assembles an order, runs the calculator helpers and the
// validation predicates, and logs each step.
package main

import (
	"encoding/json"
	"github.com/ariefcatur/go-shop-demo/internal/calc"
	"github.com/ariefcatur/go-shop-demo/internal/money"
	"github.com/ariefcatur/go-shop-demo/internal/shop"
	"github.com/google/uuid"
	"log"
)

const taxRate = 0.08

func main() {
	alice := shop.NewUser("Alice", "alice@example.com", 30)
	bob := shop.NewUser("Bob", "bob@example.com", 17)
	for _, u := range []shop.User{alice, bob} {
		log.Printf("%s adult=%v email_ok=%v", u.FullInfo(), u.IsAdult(), shop.ValidateEmail(u.Email))
	}

	widget := shop.NewProduct("Widget", 5.0)
	gadget := shop.NewProduct("Gadget", 3.0, "tools")
	log.Printf("%s lists at %s, %s discounted",
		widget.Name, widget.FormattedPrice(), money.Format(widget.DiscountedPrice()))

	order := shop.NewOrder(uuid.NewString(), &alice)
	order.AddItem(widget, 2)
	order.AddItem(gadget)
	log.Printf("order %s: %d items, total %.2f", order.ID, len(order.Items), order.Total)

	order.RemoveItem(widget)
	log.Printf("after removing %s: %d items, total %.2f", widget.Name, len(order.Items), order.Total)

	var c calc.Calculator
	log.Printf("total with tax: %.2f", calculateWithTax(c, order.Total, taxRate))
	log.Printf("square(12)=%d cube(7)=%d factorial(6)=%d", calc.Square(12), calc.Cube(7), calc.Factorial(6))
	if _, err := c.Divide(order.Total, 0); err != nil {
		log.Printf("divide guard: %v", err)
	}

	payload, err := json.Marshal(order.Customer.ToMap())
	if err != nil {
		log.Fatalf("marshal customer: %v", err)
	}
	log.Printf("customer payload: %s", payload)
}

// calculateWithTax returns amount plus sales tax, both legs through the
// two-decimal calculator.
func calculateWithTax(c calc.Calculator, amount, rate float64) float64 {
	return c.Add(amount, c.Multiply(amount, rate))
}
