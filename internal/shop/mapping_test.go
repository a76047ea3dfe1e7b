package shop

import (
	"encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestUserFromMap_SymbolicKeys(t *testing.T) {
	u, err := UserFromMap(Map{KeyName: "Alice", KeyEmail: "alice@example.com", KeyAge: 30})
	require.NoError(t, err)
	assert.Equal(t, User{Name: "Alice", Email: "alice@example.com", Age: 30}, u)
}

func TestUserFromMap_StringKeys(t *testing.T) {
	u, err := UserFromMap(Map{"name": "Alice", "email": "alice@example.com", "age": 30})
	require.NoError(t, err)
	assert.Equal(t, User{Name: "Alice", Email: "alice@example.com", Age: 30}, u)
}

func TestUserFromMap_SymbolicKeyWins(t *testing.T) {
	u, err := UserFromMap(Map{
		KeyName: "Alice", "name": "Shadowed",
		KeyEmail: "alice@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice", u.Name)
}

func TestUserFromMap_DefaultAge(t *testing.T) {
	u, err := UserFromMap(Map{KeyName: "Alice", KeyEmail: "alice@example.com"})
	require.NoError(t, err)
	assert.Equal(t, 18, u.Age)
}

func TestUserFromMap_MissingRequiredKey(t *testing.T) {
	_, err := UserFromMap(Map{KeyName: "Alice"})
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "email")
}

func TestUserFromMap_WrongType(t *testing.T) {
	_, err := UserFromMap(Map{KeyName: "Alice", KeyEmail: "alice@example.com", KeyAge: "thirty"})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestUserFromMap_JSONNumbers(t *testing.T) {
	// Decoded JSON hands ages over as float64.
	u, err := UserFromMap(Map{KeyName: "Alice", KeyEmail: "alice@example.com", KeyAge: 30.0})
	require.NoError(t, err)
	assert.Equal(t, 30, u.Age)

	_, err = UserFromMap(Map{KeyName: "Alice", KeyEmail: "alice@example.com", KeyAge: 30.5})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestUser_MapRoundTrip(t *testing.T) {
	u := NewUser("Alice", "alice@example.com", 30)
	got, err := UserFromMap(u.ToMap())
	require.NoError(t, err)
	assert.Equal(t, u, got)
}

func TestProductFromMap_SymbolicKeys(t *testing.T) {
	p, err := ProductFromMap(Map{KeyName: "Widget", KeyPrice: 9.99, KeyCategory: "tools"})
	require.NoError(t, err)
	assert.Equal(t, Product{Name: "Widget", Price: 9.99, Category: "tools"}, p)
}

func TestProductFromMap_StringKeys(t *testing.T) {
	p, err := ProductFromMap(Map{"name": "Widget", "price": 9.99})
	require.NoError(t, err)
	assert.Equal(t, 9.99, p.Price)
	assert.Equal(t, "general", p.Category)
}

func TestProductFromMap_IntPrice(t *testing.T) {
	p, err := ProductFromMap(Map{KeyName: "Widget", KeyPrice: 10})
	require.NoError(t, err)
	assert.Equal(t, 10.0, p.Price)
}

func TestProductFromMap_MissingPrice(t *testing.T) {
	_, err := ProductFromMap(Map{KeyName: "Widget"})
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "price")
}

func TestProduct_MapRoundTrip(t *testing.T) {
	p := NewProduct("Widget", 9.99, "tools")
	got, err := ProductFromMap(p.ToMap())
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestOrderFromMap_Minimal(t *testing.T) {
	alice := NewUser("Alice", "alice@example.com", 30)
	o, err := OrderFromMap(Map{KeyID: "ord-1", KeyCustomer: &alice})
	require.NoError(t, err)
	assert.Equal(t, "ord-1", o.ID)
	assert.Same(t, &alice, o.Customer)
	assert.Empty(t, o.Items)
	assert.Equal(t, 0.0, o.Total)
}

func TestOrderFromMap_ItemsAndTotalRetained(t *testing.T) {
	alice := NewUser("Alice", "alice@example.com", 30)
	items := []OrderItem{{Product: NewProduct("Widget", 5.0), Qty: 2}}

	// total is taken as passed, not recomputed from the items.
	o, err := OrderFromMap(Map{"id": "ord-1", "customer": &alice, "items": items, "total": 99.0})
	require.NoError(t, err)
	assert.Equal(t, items, o.Items)
	assert.Equal(t, 99.0, o.Total)
}

func TestOrderFromMap_CustomerWrongType(t *testing.T) {
	_, err := OrderFromMap(Map{KeyID: "ord-1", KeyCustomer: "alice"})
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "customer")
}

func TestOrderFromMap_MissingCustomer(t *testing.T) {
	_, err := OrderFromMap(Map{KeyID: "ord-1"})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestOrder_ToMap_RetainsReferences(t *testing.T) {
	alice := NewUser("Alice", "alice@example.com", 30)
	o := NewOrder("ord-1", &alice)
	o.AddItem(NewProduct("Widget", 5.0), 2)

	m := o.ToMap()
	assert.Same(t, &alice, m[KeyCustomer])
	assert.Equal(t, o.Items, m[KeyItems])
	assert.Equal(t, 10.0, m[KeyTotal])
}

func TestMap_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Map{KeyName: "Alice", "email": "alice@example.com", KeyAge: 30})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, "Alice", decoded["name"])
	assert.Equal(t, "alice@example.com", decoded["email"])
	assert.Equal(t, 30.0, decoded["age"])
}

func TestMap_MarshalJSON_BadKey(t *testing.T) {
	_, err := json.Marshal(Map{42: "x"})
	require.Error(t, err)
}
