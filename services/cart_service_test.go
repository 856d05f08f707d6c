package services

import (
	"context"
	"testing"

	"github.com/hanam197/cosmetic-ecommerce-web-be/models"
	"github.com/hanam197/cosmetic-ecommerce-web-be/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func addItemInput(productID, name string, price float64, quantity int) AddItemInput {
	return AddItemInput{
		ProductID:   productID,
		ProductName: name,
		Price:       floatPtr(price),
		Quantity:    intPtr(quantity),
	}
}

func newTestCartService() *CartService {
	return NewCartService(repository.NewMemoryCartRepository())
}

func TestGetOrCreate_LazilyCreatesEmptyCart(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()

	cart, err := svc.GetOrCreate(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", cart.UserID)
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.TotalPrice)
	assert.Zero(t, cart.TotalQuantity)

	// Second call returns the same cart, not a fresh one.
	again, err := svc.GetOrCreate(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, cart.ID, again.ID)
}

func TestGetOrCreate_EmptyUserID(t *testing.T) {
	svc := newTestCartService()

	for _, userID := range []string{"", "   ", "\t"} {
		_, err := svc.GetOrCreate(context.Background(), userID)
		require.Error(t, err)
		assert.Equal(t, KindInvalidArgument, KindOf(err))
	}
}

func TestAddItem_NewItem(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()

	cart, err := svc.AddItem(ctx, "u1", AddItemInput{
		ProductID:   "p1",
		ProductName: "Cream",
		Price:       floatPtr(150000),
		Quantity:    intPtr(2),
		Image:       "cream.jpg",
	})
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	item := cart.Items[0]
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "p1", item.ProductID)
	assert.Equal(t, "Cream", item.ProductName)
	assert.Equal(t, float64(150000), item.Price)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, float64(300000), cart.TotalPrice)
	assert.Equal(t, 2, cart.TotalQuantity)
}

func TestAddItem_SameProductSumsQuantities(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "u1", addItemInput("p1", "Cream", 150000, 2))
	require.NoError(t, err)

	// Second add with different snapshot values: quantities sum,
	// denormalized fields keep their first-write values.
	cart, err := svc.AddItem(ctx, "u1", addItemInput("p1", "Renamed Cream", 999999, 3))
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, "Cream", cart.Items[0].ProductName)
	assert.Equal(t, float64(150000), cart.Items[0].Price)
	assert.Equal(t, float64(750000), cart.TotalPrice)
	assert.Equal(t, 5, cart.TotalQuantity)
}

func TestAddItem_DistinctProducts(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "u1", addItemInput("p1", "Cream", 150000, 2))
	require.NoError(t, err)
	cart, err := svc.AddItem(ctx, "u1", addItemInput("p2", "Toner", 120000, 1))
	require.NoError(t, err)

	assert.Len(t, cart.Items, 2)
	assert.Equal(t, float64(420000), cart.TotalPrice)
	assert.Equal(t, 3, cart.TotalQuantity)
}

func TestAddItem_Validation(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()

	tests := []struct {
		name   string
		userID string
		input  AddItemInput
	}{
		{"empty user id", " ", addItemInput("p1", "Cream", 100, 1)},
		{"missing product id", "u1", addItemInput("", "Cream", 100, 1)},
		{"missing product name", "u1", addItemInput("p1", "", 100, 1)},
		{"missing price", "u1", AddItemInput{ProductID: "p1", ProductName: "Cream", Quantity: intPtr(1)}},
		{"negative price", "u1", addItemInput("p1", "Cream", -1, 1)},
		{"missing quantity", "u1", AddItemInput{ProductID: "p1", ProductName: "Cream", Price: floatPtr(100)}},
		{"zero quantity", "u1", addItemInput("p1", "Cream", 100, 0)},
		{"negative quantity", "u1", addItemInput("p1", "Cream", 100, -2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddItem(ctx, tt.userID, tt.input)
			require.Error(t, err)
			assert.Equal(t, KindInvalidArgument, KindOf(err))
		})
	}

	// Nothing was persisted by the rejected calls.
	cart, err := svc.GetOrCreate(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestAddItem_ZeroPriceAllowed(t *testing.T) {
	svc := newTestCartService()

	cart, err := svc.AddItem(context.Background(), "u1", addItemInput("p1", "Sample", 0, 3))
	require.NoError(t, err)
	assert.Equal(t, float64(0), cart.TotalPrice)
	assert.Equal(t, 3, cart.TotalQuantity)
}

func TestUpdateItemQuantity_SetsNotAdds(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()

	cart, err := svc.AddItem(ctx, "u1", addItemInput("p1", "Cream", 150000, 2))
	require.NoError(t, err)
	itemID := cart.Items[0].ID

	cart, err = svc.UpdateItemQuantity(ctx, "u1", itemID, 7)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 7, cart.Items[0].Quantity)
	assert.Equal(t, float64(1050000), cart.TotalPrice)
	assert.Equal(t, 7, cart.TotalQuantity)
}

func TestUpdateItemQuantity_Errors(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()

	// No cart at all.
	_, err := svc.UpdateItemQuantity(ctx, "nobody", "i1", 2)
	assert.Equal(t, KindNotFound, KindOf(err))

	cart, err := svc.AddItem(ctx, "u1", addItemInput("p1", "Cream", 100, 1))
	require.NoError(t, err)

	// Cart exists but item does not.
	_, err = svc.UpdateItemQuantity(ctx, "u1", "missing-item", 2)
	assert.Equal(t, KindNotFound, KindOf(err))

	// Invalid quantity.
	_, err = svc.UpdateItemQuantity(ctx, "u1", cart.Items[0].ID, 0)
	assert.Equal(t, KindInvalidArgument, KindOf(err))
}

func TestRemoveItem(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "u1", addItemInput("p1", "Cream", 150000, 2))
	require.NoError(t, err)
	cart, err := svc.AddItem(ctx, "u1", addItemInput("p2", "Toner", 120000, 1))
	require.NoError(t, err)

	target := cart.FindItemByProduct("p1")
	require.NotNil(t, target)

	cart, err = svc.RemoveItem(ctx, "u1", target.ID)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Nil(t, cart.FindItemByProduct("p1"))
	assert.Equal(t, float64(120000), cart.TotalPrice)
	assert.Equal(t, 1, cart.TotalQuantity)
}

func TestRemoveItem_Errors(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()

	_, err := svc.RemoveItem(ctx, "nobody", "i1")
	assert.Equal(t, KindNotFound, KindOf(err))

	_, err = svc.AddItem(ctx, "u1", addItemInput("p1", "Cream", 100, 1))
	require.NoError(t, err)

	_, err = svc.RemoveItem(ctx, "u1", "missing-item")
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestClear(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "u1", addItemInput("p1", "Cream", 150000, 2))
	require.NoError(t, err)

	cart, err := svc.Clear(ctx, "u1")
	require.NoError(t, err)

	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.TotalPrice)
	assert.Zero(t, cart.TotalQuantity)
}

func TestClear_MissingCart(t *testing.T) {
	svc := newTestCartService()

	_, err := svc.Clear(context.Background(), "nobody")
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestListAll(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()

	_, err := svc.GetOrCreate(ctx, "u1")
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "u2", addItemInput("p1", "Cream", 100, 1))
	require.NoError(t, err)

	carts, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, carts, 2)
}

// conflictingCartRepo injects one concurrent write between the service's
// read and save, forcing a version conflict on the first attempt.
type conflictingCartRepo struct {
	repository.CartRepository
	fired bool
}

func (r *conflictingCartRepo) Save(ctx context.Context, cart *models.Cart) error {
	if !r.fired {
		r.fired = true
		other, err := r.CartRepository.FindByUserID(ctx, cart.UserID)
		if err != nil {
			return err
		}
		other.Items = append(other.Items, models.CartItem{
			ID: "race-item", ProductID: "p-race", ProductName: "Raced", Price: 50000, Quantity: 1,
		})
		other.RecalculateTotals()
		if err := r.CartRepository.Save(ctx, other); err != nil {
			return err
		}
	}
	return r.CartRepository.Save(ctx, cart)
}

func TestAddItem_RetriesOnVersionConflict(t *testing.T) {
	inner := repository.NewMemoryCartRepository()
	repo := &conflictingCartRepo{CartRepository: inner}
	svc := NewCartService(repo)
	ctx := context.Background()

	_, err := svc.GetOrCreate(ctx, "u1")
	require.NoError(t, err)

	cart, err := svc.AddItem(ctx, "u1", addItemInput("p1", "Cream", 150000, 2))
	require.NoError(t, err)

	// Neither write was lost: the racing item and ours both survive.
	require.Len(t, cart.Items, 2)
	assert.NotNil(t, cart.FindItemByProduct("p-race"))
	assert.NotNil(t, cart.FindItemByProduct("p1"))
	assert.Equal(t, float64(350000), cart.TotalPrice)
	assert.Equal(t, 3, cart.TotalQuantity)
}
