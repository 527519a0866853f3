package orderControllers

import (
	"testing"
	"time"

	"github.com/aliroohan/TagHeuer-Backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Watch{}, &models.Cart{}, &models.CartItem{},
		&models.Order{}, &models.OrderItem{},
	))
	return db
}

func seedWatch(t *testing.T, db *gorm.DB, name string, price float64, quantity int) models.Watch {
	t.Helper()
	watch := models.Watch{
		Name:      name,
		Reference: "REF-" + name,
		Brand:     "TAG Heuer",
		Price:     price,
		Quantity:  quantity,
	}
	require.NoError(t, db.Create(&watch).Error)
	return watch
}

func seedCart(t *testing.T, db *gorm.DB, userID uint, lines ...models.CartItem) models.Cart {
	t.Helper()
	cart := models.Cart{UserID: userID}
	require.NoError(t, db.Create(&cart).Error)
	var total float64
	for _, line := range lines {
		line.CartID = cart.CartID
		line.AddedAt = time.Now()
		require.NoError(t, db.Create(&line).Error)
		total += line.Price * float64(line.Quantity)
	}
	require.NoError(t, db.Model(&cart).Update("total_price", total).Error)
	return cart
}

func stockOf(t *testing.T, db *gorm.DB, watchID uint) int {
	t.Helper()
	var watch models.Watch
	require.NoError(t, db.First(&watch, "id = ?", watchID).Error)
	return watch.Quantity
}

func TestCheckoutReconciliation(t *testing.T) {
	db := setupTestDB(t)
	ordered := seedWatch(t, db, "Carrera", 100, 10)
	kept := seedWatch(t, db, "Monaco", 250, 5)

	// cart holds 3 of the ordered watch and 1 unrelated line
	seedCart(t, db, 1,
		models.CartItem{WatchID: ordered.ID, Quantity: 3, Price: 100},
		models.CartItem{WatchID: kept.ID, Quantity: 1, Price: 250},
	)

	order, err := Checkout(db, CheckoutRequest{
		UserID:     1,
		Lines:      []CheckoutLine{{WatchID: ordered.ID, Quantity: 2, Price: 100}},
		TotalPrice: 200,
	})
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, 200.0, order.TotalPrice)
	assert.NotEmpty(t, order.OrderRef)
	require.Len(t, order.Items, 1)
	assert.Equal(t, ordered.ID, order.Items[0].WatchID)
	assert.Equal(t, 2, order.Items[0].Quantity)

	// the ordered line is dropped wholesale, not reduced from 3 to 1
	var cart models.Cart
	require.NoError(t, db.Preload("Items").Where("user_id = ?", uint(1)).First(&cart).Error)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, kept.ID, cart.Items[0].WatchID)
	assert.Equal(t, 250.0, cart.TotalPrice)

	// stock decremented by the ordered quantity
	assert.Equal(t, 8, stockOf(t, db, ordered.ID))
	assert.Equal(t, 5, stockOf(t, db, kept.ID))
}

func TestCheckoutWithoutCart(t *testing.T) {
	db := setupTestDB(t)
	watch := seedWatch(t, db, "Carrera", 100, 10)

	order, err := Checkout(db, CheckoutRequest{
		UserID:     7,
		Lines:      []CheckoutLine{{WatchID: watch.ID, Quantity: 1, Price: 100}},
		TotalPrice: 100,
	})
	require.NoError(t, err)
	assert.NotZero(t, order.ID)

	// no cart was created or touched
	var count int64
	require.NoError(t, db.Model(&models.Cart{}).Count(&count).Error)
	assert.Zero(t, count)

	assert.Equal(t, 9, stockOf(t, db, watch.ID))
}

func TestCheckoutValidation(t *testing.T) {
	db := setupTestDB(t)
	watch := seedWatch(t, db, "Carrera", 100, 10)
	line := CheckoutLine{WatchID: watch.ID, Quantity: 1, Price: 100}

	cases := []struct {
		name string
		req  CheckoutRequest
	}{
		{"missing user", CheckoutRequest{Lines: []CheckoutLine{line}, TotalPrice: 100}},
		{"empty lines", CheckoutRequest{UserID: 1, TotalPrice: 100}},
		{"missing total", CheckoutRequest{UserID: 1, Lines: []CheckoutLine{line}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Checkout(db, tc.req)
			assert.ErrorIs(t, err, ErrInvalidCheckout)
		})
	}

	// nothing was persisted
	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCheckoutTotalIsNotRecomputed(t *testing.T) {
	db := setupTestDB(t)
	watch := seedWatch(t, db, "Carrera", 100, 10)

	// submitted total disagrees with the line subtotal; it is trusted as-is
	order, err := Checkout(db, CheckoutRequest{
		UserID:     1,
		Lines:      []CheckoutLine{{WatchID: watch.ID, Quantity: 2, Price: 100}},
		TotalPrice: 999,
	})
	require.NoError(t, err)
	assert.Equal(t, 999.0, order.TotalPrice)
}

func TestCheckoutSkipsVanishedWatch(t *testing.T) {
	db := setupTestDB(t)
	watch := seedWatch(t, db, "Carrera", 100, 10)

	order, err := Checkout(db, CheckoutRequest{
		UserID: 1,
		Lines: []CheckoutLine{
			{WatchID: watch.ID, Quantity: 1, Price: 100},
			{WatchID: 999, Quantity: 2, Price: 50},
		},
		TotalPrice: 200,
	})
	require.NoError(t, err)

	// the order keeps both lines verbatim even though one watch is gone
	require.Len(t, order.Items, 2)
	assert.Equal(t, 9, stockOf(t, db, watch.ID))
}

func TestCheckoutStockCanGoNegative(t *testing.T) {
	db := setupTestDB(t)
	watch := seedWatch(t, db, "Carrera", 100, 1)

	// two checkouts against a single unit of stock both succeed; the
	// decrement is unconditional and there is no coordination between
	// requests, so quantity-on-hand ends up negative.
	for i := 0; i < 2; i++ {
		_, err := Checkout(db, CheckoutRequest{
			UserID:     uint(i + 1),
			Lines:      []CheckoutLine{{WatchID: watch.ID, Quantity: 1, Price: 100}},
			TotalPrice: 100,
		})
		require.NoError(t, err)
	}

	assert.Equal(t, -1, stockOf(t, db, watch.ID))
}

func TestCheckoutPrunesOnlyOrderedLines(t *testing.T) {
	db := setupTestDB(t)
	first := seedWatch(t, db, "Carrera", 100, 10)
	second := seedWatch(t, db, "Monaco", 250, 10)
	third := seedWatch(t, db, "Link", 300, 10)

	seedCart(t, db, 1,
		models.CartItem{WatchID: first.ID, Quantity: 1, Price: 100},
		models.CartItem{WatchID: second.ID, Quantity: 2, Price: 250},
		models.CartItem{WatchID: third.ID, Quantity: 1, Price: 300},
	)

	_, err := Checkout(db, CheckoutRequest{
		UserID: 1,
		Lines: []CheckoutLine{
			{WatchID: first.ID, Quantity: 1, Price: 100},
			{WatchID: third.ID, Quantity: 1, Price: 300},
		},
		TotalPrice: 400,
	})
	require.NoError(t, err)

	var cart models.Cart
	require.NoError(t, db.Preload("Items").Where("user_id = ?", uint(1)).First(&cart).Error)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, second.ID, cart.Items[0].WatchID)
	assert.Equal(t, 500.0, cart.TotalPrice)
}

func TestMapOrderStatus(t *testing.T) {
	status, err := mapOrderStatus("Shipped")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusShipped, status)

	_, err = mapOrderStatus("teleported")
	assert.Error(t, err)
}
