package order_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCustomer() order.Customer {
	return order.Customer{
		Name:  "Rahim Uddin",
		Email: "rahim@example.com",
		Phone: "+8801712345678",
	}
}

func testItems() []order.LineItem {
	return []order.LineItem{
		{ProductID: 42, Quantity: 2, UnitPrice: 450},
		{ProductID: 7, Quantity: 1, UnitPrice: 1200},
	}
}

func mustOrder(t *testing.T) *order.Order {
	t.Helper()
	id, err := kernel.NewID(1001)
	require.NoError(t, err)

	o, err := order.NewOrder(id, kernel.NewSecureID(), testCustomer(), testItems(), 2100, "House 12, Road 5, Dhanmondi, Dhaka")
	require.NoError(t, err)
	return o
}

func mustShipping(t *testing.T) order.ShippingInfo {
	t.Helper()
	riderID, err := kernel.NewID(3)
	require.NoError(t, err)

	shipping, err := order.NewShippingInfo("FedEx", "TRK123", "2-3 days", "call before delivery", riderID)
	require.NoError(t, err)
	return shipping
}

func TestNewOrder(t *testing.T) {
	t.Run("creates_pending_order", func(t *testing.T) {
		// When
		o := mustOrder(t)

		// Then
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.Shipping())
		assert.Empty(t, o.TransactionID())
		assert.Equal(t, "Rahim Uddin", o.Customer().Name)
		assert.Len(t, o.Items(), 2)
	})

	t.Run("aggregates_validation_failures", func(t *testing.T) {
		// Given an invalid id, no customer name, no items and no address
		var id kernel.ID

		// When
		_, err := order.NewOrder(id, kernel.NewSecureID(), order.Customer{}, nil, 100, "")

		// Then
		require.Error(t, err)
		require.ErrorIs(t, err, kernel.ErrIDIsNotConstructed)
		require.ErrorIs(t, err, order.ErrCustomerNameIsRequired)
		require.ErrorIs(t, err, order.ErrItemsAreRequired)
		require.ErrorIs(t, err, order.ErrShippingAddressIsRequired)
	})

	t.Run("rejects_invalid_line_items", func(t *testing.T) {
		id, _ := kernel.NewID(1)

		_, err := order.NewOrder(id, kernel.NewSecureID(), testCustomer(),
			[]order.LineItem{{ProductID: 42, Quantity: 0, UnitPrice: 10}}, 10, "addr")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero_value_order_fails_validation", func(t *testing.T) {
		var o order.Order

		require.Error(t, o.Validate())
	})
}

func TestOrder_HappyPathLifecycle(t *testing.T) {
	// Given
	o := mustOrder(t)
	shipping := mustShipping(t)

	// When / Then
	require.NoError(t, o.Approve())
	assert.Equal(t, order.Approved, o.Status())
	assert.Nil(t, o.Shipping())

	require.NoError(t, o.Ship(shipping))
	assert.Equal(t, order.Shipped, o.Status())
	require.NotNil(t, o.Shipping())
	assert.Equal(t, "FedEx", o.Shipping().CourierService())
	assert.Equal(t, "TRK123", o.Shipping().TrackingID())

	require.NoError(t, o.Deliver())
	assert.Equal(t, order.Delivered, o.Status())
}

func TestOrder_Ship(t *testing.T) {
	t.Run("requires_approved_status", func(t *testing.T) {
		o := mustOrder(t)

		err := o.Ship(mustShipping(t))

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.Shipping())
	})

	t.Run("rejects_unconstructed_shipping_record", func(t *testing.T) {
		o := mustOrder(t)
		require.NoError(t, o.Approve())

		err := o.Ship(order.ShippingInfo{})

		require.Error(t, err)
		assert.Equal(t, order.Approved, o.Status())
	})
}

func TestOrder_TerminalStates(t *testing.T) {
	t.Run("delivered_order_rejects_all_transitions", func(t *testing.T) {
		o := mustOrder(t)
		require.NoError(t, o.Approve())
		require.NoError(t, o.Ship(mustShipping(t)))
		require.NoError(t, o.Deliver())

		require.ErrorIs(t, o.Approve(), errs.ErrInvalidTransition)
		require.ErrorIs(t, o.Deliver(), errs.ErrInvalidTransition)
		require.ErrorIs(t, o.Cancel(), errs.ErrInvalidTransition)
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("cancelled_order_rejects_all_transitions", func(t *testing.T) {
		o := mustOrder(t)
		require.NoError(t, o.Cancel())

		require.ErrorIs(t, o.Approve(), errs.ErrInvalidTransition)
		require.ErrorIs(t, o.Cancel(), errs.ErrInvalidTransition)
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("cancel_reachable_from_shipped", func(t *testing.T) {
		o := mustOrder(t)
		require.NoError(t, o.Approve())
		require.NoError(t, o.Ship(mustShipping(t)))

		require.NoError(t, o.Cancel())
		assert.Equal(t, order.Cancelled, o.Status())
		// Shipping record survives cancellation after shipment.
		assert.NotNil(t, o.Shipping())
	})
}

func TestRestoreOrder(t *testing.T) {
	id, _ := kernel.NewID(1001)
	secureID := kernel.NewSecureID()

	t.Run("restores_full_state", func(t *testing.T) {
		shipping := mustShipping(t)

		o, err := order.RestoreOrder(id, secureID, testCustomer(), testItems(), 2100,
			"Dhanmondi, Dhaka", order.Shipped, "TXN-889", &shipping)

		require.NoError(t, err)
		assert.Equal(t, order.Shipped, o.Status())
		assert.Equal(t, "TXN-889", o.TransactionID())
		require.NotNil(t, o.Shipping())
		assert.Equal(t, int64(3), o.Shipping().RiderID().Int64())
	})

	t.Run("rejects_shipping_record_before_shipped", func(t *testing.T) {
		shipping := mustShipping(t)

		for _, status := range []order.Status{order.Pending, order.Approved} {
			_, err := order.RestoreOrder(id, secureID, testCustomer(), testItems(), 2100,
				"Dhanmondi, Dhaka", status, "", &shipping)
			require.Error(t, err, status.WireName())
		}
	})

	t.Run("rejects_unknown_status", func(t *testing.T) {
		_, err := order.RestoreOrder(id, secureID, testCustomer(), testItems(), 2100,
			"Dhanmondi, Dhaka", order.Unknown, "", nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestShippingInfo(t *testing.T) {
	riderID, _ := kernel.NewID(3)

	t.Run("requires_courier_service", func(t *testing.T) {
		_, err := order.NewShippingInfo("", "TRK123", "", "", riderID)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires_known_courier_or_Other", func(t *testing.T) {
		_, err := order.NewShippingInfo("Totally Made Up Couriers", "TRK123", "", "", riderID)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = order.NewShippingInfo(order.CourierServiceOther, "TRK123", "", "", riderID)
		require.NoError(t, err)
	})

	t.Run("requires_tracking_id", func(t *testing.T) {
		_, err := order.NewShippingInfo("FedEx", "", "", "", riderID)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires_valid_rider_id", func(t *testing.T) {
		var noRider kernel.ID
		_, err := order.NewShippingInfo("FedEx", "TRK123", "", "", noRider)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("eta_and_notes_are_optional", func(t *testing.T) {
		shipping, err := order.NewShippingInfo("FedEx", "TRK123", "", "", riderID)
		require.NoError(t, err)
		assert.Empty(t, shipping.EstimatedDelivery())
		assert.Empty(t, shipping.Notes())
	})
}

func TestIsKnownCourierService(t *testing.T) {
	for _, known := range order.KnownCourierServices() {
		assert.True(t, order.IsKnownCourierService(known), known)
	}
	assert.True(t, order.IsKnownCourierService(order.CourierServiceOther))
	assert.False(t, order.IsKnownCourierService("fedex")) // exact match only
	assert.False(t, order.IsKnownCourierService(""))
}
