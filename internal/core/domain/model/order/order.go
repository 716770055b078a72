package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// Domain errors for order operations.
var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
	// ErrItemsAreRequired is returned when attempting to create an order
	// without line items.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
	// ErrShippingAddressIsRequired is returned when the shipping address is empty.
	ErrShippingAddressIsRequired = errs.NewValueIsRequiredError("shipping_address")
	// ErrCustomerNameIsRequired is returned when the customer name is empty.
	ErrCustomerNameIsRequired = errs.NewValueIsRequiredError("customer name")
	// ErrShippingNotAllowed is returned when restoring an order carrying a
	// shipping record before it reached the Shipped state.
	ErrShippingNotAllowed = errs.NewValueIsInvalidErrorWithCause("shipping",
		errors.New("an order may carry a shipping record only once it has reached or passed shipped"))
)

// Customer is the denormalized customer identity carried on an order for
// display: name, email and phone as captured at checkout.
type Customer struct {
	Name  string
	Email string
	Phone string
}

// LineItem is one ordered product line: product reference, quantity and the
// unit price at the time of purchase.
type LineItem struct {
	ProductID int64
	Quantity  int
	UnitPrice float64
}

// Order represents a customer purchase in the fulfillment workflow. It is
// the aggregate root that owns the order status lifecycle and the embedded
// shipping record.
//
// Order follows these invariants:
//   - Identity is a numeric key plus an opaque secure token
//   - Status transitions follow the fulfillment state machine (see Status)
//   - A shipping record is present only once the order reached or passed Shipped
//   - The Shipped transition requires a complete shipping record with a bound rider
//   - Can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields to ensure encapsulation; all mutation goes
// through validated transition methods.
type Order struct {
	id              kernel.ID
	secureID        kernel.SecureID
	customer        Customer
	items           []LineItem
	totalPrice      float64
	shippingAddress string
	status          Status
	transactionID   string
	shipping        *ShippingInfo

	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in Pending status. This is how checkout
// hands orders to the fulfillment workflow.
//
// Validation failures for the individual fields are aggregated so a caller
// learns about all of them in one pass.
func NewOrder(
	id kernel.ID,
	secureID kernel.SecureID,
	customer Customer,
	items []LineItem,
	totalPrice float64,
	shippingAddress string,
) (*Order, error) {
	o := &Order{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setSecureID(secureID),
		o.setCustomer(customer),
		o.setItems(items),
		o.setTotalPrice(totalPrice),
		o.setShippingAddress(shippingAddress),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence with its full state.
// Unlike NewOrder, it accepts any valid status, an optional transaction id
// and an optional shipping record, while still enforcing the invariant that
// shipping is only present at or past the Shipped state.
func RestoreOrder(
	id kernel.ID,
	secureID kernel.SecureID,
	customer Customer,
	items []LineItem,
	totalPrice float64,
	shippingAddress string,
	status Status,
	transactionID string,
	shipping *ShippingInfo,
) (*Order, error) {
	o, err := NewOrder(id, secureID, customer, items, totalPrice, shippingAddress)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if shipping != nil {
		if err = shipping.Validate(); err != nil {
			return nil, err
		}
		if !status.ReachedShipment() {
			return nil, ErrShippingNotAllowed
		}
	}

	o.status = status
	o.transactionID = transactionID
	o.shipping = shipping
	return o, nil
}

// Validate ensures the Order was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their numeric key.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's numeric key.
func (o *Order) ID() kernel.ID {
	return o.id
}

// SecureID returns the order's public-facing token.
func (o *Order) SecureID() kernel.SecureID {
	return o.secureID
}

// Customer returns the customer identity captured at checkout.
func (o *Order) Customer() Customer {
	return o.customer
}

// Items returns a copy of the ordered line items.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// TotalPrice returns the order total.
func (o *Order) TotalPrice() float64 {
	return o.totalPrice
}

// ShippingAddress returns the delivery address.
func (o *Order) ShippingAddress() string {
	return o.shippingAddress
}

// Status returns the current fulfillment status.
func (o *Order) Status() Status {
	return o.status
}

// TransactionID returns the payment transaction id, empty if none recorded.
func (o *Order) TransactionID() string {
	return o.transactionID
}

// Shipping returns the embedded shipping record.
// Returns nil until the order is shipped.
func (o *Order) Shipping() *ShippingInfo {
	return o.shipping
}

// Approve advances the order from Pending to Approved.
func (o *Order) Approve() error {
	newStatus, err := o.status.Approve()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Ship advances the order from Approved to Shipped, embedding the shipping
// record. The record must be complete (courier service, tracking id, bound
// rider); validating the individual fields against the active rider set is
// the shipping validator's job and must happen before calling Ship.
func (o *Order) Ship(shipping ShippingInfo) error {
	if err := shipping.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Ship()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.shipping = &shipping
	return nil
}

// Deliver advances the order from Shipped to Delivered. Terminal.
func (o *Order) Deliver() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Cancel moves the order to Cancelled from any non-terminal state. Terminal.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setSecureID(secureID kernel.SecureID) error {
	if err := secureID.Validate(); err != nil {
		return err
	}
	o.secureID = secureID
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	if customer.Name == "" {
		return ErrCustomerNameIsRequired
	}
	o.customer = customer
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for _, item := range items {
		if item.ProductID <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("items",
				fmt.Errorf("%d is not a valid product reference", item.ProductID))
		}
		if item.Quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("quantity",
				fmt.Errorf("%d is not greater than 0", item.Quantity))
		}
	}
	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setTotalPrice(totalPrice float64) error {
	if totalPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("total_price",
			fmt.Errorf("%f is negative", totalPrice))
	}
	o.totalPrice = totalPrice
	return nil
}

func (o *Order) setShippingAddress(address string) error {
	if address == "" {
		return ErrShippingAddressIsRequired
	}
	o.shippingAddress = address
	return nil
}
