package checkout

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/velmora/storefront/app/models"
	"github.com/velmora/storefront/app/stores"
	"github.com/velmora/storefront/app/utils/calc"
)

type Step string

const (
	StepShipping     Step = "shipping"
	StepPayment      Step = "payment"
	StepReview       Step = "review"
	StepConfirmation Step = "confirmation"
)

type ShippingMethod string

const (
	ShippingStandard ShippingMethod = "standard"
	ShippingExpress  ShippingMethod = "express"
)

type PaymentMethod string

const (
	PaymentCreditCard PaymentMethod = "credit-card"
	PaymentPaypal     PaymentMethod = "paypal"
)

// ShippingInfo is the shipping step draft. Email and phone are
// collected but not required to proceed.
type ShippingInfo struct {
	Email      string `json:"email"`
	FirstName  string `json:"firstName" validate:"required"`
	LastName   string `json:"lastName" validate:"required"`
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state" validate:"required"`
	PostalCode string `json:"postalCode" validate:"required"`
	Country    string `json:"country" validate:"required"`
	Phone      string `json:"phone"`
}

// PaymentInfo is the card draft. It lives in memory for the duration
// of the flow and is never persisted.
type PaymentInfo struct {
	CardName        string `json:"cardName" validate:"required"`
	CardNumber      string `json:"cardNumber" validate:"required"`
	ExpiryDate      string `json:"expiryDate" validate:"required"`
	CVV             string `json:"cvv" validate:"required"`
	SavePaymentInfo bool   `json:"savePaymentInfo"`
}

var (
	ErrEmptyCart      = errors.New("cart is empty")
	ErrStepIncomplete = errors.New("current step is incomplete")
)

// Flow drives the multi-step checkout:
//
//	shipping → payment → review → confirmation
//
// with backward moves allowed from payment and review only, and
// confirmation terminal. Pricing is derived on every read from the
// cart and the selected shipping method, never cached.
type Flow struct {
	cart     *stores.Cart
	auth     *stores.Auth
	validate *validator.Validate

	step            Step
	shippingInfo    ShippingInfo
	paymentInfo     PaymentInfo
	selectedAddress string
	shippingMethod  ShippingMethod
	paymentMethod   PaymentMethod
	orderNumber     string
}

// NewFlow starts a checkout at the shipping step. When the shopper
// is authenticated and has a default address, its address fields are
// preloaded into the shipping draft and marked selected; the name
// fields stay whatever the shopper types.
func NewFlow(cart *stores.Cart, auth *stores.Auth) *Flow {
	f := &Flow{
		cart:           cart,
		auth:           auth,
		validate:       validator.New(),
		step:           StepShipping,
		shippingMethod: ShippingStandard,
		paymentMethod:  PaymentCreditCard,
	}

	if auth != nil && auth.IsAuthenticated() {
		if addr, ok := auth.DefaultAddress(); ok {
			f.selectedAddress = addr.ID
			f.applyAddress(addr)
		}
	}
	return f
}

func (f *Flow) applyAddress(addr models.Address) {
	f.shippingInfo.Address = addr.Street
	f.shippingInfo.City = addr.City
	f.shippingInfo.State = addr.State
	f.shippingInfo.PostalCode = addr.PostalCode
	f.shippingInfo.Country = addr.Country
}

// SelectAddress copies a saved address into the shipping draft,
// overwriting the address fields only. Unknown ids are ignored.
func (f *Flow) SelectAddress(id string) bool {
	if f.auth == nil {
		return false
	}
	for _, addr := range f.auth.Addresses() {
		if addr.ID == id {
			f.selectedAddress = id
			f.applyAddress(addr)
			return true
		}
	}
	return false
}

func (f *Flow) Step() Step                         { return f.step }
func (f *Flow) SelectedAddress() string            { return f.selectedAddress }
func (f *Flow) OrderNumber() string                { return f.orderNumber }
func (f *Flow) ShippingInfo() ShippingInfo         { return f.shippingInfo }
func (f *Flow) ShippingMethod() ShippingMethod     { return f.shippingMethod }
func (f *Flow) PaymentMethodChoice() PaymentMethod { return f.paymentMethod }

func (f *Flow) SetShippingInfo(info ShippingInfo) { f.shippingInfo = info }
func (f *Flow) SetPaymentInfo(info PaymentInfo)   { f.paymentInfo = info }

func (f *Flow) SetShippingMethod(m ShippingMethod) { f.shippingMethod = m }
func (f *Flow) SetPaymentMethod(m PaymentMethod)   { f.paymentMethod = m }

// CheckCart is the empty-cart guard: checkout cannot continue with
// nothing in the cart unless the order is already confirmed. Callers
// re-run it whenever cart contents or the step change.
func (f *Flow) CheckCart() error {
	if f.cart.Count() == 0 && f.step != StepConfirmation {
		return ErrEmptyCart
	}
	return nil
}

// CanProceed reports whether the current step's draft is complete.
// Shipping requires the name and address fields; payment requires
// the card fields only for credit-card; review always proceeds.
func (f *Flow) CanProceed() bool {
	switch f.step {
	case StepShipping:
		return f.validate.Struct(f.shippingInfo) == nil
	case StepPayment:
		if f.paymentMethod == PaymentCreditCard {
			return f.validate.Struct(f.paymentInfo) == nil
		}
		return true
	default:
		return true
	}
}

// NextStep advances the flow. Advancing from review places the
// order. Confirmation is terminal; NextStep there is a no-op.
func (f *Flow) NextStep() error {
	if !f.CanProceed() {
		return ErrStepIncomplete
	}

	switch f.step {
	case StepShipping:
		f.step = StepPayment
	case StepPayment:
		f.step = StepReview
	case StepReview:
		f.placeOrder()
	}
	return nil
}

// PrevStep moves back from payment or review; any other step stays.
func (f *Flow) PrevStep() {
	switch f.step {
	case StepPayment:
		f.step = StepShipping
	case StepReview:
		f.step = StepPayment
	}
}

// placeOrder generates the human-readable order number, moves to
// confirmation and empties the cart. No backend order is created;
// the order API integration is the single seam left open here.
func (f *Flow) placeOrder() {
	f.orderNumber = fmt.Sprintf("ORD-%d", 100000+rand.Intn(900000))
	f.step = StepConfirmation
	f.cart.ClearCart()
}

func (f *Flow) Subtotal() decimal.Decimal {
	return f.cart.Total()
}

func (f *Flow) ShippingCost() decimal.Decimal {
	if f.shippingMethod == ShippingExpress {
		return calc.ExpressShippingCost
	}
	return calc.StandardShippingCost
}

func (f *Flow) Tax() decimal.Decimal {
	if f.cart.Count() == 0 {
		return decimal.Zero
	}
	return calc.CalculateTax(f.cart.Total())
}

func (f *Flow) OrderTotal() decimal.Decimal {
	return calc.CalculateOrderTotal(f.Subtotal(), f.ShippingCost(), f.Tax(), f.cart.Count() == 0)
}
