package stores

import (
	"context"
	"errors"
	"sync"

	"github.com/velmora/storefront/app/api"
	"github.com/velmora/storefront/app/models"
	"github.com/velmora/storefront/app/storage"
	"go.uber.org/zap"
)

// Fixed, operation-named errors surfaced to callers. The underlying
// backend failure is logged here; pages own the user-facing message.
var (
	ErrLoginFailed             = errors.New("login failed")
	ErrRegistrationFailed      = errors.New("registration failed")
	ErrProfileUpdateFailed     = errors.New("profile update failed")
	ErrFetchAddressesFailed    = errors.New("failed to load addresses")
	ErrAddAddressFailed        = errors.New("failed to add address")
	ErrUpdateAddressFailed     = errors.New("failed to update address")
	ErrRemoveAddressFailed     = errors.New("failed to remove address")
	ErrFetchPaymentsFailed     = errors.New("failed to load payment methods")
	ErrAddPaymentFailed        = errors.New("failed to add payment method")
	ErrRemovePaymentFailed     = errors.New("failed to remove payment method")
	ErrSetDefaultPaymentFailed = errors.New("failed to set default payment method")
	ErrPasswordResetFailed     = errors.New("password reset request failed")
	ErrPasswordChangeFailed    = errors.New("password change failed")
)

type authSnapshot struct {
	Token           string                 `json:"token"`
	User            *models.User           `json:"user"`
	Addresses       []models.Address       `json:"addresses"`
	PaymentMethods  []models.PaymentMethod `json:"paymentMethods"`
	IsAuthenticated bool                   `json:"isAuthenticated"`
}

// Auth is the persisted account state: token, user, saved addresses
// and payment methods. Every mutating method calls the backend first
// and merges the result into local state only on success, so two
// concurrent calls commit in completion order (last write wins).
// The store is its own TokenSource for the API client.
type Auth struct {
	mu              sync.Mutex
	token           string
	user            *models.User
	addresses       []models.Address
	paymentMethods  []models.PaymentMethod
	isAuthenticated bool

	account *api.Account
	store   storage.Store
	logger  *zap.Logger
}

func NewAuth(account *api.Account, store storage.Store, logger *zap.Logger) *Auth {
	a := &Auth{
		account: account,
		store:   store,
		logger:  logger,
	}

	var snap authSnapshot
	ok, err := store.Load(storage.AuthKey, &snap)
	if err != nil {
		logger.Warn("failed to load auth snapshot", zap.Error(err))
		return a
	}
	if ok {
		a.token = snap.Token
		a.user = snap.User
		a.addresses = snap.Addresses
		a.paymentMethods = snap.PaymentMethods
		a.isAuthenticated = snap.IsAuthenticated
	}
	return a
}

func (a *Auth) Login(ctx context.Context, email, password string) error {
	resp, err := a.account.Login(ctx, email, password)
	if err != nil {
		a.logger.Warn("login failed", zap.Error(err))
		return ErrLoginFailed
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.token = resp.Token
	a.user = &resp.User
	a.isAuthenticated = true
	a.persist()
	return nil
}

func (a *Auth) Register(ctx context.Context, name, email, password string) error {
	resp, err := a.account.Register(ctx, name, email, password)
	if err != nil {
		a.logger.Warn("registration failed", zap.Error(err))
		return ErrRegistrationFailed
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.token = resp.Token
	a.user = &resp.User
	a.isAuthenticated = true
	a.persist()
	return nil
}

// Logout clears the session fields only. Addresses and payment
// methods survive so a returning shopper finds them after the next
// login; clearing them too is an open product question.
func (a *Auth) Logout() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.token = ""
	a.user = nil
	a.isAuthenticated = false
	a.persist()
}

func (a *Auth) UpdateProfile(ctx context.Context, data models.ProfileUpdate) error {
	if err := a.account.UpdateProfile(ctx, data); err != nil {
		a.logger.Warn("profile update failed", zap.Error(err))
		return ErrProfileUpdateFailed
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.user != nil {
		a.user.FirstName = data.FirstName
		a.user.LastName = data.LastName
		if data.PhoneNumber != "" {
			a.user.PhoneNumber = data.PhoneNumber
		}
	}
	a.persist()
	return nil
}

// FetchAddresses replaces the local address list with the backend's.
func (a *Auth) FetchAddresses(ctx context.Context) error {
	addresses, err := a.account.Addresses(ctx)
	if err != nil {
		a.logger.Warn("fetching addresses failed", zap.Error(err))
		return ErrFetchAddressesFailed
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.addresses = addresses
	a.persist()
	return nil
}

func (a *Auth) AddAddress(ctx context.Context, address models.Address) error {
	created, err := a.account.AddAddress(ctx, address)
	if err != nil {
		a.logger.Warn("adding address failed", zap.Error(err))
		return ErrAddAddressFailed
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.addresses = append(a.addresses, *created)
	a.persist()
	return nil
}

func (a *Auth) UpdateAddress(ctx context.Context, id string, address models.Address) error {
	if err := a.account.UpdateAddress(ctx, id, address); err != nil {
		a.logger.Warn("updating address failed", zap.Error(err))
		return ErrUpdateAddressFailed
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	for i := range a.addresses {
		if a.addresses[i].ID == id {
			address.ID = id
			a.addresses[i] = address
			break
		}
	}
	a.persist()
	return nil
}

func (a *Auth) RemoveAddress(ctx context.Context, id string) error {
	if err := a.account.RemoveAddress(ctx, id); err != nil {
		a.logger.Warn("removing address failed", zap.Error(err))
		return ErrRemoveAddressFailed
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	kept := a.addresses[:0]
	for _, addr := range a.addresses {
		if addr.ID != id {
			kept = append(kept, addr)
		}
	}
	a.addresses = kept
	a.persist()
	return nil
}

func (a *Auth) FetchPaymentMethods(ctx context.Context) error {
	methods, err := a.account.PaymentMethods(ctx)
	if err != nil {
		a.logger.Warn("fetching payment methods failed", zap.Error(err))
		return ErrFetchPaymentsFailed
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.paymentMethods = methods
	a.persist()
	return nil
}

func (a *Auth) AddPaymentMethod(ctx context.Context, method models.PaymentMethod) error {
	created, err := a.account.AddPaymentMethod(ctx, method)
	if err != nil {
		a.logger.Warn("adding payment method failed", zap.Error(err))
		return ErrAddPaymentFailed
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.paymentMethods = append(a.paymentMethods, *created)
	a.persist()
	return nil
}

func (a *Auth) RemovePaymentMethod(ctx context.Context, id string) error {
	if err := a.account.RemovePaymentMethod(ctx, id); err != nil {
		a.logger.Warn("removing payment method failed", zap.Error(err))
		return ErrRemovePaymentFailed
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	kept := a.paymentMethods[:0]
	for _, m := range a.paymentMethods {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	a.paymentMethods = kept
	a.persist()
	return nil
}

// SetDefaultPaymentMethod mirrors the backend change by marking
// exactly one local entry default.
func (a *Auth) SetDefaultPaymentMethod(ctx context.Context, id string) error {
	if err := a.account.SetDefaultPaymentMethod(ctx, id); err != nil {
		a.logger.Warn("setting default payment method failed", zap.Error(err))
		return ErrSetDefaultPaymentFailed
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	for i := range a.paymentMethods {
		a.paymentMethods[i].IsDefault = a.paymentMethods[i].ID == id
	}
	a.persist()
	return nil
}

func (a *Auth) ResetPassword(ctx context.Context, email string) error {
	if err := a.account.ResetPassword(ctx, email); err != nil {
		a.logger.Warn("password reset failed", zap.Error(err))
		return ErrPasswordResetFailed
	}
	return nil
}

func (a *Auth) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	if err := a.account.ChangePassword(ctx, currentPassword, newPassword); err != nil {
		a.logger.Warn("password change failed", zap.Error(err))
		return ErrPasswordChangeFailed
	}
	return nil
}

// Token implements api.TokenSource.
func (a *Auth) Token() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.token
}

func (a *Auth) IsAuthenticated() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.isAuthenticated
}

func (a *Auth) User() *models.User {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.user == nil {
		return nil
	}
	user := *a.user
	return &user
}

func (a *Auth) Addresses() []models.Address {
	a.mu.Lock()
	defer a.mu.Unlock()
	addresses := make([]models.Address, len(a.addresses))
	copy(addresses, a.addresses)
	return addresses
}

// DefaultAddress returns the address flagged IsDefault, if any.
func (a *Auth) DefaultAddress() (models.Address, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, addr := range a.addresses {
		if addr.IsDefault {
			return addr, true
		}
	}
	return models.Address{}, false
}

func (a *Auth) PaymentMethods() []models.PaymentMethod {
	a.mu.Lock()
	defer a.mu.Unlock()
	methods := make([]models.PaymentMethod, len(a.paymentMethods))
	copy(methods, a.paymentMethods)
	return methods
}

// persist is called with a.mu held. The snapshot includes the token;
// anyone with access to the data directory can read it, the same
// trade-off the browser localStorage version makes.
func (a *Auth) persist() {
	snap := authSnapshot{
		Token:           a.token,
		User:            a.user,
		Addresses:       a.addresses,
		PaymentMethods:  a.paymentMethods,
		IsAuthenticated: a.isAuthenticated,
	}
	if err := a.store.Save(storage.AuthKey, snap); err != nil {
		a.logger.Warn("failed to persist auth snapshot", zap.Error(err))
	}
}
