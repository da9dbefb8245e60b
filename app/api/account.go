package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/velmora/storefront/app/models"
)

// Account covers authentication and the /user endpoints. The auth
// store owns the resulting state; this type only moves payloads.
type Account struct {
	client *Client
}

func NewAccount(client *Client) *Account {
	return &Account{client: client}
}

func (a *Account) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var resp models.AuthResponse
	if err := a.client.post(ctx, "/auth/login", body, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

func (a *Account) Register(ctx context.Context, name, email, password string) (*models.AuthResponse, error) {
	body := map[string]string{"name": name, "email": email, "password": password}
	var resp models.AuthResponse
	if err := a.client.post(ctx, "/auth/register", body, &resp); err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

func (a *Account) ResetPassword(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	if err := a.client.post(ctx, "/auth/reset-password", body, nil); err != nil {
		return fmt.Errorf("reset-password request failed: %w", err)
	}
	return nil
}

func (a *Account) UpdateProfile(ctx context.Context, data models.ProfileUpdate) error {
	if err := a.client.put(ctx, "/user/profile", data, nil); err != nil {
		return fmt.Errorf("profile update request failed: %w", err)
	}
	return nil
}

func (a *Account) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	body := map[string]string{
		"currentPassword": currentPassword,
		"newPassword":     newPassword,
	}
	if err := a.client.put(ctx, "/user/change-password", body, nil); err != nil {
		return fmt.Errorf("change-password request failed: %w", err)
	}
	return nil
}

func (a *Account) Addresses(ctx context.Context) ([]models.Address, error) {
	var addresses []models.Address
	if err := a.client.get(ctx, "/user/addresses", &addresses); err != nil {
		return nil, fmt.Errorf("failed to fetch addresses: %w", err)
	}
	return addresses, nil
}

// AddAddress posts the address (id left empty) and returns the
// backend-assigned record.
func (a *Account) AddAddress(ctx context.Context, address models.Address) (*models.Address, error) {
	var created models.Address
	if err := a.client.post(ctx, "/user/addresses", address, &created); err != nil {
		return nil, fmt.Errorf("add-address request failed: %w", err)
	}
	return &created, nil
}

func (a *Account) UpdateAddress(ctx context.Context, id string, address models.Address) error {
	if err := a.client.put(ctx, "/user/addresses/"+url.PathEscape(id), address, nil); err != nil {
		return fmt.Errorf("update-address request failed: %w", err)
	}
	return nil
}

func (a *Account) RemoveAddress(ctx context.Context, id string) error {
	if err := a.client.delete(ctx, "/user/addresses/"+url.PathEscape(id)); err != nil {
		return fmt.Errorf("remove-address request failed: %w", err)
	}
	return nil
}

func (a *Account) PaymentMethods(ctx context.Context) ([]models.PaymentMethod, error) {
	var methods []models.PaymentMethod
	if err := a.client.get(ctx, "/user/payment-methods", &methods); err != nil {
		return nil, fmt.Errorf("failed to fetch payment methods: %w", err)
	}
	return methods, nil
}

func (a *Account) AddPaymentMethod(ctx context.Context, method models.PaymentMethod) (*models.PaymentMethod, error) {
	var created models.PaymentMethod
	if err := a.client.post(ctx, "/user/payment-methods", method, &created); err != nil {
		return nil, fmt.Errorf("add-payment-method request failed: %w", err)
	}
	return &created, nil
}

func (a *Account) RemovePaymentMethod(ctx context.Context, id string) error {
	if err := a.client.delete(ctx, "/user/payment-methods/"+url.PathEscape(id)); err != nil {
		return fmt.Errorf("remove-payment-method request failed: %w", err)
	}
	return nil
}

func (a *Account) SetDefaultPaymentMethod(ctx context.Context, id string) error {
	path := "/user/payment-methods/" + url.PathEscape(id) + "/default"
	if err := a.client.put(ctx, path, nil, nil); err != nil {
		return fmt.Errorf("set-default-payment-method request failed: %w", err)
	}
	return nil
}
