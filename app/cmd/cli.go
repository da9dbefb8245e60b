package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v3"
	"github.com/velmora/storefront/app/api"
	"github.com/velmora/storefront/app/checkout"
	"github.com/velmora/storefront/app/models"
	"github.com/velmora/storefront/app/utils/format"
)

// RunCli dispatches to the storefront command tree. Each command
// wires its own app instance so state snapshots are reloaded fresh
// per invocation, the way a page load rehydrates the stores.
func RunCli() error {
	cmd := &cli.Command{
		Name:  "storefront",
		Usage: "Browse the catalog, manage your cart and account, and check out",
		Commands: []*cli.Command{
			productsCommand(),
			categoriesCommand(),
			reviewsCommand(),
			authCommand(),
			addressCommand(),
			paymentCommand(),
			cartCommand(),
			wishlistCommand(),
			checkoutCommand(),
		},
	}

	return cmd.Run(context.Background(), os.Args)
}

func productsCommand() *cli.Command {
	return &cli.Command{
		Name:  "products",
		Usage: "Browse and search the catalog",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List products, optionally filtered",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "category"},
					&cli.StringFlag{Name: "search"},
					&cli.StringFlag{Name: "min-price"},
					&cli.StringFlag{Name: "max-price"},
					&cli.StringFlag{Name: "sort"},
					&cli.StringFlag{Name: "tags", Usage: "comma-separated tag list"},
					&cli.IntFlag{Name: "page"},
					&cli.IntFlag{Name: "limit"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					a, err := newApp()
					if err != nil {
						return err
					}
					defer a.close()

					filters := api.ProductFilters{
						Category: c.String("category"),
						Search:   c.String("search"),
						Sort:     c.String("sort"),
						Page:     int(c.Int("page")),
						Limit:    int(c.Int("limit")),
					}
					if raw := c.String("min-price"); raw != "" {
						min, err := decimal.NewFromString(raw)
						if err != nil {
							return fmt.Errorf("invalid --min-price: %w", err)
						}
						filters.MinPrice = min
					}
					if raw := c.String("max-price"); raw != "" {
						max, err := decimal.NewFromString(raw)
						if err != nil {
							return fmt.Errorf("invalid --max-price: %w", err)
						}
						filters.MaxPrice = max
					}
					if tags := c.String("tags"); tags != "" {
						filters.Tags = strings.Split(tags, ",")
					}

					resp, err := a.products.GetProducts(ctx, filters)
					if err != nil {
						return err
					}
					for _, p := range resp.Data {
						printProductLine(p)
					}
					fmt.Printf("%d of %d products (page %d)\n", len(resp.Data), resp.Total, resp.Page)
					return nil
				},
			},
			{
				Name:      "show",
				Usage:     "Show one product",
				ArgsUsage: "<product-id>",
				Action: func(ctx context.Context, c *cli.Command) error {
					a, err := newApp()
					if err != nil {
						return err
					}
					defer a.close()

					id := c.Args().First()
					if id == "" {
						return fmt.Errorf("product id is required")
					}
					p, err := a.products.GetProduct(ctx, id)
					if err != nil {
						return err
					}
					printProductDetail(*p)
					return nil
				},
			},
		},
	}
}

func categoriesCommand() *cli.Command {
	return &cli.Command{
		Name:  "categories",
		Usage: "List categories",
		Action: func(ctx context.Context, c *cli.Command) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			categories, err := a.products.GetCategories(ctx)
			if err != nil {
				return err
			}
			for _, cat := range categories {
				fmt.Printf("%s  %s (%s)\n", cat.ID, cat.Name, cat.Slug)
			}
			return nil
		},
	}
}

func reviewsCommand() *cli.Command {
	return &cli.Command{
		Name:  "reviews",
		Usage: "Read and write product reviews",
		Commands: []*cli.Command{
			{
				Name:      "list",
				ArgsUsage: "<product-id>",
				Action: func(ctx context.Context, c *cli.Command) error {
					a, err := newApp()
					if err != nil {
						return err
					}
					defer a.close()

					productID := c.Args().First()
					if productID == "" {
						return fmt.Errorf("product id is required")
					}
					resp, err := a.reviews.GetProductReviews(ctx, productID)
					if err != nil {
						return err
					}
					for _, rv := range resp.Reviews {
						verified := ""
						if rv.IsVerifiedPurchase {
							verified = " [verified purchase]"
						}
						fmt.Printf("%s  %d/5%s (%d helpful)\n  %s\n", rv.ID, rv.Rating, verified, rv.HelpfulVotes, rv.Comment)
					}
					fmt.Printf("%d reviews, average %.1f\n", resp.TotalReviews, resp.AverageRating)
					return nil
				},
			},
			{
				Name:      "add",
				ArgsUsage: "<product-id>",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "rating", Required: true, Usage: "1-5"},
					&cli.StringFlag{Name: "comment", Required: true},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					a, err := newApp()
					if err != nil {
						return err
					}
					defer a.close()

					productID := c.Args().First()
					if productID == "" {
						return fmt.Errorf("product id is required")
					}
					review, err := a.reviews.SubmitReview(ctx, productID, models.ReviewPayload{
						Rating:  int(c.Int("rating")),
						Comment: c.String("comment"),
					})
					if err != nil {
						return err
					}
					fmt.Printf("Review %s submitted\n", review.ID)
					return nil
				},
			},
			{
				Name:      "helpful",
				ArgsUsage: "<product-id> <review-id>",
				Action: func(ctx context.Context, c *cli.Command) error {
					a, err := newApp()
					if err != nil {
						return err
					}
					defer a.close()

					productID, reviewID := c.Args().Get(0), c.Args().Get(1)
					if productID == "" || reviewID == "" {
						return fmt.Errorf("product id and review id are required")
					}
					review, err := a.reviews.MarkHelpful(ctx, productID, reviewID)
					if err != nil {
						return err
					}
					fmt.Printf("Review %s now has %d helpful votes\n", review.ID, review.HelpfulVotes)
					return nil
				},
			},
			{
				Name:      "delete",
				ArgsUsage: "<product-id> <review-id>",
				Action: func(ctx context.Context, c *cli.Command) error {
					a, err := newApp()
					if err != nil {
						return err
					}
					defer a.close()

					productID, reviewID := c.Args().Get(0), c.Args().Get(1)
					if productID == "" || reviewID == "" {
						return fmt.Errorf("product id and review id are required")
					}
					if err := a.reviews.DeleteReview(ctx, productID, reviewID); err != nil {
						return err
					}
					fmt.Println("Review deleted")
					return nil
				},
			},
		},
	}
}

func authCommand() *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Sign in and manage the account",
		Commands: []*cli.Command{
			{
				Name: "login",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "email", Required: true},
					&cli.StringFlag{Name: "password", Required: true},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					a, err := newApp()
					if err != nil {
						return err
					}
					defer a.close()

					if err := a.auth.Login(ctx, c.String("email"), c.String("password")); err != nil {
						return err
					}
					user := a.auth.User()
					fmt.Printf("Signed in as %s %s <%s>\n", user.FirstName, user.LastName, user.Email)
					return nil
				},
			},
			{
				Name: "register",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "email", Required: true},
					&cli.StringFlag{Name: "password", Required: true},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					a, err := newApp()
					if err != nil {
						return err
					}
					defer a.close()

					if err := a.auth.Register(ctx, c.String("name"), c.String("email"), c.String("password")); err != nil {
						return err
					}
					fmt.Println("Account created")
					return nil
				},
			},
			{
				Name: "logout",
				Action: func(ctx context.Context, c *cli.Command) error {
					a, err := newApp()
					if err != nil {
						return err
					}
					defer a.close()

					a.auth.Logout()
					fmt.Println("Signed out")
					return nil
				},
			},
			{
				Name: "whoami",
				Action: func(ctx context.Context, c *cli.Command) error {
					a, err := newApp()
					if err != nil {
						return err
					}
					defer a.close()

					if !a.auth.IsAuthenticated() {
						fmt.Println("Not signed in")
						return nil
					}
					user := a.auth.User()
					fmt.Printf("%s %s <%s>\n", user.FirstName, user.LastName, user.Email)
					return nil
				},
			},
			{
				Name: "update-profile",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "first-name", Required: true},
					&cli.StringFlag{Name: "last-name", Required: true},
					&cli.StringFlag{Name: "phone"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					a, err := newApp()
					if err != nil {
						return err
					}
					defer a.close()

					return a.auth.UpdateProfile(ctx, models.ProfileUpdate{
						FirstName:   c.String("first-name"),
						LastName:    c.String("last-name"),
						PhoneNumber: c.String("phone"),
					})
				},
			},
			{
				Name: "reset-password",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "email", Required: true},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					a, err := newApp()
					if err != nil {
						return err
					}
					defer a.close()

					if err := a.auth.ResetPassword(ctx, c.String("email")); err != nil {
						return err
					}
					fmt.Println("Password reset email requested")
					return nil
				},
			},
			{
				Name: "change-password",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "current", Required: true},
					&cli.StringFlag{Name: "new", Required: true},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					a, err := newApp()
					if err != nil {
						return err
					}
					defer a.close()

					if err := a.auth.ChangePassword(ctx, c.String("current"), c.String("new")); err != nil {
						return err
					}
					fmt.Println("Password changed")
					return nil
				},
			},
		},
	}
}

func addressCommand() *cli.Command {
	return &cli.Command{
		Name:  "address",
		Usage: "Manage saved addresses",
		Commands: []*cli.Command{
			{
				Name: "list",
				Action: func(ctx context.Context, c *cli.Command) error {
					a, err := newApp()
					if err != nil {
						return err
					}
					defer a.close()

					for _, addr := range a.auth.Addresses() {
						def := ""
						if addr.IsDefault {
							def = " (default)"
						}
						fmt.Printf("%s  %s%s\n  %s, %s, %s %s, %s\n",
							addr.ID, addr.Name, def,
							addr.Street, addr.City, addr.State, addr.PostalCode, addr.Country)
					}
					return nil
				},
			},
			{
				Name:  "sync",
				Usage: "Refresh saved addresses from the backend",
				Action: func(ctx context.Context, c *cli.Command) error {
					a, err := newApp()
					if err != nil {
						return err
					}
					defer a.close()

					return a.auth.FetchAddresses(ctx)
				},
			},
			{
				Name: "add",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "street", Required: true},
					&cli.StringFlag{Name: "city", Required: true},
					&cli.StringFlag{Name: "state", Required: true},
					&cli.StringFlag{Name: "postal-code", Required: true},
					&cli.StringFlag{Name: "country", Required: true},
					&cli.BoolFlag{Name: "default"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					a, err := newApp()
					if err != nil {
						return err
					}
					defer a.close()

					return a.auth.AddAddress(ctx, models.Address{
						Name:       c.String("name"),
						Street:     c.String("street"),
						City:       c.String("city"),
						State:      c.String("state"),
						PostalCode: c.String("postal-code"),
						Country:    c.String("country"),
						IsDefault:  c.Bool("default"),
					})
				},
			},
			{
				Name:      "remove",
				ArgsUsage: "<address-id>",
				Action: func(ctx context.Context, c *cli.Command) error {
					a, err := newApp()
					if err != nil {
						return err
					}
					defer a.close()

					id := c.Args().First()
					if id == "" {
						return fmt.Errorf("address id is required")
					}
					return a.auth.RemoveAddress(ctx, id)
				},
			},
		},
	}
}

func paymentCommand() *cli.Command {
	return &cli.Command{
		Name:  "payment",
		Usage: "Manage saved payment methods",
		Commands: []*cli.Command{
			{
				Name: "list",
				Action: func(ctx context.Context, c *cli.Command) error {
					a, err := newApp()
					if err != nil {
						return err
					}
					defer a.close()

					for _, m := range a.auth.PaymentMethods() {
						def := ""
						if m.IsDefault {
							def = " (default)"
						}
						fmt.Printf("%s  %s %s •••• %s exp %s%s\n",
							m.ID, m.Type, m.CardBrand, m.LastFour, m.ExpiryDate, def)
					}
					return nil
				},
			},
			{
				Name:  "sync",
				Usage: "Refresh payment methods from the backend",
				Action: func(ctx context.Context, c *cli.Command) error {
					a, err := newApp()
					if err != nil {
						return err
					}
					defer a.close()

					return a.auth.FetchPaymentMethods(ctx)
				},
			},
			{
				Name: "add",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "type", Value: models.PaymentTypeCard},
					&cli.StringFlag{Name: "last-four"},
					&cli.StringFlag{Name: "brand"},
					&cli.StringFlag{Name: "expiry", Usage: "MM/YY"},
					&cli.BoolFlag{Name: "default"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					a, err := newApp()
					if err != nil {
						return err
					}
					defer a.close()

					return a.auth.AddPaymentMethod(ctx, models.PaymentMethod{
						Type:       c.String("type"),
						LastFour:   c.String("last-four"),
						CardBrand:  c.String("brand"),
						ExpiryDate: c.String("expiry"),
						IsDefault:  c.Bool("default"),
					})
				},
			},
			{
				Name:      "default",
				ArgsUsage: "<payment-method-id>",
				Action: func(ctx context.Context, c *cli.Command) error {
					a, err := newApp()
					if err != nil {
						return err
					}
					defer a.close()

					id := c.Args().First()
					if id == "" {
						return fmt.Errorf("payment method id is required")
					}
					return a.auth.SetDefaultPaymentMethod(ctx, id)
				},
			},
			{
				Name:      "remove",
				ArgsUsage: "<payment-method-id>",
				Action: func(ctx context.Context, c *cli.Command) error {
					a, err := newApp()
					if err != nil {
						return err
					}
					defer a.close()

					id := c.Args().First()
					if id == "" {
						return fmt.Errorf("payment method id is required")
					}
					return a.auth.RemovePaymentMethod(ctx, id)
				},
			},
		},
	}
}

func cartCommand() *cli.Command {
	return &cli.Command{
		Name:  "cart",
		Usage: "Manage the shopping cart",
		Commands: []*cli.Command{
			{
				Name: "show",
				Action: func(ctx context.Context, c *cli.Command) error {
					a, err := newApp()
					if err != nil {
						return err
					}
					defer a.close()

					items := a.cart.Items()
					if len(items) == 0 {
						fmt.Println("Your cart is empty")
						return nil
					}
					for _, item := range items {
						fmt.Printf("%s  %s ×%d  %s\n",
							item.Product.ID, item.Product.Name, item.Quantity,
							format.FormatPrice(item.Subtotal()))
					}
					fmt.Printf("Total: %s\n", format.FormatPrice(a.cart.Total()))
					return nil
				},
			},
			{
				Name:      "add",
				ArgsUsage: "<product-id>",
				Action: func(ctx context.Context, c *cli.Command) error {
					a, err := newApp()
					if err != nil {
						return err
					}
					defer a.close()

					id := c.Args().First()
					if id == "" {
						return fmt.Errorf("product id is required")
					}
					product, err := a.products.GetProduct(ctx, id)
					if err != nil {
						return err
					}
					a.cart.AddItem(*product)
					fmt.Printf("Added %s. Total: %s\n", product.Name, format.FormatPrice(a.cart.Total()))
					return nil
				},
			},
			{
				Name:      "update",
				ArgsUsage: "<product-id>",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "qty", Required: true},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					a, err := newApp()
					if err != nil {
						return err
					}
					defer a.close()

					id := c.Args().First()
					if id == "" {
						return fmt.Errorf("product id is required")
					}
					qty := int(c.Int("qty"))
					if qty < 1 {
						qty = 1
					}
					a.cart.UpdateQuantity(id, qty)
					fmt.Printf("Total: %s\n", format.FormatPrice(a.cart.Total()))
					return nil
				},
			},
			{
				Name:      "remove",
				ArgsUsage: "<product-id>",
				Action: func(ctx context.Context, c *cli.Command) error {
					a, err := newApp()
					if err != nil {
						return err
					}
					defer a.close()

					id := c.Args().First()
					if id == "" {
						return fmt.Errorf("product id is required")
					}
					a.cart.RemoveItem(id)
					fmt.Printf("Total: %s\n", format.FormatPrice(a.cart.Total()))
					return nil
				},
			},
			{
				Name: "clear",
				Action: func(ctx context.Context, c *cli.Command) error {
					a, err := newApp()
					if err != nil {
						return err
					}
					defer a.close()

					a.cart.ClearCart()
					fmt.Println("Cart cleared")
					return nil
				},
			},
		},
	}
}

func wishlistCommand() *cli.Command {
	return &cli.Command{
		Name:  "wishlist",
		Usage: "Manage favorite products",
		Commands: []*cli.Command{
			{
				Name: "show",
				Action: func(ctx context.Context, c *cli.Command) error {
					a, err := newApp()
					if err != nil {
						return err
					}
					defer a.close()

					items := a.wishlist.Items()
					if len(items) == 0 {
						fmt.Println("Your wishlist is empty")
						return nil
					}
					for _, p := range items {
						printProductLine(p)
					}
					return nil
				},
			},
			{
				Name:      "add",
				ArgsUsage: "<product-id>",
				Action: func(ctx context.Context, c *cli.Command) error {
					a, err := newApp()
					if err != nil {
						return err
					}
					defer a.close()

					id := c.Args().First()
					if id == "" {
						return fmt.Errorf("product id is required")
					}
					if a.wishlist.IsInWishlist(id) {
						fmt.Println("Already in wishlist")
						return nil
					}
					product, err := a.products.GetProduct(ctx, id)
					if err != nil {
						return err
					}
					a.wishlist.AddItem(*product)
					fmt.Printf("Added %s to wishlist\n", product.Name)
					return nil
				},
			},
			{
				Name:      "remove",
				ArgsUsage: "<product-id>",
				Action: func(ctx context.Context, c *cli.Command) error {
					a, err := newApp()
					if err != nil {
						return err
					}
					defer a.close()

					id := c.Args().First()
					if id == "" {
						return fmt.Errorf("product id is required")
					}
					a.wishlist.RemoveItem(id)
					return nil
				},
			},
			{
				Name: "clear",
				Action: func(ctx context.Context, c *cli.Command) error {
					a, err := newApp()
					if err != nil {
						return err
					}
					defer a.close()

					a.wishlist.ClearWishlist()
					return nil
				},
			},
		},
	}
}

func checkoutCommand() *cli.Command {
	return &cli.Command{
		Name:  "checkout",
		Usage: "Run the checkout flow over the current cart",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "address-id", Usage: "use a saved address for shipping"},
			&cli.StringFlag{Name: "first-name"},
			&cli.StringFlag{Name: "last-name"},
			&cli.StringFlag{Name: "email"},
			&cli.StringFlag{Name: "phone"},
			&cli.StringFlag{Name: "street"},
			&cli.StringFlag{Name: "city"},
			&cli.StringFlag{Name: "state"},
			&cli.StringFlag{Name: "postal-code"},
			&cli.StringFlag{Name: "country"},
			&cli.StringFlag{Name: "shipping", Value: string(checkout.ShippingStandard), Usage: "standard or express"},
			&cli.StringFlag{Name: "payment", Value: string(checkout.PaymentCreditCard), Usage: "credit-card or paypal"},
			&cli.StringFlag{Name: "card-name"},
			&cli.StringFlag{Name: "card-number"},
			&cli.StringFlag{Name: "expiry", Usage: "MM/YY"},
			&cli.StringFlag{Name: "cvv"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			flow := checkout.NewFlow(a.cart, a.auth)
			if err := flow.CheckCart(); err != nil {
				return fmt.Errorf("%w: add items before checking out", err)
			}

			info := flow.ShippingInfo()
			if id := c.String("address-id"); id != "" {
				if !flow.SelectAddress(id) {
					return fmt.Errorf("no saved address %s", id)
				}
				info = flow.ShippingInfo()
			}
			setIfFlag := func(dst *string, name string) {
				if v := c.String(name); v != "" {
					*dst = v
				}
			}
			setIfFlag(&info.FirstName, "first-name")
			setIfFlag(&info.LastName, "last-name")
			setIfFlag(&info.Email, "email")
			setIfFlag(&info.Phone, "phone")
			setIfFlag(&info.Address, "street")
			setIfFlag(&info.City, "city")
			setIfFlag(&info.State, "state")
			setIfFlag(&info.PostalCode, "postal-code")
			setIfFlag(&info.Country, "country")
			flow.SetShippingInfo(info)
			flow.SetShippingMethod(checkout.ShippingMethod(c.String("shipping")))

			if err := flow.NextStep(); err != nil {
				return fmt.Errorf("shipping step: %w", err)
			}

			flow.SetPaymentMethod(checkout.PaymentMethod(c.String("payment")))
			flow.SetPaymentInfo(checkout.PaymentInfo{
				CardName:   c.String("card-name"),
				CardNumber: c.String("card-number"),
				ExpiryDate: c.String("expiry"),
				CVV:        c.String("cvv"),
			})
			if err := flow.NextStep(); err != nil {
				return fmt.Errorf("payment step: %w", err)
			}

			fmt.Printf("Subtotal: %s\n", format.FormatPrice(flow.Subtotal()))
			fmt.Printf("Shipping (%s): %s\n", flow.ShippingMethod(), format.FormatPrice(flow.ShippingCost()))
			fmt.Printf("Tax: %s\n", format.FormatPrice(flow.Tax()))
			fmt.Printf("Order total: %s\n", format.FormatPrice(flow.OrderTotal()))

			if err := flow.NextStep(); err != nil {
				return fmt.Errorf("review step: %w", err)
			}
			fmt.Printf("Order placed: %s\n", flow.OrderNumber())
			return nil
		},
	}
}

func printProductLine(p models.Product) {
	fmt.Printf("%s  %s  %s", p.ID, p.Name, format.FormatPrice(p.Price))
	if p.Price.LessThan(p.BasePrice) {
		fmt.Printf(" (was %s)", format.FormatPrice(p.BasePrice))
	}
	fmt.Printf("  stock %d\n", p.Stock)
}

func printProductDetail(p models.Product) {
	printProductLine(p)
	if p.Description != "" {
		fmt.Println(p.Description)
	}
	if p.Category != nil {
		fmt.Printf("Category: %s\n", p.Category.Name)
	}
	if len(p.Tags) > 0 {
		fmt.Printf("Tags: %s\n", strings.Join(p.Tags, ", "))
	}
	fmt.Printf("Rating: %.1f (%d reviews)\n", p.AverageRating, p.ReviewCount)
	for _, v := range p.Variants {
		fmt.Printf("  variant %s  %s  stock %d\n", v.SKU, format.FormatPrice(v.Price), v.StockQuantity)
	}
	for k, v := range p.Specifications {
		fmt.Printf("  %s: %s\n", k, v)
	}
	if img := p.MainImage(); img != "" {
		fmt.Printf("Image: %s\n", img)
	}
}
