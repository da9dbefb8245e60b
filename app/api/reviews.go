package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/velmora/storefront/app/models"
)

// Reviews covers the per-product review endpoints.
type Reviews struct {
	client *Client
}

func NewReviews(client *Client) *Reviews {
	return &Reviews{client: client}
}

func reviewsPath(productID string) string {
	return "/products/" + url.PathEscape(productID) + "/reviews"
}

func (r *Reviews) GetProductReviews(ctx context.Context, productID string) (*models.ReviewsResponse, error) {
	var resp models.ReviewsResponse
	if err := r.client.get(ctx, reviewsPath(productID), &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch reviews for product %s: %w", productID, err)
	}
	return &resp, nil
}

func (r *Reviews) SubmitReview(ctx context.Context, productID string, payload models.ReviewPayload) (*models.Review, error) {
	var review models.Review
	if err := r.client.post(ctx, reviewsPath(productID), payload, &review); err != nil {
		return nil, fmt.Errorf("failed to submit review: %w", err)
	}
	return &review, nil
}

func (r *Reviews) DeleteReview(ctx context.Context, productID, reviewID string) error {
	if err := r.client.delete(ctx, reviewsPath(productID)+"/"+url.PathEscape(reviewID)); err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	return nil
}

func (r *Reviews) MarkHelpful(ctx context.Context, productID, reviewID string) (*models.Review, error) {
	var review models.Review
	path := reviewsPath(productID) + "/" + url.PathEscape(reviewID) + "/helpful"
	if err := r.client.post(ctx, path, nil, &review); err != nil {
		return nil, fmt.Errorf("failed to mark review helpful: %w", err)
	}
	return &review, nil
}

func (r *Reviews) MarkUnhelpful(ctx context.Context, productID, reviewID string) (*models.Review, error) {
	var review models.Review
	path := reviewsPath(productID) + "/" + url.PathEscape(reviewID) + "/unhelpful"
	if err := r.client.post(ctx, path, nil, &review); err != nil {
		return nil, fmt.Errorf("failed to mark review unhelpful: %w", err)
	}
	return &review, nil
}
