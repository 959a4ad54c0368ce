// Package paymentclient implements the payment gateway port over the
// collaborator's HTTP API.
package paymentclient

import (
	"context"
	"fmt"
	"time"

	"wastehaul/internal/core/domain/model/payment"
	"wastehaul/internal/pkg/errs"

	"github.com/go-resty/resty/v2"
)

// Client sends refund and charge instructions to the payment collaborator.
// Any transport failure or non-success response surfaces as
// CollaboratorUnavailable so the outbox keeps the instruction pending.
type Client struct {
	http *resty.Client
}

// instructionRequest is the collaborator's wire format.
type instructionRequest struct {
	OrderID     string `json:"order_id"`
	AmountCents int64  `json:"amount_cents"`
	Direction   string `json:"direction"`
}

// NewClient creates a payment gateway client for the given base URL.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")

	return &Client{http: httpClient}, nil
}

// Send delivers one instruction. The collaborator handles its own retry
// queue once it has accepted the instruction; Send only reports whether it
// was accepted.
func (c *Client) Send(ctx context.Context, instruction *payment.Instruction) error {
	if err := instruction.Validate(); err != nil {
		return err
	}

	request := instructionRequest{
		OrderID:     instruction.OrderID().String(),
		AmountCents: instruction.Amount().Cents(),
		Direction:   string(instruction.Direction()),
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(request).
		Post("/api/v1/instructions")
	if err != nil {
		return errs.NewCollaboratorUnavailableError("payment", err)
	}
	if resp.IsError() {
		return errs.NewCollaboratorUnavailableError("payment",
			fmt.Errorf("unexpected status %d", resp.StatusCode()))
	}

	return nil
}
