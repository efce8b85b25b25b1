package collaborator

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"

	"hotel-loyalty-core/internal/pkg/config"
	"hotel-loyalty-core/internal/pkg/errs"
	"hotel-loyalty-core/internal/usecase/commands"
)

// EligibilityClient validates a redemption request before points are
// committed. 5xx answers are retried with backoff; a definitive yes/no is
// never retried.
type EligibilityClient struct {
	baseURL    string
	client     *http.Client
	maxRetries uint64
}

func NewEligibilityClient(cfg config.CollaboratorConfig) commands.EligibilityPort {
	return &EligibilityClient{
		baseURL:    cfg.EligibilityBaseURL,
		client:     &http.Client{Timeout: cfg.RequestTimeout},
		maxRetries: uint64(cfg.MaxRetries),
	}
}

type eligibilityResponse struct {
	Eligible bool   `json:"eligible"`
	Reason   string `json:"reason"`
}

func (c *EligibilityClient) CheckRedemptionEligible(ctx context.Context, customerID uuid.UUID, requestedDiscountCents int64) (*commands.EligibilityResult, error) {
	url := fmt.Sprintf("%s/v1/customers/%s/redemption-eligibility?discount_cents=%d",
		c.baseURL, customerID, requestedDiscountCents)

	var result commands.EligibilityResult
	backoff := retry.WithMaxRetries(c.maxRetries, retry.NewExponential(200*time.Millisecond))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		resp, err := c.client.Do(req)
		if err != nil {
			return retry.RetryableError(err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= http.StatusInternalServerError {
			return retry.RetryableError(errs.New(fmt.Sprintf("eligibility returned status %d", resp.StatusCode)))
		}
		if resp.StatusCode != http.StatusOK {
			return errs.New(fmt.Sprintf("eligibility returned status %d", resp.StatusCode))
		}

		var body eligibilityResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return errs.Wrap(err, "decode eligibility response")
		}
		result = commands.EligibilityResult{Eligible: body.Eligible, Reason: body.Reason}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
