package collaborator

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"hotel-loyalty-core/internal/pkg/config"
	"hotel-loyalty-core/internal/pkg/errs"
	"hotel-loyalty-core/internal/usecase/commands"
)

// InventoryClient asks whether a creation-time hold still stands. The caller
// treats transport errors as a degraded read, so there is no retry layer
// here.
type InventoryClient struct {
	baseURL string
	client  *http.Client
}

func NewInventoryClient(cfg config.CollaboratorConfig) commands.InventoryPort {
	return &InventoryClient{
		baseURL: cfg.InventoryBaseURL,
		client:  &http.Client{Timeout: cfg.RequestTimeout},
	}
}

type holdResponse struct {
	Valid bool `json:"valid"`
}

func (c *InventoryClient) HoldStillValid(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	url := fmt.Sprintf("%s/v1/holds/%s", c.baseURL, bookingID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, errs.Wrap(err, "build hold request")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return false, errs.Wrap(err, "inventory request failed")
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var body holdResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return false, errs.Wrap(err, "decode hold response")
		}
		return body.Valid, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, errs.New(fmt.Sprintf("inventory returned status %d", resp.StatusCode))
	}
}
