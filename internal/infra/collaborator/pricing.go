package collaborator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"

	"hotel-loyalty-core/internal/pkg/config"
	"hotel-loyalty-core/internal/pkg/errs"
	"hotel-loyalty-core/internal/usecase/commands"
)

// PricingClient quotes a stay over HTTP. Transient failures are retried by
// the transport; a quote that still cannot be obtained fails booking
// creation because the price snapshot is a required input.
type PricingClient struct {
	baseURL string
	client  *retryablehttp.Client
}

func NewPricingClient(cfg config.CollaboratorConfig) commands.PricingPort {
	client := retryablehttp.NewClient()
	client.RetryMax = cfg.MaxRetries
	client.HTTPClient.Timeout = cfg.RequestTimeout
	client.Logger = nil

	return &PricingClient{
		baseURL: cfg.PricingBaseURL,
		client:  client,
	}
}

type quoteRequest struct {
	HotelID  uuid.UUID       `json:"hotel_id"`
	Rooms    []quoteRoomLine `json:"rooms"`
	CheckIn  time.Time       `json:"check_in"`
	CheckOut time.Time       `json:"check_out"`
}

type quoteRoomLine struct {
	RoomType string `json:"room_type"`
	Quantity int    `json:"quantity"`
}

type quoteResponse struct {
	BasePriceCents  int64 `json:"base_price_cents"`
	FinalPriceCents int64 `json:"final_price_cents"`
}

func (c *PricingClient) Quote(ctx context.Context, hotelID uuid.UUID, rooms []commands.RoomSelection, checkIn, checkOut time.Time) (*commands.QuoteSnapshot, error) {
	reqBody := quoteRequest{
		HotelID:  hotelID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
	}
	for _, r := range rooms {
		reqBody.Rooms = append(reqBody.Rooms, quoteRoomLine{RoomType: r.RoomType, Quantity: r.Quantity})
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, errs.Wrap(err, "marshal quote request")
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/quotes", bytes.NewReader(payload))
	if err != nil {
		return nil, errs.Wrap(err, "build quote request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "pricing request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errs.New(fmt.Sprintf("pricing returned status %d", resp.StatusCode))
	}

	var quote quoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&quote); err != nil {
		return nil, errs.Wrap(err, "decode quote response")
	}
	return &commands.QuoteSnapshot{
		BasePriceCents:  quote.BasePriceCents,
		FinalPriceCents: quote.FinalPriceCents,
	}, nil
}
