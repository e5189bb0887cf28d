package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/wxpress/salesboard/internal/modules/board/domain"
)

// Guard decides whether an SMS may be sent. Allow returning false means a
// duplicate was detected for the key inside the cooldown window. Guard
// failures fail open: a broken guard never blocks a legitimate send.
type Guard interface {
	Allow(ctx context.Context, key string) bool
}

var ErrDuplicateSuppressed = errors.New("sms suppressed by cooldown guard")

// Dispatcher posts assignment SMS requests to the external function
// endpoint. Responses carry {success, preview?, error?}; a response with
// success=false is a send failure. No retries: delivery is best effort and
// the caller only adapts its toast text.
type Dispatcher struct {
	endpoint string
	token    string
	client   *http.Client
	guard    Guard
}

// NewDispatcher builds a dispatcher for the function endpoint, bearer
// authenticated with token. guard may be nil to disable duplicate
// suppression.
func NewDispatcher(endpoint, token string, guard Guard) *Dispatcher {
	return &Dispatcher{
		endpoint: endpoint,
		token:    token,
		client:   &http.Client{Timeout: 10 * time.Second},
		guard:    guard,
	}
}

type dispatchResponse struct {
	Success bool   `json:"success"`
	Preview string `json:"preview,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (d *Dispatcher) Send(ctx context.Context, req domain.SMSRequest) error {
	if d.guard != nil {
		key := fmt.Sprintf("sms:cooldown:%s:%s", req.PhoneNumber, req.ClientName)
		if !d.guard.Allow(ctx, key) {
			log.Printf("sms: duplicate send suppressed for %s", req.MemberName)
			return ErrDuplicateSuppressed
		}
	}

	body, err := json.Marshal(req)
	if err != nil {
		return err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Authorization", "Bearer "+d.token)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("sms dispatch: %w", err)
	}
	defer resp.Body.Close()

	var result dispatchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("sms dispatch: decoding response: %w", err)
	}
	if !result.Success {
		return fmt.Errorf("sms dispatch failed: %s", result.Error)
	}
	log.Printf("sms: sent to %s: %s", req.MemberName, result.Preview)
	return nil
}
