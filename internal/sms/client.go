package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/AdarCosmetics/salon-scheduler/internal/config"
	"github.com/AdarCosmetics/salon-scheduler/internal/validators"
)

// Sender delivers a verification code to a phone number. Delivery is best
// effort: callers log failures and keep going.
type Sender interface {
	SendVerificationCode(ctx context.Context, phone, code string) error
}

// Client talks to an SMS4FREE-compatible gateway. When no API key is
// configured the client no-ops, which keeps local development SMS-free.
type Client struct {
	apiURL  string
	key     string
	user    string
	pass    string
	sender  string
	http    *http.Client
	enabled bool
}

func NewFromConfig(cfg *config.Config) *Client {
	return &Client{
		apiURL:  cfg.SMSApiURL,
		key:     cfg.SMSKey,
		user:    cfg.SMSUser,
		pass:    cfg.SMSPass,
		sender:  cfg.SMSSender,
		http:    &http.Client{Timeout: 10 * time.Second},
		enabled: cfg.SMSKey != "",
	}
}

type sendRequest struct {
	Key       string `json:"key"`
	User      string `json:"user"`
	Pass      string `json:"pass"`
	Sender    string `json:"sender"`
	Recipient string `json:"recipient"`
	Msg       string `json:"msg"`
}

// FormatPhone normalizes a local number to the gateway's 972XXXXXXXXX form:
// digits only, leading 0 stripped, country prefix added.
func FormatPhone(phone string) string {
	digits := validators.PhoneDigits(phone)
	digits = strings.TrimPrefix(digits, "0")
	if !strings.HasPrefix(digits, "972") {
		digits = "972" + digits
	}
	return digits
}

func (c *Client) SendVerificationCode(ctx context.Context, phone, code string) error {
	if !c.enabled {
		return nil
	}

	payload := sendRequest{
		Key:       c.key,
		User:      c.user,
		Pass:      c.pass,
		Sender:    c.sender,
		Recipient: FormatPhone(phone),
		Msg:       fmt.Sprintf("קוד האימות שלך לאדר הוא: %s", code),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("sms gateway unreachable: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("sms gateway returned %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	// the gateway is inconsistent about its success field
	var result struct {
		Status  string `json:"status"`
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		// non-JSON body with HTTP 200 is accepted as sent
		return nil
	}

	if result.Status == "success" || result.Success || result.Status == "" {
		return nil
	}
	return fmt.Errorf("sms gateway rejected message: %s", result.Message)
}
