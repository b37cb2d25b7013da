package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент транзакционной почты поверх Resend API.
// Отправка писем для сервиса некритична: вызывающий код запускает её
// fire-and-forget и только логирует ошибки.
type Client struct {
	baseURL         string
	apiKey          string
	fromEmail       string
	restaurantEmail string
	httpClient      *http.Client
	log             Logger
}

// NewClient создает новый экземпляр почтового клиента.
// Пустой apiKey переводит клиент в no-op режим (письма не отправляются).
func NewClient(baseURL, apiKey, fromEmail, restaurantEmail string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:         baseURL,
		apiKey:          apiKey,
		fromEmail:       fromEmail,
		restaurantEmail: restaurantEmail,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Enabled reports whether the client is configured to actually send.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// SendReservationEmail sends the email(s) for the given kind:
//   - received:  письмо гостю "заявка принята" + уведомление ресторану
//   - confirmed: письмо гостю "бронь подтверждена"
//   - declined:  письмо гостю "бронь отклонена"
//
// Возвращает ошибку, только если не удалось ни одно письмо из набора.
func (c *Client) SendReservationEmail(ctx context.Context, kind Kind, payload ReservationPayload) error {
	if !c.Enabled() {
		c.log.Info("Mailer disabled, skipping %s email for %s", kind, payload.Email)
		return nil
	}

	emails, err := c.buildEmails(kind, payload)
	if err != nil {
		return err
	}

	sent := 0
	var lastErr error
	for _, e := range emails {
		if err := c.send(ctx, e); err != nil {
			c.log.Error("Failed to send %s email to %s: %v", kind, e.to, err)
			lastErr = err
			continue
		}
		sent++
	}

	if sent == 0 && lastErr != nil {
		return lastErr
	}

	c.log.Info("Sent %d/%d %s email(s) for reservation of %s", sent, len(emails), kind, payload.Name)
	return nil
}

func (c *Client) buildEmails(kind Kind, payload ReservationPayload) ([]email, error) {
	switch kind {
	case KindReceived:
		guest := receivedEmail(payload)
		guest.to = payload.Email

		notify := newReservationNotification(payload)
		notify.to = c.restaurantEmail

		return []email{guest, notify}, nil
	case KindConfirmed:
		e := confirmedEmail(payload)
		e.to = payload.Email
		return []email{e}, nil
	case KindDeclined:
		e := declinedEmail(payload)
		e.to = payload.Email
		return []email{e}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

func (c *Client) send(ctx context.Context, e email) error {
	body, err := json.Marshal(sendRequest{
		From:    c.fromEmail,
		To:      e.to,
		Subject: e.subject,
		HTML:    e.html,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	url := c.baseURL + "/emails"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	return nil
}
