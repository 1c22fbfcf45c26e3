package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reminderbot/internal/core/domain/reminder"
	"strings"
	"time"
)

type telegramMessage struct {
	ChatID    int64  `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// TelegramNotifier delivers due reminders with the Telegram sendMessage API.
// The user ID doubles as the private chat ID.
type TelegramNotifier struct {
	httpClient http.Client
	baseURL    url.URL
	token      string
}

func New(baseURL url.URL, token string, timeout time.Duration) *TelegramNotifier {
	return &TelegramNotifier{
		baseURL:    baseURL,
		token:      token,
		httpClient: http.Client{Timeout: timeout},
	}
}

func (n *TelegramNotifier) Notify(ctx context.Context, rem reminder.Reminder) error {
	url := n.baseURL.JoinPath(fmt.Sprintf("bot%s", n.token), "sendMessage")
	var body bytes.Buffer
	encoder := json.NewEncoder(&body)
	err := encoder.Encode(telegramMessage{
		ChatID:    int64(rem.CreatedBy),
		Text:      formatMessage(rem),
		ParseMode: "Markdown",
	})
	if err != nil {
		return err
	}
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, url.String(), &body)
	if err != nil {
		return err
	}
	request.Header.Add("content-type", "application/json")
	resp, err := n.httpClient.Do(request)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		return fmt.Errorf("got unsuccessfull response from Telegram: %s", string(body))
	}
	return nil
}

func formatMessage(rem reminder.Reminder) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🔔 *Reminder: %s*\n\n", rem.Title)
	fmt.Fprintf(&b, "Category: %s\n", rem.Category)
	fmt.Fprintf(&b, "Priority: %s\n", capitalize(rem.Priority.String()))
	if rem.Description.IsPresent {
		fmt.Fprintf(&b, "Description: %s\n", rem.Description.Value)
	}
	if rem.Recurrence.IsPresent {
		fmt.Fprintf(&b, "Repeats: %s\n", rem.Recurrence.Value)
	}
	return b.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
