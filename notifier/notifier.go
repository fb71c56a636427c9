// Package notifier is the HTTP client the transaction service uses to
// fan a notification out to the notification service after a
// successful balance mutation. Failures are logged, never surfaced:
// losing a notification must not fail a committed transaction.
package notifier

import (
	"log"
	"time"

	"github.com/go-resty/resty/v2"
)

type Client struct {
	http    *resty.Client
	baseURL string
}

// New builds a client for the notification service. An empty baseURL
// disables fan-out entirely.
func New(baseURL string) *Client {
	return &Client{
		http:    resty.New().SetTimeout(10 * time.Second),
		baseURL: baseURL,
	}
}

type notificationRequest struct {
	UserID  uint   `json:"userId"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// TransactionAlert posts a TRANSACTION notification for the user.
func (n *Client) TransactionAlert(userID uint, title, message string) {
	if n.baseURL == "" {
		return
	}

	resp, err := n.http.R().
		SetBody(notificationRequest{
			UserID:  userID,
			Title:   title,
			Message: message,
			Type:    "TRANSACTION",
		}).
		Post(n.baseURL + "/internal/notifications")
	if err != nil {
		log.Printf("Error sending notification for user %d: %v", userID, err)
		return
	}
	if resp.StatusCode() >= 300 {
		log.Printf("Notification service returned %d: %s", resp.StatusCode(), resp.String())
	}
}
