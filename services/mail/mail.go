// Package mail delivers the auth provider's email action links
// (verification, password reset). Sends are enqueued fire-and-forget and
// delivered by a background worker; the caller never waits on delivery.
package mail

import (
	"encoding/json"
	"fmt"

	"labura/config"

	"github.com/hibiken/asynq"
)

// Task type names.
const (
	TypeVerificationSend  = "mail:verification"
	TypePasswordResetSend = "mail:password_reset"
)

// Payload is the task payload for both mail task types.
type Payload struct {
	Email  string `json:"email"`
	Nombre string `json:"nombre,omitempty"`
}

// Mailer enqueues email deliveries.
type Mailer interface {
	// EnqueueVerification queues a verification email for the address.
	EnqueueVerification(email, nombre string) error
	// EnqueuePasswordReset queues a password reset email for the address.
	EnqueuePasswordReset(email string) error
}

// AsynqMailer implements Mailer on the asynq task queue.
type AsynqMailer struct {
	client *asynq.Client
}

// NewAsynqMailer creates a Mailer backed by the configured Redis queue.
func NewAsynqMailer() *AsynqMailer {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisMailDB,
	})
	return &AsynqMailer{client: client}
}

func (m *AsynqMailer) enqueue(taskType string, payload Payload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("mail: failed to marshal payload: %w", err)
	}
	if _, err := m.client.Enqueue(asynq.NewTask(taskType, data)); err != nil {
		return fmt.Errorf("mail: failed to enqueue %s: %w", taskType, err)
	}
	return nil
}

// EnqueueVerification queues a verification email.
func (m *AsynqMailer) EnqueueVerification(email, nombre string) error {
	return m.enqueue(TypeVerificationSend, Payload{Email: email, Nombre: nombre})
}

// EnqueuePasswordReset queues a password reset email.
func (m *AsynqMailer) EnqueuePasswordReset(email string) error {
	return m.enqueue(TypePasswordResetSend, Payload{Email: email})
}

// Close releases the underlying queue client.
func (m *AsynqMailer) Close() error {
	return m.client.Close()
}
