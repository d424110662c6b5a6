package mail

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"labura/config"
	"labura/services/identity"

	"github.com/hibiken/asynq"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// InitMailWorker runs the async mail worker in background. Links are minted
// against the auth provider at delivery time so they are fresh when the
// email goes out.
func InitMailWorker(provider identity.Provider) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisMailDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeVerificationSend, handleVerificationTask(provider))
	mux.HandleFunc(TypePasswordResetSend, handlePasswordResetTask(provider))

	go func() {
		log.Println("[MailWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[MailWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[MailWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleVerificationTask(provider identity.Provider) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload Payload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return fmt.Errorf("mail: invalid verification payload: %w", err)
		}

		link, err := provider.EmailVerificationLink(ctx, payload.Email)
		if err != nil {
			return err
		}

		body := fmt.Sprintf(
			"Hemos enviado este enlace para verificar tu correo electrónico.\n\n%s\n\nSi no creaste una cuenta en Labura, ignora este mensaje.",
			link,
		)
		return send(payload.Email, "Verifica tu correo electrónico", body)
	}
}

func handlePasswordResetTask(provider identity.Provider) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload Payload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return fmt.Errorf("mail: invalid reset payload: %w", err)
		}

		link, err := provider.PasswordResetLink(ctx, payload.Email)
		if err != nil {
			return err
		}

		body := fmt.Sprintf(
			"Recibimos una solicitud para restablecer tu contraseña.\n\n%s\n\nSi no fuiste tú, ignora este mensaje.",
			link,
		)
		return send(payload.Email, "Restablecer contraseña", body)
	}
}

// send delivers a plain-text email through SendGrid.
func send(to, subject, body string) error {
	from := sgmail.NewEmail("Labura", config.AppConfig.MailFrom)
	message := sgmail.NewSingleEmail(from, subject, sgmail.NewEmail("", to), body, "")

	client := sendgrid.NewSendClient(config.AppConfig.SendGridAPIKey)
	resp, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("mail: sendgrid send failed: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("mail: sendgrid returned status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
