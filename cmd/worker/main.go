package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"inkwell/pkg/config"
	"inkwell/pkg/logger"
	"inkwell/pkg/mailer"
	"inkwell/pkg/queue"
)

// Email worker: drains the email queue and delivers through the Resend API.
// Delivery failures are retried via the queue's requeue-on-nack behavior.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New()

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v", err)
		panic(err)
	}
	defer queueClient.Close()

	emailSender := mailer.New(cfg.ResendAPIKey, cfg.EmailFrom)

	err = queueClient.ConsumeEmailTasks(func(task map[string]interface{}) error {
		to, _ := task["to"].(string)
		subject, _ := task["subject"].(string)
		html, _ := task["html"].(string)

		if to == "" || subject == "" {
			// Malformed tasks are dropped, not retried.
			log.Warn("Dropping malformed email task: %+v", task)
			return nil
		}

		if err := emailSender.Send(to, subject, html); err != nil {
			return fmt.Errorf("failed to deliver email to %s: %w", to, err)
		}

		log.Info("Delivered email to %s: %s", to, subject)
		return nil
	})
	if err != nil {
		log.Error("Failed to start email consumer: %v", err)
		panic(err)
	}

	log.Info("Email worker started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Email worker exited")
}
