package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"estatehub/pkg/config"
	"estatehub/pkg/logger"
	"estatehub/pkg/queue"
)

// Inquiry notification worker. Consumes inquiry events published by the API
// and hands them to the back-office mail channel. Runs as a separate process
// so a mail outage never slows down inquiry submission.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v", err)
		panic(err)
	}
	defer queueClient.Close()

	go func() {
		log.Info("Starting inquiry notification consumer...")

		err := queueClient.ConsumeInquiryEvents(func(event map[string]interface{}) error {
			name, _ := event["name"].(string)
			email, _ := event["email"].(string)

			if email == "" {
				log.Error("[NOTIFIER] Dropping inquiry event without email: %+v", event)
				return fmt.Errorf("inquiry event missing email")
			}

			log.Info("[NOTIFIER] New inquiry from %s <%s>", name, email)
			if propertyID, ok := event["property_id"]; ok && propertyID != nil {
				log.Info("[NOTIFIER] Inquiry references property %v", propertyID)
			}

			// Delivery is log-only until an SMTP relay is configured
			return nil
		})
		if err != nil {
			log.Error("Error starting inquiry consumer: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Notification worker exiting")
}
