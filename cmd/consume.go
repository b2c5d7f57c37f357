package cmd

import (
	"context"
	"encoding/json"
	"time"

	"github.com/peoplehub/peoplehub-services/internal/events"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var consumeCmd = &cobra.Command{
	Use:   "consume",
	Short: "Run the Pulsar consumer to record lifecycle events in the audit log",
	Run: func(cmd *cobra.Command, args []string) {

		// Load the config, initialize the database and set up logging
		commonSetUp()
		defer peopleDB.Close()

		// Initialize event consumer
		consumer, err := events.NewEventConsumer(appCfg.Pulsar.URL, appCfg.Pulsar.TopicConsumer, appCfg.Pulsar.Subscription)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize event consumer")
		}
		defer consumer.Close()

		// Consume messages
		for {
			msg, err := consumer.ReceiveMessage(context.Background())
			if err != nil {
				log.Error().Err(err).Msg("Error receiving message")
				continue
			}

			var event events.Event
			if err := json.Unmarshal(msg.Payload(), &event); err != nil {
				log.Error().Err(err).Msg("Error unmarshaling event payload")
				consumer.Nack(msg)
				continue
			}

			if err := peopleDB.InsertAuditEntry(event.Entity, event.EntityID, event.Action, time.Unix(event.Timestamp, 0).UTC()); err != nil {
				log.Error().Err(err).Msg("Failed to record audit entry")
				consumer.Nack(msg)
				continue
			}

			consumer.Ack(msg)
		}
	},
}

func init() {
	rootCmd.AddCommand(consumeCmd)
}
