package cmd

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/peoplehub/peoplehub-services/api/handlers"
	"github.com/peoplehub/peoplehub-services/api/middleware"
	"github.com/peoplehub/peoplehub-services/api/services"
	"github.com/peoplehub/peoplehub-services/internal/events"
	"github.com/peoplehub/peoplehub-services/internal/hasher"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server for handling API requests",
	Run: func(cmd *cobra.Command, args []string) {

		// Load the config, initialize the database and set up logging
		commonSetUp()
		defer peopleDB.Close()

		// Initialize event publisher
		publisher, err := events.NewEventPublisher(appCfg.Pulsar.URL, appCfg.Pulsar.TopicProducer)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize event publisher")
		}
		defer publisher.Close()

		// Initialize the password hasher with the configured work factor
		passwordHasher, err := hasher.NewBcrypt(appCfg.Hashing.Cost)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize password hasher")
		}

		userService := &services.UserService{
			Users:  peopleDB,
			Hasher: passwordHasher,
			Events: publisher,
		}
		groupService := &services.GroupService{
			Groups: peopleDB,
			Events: publisher,
		}

		// Create routes
		r := mux.NewRouter()

		// Register the routes
		api := r.PathPrefix(appCfg.BasePath).Subrouter()

		// Apply the middleware to the API routes
		api.Use(middleware.WithRequestID)
		api.Use(middleware.WithLogger)

		// User routes
		api.HandleFunc("/users", handlers.CreateUser(userService)).Methods(http.MethodPost)
		api.HandleFunc("/users", handlers.GetUsers(userService)).Methods(http.MethodGet)
		api.HandleFunc("/users/{user-id}", handlers.GetUser(userService)).Methods(http.MethodGet)
		api.HandleFunc("/users/{user-id}", handlers.UpdateUser(userService)).Methods(http.MethodPut)
		api.HandleFunc("/users/{user-id}", handlers.DeleteUser(userService)).Methods(http.MethodDelete)

		// Group routes
		api.HandleFunc("/groups", handlers.CreateGroup(groupService)).Methods(http.MethodPost)
		api.HandleFunc("/groups", handlers.GetGroups(groupService)).Methods(http.MethodGet)
		api.HandleFunc("/groups/admins/{user-id}", handlers.GetGroupByAdmin(groupService)).Methods(http.MethodGet)

		log.Info().Msg(fmt.Sprintf("Server started at %s:%d", host, port))

		if err := http.ListenAndServe(fmt.Sprintf("%s:%d", host, port),
			r); err != nil {

			log.Error().Err(err).Msg("could not start server")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&host, "host", "0.0.0.0", "host to run the server on")
	serveCmd.Flags().IntVar(&port, "port", 8080, "port to run the server on")
}
