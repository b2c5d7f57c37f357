package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/peoplehub/peoplehub-services/db"
	"github.com/peoplehub/peoplehub-services/internal/appconfig"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	logLevel   string
	configPath string
	host       string
	port       int

	appCfg   *appconfig.Config
	peopleDB *db.PeopleDB
)

var rootCmd = &cobra.Command{
	Use:   "peoplehub-services",
	Short: "PeopleHub Services",
	Long:  `PeopleHub Services is a CLI tool for managing the users and groups backend.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn",
		"sets the log level")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml",
		"path to the config file")
}

// commonSetUp configures logging, loads the config and opens the database.
func commonSetUp() {
	setLogging(logLevel)

	var err error
	appCfg, err = appconfig.LoadConfig(configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	if err := os.Setenv("DATABASE_URL", appCfg.Database.Source); err != nil {
		log.Fatal().Err(err).Msg("failed to set DATABASE_URL")
	}

	logger := log.Logger
	peopleDB, err = db.NewPeopleDB(&logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize PeopleDB")
	}
}

func setLogging(level string) {
	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}

	switch strings.ToLower(level) {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "fatal":
		zerolog.SetGlobalLevel(zerolog.FatalLevel)
	case "panic":
		zerolog.SetGlobalLevel(zerolog.PanicLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
}
