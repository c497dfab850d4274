package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/vuciv/imessage-wrapped/config"
	report_service "github.com/vuciv/imessage-wrapped/service/report"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "imessage-wrapped",
		Short: "Your year in messages",
		Long: `imessage-wrapped reads your local message archive (read-only) and
produces a year-in-review report for one contact, one group chat, or
everything. The report is a structured JSON document written to stdout;
rendering it is up to the consumer.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Flags override file values through the shared viper instance.
			for flagKey, cfgKey := range map[string]string{
				"year":     "year",
				"mode":     "mode",
				"target":   "target",
				"name":     "name",
				"self":     "self-name",
				"privacy":  "privacy",
				"timezone": "timezone",
				"seed":     "seed",
				"db":       "archive.path",
				"contacts": "contacts.path",
			} {
				if cmd.Flags().Changed(flagKey) {
					if err := viper.BindPFlag(cfgKey, cmd.Flags().Lookup(flagKey)); err != nil {
						return err
					}
				}
			}

			cfg, err := config.Configuration()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			report, err := report_service.Run(cfg)
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to serialize report: %w", err)
			}
			fmt.Println(string(out))
			return nil
		},
	}

	rootCmd.Flags().Int("year", 0, "Calendar year to analyze")
	rootCmd.Flags().String("mode", "", "Target mode: individual, group or all")
	rootCmd.Flags().String("target", "", "Phone/email, contact name, or fuzzy group name")
	rootCmd.Flags().String("name", "", "Display-name override for the target")
	rootCmd.Flags().String("self", "", "Your own display name")
	rootCmd.Flags().Bool("privacy", false, "Anonymize unmatched identifiers with stable pseudonyms")
	rootCmd.Flags().String("timezone", "", "IANA timezone for date bucketing (default: system local)")
	rootCmd.Flags().Int64("seed", 0, "Seed for sample-message draws (0 = random)")
	rootCmd.Flags().String("db", "", "Path to the message archive (chat.db)")
	rootCmd.Flags().String("contacts", "", "Path to the AddressBook database (optional)")

	if err := rootCmd.Execute(); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}
