package main

import (
	"encoding/json"
	"fmt"
	"os"

	"bookflow/adapters/bookingapi"
	"bookflow/adapters/excel"
	"bookflow/app"
	"bookflow/domain/sheet"
	"bookflow/internal/config"
	"bookflow/ports"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// fileLoader adapts the path-based loader to the byte-based port so the
// batch service can read local XLSX and CSV files alike.
type fileLoader struct {
	path string
}

func (l fileLoader) Load(_ []byte) (sheet.Table, error) {
	return excel.NewLoader().LoadFile(l.path)
}

func main() {
	godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "bookflow-cli",
		Short: "Bookflow CLI for processing order spreadsheets and generating templates",
	}

	rootCmd.AddCommand(
		newProcessCmd(),
		newTemplateCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newProcessCmd() *cobra.Command {
	var endpoint string
	var token string
	var extended bool
	var out string

	cmd := &cobra.Command{
		Use:   "process [file]",
		Short: "Process an order spreadsheet and submit each row as a booking",
		Long: `Process an XLSX or CSV order sheet and submit every valid row to the
Booking Service, printing the batch report as JSON.

Example: bookflow-cli process orders.xlsx --endpoint https://api.example.com/bookings --token $TOKEN`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			if endpoint == "" {
				endpoint = cfg.Booking.APIURL
			}
			if token == "" {
				token = cfg.Booking.Token
			}
			if endpoint == "" {
				return fmt.Errorf("no Booking Service endpoint: pass --endpoint or set BOOKING_API_URL")
			}
			if extended {
				cfg.Booking.ExtendedPayload = true
			}

			submitter := bookingapi.NewClient(cfg.Booking, cfg.Template.Version)
			service := app.NewBatchService(fileLoader{path: args[0]}, submitter, nil)
			report := service.RunBatch(cmd.Context(), nil, ports.Target{Endpoint: endpoint, Token: token})

			encoded, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode report: %w", err)
			}

			if out != "" {
				if err := os.WriteFile(out, encoded, 0o644); err != nil {
					return fmt.Errorf("failed to write report to %s: %w", out, err)
				}
				fmt.Printf("Report written to %s\n", out)
				return nil
			}
			fmt.Println(string(encoded))
			return nil
		},
	}

	cmd.Flags().StringVar(&endpoint, "endpoint", "", "Booking Service endpoint URL (default BOOKING_API_URL)")
	cmd.Flags().StringVar(&token, "token", "", "Bearer token for the Booking Service (default BOOKING_API_TOKEN)")
	cmd.Flags().BoolVar(&extended, "extended", false, "Also send the extended payload variant")
	cmd.Flags().StringVar(&out, "out", "", "Write the batch report JSON to a file instead of stdout")

	return cmd
}

func newTemplateCmd() *cobra.Command {
	var version string

	cmd := &cobra.Command{
		Use:   "template [out]",
		Short: "Generate a blank order template workbook",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if version == "" {
				cfg, err := config.Load()
				if err != nil {
					return fmt.Errorf("invalid configuration: %w", err)
				}
				version = cfg.Template.Version
			}

			out := fmt.Sprintf("order_template_%s.xlsx", version)
			if len(args) == 1 {
				out = args[0]
			}

			f, err := excel.BuildTemplate(version)
			if err != nil {
				return fmt.Errorf("failed to build template: %w", err)
			}
			defer f.Close()

			if err := f.SaveAs(out); err != nil {
				return fmt.Errorf("failed to save template to %s: %w", out, err)
			}
			fmt.Printf("Template written to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&version, "version", "", "Template version tag (default TEMPLATE_VERSION)")

	return cmd
}
