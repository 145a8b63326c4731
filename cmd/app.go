package cmd

import (
	"context"
	"fmt"
	"os"

	"app-reconciler/core/config"
	"app-reconciler/core/logger"
	"app-reconciler/core/netskope"
	"app-reconciler/feature/compare"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// appDetailCmd represents the top-level app command
var appDetailCmd = &cobra.Command{
	Use:   "app [name]",
	Short: "View one application's presence in both sources",
	Long:  `Checks the presence and spelling of one application across the spreadsheet and the private application inventory, matched by normalized name.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runAppDetail(cmd.Context(), args[0])
	},
}

func init() {
	RootCmd.AddCommand(appDetailCmd)
}

func runAppDetail(ctx context.Context, name string) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}

	client, err := netskope.NewClient(cfg.Netskope)
	if err != nil {
		logg.Fatal("Failed to create inventory client", zap.Error(err))
	}

	svc := compare.NewService(client, cfg.Sheet, cfg.Extract.KeySet(), nil, 0, nil, logg)

	logg.Info("Checking application...", zap.String("name", name))
	detail, err := svc.LookupApplication(ctx, name)
	if err != nil {
		logg.Fatal("Application lookup failed", zap.Error(err))
	}

	// Pretty Console Output
	fmt.Println("\n--- Application Detail View ---")
	fmt.Printf("Query:          %s\n", detail.Query)
	fmt.Printf("Normalized:     %s\n", detail.Normalized)
	fmt.Println("-------------------------------")
	fmt.Printf("In File:        %v\n", detail.InFile)
	fmt.Printf("In Netskope:    %v\n", detail.InCloud)
	if detail.FileSpelling != "" {
		fmt.Printf("File Spelling:  %s\n", detail.FileSpelling)
	}
	if detail.CloudSpelling != "" {
		fmt.Printf("Cloud Spelling: %s\n", detail.CloudSpelling)
	}

	status, statusColor := presenceStatus(detail)
	resetColor := "\033[0m"
	fmt.Printf("Status:         %s%s%s\n", statusColor, status, resetColor)

	if len(detail.Hosts) > 0 {
		fmt.Println("\nDestination Hostnames:")
		for _, h := range detail.Hosts {
			fmt.Printf("- %s\n", h)
		}
	}
	fmt.Println("-------------------------------")
}

// presenceStatus maps the presence flags to a display status and its color.
func presenceStatus(detail *compare.AppDetail) (string, string) {
	switch {
	case detail.InFile && detail.InCloud:
		return "PRESENT", "\033[32m" // Green
	case detail.InFile:
		return "FILE ONLY", "\033[31m" // Red, this row would land on the missing list
	case detail.InCloud:
		return "CLOUD ONLY", "\033[33m" // Yellow
	default:
		return "NOT FOUND", "\033[31m" // Red
	}
}
