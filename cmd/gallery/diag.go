package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/reshetovitsme/gallery-feed/internal/di"
	accessService "github.com/reshetovitsme/gallery-feed/internal/modules/access/service"
	"github.com/reshetovitsme/gallery-feed/internal/shared/config"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

var diagCmd = &cobra.Command{
	Use:   "diag [database_id]",
	Short: "Show how a database id and the allow-list are interpreted",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDiag,
}

func runDiag(cmd *cobra.Command, args []string) error {
	injector, err := di.Setup(flagConfig)
	if err != nil {
		return fmt.Errorf("setting up: %w", err)
	}

	cfg, err := do.Invoke[*config.Config](injector)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	guard := do.MustInvoke[*accessService.Guard](injector)

	var id string
	if len(args) > 0 {
		id = args[0]
	}

	report := guard.Diagnose(id, cfg.AllowedRaw, cfg.NotionToken != "")
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
