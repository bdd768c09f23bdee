package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ontx/ontx/cmd/ontx/commands"
	"github.com/ontx/ontx/logger"
)

var rootCmd = &cobra.Command{
	Use:   "ontx",
	Short: "ONTX - Ontology statement queries and punning repair",
	Long: `ONTX - Query facade and change planner for typed ontology statements.

Available commands:
  pun    - Plan (and optionally apply) punning repair over statement snapshots

Examples:
  ontx pun ontology.json                # Show the punning-repair plan
  ontx pun a.json b.json --format json  # Plan across two containers, as JSON
  ontx pun ontology.json --apply        # Apply the plan and rewrite the file`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logger.Initialize(viper.GetBool("json_logs"), viper.GetBool("verbose")); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().Bool("json-logs", false, "Emit logs as JSON")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	viper.SetEnvPrefix("ONTX")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = viper.BindPFlag("json_logs", rootCmd.PersistentFlags().Lookup("json-logs"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(commands.PunCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
