// Command shanten reports the shanten number (and, optionally, the dora
// count) of a single hand given in mpsz notation.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Apricot-S/mahjong/internal/applog"
	"github.com/Apricot-S/mahjong/internal/config"
	"github.com/Apricot-S/mahjong/shanten"
	"github.com/Apricot-S/mahjong/tile"
)

var (
	handArg       string
	doraIndicator string
	configFile    string
	logLevel      string

	chiitoitsuFlag bool
	kokushiFlag    bool
	akaDoraFlag    bool
)

var rootCmd = &cobra.Command{
	Use:   "shanten",
	Short: "shanten reports the shanten number of a mahjong hand",
	Long:  "shanten parses an mpsz-notation hand, runs the regular/chiitoitsu/kokushi search, and prints the minimum shanten and dora count.",
	RunE:  run,
}

func init() {
	rootCmd.Flags().StringVar(&handArg, "hand", "", "hand in mpsz notation, e.g. 123456789m123p44z")
	rootCmd.Flags().StringVar(&doraIndicator, "dora-indicators", "", "dora indicator tiles in mpsz notation, e.g. 5p")
	rootCmd.Flags().StringVar(&configFile, "config", "", "optional config file (yaml/toml/json)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "overrides the config file's log level")
	rootCmd.Flags().BoolVar(&chiitoitsuFlag, "chiitoitsu", false, "overrides the config file's chiitoitsu toggle")
	rootCmd.Flags().BoolVar(&kokushiFlag, "kokushi", false, "overrides the config file's kokushi toggle")
	rootCmd.Flags().BoolVar(&akaDoraFlag, "aka-dora", false, "overrides the config file's aka dora toggle")
	if err := rootCmd.MarkFlagRequired("hand"); err != nil {
		panic(err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile, nil)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if cmd.Flags().Changed("chiitoitsu") {
		cfg.Shanten.Chiitoitsu = chiitoitsuFlag
	}
	if cmd.Flags().Changed("kokushi") {
		cfg.Shanten.Kokushi = kokushiFlag
	}
	if cmd.Flags().Changed("aka-dora") {
		cfg.Shanten.AkaDora = akaDoraFlag
	}

	requestID := uuid.NewString()
	applog.Init("shanten", cfg.Log.Level)
	applog.Info("request received", "requestID", requestID, "hand", handArg)

	ids := tile.MPSZTo136IDs(handArg, cfg.Shanten.AkaDora)
	count := tile.To34Count(ids)

	result, err := shanten.Calculate(count, cfg.Shanten.Chiitoitsu, cfg.Shanten.Kokushi)
	if err != nil {
		applog.Error("calculation failed", "requestID", requestID, "err", err)
		return err
	}

	doraCount := 0
	if doraIndicator != "" {
		indicatorIDs := tile.MPSZTo136IDs(doraIndicator, false)
		doraMap := tile.BuildDoraCountMap(indicatorIDs)
		doraCount = tile.CountDoraForHand(count, doraMap)
		if cfg.Shanten.AkaDora {
			for _, id := range ids {
				if tile.IsAkaDora(id, true) {
					doraCount++
				}
			}
		}
	}

	applog.Info("request complete", "requestID", requestID, "shanten", result, "dora", doraCount)
	fmt.Printf("shanten=%d dora=%d\n", result, doraCount)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		applog.Error("fatal", "err", err)
		os.Exit(1)
	}
}
