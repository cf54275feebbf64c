// internal/commands/show_config.go
package hkomcp

import (
	"github.com/mwiater/hkomcp/internal/appconfig"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// showConfigCmd implements the 'show config' command, which displays the current configuration settings.
var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show config settings",
	Long:  `Show config settings after the JSON config, HKOMCP_* environment variables and flags have been merged.`,
	Run: func(cmd *cobra.Command, args []string) {
		fallback := appconfig.Config{
			Debug:            viper.GetBool("debug"),
			Metrics:          viper.GetBool("metrics"),
			LogFile:          viper.GetString("logFile"),
			Language:         viper.GetString("language"),
			UserAgent:        viper.GetString("userAgent"),
			TimeoutSeconds:   viper.GetInt("timeout"),
			WeatherBaseURL:   viper.GetString("weatherBaseURL"),
			TransportBaseURL: viper.GetString("transportBaseURL"),
		}
		appconfig.ShowConfig(cmd.OutOrStdout(), viper.ConfigFileUsed(), currentConfig, fallback)
	},
}

func init() {
	showCmd.AddCommand(showConfigCmd)
}
