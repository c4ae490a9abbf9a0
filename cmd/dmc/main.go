package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iics-tools/dmc/cmd/dmc/commands"
	"github.com/iics-tools/dmc/internal/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "dmc",
	Short: "Informatica Intelligent Cloud Services CLI",
	Long: `A command-line interface for the Informatica Intelligent Cloud Services APIs.

Every command logs in with the configured credentials before it runs, so no
session state is kept between invocations.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.dmc/config.yml)")
	rootCmd.PersistentFlags().StringP("username", "u", "", "IICS username")
	rootCmd.PersistentFlags().StringP("password", "p", "", "IICS password (prompted when omitted)")
	rootCmd.PersistentFlags().String("login-url", constants.DefaultLoginURL, "IICS login host")
	rootCmd.PersistentFlags().String("v1-server-url", "", "override for the v1 API host")
	rootCmd.PersistentFlags().Duration("timeout", constants.DefaultHTTPTimeout, "per-request timeout")
	rootCmd.PersistentFlags().Bool("auto-retry", false, "record the auto-retry preference on the session")
	rootCmd.PersistentFlags().StringP("output", "o", constants.FormatTable, "output format (table, json, yaml)")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("debug", false, "log every HTTP exchange")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("username", rootCmd.PersistentFlags().Lookup("username"))
	_ = viper.BindPFlag("password", rootCmd.PersistentFlags().Lookup("password"))
	_ = viper.BindPFlag("login_url", rootCmd.PersistentFlags().Lookup("login-url"))
	_ = viper.BindPFlag("v1_server_url", rootCmd.PersistentFlags().Lookup("v1-server-url"))
	_ = viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	_ = viper.BindPFlag("auto_retry", rootCmd.PersistentFlags().Lookup("auto-retry"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))

	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewWhoamiCommand())
	rootCmd.AddCommand(commands.NewDocumentsCommand())
	rootCmd.AddCommand(commands.NewOrgsCommand())
	rootCmd.AddCommand(commands.NewRuntimesCommand())
	rootCmd.AddCommand(commands.NewAgentsCommand())
	rootCmd.AddCommand(commands.NewConnectionsCommand())
	rootCmd.AddCommand(commands.NewServerTimeCommand())
	rootCmd.AddCommand(commands.NewTrustedIPsCommand())
	rootCmd.AddCommand(commands.NewPrivilegesCommand())
	rootCmd.AddCommand(commands.NewRolesCommand())
	rootCmd.AddCommand(commands.NewUsersCommand())
	rootCmd.AddCommand(commands.NewGroupsCommand())
	rootCmd.AddCommand(commands.NewSAMLCommand())
	rootCmd.AddCommand(commands.NewSchedulesCommand())
}

func initConfig() {
	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		configDir := filepath.Join(home, ".dmc")

		// Search config in ~/.dmc/config.yml
		viper.AddConfigPath(configDir)
		viper.SetConfigType("yml")
		viper.SetConfigName("config")
	}

	// DMC_USERNAME, DMC_PASSWORD, DMC_LOGIN_URL, ...
	viper.SetEnvPrefix("DMC")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("debug") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
