package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lexcounsel/site-backend/utils"
)

var cfgFile string

var RootCmd = &cobra.Command{
	Use:   "site-backend",
	Short: "Backend for the law firm website",
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	RootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is config.toml)")
}

func initConfig() {
	if err := utils.InitConfig(cfgFile, ""); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && cfgFile == "" {
			// environment only
			return
		}
		panic(errors.Wrapf(err, "Could not read config, using: %s", viper.ConfigFileUsed()))
	}
}
