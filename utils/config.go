package utils

import (
	"os"
	"strings"

	log "github.com/Sirupsen/logrus"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// InitConfig loads a .env file if present, then config.toml and the environment.
// SITE_CMS_URL style variables override the file (cms.url).
func InitConfig(cfgFile string, cfgPath string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warnf("Error loading .env file: %s", err.Error())
	}

	if cfgFile == "" {
		viper.SetConfigName("config")
		if cfgPath == "" {
			viper.AddConfigPath(".")
		} else {
			viper.AddConfigPath(cfgPath)
		}
	} else {
		viper.SetConfigFile(cfgFile)
	}
	viper.SetEnvPrefix("site")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()
	return viper.ReadInConfig()
}
