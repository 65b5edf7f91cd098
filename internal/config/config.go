package config

import (
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type BotConfig struct {
	TelegramToken string
	AdminChatID   int64
	DatabaseURL   string
	WorkbookPath  string
	SeedPath      string
	GridPrepCron  string
	TelegramDebug bool
}

var instance *BotConfig
var once sync.Once

func GetBotConfig() *BotConfig {
	once.Do(func() {
		instance = &BotConfig{}

		if err := godotenv.Load(); err != nil {
			logrus.Infof("no .env file loaded: %s", err.Error())
		}

		instance.TelegramToken = getEnv("TELEGRAM_BOT_TOKEN", "")
		if instance.TelegramToken == "" {
			logrus.Fatal("could not get bot token")
		}

		instance.AdminChatID = getEnvAsInt("ADMIN_CHAT_ID", -2)
		if instance.AdminChatID == -2 {
			logrus.Fatal("could not get admin chat id")
		}

		instance.DatabaseURL = getEnv("DATABASE_URL", "rota.db")
		instance.WorkbookPath = getEnv("WORKBOOK_PATH", "rota.xlsx")
		instance.SeedPath = getEnv("SEED_PATH", "rota.yaml")
		// Default: prepare the coming month's grid at 06:00 on the 25th.
		instance.GridPrepCron = getEnv("GRID_PREP_CRON", "0 6 25 * *")
		instance.TelegramDebug = getEnvAsBool("TELEGRAM_DEBUG", false)
	})

	return instance
}

func getEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultVal
}

func getEnvAsBool(name string, defaultVal bool) bool {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}

	return defaultVal
}

func getEnvAsInt(name string, defaultVal int64) int64 {
	valStr := getEnv(name, "")
	if val, err := strconv.Atoi(valStr); err == nil {
		return int64(val)
	}

	return defaultVal
}
