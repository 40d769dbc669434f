package config

import (
	"log"

	"github.com/joho/godotenv"
)

// LoadEnv 读 .env；部署环境直接用真实环境变量，文件缺失不算错
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}
}
