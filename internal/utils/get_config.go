package utils

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Server configuration
	Port   string `yaml:"PORT"`
	AppURL string `yaml:"APP_URL"`

	// Database configuration
	DBConnectionString string `yaml:"DB_CONNECTION_STRING"`

	// Admin credentials
	AdminUsername     string `yaml:"ADMIN_USERNAME"`
	AdminPassword     string `yaml:"ADMIN_PASSWORD"`
	AdminPasswordHash string `yaml:"ADMIN_PASSWORD_HASH"`
	JWTSecret         string `yaml:"JWT_SECRET"`

	// AWS S3 configuration
	AWSS3Bucket     string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region     string `yaml:"AWS_S3_REGION"`
	AWSAccessKey    string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey    string `yaml:"AWS_SECRET_KEY"`
	S3PublicBaseURL string `yaml:"S3_PUBLIC_BASE_URL"`

	// Gemini API configuration
	GeminiAPIKey     string `yaml:"GEMINI_API_KEY"`
	GeminiModel      string `yaml:"GEMINI_MODEL"`
	GeminiImageModel string `yaml:"GEMINI_IMAGE_MODEL"`
}

var config Config

func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}

	// Keys some packages read back through os.Getenv
	os.Setenv("JWT_SECRET", config.JWTSecret)
	os.Setenv("AWS_S3_BUCKET", config.AWSS3Bucket)
	os.Setenv("AWS_S3_REGION", config.AWSS3Region)
	os.Setenv("AWS_ACCESS_KEY", config.AWSAccessKey)
	os.Setenv("AWS_SECRET_KEY", config.AWSSecretKey)
	os.Setenv("GEMINI_API_KEY", config.GeminiAPIKey)
}

func GetConfig(key string) string {
	var value string
	switch key {
	case "PORT":
		value = config.Port
	case "APP_URL":
		value = config.AppURL
	case "DB_CONNECTION_STRING":
		value = config.DBConnectionString
	case "ADMIN_USERNAME":
		value = config.AdminUsername
	case "ADMIN_PASSWORD":
		value = config.AdminPassword
	case "ADMIN_PASSWORD_HASH":
		value = config.AdminPasswordHash
	case "JWT_SECRET":
		value = config.JWTSecret
	case "AWS_S3_BUCKET":
		value = config.AWSS3Bucket
	case "AWS_S3_REGION":
		value = config.AWSS3Region
	case "AWS_ACCESS_KEY":
		value = config.AWSAccessKey
	case "AWS_SECRET_KEY":
		value = config.AWSSecretKey
	case "S3_PUBLIC_BASE_URL":
		value = config.S3PublicBaseURL
	case "GEMINI_API_KEY":
		value = config.GeminiAPIKey
	case "GEMINI_MODEL":
		value = config.GeminiModel
	case "GEMINI_IMAGE_MODEL":
		value = config.GeminiImageModel
	}
	if value == "" {
		return os.Getenv(key)
	}
	return value
}
