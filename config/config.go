package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	DBName    string
	JWTKey    string
	SaltRound int

	SmsApiKey string
	SmsApiUrl string

	SendGridApiKey string
	EmailSender    string

	// Exam engine rules
	PassThreshold           float64
	AttemptsPerCycle        int
	MaxCycles               int
	UnlockThreshold         float64
	MinQuestionBankSize     int
	SubjectQuestionCount    int
	LessonQuestionCount     int
	DefaultVideoDuration    float64 // seconds, used when a progress report carries no duration
	RequireExamPassToUnlock bool
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		DBName:    getEnv("DB_NAME", "eduplatform"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		SmsApiKey: getEnv("SMS_API_KEY", "defaultSecret"),
		SmsApiUrl: getEnv("SMS_API_URL", "https://www.fast2sms.com/dev/bulkV2"),

		SendGridApiKey: getEnv("SENDGRID_API_KEY", "defaultSecret"),
		EmailSender:    getEnv("EMAIL_SENDER", "no-reply@example.com"),

		PassThreshold:           getEnvFloat("EXAM_PASS_THRESHOLD", 70),
		AttemptsPerCycle:        getEnvInt("EXAM_ATTEMPTS_PER_CYCLE", 3),
		MaxCycles:               getEnvInt("EXAM_MAX_CYCLES", 2),
		UnlockThreshold:         getEnvFloat("LESSON_UNLOCK_THRESHOLD", 90),
		MinQuestionBankSize:     getEnvInt("EXAM_MIN_QUESTION_BANK", 10),
		SubjectQuestionCount:    getEnvInt("EXAM_SUBJECT_QUESTION_COUNT", 10),
		LessonQuestionCount:     getEnvInt("EXAM_LESSON_QUESTION_COUNT", 5),
		DefaultVideoDuration:    getEnvFloat("DEFAULT_VIDEO_DURATION_SECONDS", 240),
		RequireExamPassToUnlock: getEnvBool("REQUIRE_EXAM_PASS_TO_UNLOCK", false),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.SendGridApiKey == "defaultSecret" {
		log.Println("Warning: SENDGRID_API_KEY is not set. Email delivery will fail.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}

// getEnvFloat retrieves an environment variable as a float or returns the default value
func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Printf("Error converting environment variable %s to float: %v", key, err)
		return defaultValue
	}
	return floatValue
}

// getEnvBool retrieves an environment variable as a bool or returns the default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to bool: %v", key, err)
		return defaultValue
	}
	return boolValue
}
