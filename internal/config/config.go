package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort       string // Application port
	MongoURI      string // MongoDB connection string; empty selects the in-memory backend
	MongoDBName   string // MongoDB database name
	AdminUsername string // Bootstrap admin username
	AdminPassword string // Bootstrap admin password
	JWTSecret     string // JWT secret key
	RedisAddr     string // Redis server address; empty selects the in-process session store
	RedisPass     string // Redis password
	RedisDB       int    // Redis database number
	IsProd        bool   // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	dbName := os.Getenv("MONGO_DB_NAME")
	if dbName == "" {
		dbName = "mini_store" // Default database name
	}
	return &Config{
		AppPort:       os.Getenv("APP_PORT"),          // Application port
		MongoURI:      os.Getenv("MONGODB_URI"),       // MongoDB connection string
		MongoDBName:   dbName,                         // MongoDB database name
		AdminUsername: os.Getenv("ADMIN_USERNAME"),    // Bootstrap admin username
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),    // Bootstrap admin password
		JWTSecret:     os.Getenv("JWT_SECRET"),        // JWT secret key
		RedisAddr:     os.Getenv("REDIS_ADDR"),        // Redis server address
		RedisPass:     os.Getenv("REDIS_PASS"),        // Redis password
		RedisDB:       redisDB,                        // Redis database number
		IsProd:        os.Getenv("IS_PROD") == "true", // Is production environment
	}
}
