package main

import (
	"fmt"
	"log"

	"github.com/eventlodge/room-assignment-backend/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	fmt.Println("===========================================")
	fmt.Println("Secret Generator for EventLodge")
	fmt.Println("===========================================")
	fmt.Println()

	jwtSecret, err := utils.GenerateSecret(32)
	if err != nil {
		log.Fatalf("Failed to generate JWT secret: %v", err)
	}

	apiKey, err := utils.GenerateSecret(24)
	if err != nil {
		log.Fatalf("Failed to generate API key: %v", err)
	}
	apiKeyHash, err := bcrypt.GenerateFromPassword([]byte(apiKey), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash API key: %v", err)
	}

	fmt.Println("Secrets generated successfully.")
	fmt.Println()
	fmt.Println("Add these to your .env file or deployment secrets:")
	fmt.Println()
	fmt.Printf("JWT_SECRET=%s\n", jwtSecret)
	fmt.Printf("OPERATOR_API_KEY_HASH=%s\n", string(apiKeyHash))
	fmt.Println()
	fmt.Println("Hand this key to the operator tooling (store it safely, it is not recoverable):")
	fmt.Println()
	fmt.Printf("X-API-Key: %s\n", apiKey)
	fmt.Println()
	fmt.Println("Never commit these values to version control.")
	fmt.Println("===========================================")
}
