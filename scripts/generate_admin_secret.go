package main

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
)

// Generates the bcrypt hash to put in ADMIN_SECRET so the plain secret
// never lands in the environment.
func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run scripts/generate_admin_secret.go <secret>")
	}

	secret := os.Args[1]
	cost := 12

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), cost)
	if err != nil {
		log.Fatal("Error generating hash:", err)
	}

	fmt.Printf("ADMIN_SECRET=%s\n", string(hash))

	if err := bcrypt.CompareHashAndPassword(hash, []byte(secret)); err != nil {
		log.Fatal("Hash verification failed:", err)
	}
}
