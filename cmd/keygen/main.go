package main

import (
	"fmt"
	"log"

	"github.com/shadowbay/marketkit/pkg/secrets"
	"github.com/shadowbay/marketkit/pkg/sessiontoken"
)

func main() {
	encryptionKey, err := secrets.GenerateEncodedKey()
	if err != nil {
		log.Fatalf("Failed to generate encryption key: %v", err)
	}

	signingKey, err := sessiontoken.GenerateEncodedKey()
	if err != nil {
		log.Fatalf("Failed to generate signing key: %v", err)
	}

	fmt.Printf("SECRETS_ENCRYPTION_KEY=%s\n", encryptionKey)
	fmt.Printf("SESSION_SIGNING_KEY=%s\n", signingKey)
}
