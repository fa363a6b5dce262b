// scripts/google-auth/main.go
//
// Run this ONCE locally to authorize Google Calendar, Gmail, and Tasks
// access without going through the web flow, and generate token.json.
//
// Usage:
//   go run scripts/google-auth/main.go [credentials.json] [token.json]
//
// It prints a browser URL; log in with your Google account, paste the
// authorization code, and the token file is saved.

package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"intelliassist/pkg/googleauth"

	"golang.org/x/oauth2"
)

func main() {
	credsPath := "credentials/credentials.json"
	tokenPath := "credentials/token.json"
	if len(os.Args) > 1 {
		credsPath = os.Args[1]
	}
	if len(os.Args) > 2 {
		tokenPath = os.Args[2]
	}

	config, err := googleauth.NewConfig(credsPath, "")
	if err != nil {
		log.Fatalf("Failed to load credentials %q: %v", credsPath, err)
	}

	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Println("=================================================================")
	fmt.Println("STEP 1: Open this URL in a browser and log in to Google:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Println("=================================================================")
	fmt.Print("STEP 2: Paste the authorization code here and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		log.Fatalf("Failed to read authorization code: %v", err)
	}

	tok, err := config.Exchange(context.Background(), code)
	if err != nil {
		log.Fatalf("Failed to exchange authorization code: %v", err)
	}

	if err := googleauth.SaveToken(tokenPath, tok); err != nil {
		log.Fatalf("Failed to save token: %v", err)
	}

	fmt.Println()
	fmt.Printf("Token saved to %s\n", tokenPath)
	fmt.Println("Restart the backend to pick it up.")
}
