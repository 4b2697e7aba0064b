// scripts/gcal-auth/main.go
//
// Run once to authorize publishing approved bookings to Google Calendar with
// OAuth desktop credentials. Service account keys need no token.
//
// Usage:
//   go run scripts/gcal-auth/main.go [path/to/google-credentials.json]
//
// token.json is written next to the credentials file, where the server looks for it.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

func main() {
	credsPath := "google-credentials.json"
	if len(os.Args) > 1 {
		credsPath = os.Args[1]
	}

	data, err := os.ReadFile(credsPath)
	if err != nil {
		log.Fatalf("Failed to read credentials file %q: %v", credsPath, err)
	}

	config, err := google.ConfigFromJSON(data, calendar.CalendarEventsScope)
	if err != nil {
		log.Fatalf("Failed to parse credentials: %v\nMake sure %q is an OAuth Desktop App credentials file.", err, credsPath)
	}

	authURL := config.AuthCodeURL("shareit", oauth2.AccessTypeOffline)
	fmt.Println("1. Open this URL and sign in with the calendar owner's account:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Print("2. Paste the authorization code and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		log.Fatalf("Failed to read authorization code: %v", err)
	}

	tok, err := config.Exchange(context.Background(), code)
	if err != nil {
		log.Fatalf("Failed to exchange authorization code: %v", err)
	}

	tokenPath := filepath.Join(filepath.Dir(credsPath), "token.json")
	f, err := os.OpenFile(tokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", tokenPath, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		log.Fatalf("Failed to write %s: %v", tokenPath, err)
	}

	fmt.Printf("\nSaved %s. Restart the server to enable calendar publishing.\n", tokenPath)
}
