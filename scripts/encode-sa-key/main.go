// scripts/encode-sa-key/main.go
//
// Encodes a Google service account key file for the GCP_SA_KEY variable.
//
// Usage:
//   go run scripts/encode-sa-key/main.go [service-account.json]
//
// The key is checked before encoding, so a wrong file (for example an OAuth
// client secret) fails here instead of at the first scheduled run.

package main

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"os"

	"serverless-api-template/pkg/gauth"
	"serverless-api-template/pkg/gdrive"
	"serverless-api-template/pkg/gsheets"
)

func main() {
	keyPath := "service-account.json"
	if len(os.Args) > 1 {
		keyPath = os.Args[1]
	}

	data, err := os.ReadFile(keyPath)
	if err != nil {
		log.Fatalf("Failed to read key file %q: %v", keyPath, err)
	}

	if _, err := gauth.TokenSource(context.Background(), data, "", gsheets.Scope, gdrive.Scope); err != nil {
		log.Fatalf("Invalid service account key: %v\nMake sure %q is a service account JSON key.", err, keyPath)
	}

	fmt.Println(base64.StdEncoding.EncodeToString(data))
}
