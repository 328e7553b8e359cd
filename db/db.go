package db

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"os"
	"sync"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	"google.golang.org/api/option"
)

// HashString hashes a given string using SHA-256 and returns its hex
// representation. Used for deterministic Firestore document IDs.
func HashString(s string) string {
	h := sha256.Sum256([]byte(s))
	return hex.EncodeToString(h[:])
}

// client is a singleton Firestore client instance.
var (
	client     *firestore.Client
	clientOnce sync.Once
)

// InitFirestore initializes and returns a Firestore client from the
// base64-encoded service account in FIREBASE_CREDENTIALS.
func InitFirestore() (*firestore.Client, error) {
	var err error

	clientOnce.Do(func() {
		encodedCreds := os.Getenv("FIREBASE_CREDENTIALS")
		creds, decodeErr := base64.StdEncoding.DecodeString(encodedCreds)
		if decodeErr != nil {
			err = fmt.Errorf("decode Firestore credentials: %w", decodeErr)
			return
		}

		opt := option.WithCredentialsJSON(creds)
		app, appErr := firebase.NewApp(context.Background(), nil, opt)
		if appErr != nil {
			err = fmt.Errorf("initialize Firebase app: %w", appErr)
			return
		}

		client, err = app.Firestore(context.Background())
	})

	return client, err
}

// CloseFirestore closes the Firestore client.
func CloseFirestore() {
	if client != nil {
		client.Close()
	}
}
