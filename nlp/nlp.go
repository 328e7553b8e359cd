package nlp

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"sync"

	"go-suraksha/types"

	language "cloud.google.com/go/language/apiv2"
	"cloud.google.com/go/language/apiv2/languagepb"
	"google.golang.org/api/option"
)

// languageClient is a singleton language client instance.
var (
	languageClient *language.Client
	clientOnce     sync.Once
)

// InitLanguageClient initializes and returns a language client from the
// base64-encoded service account in NATURAL_LANGUAGE_CREDENTIALS.
func InitLanguageClient() (*language.Client, error) {
	var err error

	clientOnce.Do(func() {
		encodedCreds := os.Getenv("NATURAL_LANGUAGE_CREDENTIALS")
		creds, decodeErr := base64.StdEncoding.DecodeString(encodedCreds)
		if decodeErr != nil {
			err = fmt.Errorf("decode Natural Language credentials: %w", decodeErr)
			return
		}

		opt := option.WithCredentialsJSON(creds)
		languageClient, err = language.NewClient(context.Background(), opt)
		if err != nil {
			log.Printf("Failed to create Natural Language client: %v", err)
		}
	})

	return languageClient, err
}

func CloseLanguageClient() {
	if languageClient != nil {
		languageClient.Close()
	}
}

// AnalyzeEntities sends text to the Cloud Natural Language API to extract
// named entities and returns a slice of Entity structs.
func AnalyzeEntities(ctx context.Context, client *language.Client, text string) ([]types.Entity, error) {
	req := &languagepb.AnalyzeEntitiesRequest{
		Document: &languagepb.Document{
			Source: &languagepb.Document_Content{
				Content: text,
			},
			Type: languagepb.Document_PLAIN_TEXT,
		},
		EncodingType: languagepb.EncodingType_UTF8,
	}

	resp, err := client.AnalyzeEntities(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("AnalyzeEntities error: %w", err)
	}

	var entities []types.Entity
	for _, e := range resp.Entities {
		var mentions []types.EntityMention
		for _, m := range e.Mentions {
			mentions = append(mentions, types.EntityMention{
				Content:     m.Text.Content,
				BeginOffset: m.Text.BeginOffset,
				Probability: m.Probability,
			})
		}
		md := make(map[string]string)
		for k, v := range e.Metadata {
			md[k] = v
		}
		entities = append(entities, types.Entity{
			Name:     e.Name,
			Type:     e.Type.String(),
			Metadata: md,
			Mentions: mentions,
		})
	}
	return entities, nil
}

// PlaceNames filters entities down to the LOCATION and ADDRESS names.
func PlaceNames(entities []types.Entity) []string {
	var names []string
	for _, e := range entities {
		if e.Type == "LOCATION" || e.Type == "ADDRESS" {
			names = append(names, e.Name)
		}
	}
	return names
}
