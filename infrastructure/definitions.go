package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

const definitionTimeout = 3 * time.Second

// DictionaryClient looks up word definitions from a dictionary API.
// Lookups are decoration on game results, so every failure path returns
// an empty string rather than an error.
type DictionaryClient struct {
	baseURL string
	client  *http.Client

	mu    sync.RWMutex
	cache map[string]string
}

// NewDictionaryClient creates a definition lookup against the given API base URL
func NewDictionaryClient(baseURL string) *DictionaryClient {
	return &DictionaryClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: definitionTimeout},
		cache:   make(map[string]string),
	}
}

// dictionaryEntry mirrors the slice of entries the API returns per word
type dictionaryEntry struct {
	Meanings []struct {
		PartOfSpeech string `json:"partOfSpeech"`
		Definitions  []struct {
			Definition string `json:"definition"`
		} `json:"definitions"`
	} `json:"meanings"`
}

// Define returns the first definition of the word, or "" when the API
// has nothing or cannot be reached in time. Successful lookups are
// cached for the life of the process; the answer corpus is small.
func (c *DictionaryClient) Define(ctx context.Context, word string) string {
	c.mu.RLock()
	cached, ok := c.cache[word]
	c.mu.RUnlock()
	if ok {
		return cached
	}

	definition := c.fetch(ctx, word)
	if definition != "" {
		c.mu.Lock()
		c.cache[word] = definition
		c.mu.Unlock()
	}
	return definition
}

func (c *DictionaryClient) fetch(ctx context.Context, word string) string {
	endpoint := fmt.Sprintf("%s/%s", c.baseURL, url.PathEscape(word))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		log.WithError(err).WithField("word", word).Warn("failed to build definition request")
		return ""
	}

	resp, err := c.client.Do(req)
	if err != nil {
		log.WithError(err).WithField("word", word).Debug("definition lookup failed")
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ""
	}

	var entries []dictionaryEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		log.WithError(err).WithField("word", word).Debug("failed to decode definition response")
		return ""
	}

	for _, entry := range entries {
		for _, meaning := range entry.Meanings {
			for _, def := range meaning.Definitions {
				if def.Definition != "" {
					return def.Definition
				}
			}
		}
	}
	return ""
}
