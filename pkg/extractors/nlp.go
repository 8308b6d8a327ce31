package extractors

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/google/uuid"

	"github.com/entitylens/entitylens/config"
	"github.com/entitylens/entitylens/internal"
	"github.com/entitylens/entitylens/pkg/models"
)

var log = internal.GetLogger()

const (
	clientTimeout = 30 * time.Second
	clientRetries = 3

	// The availability probe retries once after a short delay, mirroring the
	// one remediation attempt the run is allowed before failing fast.
	probeAttempts = 2
	probeDelay    = time.Second
)

// Force compiler to validate that NLPExtractor implements the Extractor interface.
var _ models.Extractor = &NLPExtractor{}

// NLPExtractor delegates entity extraction to an external pre-trained NLP
// server. The server's model is opaque to entitylens; the extractor only
// speaks the /entities wire protocol.
type NLPExtractor struct {
	serverURL string
	language  string
	client    *http.Client
}

func NewNLPExtractor(cfg *config.Config) *NLPExtractor {
	return &NLPExtractor{
		serverURL: cfg.NLP.ServerURL,
		language:  cfg.Analysis.Language,
		client:    NewRetryableHTTPClient(clientRetries, clientTimeout),
	}
}

// Extract sends text to the NLP server and returns the entities found, in
// occurrence order. An empty result is a valid outcome, not an error.
func (e *NLPExtractor) Extract(ctx context.Context, text string) ([]models.Entity, error) {
	requestBody := models.EntityRequest{
		Texts: []models.EntityRequestRecord{
			{
				UUID:     uuid.New().String(),
				Text:     text,
				Language: e.language,
			},
		},
	}
	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return nil, fmt.Errorf("marshal entity request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		e.serverURL+"/entities",
		bytes.NewBuffer(jsonBody),
	)
	if err != nil {
		return nil, fmt.Errorf("create entity request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("entity extraction call failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read entity response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(
			"entity extraction returned status %d: %s",
			resp.StatusCode,
			bodyBytes,
		)
	}

	var response models.EntityResponse
	if err := json.Unmarshal(bodyBytes, &response); err != nil {
		return nil, fmt.Errorf("unmarshal entity response: %w", err)
	}
	if len(response.Texts) == 0 {
		return nil, errors.New("entity response contained no texts")
	}

	entities := response.Texts[0].Entities
	for i := range entities {
		matches := entities[i].Matches
		sort.SliceStable(matches, func(a, b int) bool {
			return matches[a].Start < matches[b].Start
		})
	}

	log.Debugf("NLP server returned %d entities", len(entities))
	return entities, nil
}

// Describe returns the human-readable description for an entity label.
func (e *NLPExtractor) Describe(label string) (string, bool) {
	return DescribeLabel(label)
}

// Available probes the NLP server's health endpoint once.
func (e *NLPExtractor) Available(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.serverURL+"/healthz", nil)
	if err != nil {
		return err
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned status %d", resp.StatusCode)
	}
	return nil
}

// WaitUntilAvailable probes the NLP server, retrying once before giving up.
// A failure here is a precondition failure: the caller must not proceed
// with a broken extractor.
func (e *NLPExtractor) WaitUntilAvailable(ctx context.Context) error {
	err := retry.Do(
		func() error {
			return e.Available(ctx)
		},
		retry.Attempts(probeAttempts),
		retry.Delay(probeDelay),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Warnf("NLP server not available (attempt %d): %s", n+1, err)
		}),
	)
	if err != nil {
		return models.NewExtractorUnavailableError(e.serverURL, err)
	}
	return nil
}
