package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/fadedpez/tucojack/pkg/entities"
	"github.com/fadedpez/tucojack/pkg/storage"
)

// DefaultIndex is where the record document lives when no index is configured
const DefaultIndex = "tucojack_stats"

// docID is the single document holding the record
const docID = "stats"

// Config holds connection settings for the Elasticsearch store
type Config struct {
	URL      string
	Username string
	Password string
	Index    string
}

// Storage keeps the win/loss record as one document in an Elasticsearch index
type Storage struct {
	client *elasticsearch.Client
	index  string
}

// New creates a client for config. No request is made until the first Load or Save.
func New(config Config) (*Storage, error) {
	cfg := elasticsearch.Config{
		Addresses: []string{config.URL},
	}

	// Add authentication if provided
	if config.Username != "" && config.Password != "" {
		cfg.Username = config.Username
		cfg.Password = config.Password
	}

	client, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("error creating Elasticsearch client: %w", err)
	}

	index := config.Index
	if index == "" {
		index = DefaultIndex
	}

	return &Storage{client: client, index: index}, nil
}

// Index returns the index name in use
func (s *Storage) Index() string {
	return s.index
}

type getResponse struct {
	Found  bool            `json:"found"`
	Source json.RawMessage `json:"_source"`
}

// Load fetches the record document. A missing document or index is
// storage.ErrStatsNotFound.
func (s *Storage) Load(ctx context.Context) (*entities.Stats, error) {
	res, err := s.client.Get(s.index, docID, s.client.Get.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("error getting stats document: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return nil, storage.ErrStatsNotFound
	}
	if res.IsError() {
		return nil, fmt.Errorf("error getting stats document: %s", res.String())
	}

	var doc getResponse
	if err := json.NewDecoder(res.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("error parsing response body: %w", err)
	}
	if !doc.Found {
		return nil, storage.ErrStatsNotFound
	}

	var stats entities.Stats
	if err := json.Unmarshal(doc.Source, &stats); err != nil {
		return nil, storage.Corrupt(s.index+"/"+docID, err)
	}
	return &stats, nil
}

// Save indexes the record document, replacing the previous version
func (s *Storage) Save(ctx context.Context, stats *entities.Stats) error {
	body, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("error marshaling stats: %w", err)
	}

	res, err := s.client.Index(
		s.index,
		bytes.NewReader(body),
		s.client.Index.WithDocumentID(docID),
		s.client.Index.WithRefresh("true"),
		s.client.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("error indexing stats document: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing stats document: %s", res.String())
	}
	return nil
}

// Close is a no-op; the client holds no resources beyond its HTTP transport
func (s *Storage) Close() error {
	return nil
}

var _ storage.StatsStore = (*Storage)(nil)
