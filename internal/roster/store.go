package roster

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/dana/castmatch/internal/domain"
)

// Loader fetches the full actor roster from one configured source.
type Loader interface {
	Load(ctx context.Context) ([]domain.ActorRecord, error)
}

// URLLoader fetches the roster JSON over HTTP.
type URLLoader struct {
	client *resty.Client
	url    string
}

// NewURLLoader creates a loader for a remote roster export.
func NewURLLoader(url string) *URLLoader {
	client := resty.New()
	client.SetTimeout(30 * time.Second)
	return &URLLoader{client: client, url: url}
}

func (l *URLLoader) Load(ctx context.Context) ([]domain.ActorRecord, error) {
	resp, err := l.client.R().SetContext(ctx).Get(l.url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch roster: %w", err)
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, fmt.Errorf("failed to fetch roster: HTTP %d", resp.StatusCode())
	}
	return Parse(l.url, resp.Body())
}

// FileLoader reads the roster JSON from local disk.
type FileLoader struct {
	path string
}

// NewFileLoader creates a loader for a local roster export.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{path: path}
}

func (l *FileLoader) Load(ctx context.Context) ([]domain.ActorRecord, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file: %w", err)
	}
	return Parse(l.path, data)
}

// ActorLister is the repository surface the DB-backed loader needs.
type ActorLister interface {
	List(ctx context.Context) ([]domain.ActorRecord, error)
}

// DBLoader serves the roster out of the ingested database table. Records
// in the database already passed sanitation at ingest time.
type DBLoader struct {
	repo ActorLister
}

// NewDBLoader creates a loader over an ingested roster table.
func NewDBLoader(repo ActorLister) *DBLoader {
	return &DBLoader{repo: repo}
}

func (l *DBLoader) Load(ctx context.Context) ([]domain.ActorRecord, error) {
	return l.repo.List(ctx)
}
