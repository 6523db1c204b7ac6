// Package service implements the placeholder subcommands.
package service

import (
	"net/http"

	"placeholder/app/config"
	"placeholder/app/jsonplaceholder"
	"placeholder/app/requestapi"

	"github.com/go-kit/log"
)

var (
	conf   = config.Default()
	logger = log.NewNopLogger()

	// Database path - variable to allow testing with different paths
	dbPath    = conf.Storage.Path
	backupDir = "data/backups"
)

// Configure sets the configuration and logger used by every command.
func Configure(c *config.Config, l log.Logger) {
	conf = c
	dbPath = c.Storage.Path
	if l != nil {
		logger = l
	}
}

// newClient builds a JSONPlaceholder client for baseURL, falling back to the
// configured one.
func newClient(baseURL string) (*jsonplaceholder.Client, error) {
	if baseURL == "" {
		baseURL = conf.API.BaseURL
	}
	r, err := requestapi.New(baseURL,
		requestapi.WithHTTPClient(&http.Client{Timeout: conf.API.Timeout}),
		requestapi.WithRetry(conf.API.Retry.Attempts, conf.API.Retry.InitialWait, conf.API.Retry.Backoff),
		requestapi.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}
	return jsonplaceholder.New(r), nil
}
