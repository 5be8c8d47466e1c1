package adjustclient

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/attribution-sync/internal/config"
)

const defaultTimeout = 60 * time.Second

type Client interface {
	GetCSVReport(ctx context.Context, params CSVReportParams) ([]byte, error)
}

type AdjustClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient cria o cliente do reports-service do Adjust
func NewClient(cfg *config.Config) Client {
	timeout := cfg.Adjust.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &AdjustClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: cfg,
	}
}
