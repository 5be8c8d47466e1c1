package adjustclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// ErrMissingToken indica que o cliente não tem token da API configurado
var ErrMissingToken = errors.New("token da API do Adjust não informado")

type CSVReportParams struct {
	APIToken   string
	AppToken   string
	AccountID  string
	StoreID    string
	BeginDate  string
	EndDate    string
	Dimensions string
	Metrics    string
}

// APIError é retornado quando o reports-service responde com status diferente de 200
type APIError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("requisição ao Adjust falhou com status %s: %s", e.Status, e.Body)
}

func (c *AdjustClient) GetCSVReport(ctx context.Context, params CSVReportParams) ([]byte, error) {
	if params.APIToken == "" {
		return nil, ErrMissingToken
	}

	endpoint, err := url.Parse(c.config.Adjust.URL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}

	query := endpoint.Query()
	query.Set("date_period", params.BeginDate+":"+params.EndDate)
	query.Set("dimensions", params.Dimensions)
	query.Set("metrics", params.Metrics)
	query.Set("readable_names", "true")
	query.Set("utc_offset", c.config.Adjust.UTCOffset)
	query.Set("attribution_source", c.config.Adjust.AttributionSource)
	query.Set("attribution_type", c.config.Adjust.AttributionType)
	query.Set("currency", c.config.Adjust.Currency)
	query.Set("app_token__in", params.AppToken)
	if params.AccountID != "" {
		query.Set("adjust_account_id", params.AccountID)
	}
	if params.StoreID != "" {
		query.Set("store_id__in", params.StoreID)
	}
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+params.APIToken)
	req.Header.Set("Accept", "text/csv")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler a resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	return body, nil
}
