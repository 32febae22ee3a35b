package offeringservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с каталогом услуг
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента ServiceOfferingService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetServicesByIDs получает услуги по набору идентификаторов.
// Возвращает ErrOfferingsNotFound, если каталог не знает хотя бы одну из них
func (c *Client) GetServicesByIDs(ctx context.Context, ids []int64) ([]ServiceOffering, error) {
	idParams := make([]string, len(ids))
	for i, id := range ids {
		idParams[i] = strconv.FormatInt(id, 10)
	}
	url := fmt.Sprintf("%s/internal/service-offerings?ids=%s", c.baseURL, strings.Join(idParams, ","))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid service IDs format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrOfferingsNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var offerings []ServiceOffering
	if err := json.NewDecoder(resp.Body).Decode(&offerings); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	// Каталог может вернуть только часть услуг - это тоже not found
	if len(offerings) != len(ids) {
		return nil, ErrOfferingsNotFound
	}

	return offerings, nil
}
