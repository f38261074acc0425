package openfda

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

type (
	// Client looks up drug label records on the openFDA API.
	Client interface {
		LookupInteractions(ctx context.Context, brandName string) (string, error)
	}

	openFDAClient struct {
		baseURL    string
		httpClient *http.Client
	}
)

const DefaultBaseURL = "https://api.fda.gov/drug/label.json"

func NewClient(baseURL string) Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &openFDAClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

// LookupInteractions returns the drug_interactions text of the first label
// record matching the brand name, or an empty string when the label carries
// no interactions section.
func (c *openFDAClient) LookupInteractions(ctx context.Context, brandName string) (string, error) {
	params := url.Values{}
	params.Set("search", fmt.Sprintf("openfda.brand_name:%s", brandName))
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("openFDA API error: %s - %s", resp.Status, string(bodyBytes))
	}

	var data struct {
		Results []struct {
			DrugInteractions []string `json:"drug_interactions"`
		} `json:"results"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", err
	}

	if len(data.Results) == 0 || len(data.Results[0].DrugInteractions) == 0 {
		return "", nil
	}

	return data.Results[0].DrugInteractions[0], nil
}
