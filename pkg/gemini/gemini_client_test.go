package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestClient(baseURL string) *geminiClient {
	return &geminiClient{
		baseURL:     baseURL,
		apiKey:      "test-key",
		model:       "gemini-2.0-flash",
		visionModel: "gemini-2.0-flash",
		httpClient:  &http.Client{Timeout: 5 * time.Second},
	}
}

func candidateResponse(text string) map[string]interface{} {
	return map[string]interface{}{
		"candidates": []map[string]interface{}{
			{
				"content": map[string]interface{}{
					"parts": []map[string]interface{}{
						{"text": text},
					},
				},
			},
		},
	}
}

func TestCleanJSONResponse_StripsMarkdownFences(t *testing.T) {
	raw := "```json\n{\"medicines\": []}\n```"

	assert.Equal(t, `{"medicines": []}`, cleanJSONResponse(raw))
}

func TestCleanJSONResponse_ExtractsObjectFromProse(t *testing.T) {
	raw := "Here is the result:\n{\"medicines\": [{\"name\": \"aspirin\"}]}\nHope that helps."

	assert.Equal(t, `{"medicines": [{"name": "aspirin"}]}`, cleanJSONResponse(raw))
}

func TestExtractFromText_ParsesFencedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := "```json\n{\"medicines\": [{\"name\": \"Aspirin\", \"dosage\": \"100mg\", \"frequency\": \"daily\"}]}\n```"
		json.NewEncoder(w).Encode(candidateResponse(body))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	medicines := client.ExtractFromText(context.Background(), "Aspirin 100mg daily")

	assert.Len(t, medicines, 1)
	assert.Equal(t, "Aspirin", medicines[0].Name)
	assert.Equal(t, "100mg", medicines[0].Dosage)
	assert.Equal(t, "daily", medicines[0].Frequency)
}

func TestExtractFromText_DegradesToEmptyOnFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	medicines := client.ExtractFromText(context.Background(), "Aspirin 100mg daily")

	assert.NotNil(t, medicines)
	assert.Empty(t, medicines)
}

func TestExtractFromImage_ReturnsStructuredResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := `{"extracted_text": "Amoxicillin 250mg", "medicines": [{"name": "Amoxicillin", "dosage": "250mg", "frequency": "three times daily"}], "legibility_score": 0.92, "warnings": []}`
		json.NewEncoder(w).Encode(candidateResponse(body))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	result := client.ExtractFromImage(context.Background(), []byte("fake-image"), "image/png")

	assert.Equal(t, "Amoxicillin 250mg", result.ExtractedText)
	assert.Len(t, result.Medicines, 1)
	assert.Equal(t, 0.92, result.LegibilityScore)
}

func TestExtractFromImage_DegradesOnAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	result := client.ExtractFromImage(context.Background(), []byte("fake-image"), "image/jpeg")

	assert.Equal(t, "Error processing image", result.ExtractedText)
	assert.Empty(t, result.Medicines)
	assert.Equal(t, 0.0, result.LegibilityScore)
	assert.Len(t, result.Warnings, 1)
}

func TestExtractFromImage_KeepsRawTextWhenNotJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(candidateResponse("The image shows a handwritten note."))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	result := client.ExtractFromImage(context.Background(), []byte("fake-image"), "")

	assert.Equal(t, "The image shows a handwritten note.", result.ExtractedText)
	assert.Empty(t, result.Medicines)
	assert.Equal(t, 0.7, result.LegibilityScore)
}

func TestExtractFromImage_MissingLegibilityDefaults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := `{"extracted_text": "Amoxicillin 250mg", "medicines": [{"name": "Amoxicillin", "dosage": "250mg", "frequency": "three times daily"}], "warnings": []}`
		json.NewEncoder(w).Encode(candidateResponse(body))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	result := client.ExtractFromImage(context.Background(), []byte("fake-image"), "image/jpeg")

	assert.Equal(t, 0.7, result.LegibilityScore)
	assert.Len(t, result.Medicines, 1)
}

func TestExtractFromImage_ClampsOutOfRangeLegibility(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := `{"extracted_text": "ok", "medicines": [], "legibility_score": 42, "warnings": []}`
		json.NewEncoder(w).Encode(candidateResponse(body))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	result := client.ExtractFromImage(context.Background(), []byte("fake-image"), "image/jpeg")

	assert.Equal(t, 0.7, result.LegibilityScore)
}

func TestGenerateText_TrimsWhitespace(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(candidateResponse("  Take it with food.\n"))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	text, err := client.GenerateText(context.Background(), "prompt")

	assert.NoError(t, err)
	assert.Equal(t, "Take it with food.", text)
}

func TestGenerateText_MissingAPIKey(t *testing.T) {
	client := newTestClient("http://localhost:0")
	client.apiKey = ""

	_, err := client.GenerateText(context.Background(), "prompt")

	assert.Error(t, err)
}
