package openfda

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupInteractions_ReturnsFirstInteractionText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Query().Get("search"), "openfda.brand_name:Aspirin")
		assert.Equal(t, "1", r.URL.Query().Get("limit"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"results": []map[string]interface{}{
				{"drug_interactions": []string{"Do not combine with anticoagulants.", "Second entry."}},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	text, err := client.LookupInteractions(context.Background(), "Aspirin")

	assert.NoError(t, err)
	assert.Equal(t, "Do not combine with anticoagulants.", text)
}

func TestLookupInteractions_EmptyWhenNoInteractionsSection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"results": []map[string]interface{}{{}},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	text, err := client.LookupInteractions(context.Background(), "Paracetamol")

	assert.NoError(t, err)
	assert.Empty(t, text)
}

func TestLookupInteractions_ErrorOnNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.LookupInteractions(context.Background(), "unknown-drug")

	assert.Error(t, err)
}
