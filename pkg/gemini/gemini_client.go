package gemini

import (
	"MediAssist-Backend/domain"
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"
)

type (
	Client interface {
		ExtractFromImage(ctx context.Context, imageData []byte, mimeType string) domain.ImageExtractionResult
		ExtractFromText(ctx context.Context, text string) []domain.MedicineMention
		GenerateText(ctx context.Context, prompt string) (string, error)
	}

	geminiClient struct {
		baseURL     string
		apiKey      string
		model       string
		visionModel string
		httpClient  *http.Client
	}
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

var jsonPattern = regexp.MustCompile(`(?s)\{.*\}`)

func NewClient(apiKey, model, visionModel string) Client {
	return &geminiClient{
		baseURL:     defaultBaseURL,
		apiKey:      apiKey,
		model:       model,
		visionModel: visionModel,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *geminiClient) generateContent(ctx context.Context, model string, parts []map[string]interface{}) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY not set")
	}

	geminiURL := fmt.Sprintf(
		"%s/models/%s:generateContent?key=%s",
		c.baseURL, model, c.apiKey,
	)

	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{"parts": parts},
		},
		"generationConfig": map[string]interface{}{
			"temperature": 0.1,
			"topP":        0.8,
			"topK":        40,
		},
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", geminiURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("gemini API error: %s - %s", resp.Status, string(bodyBytes))
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return "", err
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", domain.ErrGeminiProcessingFailed
	}

	return geminiResp.Candidates[0].Content.Parts[0].Text, nil
}

// cleanJSONResponse strips markdown fences and surrounding prose so the body
// can be fed to json.Unmarshal.
func cleanJSONResponse(responseText string) string {
	if matches := jsonPattern.FindString(responseText); matches != "" {
		responseText = matches
	}

	responseText = strings.TrimSpace(responseText)
	if strings.HasPrefix(responseText, "```json") {
		responseText = strings.TrimPrefix(responseText, "```json")
		responseText = strings.TrimSuffix(responseText, "```")
	} else if strings.HasPrefix(responseText, "```") {
		responseText = strings.TrimPrefix(responseText, "```")
		responseText = strings.TrimSuffix(responseText, "```")
	}
	return strings.TrimSpace(responseText)
}

func (c *geminiClient) ExtractFromImage(ctx context.Context, imageData []byte, mimeType string) domain.ImageExtractionResult {
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	base64Image := base64.StdEncoding.EncodeToString(imageData)

	parts := []map[string]interface{}{
		{
			"text": "Extract all text from this prescription image. Respond ONLY with a valid JSON object containing exactly these fields: 'extracted_text' (complete text from image), 'medicines' (array of {'name','dosage','frequency'}), 'legibility_score' (number between 0 and 1), and 'warnings' (array of strings). Do not include any explanations, markdown formatting, or extra text.",
		},
		{
			"inline_data": map[string]interface{}{
				"mime_type": mimeType,
				"data":      base64Image,
			},
		},
	}

	responseText, err := c.generateContent(ctx, c.visionModel, parts)
	if err != nil {
		log.Printf("gemini OCR error: %v", err)
		return domain.ImageExtractionResult{
			ExtractedText:   "Error processing image",
			Medicines:       []domain.MedicineMention{},
			LegibilityScore: 0.0,
			Warnings:        []string{fmt.Sprintf("OCR failed: %s", err.Error())},
		}
	}

	// legibility_score is decoded through a pointer so an omitted field can be
	// told apart from a real 0.
	var parsed struct {
		ExtractedText   string                   `json:"extracted_text"`
		Medicines       []domain.MedicineMention `json:"medicines"`
		LegibilityScore *float64                 `json:"legibility_score"`
		Warnings        []string                 `json:"warnings"`
	}
	if err := json.Unmarshal([]byte(cleanJSONResponse(responseText)), &parsed); err != nil {
		// The call itself succeeded, only the payload was not JSON. Keep the
		// raw text and assume middling legibility.
		return domain.ImageExtractionResult{
			ExtractedText:   responseText,
			Medicines:       []domain.MedicineMention{},
			LegibilityScore: 0.7,
			Warnings:        []string{},
		}
	}

	result := domain.ImageExtractionResult{
		ExtractedText:   parsed.ExtractedText,
		Medicines:       parsed.Medicines,
		LegibilityScore: 0.7,
		Warnings:        parsed.Warnings,
	}
	if parsed.LegibilityScore != nil && *parsed.LegibilityScore >= 0 && *parsed.LegibilityScore <= 1 {
		result.LegibilityScore = *parsed.LegibilityScore
	}
	if result.Medicines == nil {
		result.Medicines = []domain.MedicineMention{}
	}
	if result.Warnings == nil {
		result.Warnings = []string{}
	}

	return result
}

func (c *geminiClient) ExtractFromText(ctx context.Context, text string) []domain.MedicineMention {
	prompt := fmt.Sprintf(
		"Parse this prescription text and extract medicines. Respond ONLY with a valid JSON object: {'medicines': [{'name': 'medicine name', 'dosage': 'dosage', 'frequency': 'frequency'}]}. Do not include any explanations or markdown formatting. Prescription: %s",
		text,
	)

	responseText, err := c.generateContent(ctx, c.model, []map[string]interface{}{{"text": prompt}})
	if err != nil {
		log.Printf("gemini text extraction error: %v", err)
		return []domain.MedicineMention{}
	}

	var parsed struct {
		Medicines []domain.MedicineMention `json:"medicines"`
	}
	if err := json.Unmarshal([]byte(cleanJSONResponse(responseText)), &parsed); err != nil {
		return []domain.MedicineMention{}
	}
	if parsed.Medicines == nil {
		return []domain.MedicineMention{}
	}

	return parsed.Medicines
}

func (c *geminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	responseText, err := c.generateContent(ctx, c.model, []map[string]interface{}{{"text": prompt}})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(responseText), nil
}
