package ai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"FoodRescue-Backend/domain"
)

// systemInstruction is prepended to every chat conversation before it is
// forwarded upstream.
const systemInstruction = "You are the FoodRescue assistant. You help donors post surplus food, " +
	"explain freshness and quality scores, suggest optimal pickup times, and answer " +
	"food-safety questions. The platform lists surplus-food postings with categories " +
	"(produce, bakery, dairy, prepared, packaged, other), pickup windows, sensor " +
	"monitoring, and claims by recipients. Keep answers short and practical."

const (
	chatTemperature = 0.7
	chatMaxTokens   = 1024
)

type (
	// Gateway wraps the hosted language model: one chat-completion call and
	// one image-classification call, no retries, no orchestration.
	Gateway interface {
		Configured() bool
		Chat(ctx context.Context, messages []domain.ChatMessage) (string, error)
		DetectFood(ctx context.Context, imageFile *multipart.FileHeader) (domain.DetectFoodResponse, error)
		AnalyzeSupplier(ctx context.Context, req domain.CreateSupplierRatingRequest) (domain.SupplierAnalysis, error)
	}

	geminiGateway struct {
		apiKey     string
		model      string
		baseURL    string
		httpClient *http.Client
	}
)

func NewGeminiGateway(apiKey, model string) Gateway {
	return &geminiGateway{
		apiKey:     apiKey,
		model:      model,
		baseURL:    "https://generativelanguage.googleapis.com/v1beta",
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (g *geminiGateway) Configured() bool {
	return g.apiKey != "" && g.model != ""
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents          []geminiContent        `json:"contents"`
	SystemInstruction *geminiContent         `json:"systemInstruction,omitempty"`
	GenerationConfig  map[string]interface{} `json:"generationConfig,omitempty"`
}

func (g *geminiGateway) Chat(ctx context.Context, messages []domain.ChatMessage) (string, error) {
	if !g.Configured() {
		return "", domain.ErrAINotConfigured
	}

	contents := make([]geminiContent, 0, len(messages))
	for _, m := range messages {
		role := m.Role
		switch role {
		case "assistant":
			role = "model"
		case "system":
			// Gemini has no system role inside contents; fold it into a user turn.
			role = "user"
		}
		contents = append(contents, geminiContent{
			Role:  role,
			Parts: []geminiPart{{Text: m.Content}},
		})
	}

	body := geminiRequest{
		Contents: contents,
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: systemInstruction}},
		},
		GenerationConfig: map[string]interface{}{
			"temperature":     chatTemperature,
			"maxOutputTokens": chatMaxTokens,
		},
	}

	text, err := g.generateContent(ctx, body)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func (g *geminiGateway) DetectFood(ctx context.Context, imageFile *multipart.FileHeader) (domain.DetectFoodResponse, error) {
	if !g.Configured() {
		return domain.DetectFoodResponse{}, domain.ErrAINotConfigured
	}

	file, err := imageFile.Open()
	if err != nil {
		return domain.DetectFoodResponse{}, err
	}
	defer file.Close()

	fileData, err := io.ReadAll(file)
	if err != nil {
		return domain.DetectFoodResponse{}, err
	}

	body := geminiRequest{
		Contents: []geminiContent{
			{
				Parts: []geminiPart{
					{
						Text: "Analyze this food image and respond ONLY with a valid JSON object " +
							"containing exactly these fields: 'title' (short string naming the food), " +
							"'description' (one sentence), 'quantity' (string estimate like '2 loaves'), " +
							"and 'category' (one of: produce, bakery, dairy, prepared, packaged, other). " +
							"Do not include any explanations, markdown formatting, or extra text.",
					},
					{
						InlineData: &geminiInlineData{
							MimeType: detectMimeType(imageFile),
							Data:     base64.StdEncoding.EncodeToString(fileData),
						},
					},
				},
			},
		},
		GenerationConfig: map[string]interface{}{
			"temperature": 0.1,
			"topP":        0.8,
			"topK":        40,
		},
	}

	text, err := g.generateContent(ctx, body)
	if err != nil {
		return domain.DetectFoodResponse{}, err
	}

	var result domain.DetectFoodResponse
	if err := json.Unmarshal([]byte(extractJSON(text)), &result); err != nil {
		return domain.DetectFoodResponse{}, fmt.Errorf("failed to parse detection response: %w", err)
	}

	if result.Category == "" {
		result.Category = "other"
	}
	return result, nil
}

func (g *geminiGateway) AnalyzeSupplier(ctx context.Context, req domain.CreateSupplierRatingRequest) (domain.SupplierAnalysis, error) {
	if !g.Configured() {
		return domain.SupplierAnalysis{}, domain.ErrAINotConfigured
	}

	prompt := fmt.Sprintf(
		"A food donor has overall rating %.1f/5, reliability %.1f/5, quality %.1f/5, "+
			"google review score %.1f/5, food safety certified: %d, total donations: %d. "+
			"Respond ONLY with a valid JSON object with fields 'reasoning' (2-3 sentence "+
			"trust assessment), 'factors' (object mapping factor names to scores 0-1) and "+
			"'confidence' (number 0-1). No markdown, no extra text.",
		req.OverallRating, req.ReliabilityScore, req.QualityScore,
		req.GoogleReviewScore, req.FoodSafetyCertified, req.TotalDonations,
	)

	body := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: map[string]interface{}{
			"temperature": 0.2,
		},
	}

	text, err := g.generateContent(ctx, body)
	if err != nil {
		return domain.SupplierAnalysis{}, err
	}

	var analysis domain.SupplierAnalysis
	if err := json.Unmarshal([]byte(extractJSON(text)), &analysis); err != nil {
		return domain.SupplierAnalysis{}, fmt.Errorf("failed to parse supplier analysis: %w", err)
	}

	if analysis.Confidence < 0 || analysis.Confidence > 1 {
		analysis.Confidence = 0.5
	}
	return analysis, nil
}

func (g *geminiGateway) generateContent(ctx context.Context, body geminiRequest) (string, error) {
	requestJSON, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(requestJSON))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		switch resp.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return "", domain.ErrAIUnauthorized
		case http.StatusTooManyRequests, http.StatusServiceUnavailable:
			return "", domain.ErrAIOverloaded
		default:
			return "", fmt.Errorf("gemini API error: %s - %s", resp.Status, string(bodyBytes))
		}
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
		return "", domain.ErrAIEmptyReply
	}

	return geminiResp.Candidates[0].Content.Parts[0].Text, nil
}

var jsonPattern = regexp.MustCompile(`(?s)\{.*\}`)

// extractJSON pulls the JSON object out of a model reply that may wrap it in
// markdown fences or prose.
func extractJSON(text string) string {
	if matches := jsonPattern.FindString(text); matches != "" {
		text = matches
	}

	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
	}
	return strings.TrimSpace(text)
}

func detectMimeType(imageFile *multipart.FileHeader) string {
	mimeType := imageFile.Header.Get("Content-Type")
	if mimeType != "" {
		return mimeType
	}

	switch strings.ToLower(filepath.Ext(imageFile.Filename)) {
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "image/jpeg"
	}
}
