package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"lg/macro-calc-api/foods"
)

/* ─── Prompt + schema ────────────────────────────────────────────────── */

const foodLookupPromptTemplate = `Provide a list of potential matches for the food query %q. For each match, provide detailed nutritional information.
Return the data in a valid JSON array format adhering to the provided schema.
Each item in the array should be an object representing a food.
The object must contain:
- id: A unique string identifier (e.g., "chicken_breast_cooked").
- name: The full, descriptive name (e.g., "Chicken breast, cooked (skinless)").
- category: One of "fruit", "vegetable", "meat", "dairy", "grain", "dry-fruit", "other".
- per100g: An object with nutritional values per 100 grams, including "kcal", "protein_g", "carbs_g", "fat_g", and optionally "fiber_g".
- servings: An array of common serving sizes. Each serving object should have a "unit" (e.g., "g", "oz", "piece", "cup") and its equivalent "grams". Always include a "g" unit with 100 grams.

If you find multiple interpretations (e.g., "raw", "cooked", "dried"), provide them as separate items in the array. Return an empty array if no food is found.`

type schema map[string]any

// foodResponseSchema constrains Gemini's output to an array of food items.
var foodResponseSchema = schema{
	"type": "ARRAY",
	"items": schema{
		"type": "OBJECT",
		"properties": schema{
			"id":       schema{"type": "STRING"},
			"name":     schema{"type": "STRING"},
			"category": schema{"type": "STRING"},
			"per100g": schema{
				"type": "OBJECT",
				"properties": schema{
					"kcal":      schema{"type": "NUMBER"},
					"protein_g": schema{"type": "NUMBER"},
					"carbs_g":   schema{"type": "NUMBER"},
					"fat_g":     schema{"type": "NUMBER"},
					"fiber_g":   schema{"type": "NUMBER", "nullable": true},
				},
				"required": []string{"kcal", "protein_g", "carbs_g", "fat_g"},
			},
			"servings": schema{
				"type": "ARRAY",
				"items": schema{
					"type": "OBJECT",
					"properties": schema{
						"unit":  schema{"type": "STRING"},
						"grams": schema{"type": "NUMBER"},
					},
					"required": []string{"unit", "grams"},
				},
			},
		},
		"required": []string{"id", "name", "category", "per100g", "servings"},
	},
}

/* ─── Gemini HTTP client ─────────────────────────────────────────────── */

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	ResponseMimeType string `json:"responseMimeType"`
	ResponseSchema   schema `json:"responseSchema"`
}

// geminiRequest is the request body for the generateContent API.
type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

var errNoGeminiKey = errors.New("GEMINI_API_KEY not set")

// callGemini sends a generateContent request and returns the text of the
// first candidate. Uses raw net/http; the call is a single JSON POST.
func callGemini(ctx context.Context, apiKey, baseURL, model, prompt string) (string, error) {
	if apiKey == "" {
		return "", errNoGeminiKey
	}

	reqBody := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: geminiGenerationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   foodResponseSchema,
		},
	}
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", strings.TrimRight(baseURL, "/"), model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", apiKey)

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini returned status %d: %s", resp.StatusCode, string(respBytes))
	}

	// Extract candidates[0].content.parts[0].text
	var result struct {
		Candidates []struct {
			Content geminiContent `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(respBytes, &result); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}
	return result.Candidates[0].Content.Parts[0].Text, nil
}

/* ─── Remote food lookup ─────────────────────────────────────────────── */

// parseGeminiFoods decodes the model's JSON array. Each item goes through
// FoodItem.Normalize and is tagged GEMINI; missing ids get a generated one
// and items Normalize rejects are dropped.
func parseGeminiFoods(text string) ([]foods.FoodItem, error) {
	var raw []foods.FoodItem
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &raw); err != nil {
		return nil, fmt.Errorf("parse food list: %w", err)
	}

	out := make([]foods.FoodItem, 0, len(raw))
	for _, f := range raw {
		f, err := f.Normalize()
		if err != nil {
			continue
		}
		if f.ID == "" {
			f.ID = uuid.NewString()
		}
		f.Source = foods.SourceGemini
		out = append(out, f)
	}
	return out, nil
}

// lookupRemoteFoods returns Gemini matches for query, from cache when
// possible. Successful lookups are cached; failures are returned as-is so
// the caller can fall back to local results.
func (h *Handler) lookupRemoteFoods(ctx context.Context, query string) ([]foods.FoodItem, error) {
	if h.cache != nil {
		if items, ok := h.cache.Get(ctx, query); ok {
			return items, nil
		}
	}

	text, err := callGemini(ctx, h.geminiAPIKey, h.geminiBaseURL, h.geminiModel, fmt.Sprintf(foodLookupPromptTemplate, query))
	if err != nil {
		return nil, err
	}
	items, err := parseGeminiFoods(text)
	if err != nil {
		return nil, err
	}

	if h.cache != nil {
		if err := h.cache.Set(ctx, query, items); err != nil {
			log.Printf("[lookupRemoteFoods] cache set failed for %q: %v", query, err)
		}
	}
	return items, nil
}
