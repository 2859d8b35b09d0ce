package generation

import (
	"AI-Recipe-Backend/domain"
	"AI-Recipe-Backend/internal/utils"
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

var recipeSchema = map[string]interface{}{
	"type": "OBJECT",
	"properties": map[string]interface{}{
		"recipeName":   map[string]interface{}{"type": "STRING"},
		"description":  map[string]interface{}{"type": "STRING"},
		"prepTime":     map[string]interface{}{"type": "STRING"},
		"cookTime":     map[string]interface{}{"type": "STRING"},
		"ingredients":  map[string]interface{}{"type": "ARRAY", "items": map[string]interface{}{"type": "STRING"}},
		"instructions": map[string]interface{}{"type": "ARRAY", "items": map[string]interface{}{"type": "STRING"}},
	},
	"required": []string{"recipeName", "description", "prepTime", "cookTime", "ingredients", "instructions"},
}

var recipeOptionsSchema = map[string]interface{}{
	"type": "OBJECT",
	"properties": map[string]interface{}{
		"recipes": map[string]interface{}{
			"type":        "ARRAY",
			"description": "A list of 3 creative recipe names based on the ingredients.",
			"items":       map[string]interface{}{"type": "STRING"},
		},
	},
	"required": []string{"recipes"},
}

var categoryListSchema = map[string]interface{}{
	"type": "OBJECT",
	"properties": map[string]interface{}{
		"categories": map[string]interface{}{
			"type":  "ARRAY",
			"items": map[string]interface{}{"type": "STRING"},
		},
	},
	"required": []string{"categories"},
}

type (
	GeminiClient interface {
		Configured() bool
		GenerateOptions(ctx context.Context, ingredients string) (domain.RecipeOptions, error)
		GenerateRecipe(ctx context.Context, recipeName, ingredients string) (domain.GeneratedRecipe, error)
		GenerateRotd(ctx context.Context) (domain.GeneratedRecipe, error)
		ClassifyCategories(ctx context.Context, recipeName, description string, candidates []string) ([]string, error)
		GenerateImage(ctx context.Context, recipeName string) ([]byte, error)
	}

	geminiClient struct {
		httpClient *http.Client
	}
)

func NewGeminiClient() GeminiClient {
	return &geminiClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (g *geminiClient) Configured() bool {
	key := utils.GetConfig("GEMINI_API_KEY")
	return key != "" && key != "YOUR_API_KEY"
}

func (g *geminiClient) GenerateOptions(ctx context.Context, ingredients string) (domain.RecipeOptions, error) {
	if !g.Configured() {
		return domain.RecipeOptions{
			Recipes: []string{"模拟创意菜1", "模拟创意菜2", "模拟创意菜3"},
		}, nil
	}

	prompt := fmt.Sprintf("根据以下食材，推荐3个有创意的菜谱。请只提供菜谱的中文名称。食材：%s", ingredients)
	text, err := g.generateContent(ctx, prompt, recipeOptionsSchema, 0.8)
	if err != nil {
		return domain.RecipeOptions{}, err
	}

	var options domain.RecipeOptions
	if err := json.Unmarshal([]byte(extractJSON(text)), &options); err != nil {
		return domain.RecipeOptions{}, fmt.Errorf("invalid response format: %w", err)
	}
	return options, nil
}

func (g *geminiClient) GenerateRecipe(ctx context.Context, recipeName, ingredients string) (domain.GeneratedRecipe, error) {
	if !g.Configured() {
		return mockRecipe(recipeName), nil
	}

	prompt := fmt.Sprintf(
		"为“%s”生成一份详细的菜谱，使用以下部分食材：%s。可以随意添加常见的厨房常备品。"+
			"菜谱应包含：1. 简短诱人的描述。2. 准备时间。3. 烹饪时间。4. 食材列表。5. 制作步骤。"+
			"请以中文JSON格式提供输出。",
		recipeName, ingredients,
	)
	return g.generateRecipeJSON(ctx, prompt)
}

func (g *geminiClient) GenerateRotd(ctx context.Context) (domain.GeneratedRecipe, error) {
	if !g.Configured() {
		return mockRecipe("今日推荐"), nil
	}

	prompt := "为“今日推荐”生成一个有创意且受欢迎的菜谱。该菜谱应能吸引广大受众，使用相对常见的食材，" +
		"并适合作为工作日晚餐。请以中文JSON格式提供输出。"
	return g.generateRecipeJSON(ctx, prompt)
}

func (g *geminiClient) ClassifyCategories(ctx context.Context, recipeName, description string, candidates []string) ([]string, error) {
	if !g.Configured() {
		return nil, domain.ErrGeminiAPIFailed
	}

	prompt := fmt.Sprintf(
		"从以下分类中为菜谱“%s”（%s）挑选最多3个最合适的分类：%s。"+
			"请以中文JSON格式提供输出。",
		recipeName, description, strings.Join(candidates, "、"),
	)
	text, err := g.generateContent(ctx, prompt, categoryListSchema, 0.5)
	if err != nil {
		return nil, err
	}

	var result struct {
		Categories []string `json:"categories"`
	}
	if err := json.Unmarshal([]byte(extractJSON(text)), &result); err != nil {
		return nil, fmt.Errorf("invalid response format: %w", err)
	}
	return result.Categories, nil
}

func (g *geminiClient) generateRecipeJSON(ctx context.Context, prompt string) (domain.GeneratedRecipe, error) {
	text, err := g.generateContent(ctx, prompt, recipeSchema, 0.5)
	if err != nil {
		return domain.GeneratedRecipe{}, err
	}

	var generated domain.GeneratedRecipe
	if err := json.Unmarshal([]byte(extractJSON(text)), &generated); err != nil {
		return domain.GeneratedRecipe{}, fmt.Errorf("invalid response format: %w", err)
	}
	if generated.RecipeName == "" {
		return domain.GeneratedRecipe{}, domain.ErrGeminiAPIFailed
	}
	return generated, nil
}

func (g *geminiClient) generateContent(ctx context.Context, prompt string, schema map[string]interface{}, temperature float64) (string, error) {
	apiKey := utils.GetConfig("GEMINI_API_KEY")
	model := utils.GetConfig("GEMINI_MODEL")
	if model == "" {
		model = "gemini-2.5-flash"
	}

	geminiURL := fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s", model, apiKey)

	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature":      temperature,
			"responseMimeType": "application/json",
			"responseSchema":   schema,
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

	resp, err := g.httpClient.Do(req)
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
		return "", domain.ErrGeminiAPIFailed
	}

	return strings.TrimSpace(geminiResp.Candidates[0].Content.Parts[0].Text), nil
}

// GenerateImage asks the image model for a single PNG and returns its bytes.
func (g *geminiClient) GenerateImage(ctx context.Context, recipeName string) ([]byte, error) {
	if !g.Configured() {
		return nil, domain.ErrGeminiAPIFailed
	}

	apiKey := utils.GetConfig("GEMINI_API_KEY")
	model := utils.GetConfig("GEMINI_IMAGE_MODEL")
	if model == "" {
		model = "gemini-2.0-flash-preview-image-generation"
	}

	geminiURL := fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s", model, apiKey)

	prompt := fmt.Sprintf("为菜谱“%s”生成一张写实风格的成品照片，俯拍视角，摆盘精致，自然光。", recipeName)
	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"responseModalities": []string{"TEXT", "IMAGE"},
		},
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", geminiURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("gemini API error: %s - %s", resp.Status, string(bodyBytes))
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					InlineData *struct {
						MimeType string `json:"mimeType"`
						Data     string `json:"data"`
					} `json:"inlineData"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return nil, err
	}

	for _, cand := range geminiResp.Candidates {
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && part.InlineData.Data != "" {
				return base64.StdEncoding.DecodeString(part.InlineData.Data)
			}
		}
	}
	return nil, domain.ErrGeminiAPIFailed
}

// extractJSON pulls the first JSON object or array out of a model reply that
// may carry stray prose around it.
func extractJSON(text string) string {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	objStart := strings.Index(text, "{")
	objEnd := strings.LastIndex(text, "}")

	if objStart != -1 && objEnd != -1 && (start == -1 || objStart < start) {
		return text[objStart : objEnd+1]
	}
	if start != -1 && end != -1 && start < end {
		return text[start : end+1]
	}
	return text
}

func mockRecipe(name string) domain.GeneratedRecipe {
	if name == "" {
		name = "美味模拟菜谱"
	}
	return domain.GeneratedRecipe{
		RecipeName:   name,
		Description:  "这是一份由模拟数据生成的美味菜谱，非常适合家庭享用。",
		PrepTime:     "15 分钟",
		CookTime:     "30 分钟",
		Ingredients:  []string{"模拟食材A", "模拟食材B", "模拟食材C"},
		Instructions: []string{"第一步：准备所有模拟食材。", "第二步：将食材混合。", "第三步：烹饪30分钟。"},
	}
}
