package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"pippali-pos/entity"
	"pippali-pos/pkg/apperr"
	"pippali-pos/repository"
)

const geminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-1.5-flash:generateContent"

// ChatService wraps the Gemini API behind a menu-aware waiter persona.
type ChatService struct {
	MenuRepo *repository.MenuRepository
	APIKey   string
	Client   *http.Client
	Endpoint string
}

func NewChatService(menuRepo *repository.MenuRepository, apiKey string) *ChatService {
	return &ChatService{
		MenuRepo: menuRepo,
		APIKey:   apiKey,
		Client:   &http.Client{Timeout: 30 * time.Second},
		Endpoint: geminiEndpoint,
	}
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiCandidate struct {
	Content geminiContent `json:"content"`
}

type geminiResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
}

func (s *ChatService) Chat(message string) (string, error) {
	if s.APIKey == "" {
		return "", apperr.Internal(fmt.Errorf("gemini api key not configured"))
	}
	if strings.TrimSpace(message) == "" {
		return "", apperr.Validation("message is required")
	}

	items, err := s.MenuRepo.FindActive()
	if err != nil {
		return "", err
	}

	prompt := buildWaiterPrompt(items, message)

	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, s.Endpoint+"?key="+s.APIKey, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := s.Client.Do(req)
	if err != nil {
		return "", apperr.Internal(fmt.Errorf("gemini request failed: %w", err))
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return "", apperr.Internal(fmt.Errorf("gemini returned status %d", res.StatusCode))
	}

	var out geminiResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", apperr.Internal(fmt.Errorf("gemini returned no candidates"))
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}

func buildWaiterPrompt(items []entity.MenuItem, message string) string {
	var b strings.Builder
	b.WriteString("Here is the current menu for Pippali:\n\n")
	for _, item := range items {
		var tags []string
		if item.IsVegetarian {
			tags = append(tags, "Vegetarian")
		}
		if item.IsVegan {
			tags = append(tags, "Vegan")
		}
		if item.IsGlutenFree {
			tags = append(tags, "GF")
		}
		if item.DishType != "" {
			tags = append(tags, item.DishType)
		}
		tagStr := ""
		if len(tags) > 0 {
			tagStr = " [" + strings.Join(tags, ", ") + "]"
		}
		fmt.Fprintf(&b, "- %s (%.2f kr)%s: %s\n", item.Name, item.BasePrice, tagStr, item.Description)
	}

	b.WriteString("\nCURRENT TIME: " + time.Now().Format("Monday, January 2, 2006 at 15:04") + "\n")
	b.WriteString(`
You are a helpful, friendly waiter at Pippali, an Indian restaurant.
Your goal is to help customers choose dishes from the menu.

RULES:
- Only recommend items from the menu provided above.
- If a user asks for something not on the menu, politely say we don't have it.
- Be concise and enthusiastic.
- If asked about dietary restrictions (vegan, gluten-free), check the tags carefully.
- IMPORTANT: All meat served at Pippali is Halal.
- Prices are in Danish Krone (kr).

CUSTOMER: `)
	b.WriteString(message)
	return b.String()
}
