package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"banhmai_back_end/internal/models"
	"banhmai_back_end/internal/search"
)

// productsSentinel tells the model to end its reply with an enumerated list
// of suggested product names, which we match back to the catalog.
const productsSentinel = "PRODUCTS:"

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// AssistantReply is the free-text answer plus the catalog entries the model
// suggested.
type AssistantReply struct {
	Reply       string           `json:"reply"`
	Suggestions []models.Product `json:"suggestions"`
}

// Chat sends the customer's message to the completion endpoint together with
// the catalog, then matches the lines after the PRODUCTS: sentinel back to
// products by case- and diacritic-insensitive substring.
func Chat(ctx context.Context, message string, catalog []models.Product) (AssistantReply, error) {
	prompt := buildPrompt(message, catalog)

	body, _ := json.Marshal(chatRequest{
		Model:    os.Getenv("AI_MODEL"),
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, os.Getenv("AI_API_URL"), bytes.NewReader(body))
	if err != nil {
		return AssistantReply{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+os.Getenv("AI_API_KEY"))

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return AssistantReply{}, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return AssistantReply{}, fmt.Errorf("assistant endpoint returned %s", res.Status)
	}

	var decoded chatResponse
	if err := json.NewDecoder(res.Body).Decode(&decoded); err != nil {
		return AssistantReply{}, err
	}
	if len(decoded.Choices) == 0 {
		return AssistantReply{}, fmt.Errorf("assistant endpoint returned no completion")
	}

	completion := decoded.Choices[0].Message.Content
	reply, names := SplitSuggestions(completion)
	return AssistantReply{Reply: reply, Suggestions: MatchSuggestions(names, catalog)}, nil
}

func buildPrompt(message string, catalog []models.Product) string {
	var b strings.Builder
	b.WriteString("You are the shop assistant of a Vietnamese bakery. Answer the customer briefly and in their language.\n")
	b.WriteString("Menu:\n")
	for _, p := range catalog {
		fmt.Fprintf(&b, "- %s (%.0f₫)\n", p.Name, p.Price)
	}
	b.WriteString("\nCustomer: ")
	b.WriteString(message)
	b.WriteString("\n\nAfter your answer, output the line \"" + productsSentinel + "\" followed by one suggested product name per line, chosen from the menu only.")
	return b.String()
}

// SplitSuggestions separates the conversational reply from the product names
// after the sentinel line.
func SplitSuggestions(completion string) (reply string, names []string) {
	idx := strings.Index(completion, productsSentinel)
	if idx < 0 {
		return strings.TrimSpace(completion), nil
	}

	reply = strings.TrimSpace(completion[:idx])
	for _, line := range strings.Split(completion[idx+len(productsSentinel):], "\n") {
		line = strings.TrimSpace(strings.TrimLeft(line, "-*• \t"))
		if line != "" {
			names = append(names, line)
		}
	}
	return reply, names
}

// MatchSuggestions maps suggested names onto catalog entries by normalized
// substring in either direction, deduplicated, preserving suggestion order.
func MatchSuggestions(names []string, catalog []models.Product) []models.Product {
	var out []models.Product
	seen := make(map[string]bool)

	for _, name := range names {
		n := search.Normalize(name)
		if n == "" {
			continue
		}
		for _, p := range catalog {
			pn := search.Normalize(p.Name)
			if seen[p.ID] || pn == "" {
				continue
			}
			if strings.Contains(pn, n) || strings.Contains(n, pn) {
				seen[p.ID] = true
				out = append(out, p)
			}
		}
	}
	return out
}
