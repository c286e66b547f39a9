package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// --- Response types (дублируются из api/dto.go, CLI не импортирует internal/api) ---

// Hero — герой из API.
type Hero struct {
	ID         int64       `json:"id"`
	Name       string      `json:"name"`
	SuperName  string      `json:"super_name"`
	HeroPowers []HeroPower `json:"hero_powers,omitempty"`
}

// Power — способность из API.
type Power struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// HeroPower — связь героя со способностью из API.
type HeroPower struct {
	ID       int64  `json:"id"`
	Strength string `json:"strength"`
	HeroID   int64  `json:"hero_id"`
	PowerID  int64  `json:"power_id"`
	Hero     *Hero  `json:"hero,omitempty"`
	Power    *Power `json:"power,omitempty"`
}

// APIError — ошибка, которую вернул сервер.
type APIError struct {
	StatusCode int
	Messages   []string
}

func (e *APIError) Error() string {
	if len(e.Messages) == 0 {
		return fmt.Sprintf("API error: HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, strings.Join(e.Messages, "; "))
}

// errorResponse покрывает обе формы ошибок API: {"error"} и {"errors"}.
type errorResponse struct {
	Error  string   `json:"error"`
	Errors []string `json:"errors"`
}

// --- Client ---

// Client — HTTP-клиент для superheroes API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient создаёт клиент для API.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// --- Heroes ---

// ListHeroes возвращает всех героев.
func (c *Client) ListHeroes() ([]Hero, error) {
	var heroes []Hero
	err := c.get("/heroes", &heroes)
	return heroes, err
}

// GetHero возвращает героя со способностями.
func (c *Client) GetHero(id int64) (*Hero, error) {
	var hero Hero
	err := c.get("/heroes/"+strconv.FormatInt(id, 10), &hero)
	return &hero, err
}

// CreateHero создаёт героя.
func (c *Client) CreateHero(name, superName string) (*Hero, error) {
	body := map[string]string{"name": name, "super_name": superName}
	var hero Hero
	err := c.send(http.MethodPost, "/heroes", body, &hero)
	return &hero, err
}

// --- Powers ---

// ListPowers возвращает все способности.
func (c *Client) ListPowers() ([]Power, error) {
	var powers []Power
	err := c.get("/powers", &powers)
	return powers, err
}

// GetPower возвращает способность по ID.
func (c *Client) GetPower(id int64) (*Power, error) {
	var power Power
	err := c.get("/powers/"+strconv.FormatInt(id, 10), &power)
	return &power, err
}

// CreatePower создаёт способность.
func (c *Client) CreatePower(name, description string) (*Power, error) {
	body := map[string]string{"name": name, "description": description}
	var power Power
	err := c.send(http.MethodPost, "/powers", body, &power)
	return &power, err
}

// UpdatePowerDescription меняет описание способности.
func (c *Client) UpdatePowerDescription(id int64, description string) (*Power, error) {
	body := map[string]string{"description": description}
	var power Power
	err := c.send(http.MethodPatch, "/powers/"+strconv.FormatInt(id, 10), body, &power)
	return &power, err
}

// --- Hero powers ---

// ListHeroPowers возвращает все связи.
func (c *Client) ListHeroPowers() ([]HeroPower, error) {
	var hps []HeroPower
	err := c.get("/hero_powers", &hps)
	return hps, err
}

// CreateHeroPower связывает героя со способностью.
func (c *Client) CreateHeroPower(strength string, heroID, powerID int64) (*HeroPower, error) {
	body := map[string]any{"strength": strength, "hero_id": heroID, "power_id": powerID}
	var hp HeroPower
	err := c.send(http.MethodPost, "/hero_powers", body, &hp)
	return &hp, err
}

// --- HTTP helpers ---

func (c *Client) get(path string, result any) error {
	return c.send(http.MethodGet, path, nil, result)
}

func (c *Client) send(method, path string, body any, result any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if err := checkError(resp); err != nil {
		return err
	}

	if result == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func checkError(resp *http.Response) error {
	if resp.StatusCode < 400 {
		return nil
	}

	apiErr := &APIError{StatusCode: resp.StatusCode}

	var er errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&er); err != nil {
		return apiErr
	}
	if er.Error != "" {
		apiErr.Messages = append(apiErr.Messages, er.Error)
	}
	apiErr.Messages = append(apiErr.Messages, er.Errors...)
	return apiErr
}
