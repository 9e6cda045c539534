package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"fixhub/pkg/models"
)

const defaultBaseURL = "http://localhost:8080"

type tokenData struct {
	Token string `json:"token"`
}

type authResponse struct {
	Token string `json:"token"`
}

type brandsResponse struct {
	Brands []string `json:"brands"`
}

type typesResponse struct {
	Brand string   `json:"brand"`
	Types []string `json:"types"`
}

type codesResponse struct {
	Brand string         `json:"brand"`
	Type  string         `json:"type"`
	Total int            `json:"total"`
	Items []models.Entry `json:"items"`
}

func main() {
	global := flag.NewFlagSet("fixhub", flag.ExitOnError)
	baseURL := global.String("api", defaultBaseURL, "API base URL")
	tokenPath := global.String("token", defaultTokenPath(), "token file path")
	if err := global.Parse(os.Args[1:]); err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	args := global.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	ctx := context.Background()
	cmd := args[0]
	sub := ""
	if len(args) > 1 {
		sub = args[1]
	}

	client := &http.Client{Timeout: 15 * time.Second}

	switch cmd {
	case "admin":
		handleAdmin(ctx, client, *baseURL, *tokenPath, sub, args[2:])
	case "brands":
		handleBrands(ctx, client, *baseURL)
	case "types":
		handleTypes(ctx, client, *baseURL, args[1:])
	case "codes":
		handleCodes(ctx, client, *baseURL, args[1:])
	case "resolve":
		handleResolve(ctx, client, *baseURL, args[1:])
	case "search":
		handleSearch(ctx, client, *baseURL, args[1:])
	case "watch":
		handleWatch(*baseURL, sub, args[2:])
	default:
		printUsage()
		os.Exit(1)
	}
}

func handleAdmin(ctx context.Context, client *http.Client, baseURL, tokenPath, sub string, args []string) {
	switch sub {
	case "login":
		fs := flag.NewFlagSet("admin login", flag.ExitOnError)
		username := fs.String("username", "", "admin username")
		password := fs.String("password", "", "password")
		_ = fs.Parse(args)

		if *username == "" || *password == "" {
			log.Fatal("username and password are required")
		}

		payload := map[string]string{"username": *username, "password": *password}
		var resp authResponse
		if err := doJSON(ctx, client, http.MethodPost, baseURL+"/admin/login", "", payload, &resp); err != nil {
			log.Fatalf("login failed: %v", err)
		}
		if err := saveToken(tokenPath, resp.Token); err != nil {
			log.Fatalf("save token: %v", err)
		}
		fmt.Println("✅ logged in")
	case "register":
		fs := flag.NewFlagSet("admin register", flag.ExitOnError)
		username := fs.String("username", "", "admin username")
		password := fs.String("password", "", "password")
		signupCode := fs.String("code", "", "signup code")
		_ = fs.Parse(args)

		if *username == "" || *password == "" || *signupCode == "" {
			log.Fatal("username, password, and code are required")
		}

		payload := map[string]string{"username": *username, "password": *password, "signup_code": *signupCode}
		var resp authResponse
		if err := doJSON(ctx, client, http.MethodPost, baseURL+"/admin/register", "", payload, &resp); err != nil {
			log.Fatalf("register failed: %v", err)
		}
		if err := saveToken(tokenPath, resp.Token); err != nil {
			log.Fatalf("save token: %v", err)
		}
		fmt.Println("✅ registered and logged in")
	case "logout":
		token := mustToken(tokenPath)
		if err := doJSON(ctx, client, http.MethodPost, baseURL+"/admin/logout", token, nil, nil); err != nil {
			log.Printf("logout request failed: %v", err)
		}
		if err := clearToken(tokenPath); err != nil {
			log.Fatalf("clear token: %v", err)
		}
		fmt.Println("✅ logged out")
	case "reload":
		token := mustToken(tokenPath)
		var resp map[string]any
		if err := doJSON(ctx, client, http.MethodPost, baseURL+"/admin/catalog/reload", token, nil, &resp); err != nil {
			log.Fatalf("reload failed: %v", err)
		}
		printJSON(resp)
	default:
		printUsage()
		os.Exit(1)
	}
}

func handleBrands(ctx context.Context, client *http.Client, baseURL string) {
	var resp brandsResponse
	if err := doJSON(ctx, client, http.MethodGet, baseURL+"/catalog/brands", "", nil, &resp); err != nil {
		log.Fatalf("brands failed: %v", err)
	}
	for _, b := range resp.Brands {
		fmt.Println(b)
	}
}

func handleTypes(ctx context.Context, client *http.Client, baseURL string, args []string) {
	fs := flag.NewFlagSet("types", flag.ExitOnError)
	brand := fs.String("brand", "", "brand name")
	_ = fs.Parse(args)

	if *brand == "" {
		log.Fatal("brand is required")
	}

	var resp typesResponse
	if err := doJSON(ctx, client, http.MethodGet, baseURL+"/catalog/types?"+query("brand", *brand), "", nil, &resp); err != nil {
		log.Fatalf("types failed: %v", err)
	}
	for _, t := range resp.Types {
		fmt.Println(t)
	}
}

func handleCodes(ctx context.Context, client *http.Client, baseURL string, args []string) {
	fs := flag.NewFlagSet("codes", flag.ExitOnError)
	brand := fs.String("brand", "", "brand name")
	typ := fs.String("type", "", "appliance type")
	_ = fs.Parse(args)

	if *brand == "" || *typ == "" {
		log.Fatal("brand and type are required")
	}

	endpoint := baseURL + "/catalog/codes?" + query("brand", *brand) + "&" + query("type", *typ)
	var resp codesResponse
	if err := doJSON(ctx, client, http.MethodGet, endpoint, "", nil, &resp); err != nil {
		log.Fatalf("codes failed: %v", err)
	}
	for _, e := range resp.Items {
		fmt.Printf("%s\t%s\n", e.Code, e.Issue)
	}
}

func handleResolve(ctx context.Context, client *http.Client, baseURL string, args []string) {
	fs := flag.NewFlagSet("resolve", flag.ExitOnError)
	brand := fs.String("brand", "", "brand name")
	typ := fs.String("type", "", "appliance type")
	code := fs.String("code", "", "error code")
	q := fs.String("q", "", "free-text query")
	_ = fs.Parse(args)

	params := []string{}
	if *brand != "" {
		params = append(params, query("brand", *brand))
	}
	if *typ != "" {
		params = append(params, query("type", *typ))
	}
	if *code != "" {
		params = append(params, query("code", *code))
	}
	if *q != "" {
		params = append(params, query("q", *q))
	}
	if len(params) == 0 {
		log.Fatal("either -brand/-type/-code or -q is required")
	}

	var card models.Card
	if err := doJSON(ctx, client, http.MethodGet, baseURL+"/catalog/resolve?"+strings.Join(params, "&"), "", nil, &card); err != nil {
		log.Fatalf("resolve failed: %v", err)
	}
	printCard(card)
}

func handleSearch(ctx context.Context, client *http.Client, baseURL string, args []string) {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	q := fs.String("q", "", "free-text query")
	_ = fs.Parse(args)

	if *q == "" {
		log.Fatal("q is required")
	}

	var entry models.Entry
	if err := doJSON(ctx, client, http.MethodGet, baseURL+"/catalog/search?"+query("q", *q), "", nil, &entry); err != nil {
		log.Fatalf("search failed: %v", err)
	}
	printJSON(entry)
}

// handleWatch follows catalog events over either the WebSocket feed or
// the raw TCP feed.
func handleWatch(baseURL, sub string, args []string) {
	switch sub {
	case "", "ws":
		wsURL, err := websocketURL(baseURL, "/ws")
		if err != nil {
			log.Fatalf("bad api url: %v", err)
		}
		if err := runWebSocket(wsURL); err != nil {
			log.Fatalf("watch failed: %v", err)
		}
	case "tcp":
		fs := flag.NewFlagSet("watch tcp", flag.ExitOnError)
		addr := fs.String("addr", "localhost:7071", "TCP event feed address")
		_ = fs.Parse(args)

		if err := runTCP(*addr); err != nil {
			log.Fatalf("watch failed: %v", err)
		}
	default:
		printUsage()
		os.Exit(1)
	}
}

func runWebSocket(wsURL string) error {
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		return err
	}
	defer conn.Close()
	log.Printf("[watch] connected to %s", wsURL)
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		fmt.Println(strings.TrimSpace(string(msg)))
	}
}

func runTCP(addr string) error {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	log.Printf("[watch] connected to %s", addr)
	reader := bufio.NewScanner(conn)
	for reader.Scan() {
		fmt.Println(reader.Text())
	}
	if err := reader.Err(); err != nil {
		return err
	}
	return os.ErrClosed
}

func printCard(card models.Card) {
	fmt.Println(card.Heading)
	fmt.Printf("Issue: %s\n", card.Issue)
	fmt.Printf("Fix: %s\n", card.FixSummary)
	if len(card.Parts) > 0 {
		fmt.Printf("Parts: %s\n", strings.Join(card.Parts, ", "))
	}
	if card.AffiliateLink != "" {
		fmt.Printf("Parts link: %s\n", card.AffiliateLink)
	}
	if card.VideoGuide != "" {
		fmt.Printf("Video: %s\n", card.VideoGuide)
	}
}

func doJSON(ctx context.Context, client *http.Client, method, endpoint, token string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = strings.NewReader(string(b))
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("%s %s failed: %s", method, endpoint, strings.TrimSpace(string(data)))
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return err
	}
	return nil
}

func printJSON(v any) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("json: %v", err)
	}
	fmt.Println(string(b))
}

func query(key, value string) string {
	return key + "=" + url.QueryEscape(value)
}

func defaultTokenPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./.fixhub-token.json"
	}
	return filepath.Join(home, ".fixhub", "token.json")
}

func saveToken(path, token string) error {
	if token == "" {
		return errors.New("empty token")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(tokenData{Token: token}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func readToken(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	var td tokenData
	if err := json.Unmarshal(data, &td); err != nil {
		return "", err
	}
	return strings.TrimSpace(td.Token), nil
}

func mustToken(path string) string {
	token, err := readToken(path)
	if err != nil {
		log.Fatalf("token not found, please login: %v", err)
	}
	if token == "" {
		log.Fatal("token empty, please login")
	}
	return token
}

func clearToken(path string) error {
	if err := os.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return nil
}

func websocketURL(baseURL, path string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", err
	}
	scheme := "ws"
	if u.Scheme == "https" {
		scheme = "wss"
	}
	return (&url.URL{
		Scheme: scheme,
		Host:   u.Host,
		Path:   path,
	}).String(), nil
}

func printUsage() {
	fmt.Println("fixhub <command> [subcommand] [flags]")
	fmt.Println("commands:")
	fmt.Println("  admin login|register|logout|reload")
	fmt.Println("  brands")
	fmt.Println("  types -brand <brand>")
	fmt.Println("  codes -brand <brand> -type <type>")
	fmt.Println("  resolve -brand <brand> -type <type> -code <code> | -q <query>")
	fmt.Println("  search -q <query>")
	fmt.Println("  watch [ws|tcp]")
}
