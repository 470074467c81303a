//go:build ignore

// Sends one MPT payment between the first two vault accounts of a
// running API server. Useful for smoke-testing a fresh deployment.
//
// Run: go run scripts/send-demo-payment.go -api http://localhost:8080 -token <issuance-id> -amount 1

package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

func main() {
	apiURL := flag.String("api", "http://localhost:8080", "Base URL of the API server")
	tokenID := flag.String("token", "", "MPT issuance ID to pay with")
	amount := flag.String("amount", "1", "Token amount to send")
	flag.Parse()

	if *tokenID == "" {
		fmt.Fprintln(os.Stderr, "ERROR: -token flag is required")
		os.Exit(1)
	}

	client := &http.Client{Timeout: 60 * time.Second}

	var accounts []struct {
		Address string   `json:"address"`
		Peers   []string `json:"peers"`
	}
	if err := getJSON(client, *apiURL+"/accounts/", &accounts); err != nil {
		fmt.Fprintf(os.Stderr, "list accounts: %v\n", err)
		os.Exit(1)
	}
	if len(accounts) < 2 {
		fmt.Fprintln(os.Stderr, "need at least two vault accounts")
		os.Exit(1)
	}

	payload, _ := json.Marshal(map[string]any{
		"account":     accounts[0].Address,
		"token_id":    *tokenID,
		"amount":      *amount,
		"destination": accounts[1].Address,
	})

	fmt.Printf("Paying %s of %s\n  from %s\n  to   %s\n",
		*amount, *tokenID, accounts[0].Address, accounts[1].Address)

	resp, err := client.Post(*apiURL+"/payments", "application/json", bytes.NewReader(payload))
	if err != nil {
		fmt.Fprintf(os.Stderr, "send payment: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		fmt.Fprintf(os.Stderr, "payment failed (%s): %s\n", resp.Status, body)
		os.Exit(1)
	}

	var result struct {
		Hash         string `json:"hash"`
		EngineResult string `json:"engine_result"`
		Validated    bool   `json:"validated"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Fprintf(os.Stderr, "decode response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("OK %s (%s, validated=%v)\n", result.Hash, result.EngineResult, result.Validated)
}

func getJSON(client *http.Client, url string, dst any) error {
	resp, err := client.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(dst)
}
