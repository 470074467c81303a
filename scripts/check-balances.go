//go:build ignore

// Prints the vault accounts known to a running API server together
// with their XRP balance and MPT positions.
//
// Run: go run scripts/check-balances.go -api http://localhost:8080

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"
)

type account struct {
	Address string   `json:"address"`
	Peers   []string `json:"peers"`
}

type balances struct {
	Account struct {
		Address      string `json:"address"`
		BalanceDrops uint64 `json:"balance_drops"`
		Sequence     uint32 `json:"sequence"`
	} `json:"account"`
	Balances []struct {
		IssuanceID string `json:"mpt_issuance_id"`
		Amount     string `json:"amount"`
		Role       string `json:"role"`
	} `json:"balances"`
}

func main() {
	apiURL := flag.String("api", "http://localhost:8080", "Base URL of the API server")
	flag.Parse()

	client := &http.Client{Timeout: 30 * time.Second}

	var accounts []account
	if err := getJSON(client, *apiURL+"/accounts/", &accounts); err != nil {
		fmt.Fprintf(os.Stderr, "list accounts: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("=== Vault Balance Check ===")
	fmt.Printf("API: %s\n\n", *apiURL)

	for _, acct := range accounts {
		var bal balances
		if err := getJSON(client, fmt.Sprintf("%s/accounts/%s/balances", *apiURL, acct.Address), &bal); err != nil {
			fmt.Printf("x %s: %v\n", acct.Address, err)
			continue
		}

		fmt.Printf("* %s: %d drops (sequence %d)\n",
			acct.Address, bal.Account.BalanceDrops, bal.Account.Sequence)
		for _, pos := range bal.Balances {
			fmt.Printf("    [%s] %s  %s\n", pos.Role, pos.Amount, pos.IssuanceID)
		}
	}
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
