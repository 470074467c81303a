//go:build ignore

// Lists recent transactions of every vault account known to a running
// API server.
//
// Run: go run scripts/list-transactions.go -api http://localhost:8080 -limit 10

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"
)

func main() {
	apiURL := flag.String("api", "http://localhost:8080", "Base URL of the API server")
	limit := flag.Int("limit", 10, "Transactions per account")
	flag.Parse()

	client := &http.Client{Timeout: 30 * time.Second}

	var accounts []struct {
		Address string `json:"address"`
	}
	if err := getJSON(client, *apiURL+"/accounts/", &accounts); err != nil {
		fmt.Fprintf(os.Stderr, "list accounts: %v\n", err)
		os.Exit(1)
	}

	for _, acct := range accounts {
		var txs []struct {
			Hash            string `json:"hash"`
			TransactionType string `json:"transaction_type"`
			Account         string `json:"account"`
			Destination     string `json:"destination"`
			Validated       bool   `json:"validated"`
		}
		url := fmt.Sprintf("%s/accounts/%s/transactions?limit=%d", *apiURL, acct.Address, *limit)
		if err := getJSON(client, url, &txs); err != nil {
			fmt.Printf("x %s: %v\n", acct.Address, err)
			continue
		}

		fmt.Printf("* %s (%d transactions)\n", acct.Address, len(txs))
		for _, tx := range txs {
			dest := tx.Destination
			if dest == "" {
				dest = "-"
			}
			fmt.Printf("    %-24s -> %-34s %s validated=%v\n",
				tx.TransactionType, dest, tx.Hash, tx.Validated)
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
