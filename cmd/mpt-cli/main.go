// mpt-cli is a small operator tool for inspecting accounts on the
// ledger directly, without going through the API server.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ledgerline/mpt-middleware/pkg/config"
	"github.com/ledgerline/mpt-middleware/pkg/xrpl"
)

var (
	nodeURL string
	network string
	timeout time.Duration
	limit   int
)

var rootCmd = &cobra.Command{
	Use:   "mpt-cli",
	Short: "Inspect XRPL accounts and their Multi-Purpose Token state",
	Long: `mpt-cli connects straight to an XRPL node and prints account
state as JSON: XRP balance, MPT holdings and issuances, and recent
transactions. It shares its ledger client with the API server.`,
	SilenceUsage: true,
}

var balancesCmd = &cobra.Command{
	Use:   "balances <address>",
	Short: "Show the XRP balance and MPT positions of an account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, client *xrpl.Client) error {
			address := args[0]

			info, err := client.AccountInfo(ctx, address)
			if err != nil {
				return err
			}
			balances, err := client.MPTBalances(ctx, address)
			if err != nil {
				return err
			}

			return printJSON(map[string]any{
				"account":  info,
				"balances": balances,
			})
		})
	},
}

var transactionsCmd = &cobra.Command{
	Use:   "transactions <address>",
	Short: "List the most recent transactions of an account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, client *xrpl.Client) error {
			txs, err := client.AccountTransactions(ctx, args[0], limit)
			if err != nil {
				return err
			}
			return printJSON(txs)
		})
	},
}

func withClient(fn func(ctx context.Context, client *xrpl.Client) error) error {
	client := xrpl.NewClient(&config.XRPLConfig{
		WebsocketURL:  nodeURL,
		Network:       network,
		SubmitTimeout: timeout,
	}, zap.NewNop())

	if err := client.Connect(); err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return fn(ctx, client)
}

func printJSON(data any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&nodeURL, "node", "wss://s.devnet.rippletest.net:51233", "websocket URL of the XRPL node")
	rootCmd.PersistentFlags().StringVar(&network, "network", "devnet", "network label (devnet, testnet, mainnet)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "request timeout")

	transactionsCmd.Flags().IntVar(&limit, "limit", 20, "maximum number of transactions to list")

	rootCmd.AddCommand(balancesCmd)
	rootCmd.AddCommand(transactionsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
