// Package wallet holds the demo accounts this middleware signs for.
//
// The vault is an explicit capability passed to the services that need
// signing material; nothing in the codebase reaches for a process-wide
// wallet singleton.
package wallet

import (
	"fmt"

	xrplwallet "github.com/Peersyst/xrpl-go/xrpl/wallet"
)

// Vault maps classic addresses to their signing wallets. It is
// immutable after construction, so it is safe for concurrent reads
// without locking.
type Vault struct {
	order   []string
	wallets map[string]xrplwallet.Wallet
}

// NewVault derives one wallet per configured family seed. Listing order
// follows the configuration order; duplicate seeds are rejected.
func NewVault(seeds []string) (*Vault, error) {
	if len(seeds) == 0 {
		return nil, fmt.Errorf("no account seeds configured")
	}

	v := &Vault{
		wallets: make(map[string]xrplwallet.Wallet, len(seeds)),
	}
	for i, seed := range seeds {
		w, err := xrplwallet.FromSeed(seed, "")
		if err != nil {
			return nil, fmt.Errorf("derive wallet from seed %d: %w", i, err)
		}
		addr := string(w.ClassicAddress)
		if _, dup := v.wallets[addr]; dup {
			return nil, fmt.Errorf("duplicate seed for account %s", addr)
		}
		v.order = append(v.order, addr)
		v.wallets[addr] = w
	}
	return v, nil
}

// Addresses returns the vault's classic addresses in configuration order.
func (v *Vault) Addresses() []string {
	out := make([]string, len(v.order))
	copy(out, v.order)
	return out
}

// Lookup returns the wallet for a classic address.
func (v *Vault) Lookup(address string) (xrplwallet.Wallet, bool) {
	w, ok := v.wallets[address]
	return w, ok
}

// Has reports whether the vault holds signing material for address.
func (v *Vault) Has(address string) bool {
	_, ok := v.wallets[address]
	return ok
}

// Peers returns every vault address except the given one. The
// presentation layer uses this to offer destination choices that
// exclude the sender.
func (v *Vault) Peers(address string) []string {
	out := make([]string, 0, len(v.order))
	for _, addr := range v.order {
		if addr != address {
			out = append(out, addr)
		}
	}
	return out
}

// Size returns the number of accounts in the vault.
func (v *Vault) Size() int {
	return len(v.order)
}
