package wallet

import (
	"testing"

	"github.com/Peersyst/xrpl-go/pkg/crypto"
	xrplwallet "github.com/Peersyst/xrpl-go/xrpl/wallet"
)

func newTestSeed(t *testing.T) (string, string) {
	t.Helper()
	w, err := xrplwallet.New(crypto.ED25519())
	if err != nil {
		t.Fatalf("generate wallet: %v", err)
	}
	return w.Seed, string(w.ClassicAddress)
}

func TestNewVault_DerivesAccountsInOrder(t *testing.T) {
	seed1, addr1 := newTestSeed(t)
	seed2, addr2 := newTestSeed(t)

	v, err := NewVault([]string{seed1, seed2})
	if err != nil {
		t.Fatalf("NewVault: %v", err)
	}

	addrs := v.Addresses()
	if len(addrs) != 2 || addrs[0] != addr1 || addrs[1] != addr2 {
		t.Fatalf("unexpected addresses %v, want [%s %s]", addrs, addr1, addr2)
	}
	if v.Size() != 2 {
		t.Fatalf("unexpected size %d", v.Size())
	}
}

func TestNewVault_RejectsEmptyAndDuplicates(t *testing.T) {
	if _, err := NewVault(nil); err == nil {
		t.Fatal("expected error for empty seed list")
	}

	seed, _ := newTestSeed(t)
	if _, err := NewVault([]string{seed, seed}); err == nil {
		t.Fatal("expected error for duplicate seed")
	}
}

func TestNewVault_RejectsInvalidSeed(t *testing.T) {
	if _, err := NewVault([]string{"not-a-seed"}); err == nil {
		t.Fatal("expected error for malformed seed")
	}
}

func TestVault_LookupAndPeers(t *testing.T) {
	seed1, addr1 := newTestSeed(t)
	seed2, addr2 := newTestSeed(t)

	v, err := NewVault([]string{seed1, seed2})
	if err != nil {
		t.Fatalf("NewVault: %v", err)
	}

	w, ok := v.Lookup(addr1)
	if !ok || string(w.ClassicAddress) != addr1 {
		t.Fatalf("Lookup(%s) = %v, %v", addr1, w.ClassicAddress, ok)
	}
	if _, ok := v.Lookup("rUnknownAccount111111111111111111"); ok {
		t.Fatal("Lookup must miss for unknown address")
	}
	if !v.Has(addr2) {
		t.Fatalf("Has(%s) = false", addr2)
	}

	peers := v.Peers(addr1)
	if len(peers) != 1 || peers[0] != addr2 {
		t.Fatalf("Peers(%s) = %v, want [%s]", addr1, peers, addr2)
	}
}
