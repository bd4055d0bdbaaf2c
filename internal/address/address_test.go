// Copyright 2026 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package address_test

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/blinklabs-io/curiumd/internal/address"
	"github.com/blinklabs-io/curiumd/internal/chaincfg"
)

const genesisPubKey = "043384710fa689ad5023690c80f3addf8f13f8d45b8c8ab357c96ddae9fac46bd8996b10f4d4604fa08dce601aac4997abcedf92f1fabc21b179c45070ac7b03a9"

func mustParams(t *testing.T, id chaincfg.Network) *chaincfg.Params {
	t.Helper()
	params, err := chaincfg.ParamsFor(id)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	return params
}

func TestEncodePubKeyHash(t *testing.T) {
	pubKey, err := hex.DecodeString(genesisPubKey)
	if err != nil {
		t.Fatalf("unexpected error decoding hex: %s", err)
	}
	testDefs := []struct {
		network  chaincfg.Network
		expected string
	}{
		{network: chaincfg.Main, expected: "CUMVcGKWkmtxVrMidWiadD5GroJJJet4Cq"},
		{network: chaincfg.Testnet, expected: "y8sSuKQVZoLDGxqLM5gxT8Hbinu1J88gSw"},
		{network: chaincfg.Regtest, expected: "y8sSuKQVZoLDGxqLM5gxT8Hbinu1J88gSw"},
	}
	for _, td := range testDefs {
		params := mustParams(t, td.network)
		got := address.EncodePubKeyHash(params, pubKey)
		if got != td.expected {
			t.Fatalf("%s: got %s, wanted %s", td.network, got, td.expected)
		}
		addr, err := address.DecodeAddress(params, got)
		if err != nil {
			t.Fatalf("%s: unexpected error decoding: %s", td.network, err)
		}
		if addr.Purpose != chaincfg.PubKeyHash {
			t.Fatalf("%s: got purpose %s", td.network, addr.Purpose)
		}
		if hex.EncodeToString(addr.Hash[:]) != "826bd8a0ebc70868470228b9d463e627a18cab38" {
			t.Fatalf("%s: unexpected hash %x", td.network, addr.Hash)
		}
	}
}

func TestEncodeScriptHashRoundTrip(t *testing.T) {
	params := mustParams(t, chaincfg.Main)
	script := []byte{0x51}
	encoded := address.EncodeScriptHash(params, script)
	addr, err := address.DecodeAddress(params, encoded)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if addr.Purpose != chaincfg.ScriptHash {
		t.Fatalf("got purpose %s, wanted %s", addr.Purpose, chaincfg.ScriptHash)
	}
	if !bytes.Equal(addr.Hash[:], address.Hash160(script)) {
		t.Fatalf("hash mismatch: got %x", addr.Hash)
	}
}

func TestDecodeAddressWrongNetwork(t *testing.T) {
	mainParams := mustParams(t, chaincfg.Main)
	testParams := mustParams(t, chaincfg.Testnet)
	encoded := address.EncodePubKeyHash(testParams, []byte{0x02, 0x03})
	if _, err := address.DecodeAddress(mainParams, encoded); !errors.Is(err, address.ErrWrongNetwork) {
		t.Fatalf("got error %v, wanted %v", err, address.ErrWrongNetwork)
	}
	if _, err := address.DecodeAddress(mainParams, "not-an-address"); err == nil {
		t.Fatalf("expected error for malformed address")
	}
}

func TestPrivateKeyRoundTrip(t *testing.T) {
	key := make([]byte, 32)
	key[31] = 1
	for _, id := range chaincfg.Networks {
		params := mustParams(t, id)
		for _, compressed := range []bool{false, true} {
			encoded, err := address.EncodePrivateKey(params, key, compressed)
			if err != nil {
				t.Fatalf("%s: unexpected error: %s", id, err)
			}
			gotKey, gotCompressed, err := address.DecodePrivateKey(params, encoded)
			if err != nil {
				t.Fatalf("%s: unexpected error decoding: %s", id, err)
			}
			if !bytes.Equal(gotKey, key) || gotCompressed != compressed {
				t.Fatalf("%s: round trip mismatch: %x %v", id, gotKey, gotCompressed)
			}
		}
	}
	keyTestDefs := []struct {
		compressed bool
		expected   string
	}{
		{compressed: false, expected: "7qYrzJZWqnyCWMYswFcqaRJypGdVceudXPSxmZKsngN7fyo7aAV"},
		{compressed: true, expected: "XBHddvWWiMu3nZhhpTXBQWJMmdz5JNKJD85b9fgKAckCT2coW3Y4"},
	}
	var mainKey string
	for _, td := range keyTestDefs {
		encoded, err := address.EncodePrivateKey(mustParams(t, chaincfg.Main), key, td.compressed)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if encoded != td.expected {
			t.Fatalf(
				"compressed=%v: got: %s wanted: %s",
				td.compressed,
				encoded,
				td.expected,
			)
		}
		mainKey = encoded
	}
	if _, _, err := address.DecodePrivateKey(mustParams(t, chaincfg.Testnet), mainKey); !errors.Is(err, address.ErrWrongNetwork) {
		t.Fatalf("got error %v, wanted %v", err, address.ErrWrongNetwork)
	}
	if _, err := address.EncodePrivateKey(mustParams(t, chaincfg.Main), key[:31], false); !errors.Is(err, address.ErrInvalidKey) {
		t.Fatalf("got error %v, wanted %v", err, address.ErrInvalidKey)
	}
}

func TestExtendedKeyRoundTrip(t *testing.T) {
	body := make([]byte, 74)
	for i := range body {
		body[i] = byte(i)
	}
	mainParams := mustParams(t, chaincfg.Main)
	testParams := mustParams(t, chaincfg.Testnet)
	for _, private := range []bool{false, true} {
		encoded, err := address.EncodeExtendedKey(mainParams, private, body)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		gotPrivate, gotBody, err := address.DecodeExtendedKey(mainParams, encoded)
		if err != nil {
			t.Fatalf("unexpected error decoding: %s", err)
		}
		if gotPrivate != private || !bytes.Equal(gotBody, body) {
			t.Fatalf("round trip mismatch for private=%v", private)
		}
		if _, _, err := address.DecodeExtendedKey(testParams, encoded); !errors.Is(err, address.ErrWrongNetwork) {
			t.Fatalf("got error %v, wanted %v", err, address.ErrWrongNetwork)
		}
	}
	if _, err := address.EncodeExtendedKey(mainParams, false, body[:10]); !errors.Is(err, address.ErrInvalidKey) {
		t.Fatalf("got error %v, wanted %v", err, address.ErrInvalidKey)
	}
}

func TestCoinTypePath(t *testing.T) {
	testDefs := []struct {
		network  chaincfg.Network
		expected string
	}{
		{network: chaincfg.Main, expected: "m/44'/5'"},
		{network: chaincfg.Testnet, expected: "m/44'/1'"},
	}
	for _, td := range testDefs {
		if got := address.CoinTypePath(mustParams(t, td.network)); got != td.expected {
			t.Fatalf("%s: got %s, wanted %s", td.network, got, td.expected)
		}
	}
}
