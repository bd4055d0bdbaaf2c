// Copyright 2026 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package seeds

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/blinklabs-io/curiumd/internal/chaincfg"
	"github.com/miekg/dns"
)

// startTestServer runs a DNS server on a loopback UDP port that answers for
// seed.curium.test. and returns NXDOMAIN for everything else.
func startTestServer(t *testing.T) string {
	t.Helper()
	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("unexpected error listening: %s", err)
	}
	mux := dns.NewServeMux()
	mux.HandleFunc(".", func(w dns.ResponseWriter, r *dns.Msg) {
		m := new(dns.Msg)
		m.SetReply(r)
		q := r.Question[0]
		if q.Name != "seed.curium.test." {
			m.SetRcode(r, dns.RcodeNameError)
			_ = w.WriteMsg(m)
			return
		}
		switch q.Qtype {
		case dns.TypeA:
			for _, ip := range []string{"10.0.0.1", "10.0.0.2", "10.0.0.1"} {
				m.Answer = append(m.Answer, &dns.A{
					Hdr: dns.RR_Header{Name: q.Name, Rrtype: dns.TypeA, Class: dns.ClassINET, Ttl: 60},
					A:   net.ParseIP(ip),
				})
			}
		case dns.TypeAAAA:
			m.Answer = append(m.Answer, &dns.AAAA{
				Hdr:  dns.RR_Header{Name: q.Name, Rrtype: dns.TypeAAAA, Class: dns.ClassINET, Ttl: 60},
				AAAA: net.ParseIP("fd00::1"),
			})
		}
		_ = w.WriteMsg(m)
	})
	started := make(chan struct{})
	server := &dns.Server{
		PacketConn:        pc,
		Handler:           mux,
		NotifyStartedFunc: func() { close(started) },
	}
	go func() {
		_ = server.ActivateAndServe()
	}()
	<-started
	t.Cleanup(func() {
		_ = server.Shutdown()
	})
	return pc.LocalAddr().String()
}

func testParams(t *testing.T, id chaincfg.Network, dnsSeeds ...chaincfg.DNSSeed) *chaincfg.Params {
	t.Helper()
	params, err := chaincfg.ParamsFor(id)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	ret := *params
	ret.DNSSeeds = dnsSeeds
	return &ret
}

func TestLookupSeed(t *testing.T) {
	addr := startTestServer(t)
	r := NewResolver([]string{addr}, time.Second)
	ips, err := r.LookupSeed(
		context.Background(),
		chaincfg.DNSSeed{Name: "test", Host: "seed.curium.test"},
	)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(ips) != 4 {
		t.Fatalf("got %d addresses, wanted 4: %v", len(ips), ips)
	}
	if ips[len(ips)-1].String() != "fd00::1" {
		t.Fatalf("expected AAAA answer last, got %v", ips)
	}
}

func TestLookupSeedLiteral(t *testing.T) {
	// No nameservers are needed for IP literals
	r := NewResolver(nil, time.Second)
	ips, err := r.LookupSeed(
		context.Background(),
		chaincfg.DNSSeed{Name: "curium1", Host: "207.246.120.137"},
	)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(ips) != 1 || ips[0].String() != "207.246.120.137" {
		t.Fatalf("unexpected addresses: %v", ips)
	}
	_, err = r.LookupSeed(
		context.Background(),
		chaincfg.DNSSeed{Name: "test", Host: "seed.curium.test"},
	)
	if !errors.Is(err, ErrNoNameservers) {
		t.Fatalf("got error %v, wanted %v", err, ErrNoNameservers)
	}
}

func TestBootstrapFromDNS(t *testing.T) {
	addr := startTestServer(t)
	r := NewResolver([]string{addr}, time.Second)
	params := testParams(
		t,
		chaincfg.Testnet,
		chaincfg.DNSSeed{Name: "test", Host: "seed.curium.test"},
		chaincfg.DNSSeed{Name: "literal", Host: "10.0.0.2"},
		chaincfg.DNSSeed{Name: "missing", Host: "missing.curium.test"},
	)
	addrs, err := r.Bootstrap(context.Background(), params)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	// Duplicates across and within seeds are dropped
	if len(addrs) != 3 {
		t.Fatalf("got %d addresses, wanted 3", len(addrs))
	}
	for _, a := range addrs {
		if a.Port != params.DefaultPort {
			t.Fatalf("%s: got port %d, wanted %d", a.IP, a.Port, params.DefaultPort)
		}
	}
}

func TestBootstrapFallsBackToFixedSeeds(t *testing.T) {
	addr := startTestServer(t)
	r := NewResolver([]string{addr}, time.Second)
	params := testParams(
		t,
		chaincfg.Main,
		chaincfg.DNSSeed{Name: "missing", Host: "missing.curium.test"},
	)
	addrs, err := r.Bootstrap(context.Background(), params)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(addrs) != len(params.FixedSeeds) {
		t.Fatalf("got %d addresses, wanted %d fixed seeds", len(addrs), len(params.FixedSeeds))
	}
	if addrs[0] != params.FixedSeeds[0] {
		t.Fatalf("expected the fixed seed addresses")
	}
}

func TestBootstrapNoPeers(t *testing.T) {
	r := NewResolver(nil, time.Second)
	params := testParams(t, chaincfg.Regtest)
	_, err := r.Bootstrap(context.Background(), params)
	if !errors.Is(err, ErrNoPeers) {
		t.Fatalf("got error %v, wanted %v", err, ErrNoPeers)
	}
}
