// Copyright 2026 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package seeds discovers bootstrap peers from a network's DNS seeds and
// falls back to its fixed seeds.
package seeds

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"net"
	"time"

	"github.com/blinklabs-io/curiumd/internal/chaincfg"
	"github.com/blinklabs-io/curiumd/internal/logging"
	"github.com/btcsuite/btcd/wire"
	"github.com/miekg/dns"
)

var (
	// ErrNoPeers is returned when neither the DNS seeds nor the fixed seeds
	// produced any address.
	ErrNoPeers = errors.New("no bootstrap peers available")

	ErrNoNameservers = errors.New("no nameservers configured")
)

type Resolver struct {
	nameservers []string
	client      *dns.Client
	now         func() time.Time
}

// NewResolver returns a Resolver that sends queries to the given nameservers
// ("host:port") with a per-query timeout.
func NewResolver(nameservers []string, timeout time.Duration) *Resolver {
	return &Resolver{
		nameservers: nameservers,
		client: &dns.Client{
			Net:     "udp",
			Timeout: timeout,
		},
		now: time.Now,
	}
}

// LookupSeed returns the addresses of a DNS seed. A seed host that is an IP
// literal is returned as is.
func (r *Resolver) LookupSeed(
	ctx context.Context,
	seed chaincfg.DNSSeed,
) ([]net.IP, error) {
	if ip := net.ParseIP(seed.Host); ip != nil {
		return []net.IP{ip}, nil
	}
	if len(r.nameservers) == 0 {
		return nil, ErrNoNameservers
	}
	var ret []net.IP
	var lastErr error
	for _, qtype := range []uint16{dns.TypeA, dns.TypeAAAA} {
		resp, err := r.query(ctx, seed.Host, qtype)
		if err != nil {
			lastErr = err
			continue
		}
		for _, answer := range resp.Answer {
			switch v := answer.(type) {
			case *dns.A:
				ret = append(ret, v.A)
			case *dns.AAAA:
				ret = append(ret, v.AAAA)
			}
		}
	}
	if len(ret) == 0 && lastErr != nil {
		return nil, lastErr
	}
	return ret, nil
}

func (r *Resolver) query(
	ctx context.Context,
	host string,
	qtype uint16,
) (*dns.Msg, error) {
	logger := logging.GetLogger()
	m := new(dns.Msg)
	m.SetQuestion(dns.Fqdn(host), qtype)
	m.RecursionDesired = true
	var lastErr error
	// Start at a random nameserver and try each once
	start := rand.IntN(len(r.nameservers))
	for i := range r.nameservers {
		nameserver := r.nameservers[(start+i)%len(r.nameservers)]
		logger.Debugf(
			"querying %s: %s %s",
			nameserver,
			dns.Type(qtype).String(),
			host,
		)
		resp, _, err := r.client.ExchangeContext(ctx, m, nameserver)
		if err != nil {
			lastErr = fmt.Errorf("failed to query %s: %w", nameserver, err)
			if ctx.Err() != nil {
				return nil, lastErr
			}
			continue
		}
		if resp.Rcode != dns.RcodeSuccess {
			lastErr = fmt.Errorf(
				"%s returned %s for %s",
				nameserver,
				dns.RcodeToString[resp.Rcode],
				host,
			)
			continue
		}
		return resp, nil
	}
	return nil, lastErr
}

// Bootstrap returns peer addresses for a network from its DNS seeds. When no
// DNS seed answers, the network's fixed seeds are returned instead.
func (r *Resolver) Bootstrap(
	ctx context.Context,
	params *chaincfg.Params,
) ([]*wire.NetAddress, error) {
	logger := logging.GetLogger()
	seen := make(map[string]struct{})
	var ret []*wire.NetAddress
	for _, seed := range params.DNSSeeds {
		ips, err := r.LookupSeed(ctx, seed)
		if err != nil {
			logger.Warnf("failed to look up DNS seed %s: %s", seed, err)
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			continue
		}
		for _, ip := range ips {
			if _, ok := seen[ip.String()]; ok {
				continue
			}
			seen[ip.String()] = struct{}{}
			ret = append(
				ret,
				wire.NewNetAddressTimestamp(
					r.now(),
					wire.SFNodeNetwork,
					ip,
					params.DefaultPort,
				),
			)
		}
	}
	if len(ret) > 0 {
		return ret, nil
	}
	if len(params.FixedSeeds) > 0 {
		logger.Infof(
			"no addresses from DNS seeds, using %d fixed seeds",
			len(params.FixedSeeds),
		)
		return append([]*wire.NetAddress(nil), params.FixedSeeds...), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNoPeers, params.Name)
}
