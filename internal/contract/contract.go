// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package contract implements the copy-contract action.
//
// Copy puts the contract address on the system clipboard. Outcomes are only
// written to the diagnostic log; the UI never reports them to the user.
package contract

import (
	"sync"
	"time"

	"github.com/atotto/clipboard"
	"golang.org/x/time/rate"

	"github.com/jeranaias/umbra-terminal/internal/logging"
)

// Label is the text shown on the nav bar control.
const Label = "Contract: To Be Announced"

// Result is the outcome of one Copy call.
type Result int

const (
	// Copied means the address reached the clipboard.
	Copied Result = iota
	// Failed means the clipboard write returned an error.
	Failed
	// Throttled means the press was dropped by the rate limiter.
	Throttled
)

// String returns the string representation of the result.
func (r Result) String() string {
	switch r {
	case Copied:
		return "copied"
	case Failed:
		return "failed"
	case Throttled:
		return "throttled"
	default:
		return "unknown"
	}
}

// WriteFunc writes text to a clipboard.
type WriteFunc func(text string) error

// Stats counts Copy outcomes.
type Stats struct {
	Copied    int
	Failed    int
	Throttled int
}

// Copier copies a fixed address to the clipboard.
type Copier struct {
	mu sync.Mutex

	address string
	write   WriteFunc
	limiter *rate.Limiter
	now     func() time.Time
	log     *logging.Logger
	stats   Stats
}

// Option configures a Copier.
type Option func(*Copier)

// WithWriter replaces the clipboard writer.
func WithWriter(w WriteFunc) Option {
	return func(c *Copier) {
		if w != nil {
			c.write = w
		}
	}
}

// WithClock replaces the clock used by the rate limiter.
func WithClock(now func() time.Time) Option {
	return func(c *Copier) {
		if now != nil {
			c.now = now
		}
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(log *logging.Logger) Option {
	return func(c *Copier) {
		if log != nil {
			c.log = log.WithComponent("contract")
		}
	}
}

// WithLimit allows burst presses, refilling one every interval.
func WithLimit(interval time.Duration, burst int) Option {
	return func(c *Copier) {
		c.limiter = rate.NewLimiter(rate.Every(interval), burst)
	}
}

// New creates a Copier for address. By default it writes to the system
// clipboard and allows one copy per second.
func New(address string, opts ...Option) *Copier {
	c := &Copier{
		address: address,
		write:   clipboard.WriteAll,
		limiter: rate.NewLimiter(rate.Every(time.Second), 1),
		now:     time.Now,
		log:     logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Address returns the address that Copy writes.
func (c *Copier) Address() string {
	return c.address
}

// Copy writes the address to the clipboard. The result is logged and
// returned for callers that count outcomes; it is never an error.
func (c *Copier) Copy() Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.limiter.AllowN(c.now(), 1) {
		c.stats.Throttled++
		c.log.Debug("copy throttled")
		return Throttled
	}

	if err := c.write(c.address); err != nil {
		c.stats.Failed++
		c.log.LogError(err, "clipboard write failed")
		return Failed
	}

	c.stats.Copied++
	c.log.Info("contract copied", "length", len(c.address))
	return Copied
}

// Stats returns outcome counts.
func (c *Copier) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}
