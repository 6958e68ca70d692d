// SPDX-FileCopyrightText: © 2021 The sml authors <https://github.com/golangee/sml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package sml

import (
	"sync"

	"github.com/golangee/sml/element"
)

// Result is returned by Preview.Update.
type Result struct {
	// Document is the newest document that could be built. It is nil until the first successful update.
	Document *Document
	// Stale is true if Document is older than the text passed to Update.
	Stale bool
	Err   error
}

// Preview keeps the last good document of a text that is edited over time, so that a
// transient syntax error does not blank a live view. A Preview is safe for concurrent use.
type Preview struct {
	reg      *element.Registry
	filename string
	parse    func(src string) (*Document, error)

	mu      sync.RWMutex
	current *Document
	err     error
	// seq numbers the updates in call order, applied is the seq of the last update stored.
	seq     uint64
	applied uint64
}

// NewPreview creates an empty Preview. The filename is only used in error positions.
func NewPreview(reg *element.Registry, filename string) *Preview {
	p := &Preview{
		reg:      reg,
		filename: filename,
	}
	p.parse = func(src string) (*Document, error) {
		return ParseFile(p.reg, p.filename, src)
	}

	return p
}

// Update parses src. On success the new document replaces the current one, otherwise
// the current document is kept and returned as stale together with the error.
// Concurrent updates are applied in call order: an update which finishes after a later
// one has been applied is dropped and the current state is returned instead.
func (p *Preview) Update(src string) Result {
	p.mu.Lock()
	p.seq++
	seq := p.seq
	p.mu.Unlock()

	doc, err := p.parse(src)

	p.mu.Lock()
	defer p.mu.Unlock()

	if seq < p.applied {
		return p.result()
	}

	p.applied = seq
	p.err = err
	if err != nil {
		return Result{Document: p.current, Stale: p.current != nil, Err: err}
	}

	p.current = doc

	return Result{Document: doc}
}

// Current returns the last good document and the error of the latest update, if any.
func (p *Preview) Current() Result {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.result()
}

func (p *Preview) result() Result {
	return Result{Document: p.current, Stale: p.err != nil && p.current != nil, Err: p.err}
}
