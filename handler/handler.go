////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package handler

import (
	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
	jww "github.com/spf13/jwalterweatherman"

	"gitlab.com/elixxir/emojicon/emoji"
)

const (
	defaultSize      = 0
	defaultCacheSize = 128
)

// Params configures a Handler.
type Params struct {
	// UseSystemDefault disables emoji substitution entirely so the text is
	// rendered with the platform's own glyphs.
	UseSystemDefault bool

	// Size is the render size attached to spans when a call does not give
	// one.
	Size int

	// CacheSize is the number of full-buffer scan results kept. Zero disables
	// the cache.
	CacheSize int
}

// GetDefaultParams returns a default set of Params.
func GetDefaultParams() Params {
	return Params{
		UseSystemDefault: false,
		Size:             defaultSize,
		CacheSize:        defaultCacheSize,
	}
}

// Handler applies emoji spans to Text. It is safe for concurrent use on
// distinct Text values.
type Handler struct {
	reg    emoji.Registry
	params Params
	cache  *lru.Cache
}

// NewHandler builds a Handler over reg.
func NewHandler(reg emoji.Registry, params Params) (*Handler, error) {
	if reg == nil {
		return nil, errors.New("cannot create handler without a registry")
	}
	if params.CacheSize < 0 {
		return nil, errors.Errorf("invalid cache size %d", params.CacheSize)
	}

	h := &Handler{reg: reg, params: params}
	if params.CacheSize > 0 {
		c, err := lru.New(params.CacheSize)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create scan cache")
		}
		h.cache = c
	}

	return h, nil
}

// Params returns the parameters the Handler was built with.
func (h *Handler) Params() Params {
	return h.params
}

// AddEmojis replaces every span on t with the emoji spans of the whole buffer
// and returns them. Calling it again on unchanged text yields the same spans.
// Nothing is done when UseSystemDefault is set.
func (h *Handler) AddEmojis(t *Text, size int) []Span {
	if h.params.UseSystemDefault {
		return nil
	}

	spans := h.scanFull(t.units)
	size = h.size(size)
	for i := range spans {
		spans[i].Size = size
	}

	t.spans = append([]Span(nil), spans...)
	jww.TRACE.Printf("[EMOJI] Applied %d spans over %d units", len(spans),
		len(t.units))
	return spans
}

// AddEmojisRange applies emoji spans for the length units starting at index.
// A negative length, or one running past the text, means the end of the text.
// The range is first widened to cover the spans it intersects, which are then
// removed and rescanned; spans outside it are kept. Nothing is done when
// UseSystemDefault is set.
func (h *Handler) AddEmojisRange(t *Text, size, index, length int) []Span {
	if h.params.UseSystemDefault {
		return nil
	}

	start, end := clamp(index, -1, len(t.units))
	if length >= 0 && length < end-start {
		end = start + length
	}

	for _, s := range t.Spans(start, end) {
		if s.Start < start {
			start = s.Start
		}
		if s.End > end {
			end = s.End
		}
	}

	t.RemoveSpans(start, end)
	spans := Scan(t.units, h.reg, start, end)
	size = h.size(size)
	for i := range spans {
		spans[i].Size = size
		if err := t.SetSpan(spans[i]); err != nil {
			jww.ERROR.Printf("[EMOJI] Failed to apply span %s: %+v",
				spans[i], err)
		}
	}

	jww.TRACE.Printf("[EMOJI] Applied %d spans over [%d, %d)", len(spans),
		start, end)
	return spans
}

// ScanString returns the emoji spans of s without keeping any Text.
func (h *Handler) ScanString(s string) []Span {
	if h.params.UseSystemDefault {
		return nil
	}
	return h.scanFull(New(s).units)
}

// scanFull scans the whole buffer, consulting the cache first. The returned
// slice is owned by the caller.
func (h *Handler) scanFull(units []uint16) []Span {
	if h.cache == nil {
		return Scan(units, h.reg, 0, -1)
	}

	key := cacheKey(units)
	if cached, ok := h.cache.Get(key); ok {
		return append([]Span(nil), cached.([]Span)...)
	}

	spans := Scan(units, h.reg, 0, -1)
	h.cache.Add(key, append([]Span(nil), spans...))
	return spans
}

func (h *Handler) size(size int) int {
	if size > 0 {
		return size
	}
	return h.params.Size
}

// cacheKey encodes units exactly, so texts differing only in unpaired
// surrogates do not share an entry.
func cacheKey(units []uint16) string {
	b := make([]byte, 2*len(units))
	for i, u := range units {
		b[2*i] = byte(u >> 8)
		b[2*i+1] = byte(u)
	}
	return string(b)
}
