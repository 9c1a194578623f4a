////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package emoji

import (
	"sync"

	"github.com/pkg/errors"
	jww "github.com/spf13/jwalterweatherman"
	"github.com/thedevsaddam/gojsonq"
)

// Page is one category of the emoji picker with every emoji resolved to its
// asset.
type Page struct {
	ID        string
	Emojicons []Emojicon
}

// Catalog holds the picker pages in display order. It is immutable.
type Catalog struct {
	pages []Page
	index map[string]int
}

// LoadCatalog reads the "categories" node of a registry document and resolves
// every listed sequence against reg. A sequence that reg cannot resolve is an
// error.
func LoadCatalog(document []byte, reg Registry) (*Catalog, error) {
	var categories []Category
	jq := gojsonq.New().FromString(string(document)).From("categories")
	jq.Out(&categories)
	if err := jq.Error(); err != nil {
		return nil, errors.Wrap(err, "failed to query catalog categories")
	}

	c := &Catalog{
		pages: make([]Page, 0, len(categories)),
		index: make(map[string]int, len(categories)),
	}
	for _, cat := range categories {
		if cat.ID == "" {
			return nil, errors.New("catalog category without an id")
		}
		if _, exists := c.index[cat.ID]; exists {
			return nil, errors.Errorf("duplicate catalog category %q", cat.ID)
		}

		page := Page{ID: cat.ID, Emojicons: make([]Emojicon, 0, len(cat.Emojis))}
		for _, seq := range cat.Emojis {
			cps, err := ParseSequence(seq)
			if err != nil {
				return nil, errors.Wrapf(err, "category %q", cat.ID)
			}

			e := FromSequence(cps...).WithIcon(reg)
			if e.Icon == "" {
				return nil, errors.Errorf("category %q lists %q which has "+
					"no asset", cat.ID, seq)
			}
			page.Emojicons = append(page.Emojicons, e)
		}

		c.index[cat.ID] = len(c.pages)
		c.pages = append(c.pages, page)
	}

	jww.DEBUG.Printf("[EMOJI] Loaded catalog with %d pages", len(c.pages))

	return c, nil
}

var (
	defaultCatalog     *Catalog
	defaultCatalogOnce sync.Once
)

// DefaultCatalog returns the catalog of the embedded registry document. A
// malformed document is fatal.
func DefaultCatalog() *Catalog {
	defaultCatalogOnce.Do(func() {
		c, err := LoadCatalog(registryJSON, Default())
		if err != nil {
			jww.FATAL.Panicf("[EMOJI] Failed to load embedded catalog: %+v",
				err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Pages returns all pages in display order.
func (c *Catalog) Pages() []Page {
	pages := make([]Page, len(c.pages))
	for i, p := range c.pages {
		pages[i] = p.clone()
	}
	return pages
}

// Len returns the number of pages.
func (c *Catalog) Len() int {
	return len(c.pages)
}

// Page returns the page at index, as a pager would address it.
func (c *Catalog) Page(index int) (Page, bool) {
	if index < 0 || index >= len(c.pages) {
		return Page{}, false
	}
	return c.pages[index].clone(), true
}

// PageByID returns the page with the given category id.
func (c *Catalog) PageByID(id string) (Page, bool) {
	i, exists := c.index[id]
	if !exists {
		return Page{}, false
	}
	return c.pages[i].clone(), true
}

func (p Page) clone() Page {
	return Page{ID: p.ID, Emojicons: append([]Emojicon(nil), p.Emojicons...)}
}
