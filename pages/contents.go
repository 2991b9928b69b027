package pages

import (
	"github.com/docukit/folio/core"
	"github.com/docukit/folio/registry"
)

// Contents is a handle to a page's content stream, an opaque
// append-only byte payload.
type Contents struct {
	stream *core.Stream
}

// contentsFor resolves a node's local Contents stream, or nil when
// the page has none yet. Contents is never inherited.
func contentsFor(res *registry.Resolver, dict core.Dict) *Contents {
	obj, err := res.Resolve(dict.Get("Contents"))
	if err != nil {
		return nil
	}
	stream, ok := obj.(*core.Stream)
	if !ok {
		return nil
	}
	return &Contents{stream: stream}
}

// Append adds data to the end of the content stream.
func (c *Contents) Append(data []byte) {
	c.stream.Append(data)
}

// Bytes returns the accumulated content bytes.
func (c *Contents) Bytes() []byte {
	return c.stream.Bytes()
}

// Stream returns the backing stream object.
func (c *Contents) Stream() *core.Stream { return c.stream }

// Contents returns the page's content stream handle, or nil when the
// page has none; see EnsureContentsCreated.
func (p *Page) Contents() *Contents { return p.contents }

// EnsureContentsCreated returns the page's content stream handle,
// lazily creating an empty stream in the registry and linking it
// from the page when none exists. Idempotent: later calls return the
// same handle.
func (p *Page) EnsureContentsCreated() *Contents {
	if p.contents == nil {
		stream := core.NewStream(nil, nil)
		p.dict.Set("Contents", p.reg.Add(stream))
		p.contents = &Contents{stream: stream}
	}
	return p.contents
}
