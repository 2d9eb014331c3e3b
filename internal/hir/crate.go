package hir

import "checkattr/internal/source"

// Crate is the root of a resolved program tree. It is built once by Builder
// and treated as read-only afterwards.
type Crate struct {
	ID        NodeID
	Name      string
	Span      source.Span
	Attrs     []Attr
	Items     []ItemID
	MacroDefs []MacroDef
	Strings   *source.Interner

	items        *Arena[Item]
	traitItems   *Arena[TraitItem]
	implItems    *Arena[ImplItem]
	foreignItems *Arena[ForeignItem]
	nodes        uint32
}

func (c *Crate) Item(id ItemID) *Item {
	return c.items.Get(uint32(id))
}

func (c *Crate) TraitItem(id TraitItemID) *TraitItem {
	return c.traitItems.Get(uint32(id))
}

func (c *Crate) ImplItem(id ImplItemID) *ImplItem {
	return c.implItems.Get(uint32(id))
}

func (c *Crate) ForeignItem(id ForeignItemID) *ForeignItem {
	return c.foreignItems.Get(uint32(id))
}

// NumItems reports how many free items the crate holds, at any depth.
func (c *Crate) NumItems() uint32 {
	return c.items.Len()
}

// NumNodes reports how many NodeIDs were issued.
func (c *Crate) NumNodes() uint32 {
	return c.nodes
}

// Str resolves an interned identifier; NoStringID yields "".
func (c *Crate) Str(id source.StringID) string {
	s, _ := c.Strings.Lookup(id)
	return s
}

// AttrName returns the attribute's simple name, or "" when it has none.
func (c *Crate) AttrName(a Attr) string {
	return c.Str(a.Name)
}

// MetaName returns the nested item's name, or "" for literals.
func (c *Crate) MetaName(m MetaItem) string {
	if !m.HasName() {
		return ""
	}
	return c.Str(m.Name)
}
