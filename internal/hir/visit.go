package hir

// Visitor receives the attributable nodes of a crate. Implementations decide
// whether to descend by calling the matching Walk method.
type Visitor interface {
	VisitItem(it *Item)
	VisitTraitItem(ti *TraitItem)
	VisitImplItem(ii *ImplItem)
	VisitForeignItem(fi *ForeignItem)
	VisitGenericParam(gp *GenericParam)
	VisitMacroDef(md *MacroDef)
}

// Walk visits the crate's top-level items in declaration order, then its
// macro definitions. The crate root itself is not passed to v.
func (c *Crate) Walk(v Visitor) {
	for _, id := range c.Items {
		if it := c.Item(id); it != nil {
			v.VisitItem(it)
		}
	}
	for i := range c.MacroDefs {
		v.VisitMacroDef(&c.MacroDefs[i])
	}
}

// WalkItem visits what is nested directly in it: generic parameters first,
// then the members of modules, traits, impls and foreign blocks. Function
// bodies are not entered.
func (c *Crate) WalkItem(v Visitor, it *Item) {
	c.walkGenerics(v, it.Generics)
	switch it.Kind {
	case ItemMod:
		for _, id := range it.Items {
			if child := c.Item(id); child != nil {
				v.VisitItem(child)
			}
		}
	case ItemTrait:
		for _, id := range it.TraitItems {
			if ti := c.TraitItem(id); ti != nil {
				v.VisitTraitItem(ti)
			}
		}
	case ItemImpl:
		for _, id := range it.ImplItems {
			if ii := c.ImplItem(id); ii != nil {
				v.VisitImplItem(ii)
			}
		}
	case ItemForeignMod:
		for _, id := range it.ForeignItems {
			if fi := c.ForeignItem(id); fi != nil {
				v.VisitForeignItem(fi)
			}
		}
	}
}

func (c *Crate) WalkTraitItem(v Visitor, ti *TraitItem) {
	c.walkGenerics(v, ti.Generics)
}

func (c *Crate) WalkImplItem(v Visitor, ii *ImplItem) {
	c.walkGenerics(v, ii.Generics)
}

func (c *Crate) WalkForeignItem(v Visitor, fi *ForeignItem) {
	c.walkGenerics(v, fi.Generics)
}

func (c *Crate) walkGenerics(v Visitor, params []GenericParam) {
	for i := range params {
		v.VisitGenericParam(&params[i])
	}
}
