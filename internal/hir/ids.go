package hir

type (
	// NodeID is the identity of an attributable node, unique within a crate.
	// Downstream passes key their derived data (function attributes) by it.
	NodeID uint32

	ItemID        uint32
	TraitItemID   uint32
	ImplItemID    uint32
	ForeignItemID uint32
)

const (
	NoNodeID        NodeID        = 0
	NoItemID        ItemID        = 0
	NoTraitItemID   TraitItemID   = 0
	NoImplItemID    ImplItemID    = 0
	NoForeignItemID ForeignItemID = 0
)

func (id NodeID) IsValid() bool        { return id != NoNodeID }
func (id ItemID) IsValid() bool        { return id != NoItemID }
func (id TraitItemID) IsValid() bool   { return id != NoTraitItemID }
func (id ImplItemID) IsValid() bool    { return id != NoImplItemID }
func (id ForeignItemID) IsValid() bool { return id != NoForeignItemID }
