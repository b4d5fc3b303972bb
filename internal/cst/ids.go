package cst

type (
	NodeID  uint32
	TokenID uint32
)

const (
	NoNodeID  NodeID  = 0
	NoTokenID TokenID = 0
)

func (id NodeID) IsValid() bool  { return id != NoNodeID }
func (id TokenID) IsValid() bool { return id != NoTokenID }

// Element: ребёнок узла: либо узел, либо токен. Ровно одно поле ненулевое.
type Element struct {
	Node  NodeID
	Token TokenID
}

func (e Element) IsNode() bool  { return e.Node.IsValid() }
func (e Element) IsToken() bool { return e.Token.IsValid() }
