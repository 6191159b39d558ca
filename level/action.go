package level

import (
	"github.com/lixenwraith/regroup/tier"
	"github.com/lixenwraith/regroup/token"
)

// ActionKind classifies user actions routed to a level
type ActionKind uint8

const (
	ActionNone        ActionKind = iota
	ActionAdd                    // append one token to Tier
	ActionRemove                 // drop the last token of Tier
	ActionRemoveToken            // drop Token from the counting tier
	ActionBreak                  // break one token of Tier into ten of the tier below
	ActionMove                   // move the number line by Delta
	ActionReset                  // level-local reset
)

func (k ActionKind) String() string {
	switch k {
	case ActionAdd:
		return "add"
	case ActionRemove:
		return "remove"
	case ActionRemoveToken:
		return "remove-token"
	case ActionBreak:
		return "break"
	case ActionMove:
		return "move"
	case ActionReset:
		return "reset"
	default:
		return "none"
	}
}

// Action is a single user intent
type Action struct {
	Kind  ActionKind
	Tier  tier.Kind
	Token token.ID
	Delta int
}

func Add(k tier.Kind) Action         { return Action{Kind: ActionAdd, Tier: k} }
func Remove(k tier.Kind) Action      { return Action{Kind: ActionRemove, Tier: k} }
func RemoveToken(id token.ID) Action { return Action{Kind: ActionRemoveToken, Token: id} }
func Break(source tier.Kind) Action  { return Action{Kind: ActionBreak, Tier: source} }
func Move(delta int) Action          { return Action{Kind: ActionMove, Delta: delta} }
func Reset() Action                  { return Action{Kind: ActionReset} }
