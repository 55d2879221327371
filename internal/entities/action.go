package entities

// ActionKind discriminates the action variants
type ActionKind string

// Action kinds
const (
	ActionMove    ActionKind = "move"
	ActionAttack  ActionKind = "attack"
	ActionUseItem ActionKind = "use_item"
	ActionWait    ActionKind = "wait"
)

// Action is one entity's intent for a scheduling round. Exactly one of
// the payload fields is meaningful, selected by Kind.
type Action struct {
	Kind      ActionKind `json:"kind"`
	Direction Direction  `json:"direction,omitempty"`
	TargetID  string     `json:"target_id,omitempty"`
	ItemID    string     `json:"item_id,omitempty"`
}

// Move returns a move action in the given direction
func Move(d Direction) Action {
	return Action{Kind: ActionMove, Direction: d}
}

// Attack returns an attack action against the given entity
func Attack(targetID string) Action {
	return Action{Kind: ActionAttack, TargetID: targetID}
}

// UseItem returns an action consuming the given item entity
func UseItem(itemID string) Action {
	return Action{Kind: ActionUseItem, ItemID: itemID}
}

// Wait returns a do-nothing action
func Wait() Action {
	return Action{Kind: ActionWait}
}
