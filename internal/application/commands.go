package application

import (
	"fmt"
	"strings"

	"github.com/bnema/pool-cli/internal/domain"
)

type Action string

const (
	ActionLike      Action = "like"
	ActionBan       Action = "ban"
	ActionFree      Action = "free"
	ActionPick      Action = "pick"
	ActionCurrent   Action = "current"
	ActionList      Action = "list"
	ActionInfo      Action = "info"
	ActionWhiteList Action = "white_list"
	ActionFreeList  Action = "free_list"
	ActionBlackList Action = "black_list"
	ActionSetRights Action = "set_rights"
	ActionReset     Action = "reset"
)

// Actions lists every action accepted on the command line, in help order.
var Actions = []Action{
	ActionInfo,
	ActionLike,
	ActionBan,
	ActionFree,
	ActionPick,
	ActionCurrent,
	ActionList,
	ActionWhiteList,
	ActionFreeList,
	ActionBlackList,
	ActionReset,
}

func ParseAction(raw string) (Action, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ActionInfo, nil
	}

	action := Action(strings.ReplaceAll(trimmed, "-", "_"))
	if !action.Valid() {
		return "", fmt.Errorf("unknown action %q", raw)
	}

	return action, nil
}

func (a Action) Valid() bool {
	switch a {
	case ActionLike, ActionBan, ActionFree, ActionPick, ActionCurrent, ActionList, ActionInfo,
		ActionWhiteList, ActionFreeList, ActionBlackList, ActionSetRights, ActionReset:
		return true
	default:
		return false
	}
}

func (a Action) TakesItems() bool {
	switch a {
	case ActionLike, ActionBan, ActionFree:
		return true
	default:
		return false
	}
}

func (a Action) Mutates() bool {
	switch a {
	case ActionLike, ActionBan, ActionFree, ActionSetRights, ActionReset:
		return true
	default:
		return false
	}
}

type RightsInput struct {
	White   float64
	Free    float64
	Persist bool
}

type Command struct {
	Action Action
	Items  []domain.Item
	Rights *RightsInput
}

func (c Command) Validate() error {
	if !c.Action.Valid() {
		return fmt.Errorf("unknown action %q", c.Action)
	}
	if len(c.Items) > 0 && !c.Action.TakesItems() {
		return fmt.Errorf("action %s takes no items", c.Action)
	}
	if c.Action == ActionSetRights && c.Rights == nil {
		return fmt.Errorf("action %s requires white and free rights", c.Action)
	}
	if c.Action != ActionSetRights && c.Rights != nil {
		return fmt.Errorf("action %s does not take rights", c.Action)
	}

	return nil
}
