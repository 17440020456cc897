package application

import (
	"testing"

	"github.com/bnema/pool-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		want    Action
		wantErr bool
	}{
		{raw: "", want: ActionInfo},
		{raw: "  ", want: ActionInfo},
		{raw: "like", want: ActionLike},
		{raw: "white-list", want: ActionWhiteList},
		{raw: "black_list", want: ActionBlackList},
		{raw: "reset", want: ActionReset},
		{raw: "shuffle", wantErr: true},
	}

	for _, tc := range tests {
		got, err := ParseAction(tc.raw)
		if tc.wantErr {
			assert.Error(t, err, tc.raw)
			continue
		}
		require.NoError(t, err, tc.raw)
		assert.Equal(t, tc.want, got, tc.raw)
	}
}

func TestActionsAreValidAndOmitRightsAction(t *testing.T) {
	t.Parallel()

	for _, action := range Actions {
		assert.True(t, action.Valid(), action)
	}
	assert.NotContains(t, Actions, ActionSetRights)
}

func TestCommandValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cmd     Command
		wantErr string
	}{
		{name: "like with items", cmd: Command{Action: ActionLike, Items: []domain.Item{"a"}}},
		{name: "free without items", cmd: Command{Action: ActionFree}},
		{name: "set rights", cmd: Command{Action: ActionSetRights, Rights: &RightsInput{White: 80, Free: 20}}},
		{name: "unknown", cmd: Command{Action: "shuffle"}, wantErr: "unknown action"},
		{name: "pick with items", cmd: Command{Action: ActionPick, Items: []domain.Item{"a"}}, wantErr: "takes no items"},
		{name: "set rights without rights", cmd: Command{Action: ActionSetRights}, wantErr: "requires white and free rights"},
		{name: "rights on list", cmd: Command{Action: ActionList, Rights: &RightsInput{}}, wantErr: "does not take rights"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cmd.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestActionMutates(t *testing.T) {
	t.Parallel()

	assert.True(t, ActionLike.Mutates())
	assert.True(t, ActionReset.Mutates())
	assert.False(t, ActionPick.Mutates())
	assert.False(t, ActionInfo.Mutates())
}
