package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

var (
	primary   = List{ID: uuid.MustParse("00000000-0000-0000-0000-000000000001"), Name: "primary", Removable: false}
	secondary = List{ID: uuid.MustParse("00000000-0000-0000-0000-000000000002"), Name: "secondary", Removable: true}
	tertiary  = List{ID: uuid.MustParse("00000000-0000-0000-0000-000000000003"), Name: "tertiary", Removable: true}
)

func TestApplicationState_Validate(t *testing.T) {
	tests := map[string]struct {
		state   ApplicationState
		wantErr bool
	}{
		"implicit-current-list": {
			state: ApplicationState{Lists: []List{primary}},
		},
		"current-list-exists": {
			state: ApplicationState{CurrentListID: secondary.ID, Lists: []List{primary, secondary}},
		},
		"current-list-missing": {
			state:   ApplicationState{CurrentListID: tertiary.ID, Lists: []List{primary, secondary}},
			wantErr: true,
		},
		"empty-state": {
			state: ApplicationState{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.state.Validate()
			if tt.wantErr {
				_, ok := AsValidationErr(err)
				assert.True(t, ok, "expected a validation error, got %v", err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestApplicationState_CurrentList(t *testing.T) {
	tests := map[string]struct {
		state     ApplicationState
		wantList  List
		wantFound bool
	}{
		"explicit": {
			state:     ApplicationState{CurrentListID: tertiary.ID, Lists: []List{primary, secondary, tertiary}},
			wantList:  tertiary,
			wantFound: true,
		},
		"falls-back-to-non-removable": {
			state:     ApplicationState{Lists: []List{secondary, primary}},
			wantList:  primary,
			wantFound: true,
		},
		"falls-back-to-first": {
			state:     ApplicationState{CurrentListID: primary.ID, Lists: []List{secondary, tertiary}},
			wantList:  secondary,
			wantFound: true,
		},
		"no-lists": {
			state: ApplicationState{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, found := tt.state.CurrentList()
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.wantList, got)
		})
	}
}

func TestApplicationState_TasksOf(t *testing.T) {
	a := Task{ID: uuid.New(), ListID: primary.ID, Text: "a"}
	b := Task{ID: uuid.New(), ListID: secondary.ID, Text: "b"}
	c := Task{ID: uuid.New(), ListID: primary.ID, Text: "c"}
	state := ApplicationState{Lists: []List{primary, secondary}, Tasks: []Task{a, b, c}}

	assert.Equal(t, []Task{a, c}, state.TasksOf(primary.ID))
	assert.Equal(t, []Task{b}, state.TasksOf(secondary.ID))
	assert.Empty(t, state.TasksOf(tertiary.ID))
}
