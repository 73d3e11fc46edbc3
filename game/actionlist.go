package game

import (
	"fmt"

	"gamesim/utils"

	"golang.org/x/exp/rand"
)

// defaultSource backs SampleRandom calls that pass a nil source.
var defaultSource = rand.New(rand.NewSource(rand.Uint64()))

// ActionList is the ordered set of actions legal on one turn. Lists are
// built fresh each turn and discarded once an action is chosen; the stored
// sequence is kept verbatim, with no deduplication or validation.
type ActionList struct {
	actions []Action
}

// NewActionList stores the given actions in order.
func NewActionList(actions ...Action) ActionList {
	return ActionList{actions: actions}
}

func (l ActionList) Len() int {
	return len(l.actions)
}

// Actions returns a copy of the stored sequence.
func (l ActionList) Actions() []Action {
	out := make([]Action, len(l.actions))
	copy(out, l.actions)
	return out
}

// Display renders the list for a human. Games whose actions are not
// self-evident from their state should wrap ActionList and override this.
func (l ActionList) Display() string {
	return fmt.Sprintf("%v", l.actions)
}

func (l ActionList) String() string {
	return l.Display()
}

// SampleRandom draws one action uniformly at random from the list using
// rng, or a package-level source when rng is nil.
func (l ActionList) SampleRandom(rng *rand.Rand) (Action, error) {
	if len(l.actions) == 0 {
		return "", ErrNoActions
	}
	if rng == nil {
		rng = defaultSource
	}
	return l.actions[rng.Intn(len(l.actions))], nil
}

// IsValid reports whether candidate is exactly an element of the list.
// Case-sensitive, no normalization.
func (l ActionList) IsValid(candidate Action) bool {
	return utils.Contains(l.actions, candidate)
}
