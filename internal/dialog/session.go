package dialog

import (
	"sync"

	"budgetbot/internal/model"
)

type State string

const (
	StateIdle                       State = "idle"
	StateAwaitingAmount             State = "awaiting_amount"
	StateAwaitingCategory           State = "awaiting_category"
	StateAwaitingNewIncomeCategory  State = "awaiting_new_income_category"
	StateAwaitingNewExpenseCategory State = "awaiting_new_expense_category"
	StateSettingsMenu               State = "settings_menu"
	StateAwaitingCategoryToDelete   State = "awaiting_category_to_delete"
)

// session is one conversation's scratch state. It never leaks across
// users and is wiped on every return to Idle
type session struct {
	state      State
	kind       model.Kind // transaction type chosen in the main menu
	amount     float64    // pending amount, not persisted until a category is known
	hasAmount  bool
	deleteKind model.Kind // category type chosen for deletion
}

func (s *session) reset() {
	*s = session{state: StateIdle}
}

// sessions keys scratch state by user id
type sessions struct {
	mu sync.Mutex
	m  map[int64]*session
}

func newSessions() *sessions {
	return &sessions{
		m: make(map[int64]*session),
	}
}

func (s *sessions) get(userID int64) *session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.m[userID]
	if !ok {
		sess = &session{state: StateIdle}
		s.m[userID] = sess
	}
	return sess
}
