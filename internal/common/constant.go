package common

// Keys of the local key-value store.
const (
	KeyUsers               = "users"
	KeyCurrentUser         = "currentUser"
	KeyHistoryPrefix       = "history_"
	KeyTextAnalysisContent = "textAnalysisContent"
	KeyDraftGenMessage     = "draftGenMessage"
	KeyDraftGenInstruction = "draftGenInstruction"
)

// HistoryKey returns the storage key holding the history of email.
func HistoryKey(email string) string {
	return KeyHistoryPrefix + email
}

// DefaultHistoryLimit caps the per-user history list.
const DefaultHistoryLimit = 50
