package constant

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

const (
	// History window handed to the provider alongside the phase template.
	ChatHistoryWindow = 6

	DefaultSessionTitle = "New session"

	// Max characters of the first user prompt used as the session title.
	SessionTitleMaxLen = 80
)
