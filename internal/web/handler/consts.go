package handler

const (
	// APIRootPath is the prefix of all JSON API routes.
	APIRootPath = "/api"

	// ErrNilACDFatalLogMsg is used if app or cfg or db var pointer is nil.
	ErrNilACDFatalLogMsg = "app, cfg or db is nil"

	// HeaderActorID carries the id of the acting user, set by the
	// authenticating frontend.
	HeaderActorID = "X-Actor-ID"

	// HeaderActorRole carries the role of the acting user.
	HeaderActorRole = "X-Actor-Role"
)
