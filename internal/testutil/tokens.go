package testutil

// StaticTokens is a fixed token source for wiring clients in tests.
type StaticTokens string

// Token implements api.TokenSource.
func (s StaticTokens) Token() (string, bool) {
	return string(s), s != ""
}

// NoTokens is a token source representing an absent session.
var NoTokens = StaticTokens("")
