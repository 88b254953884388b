package tui

// MsgRoundStart is sent when a round begins expanding its frontier.
type MsgRoundStart struct {
	Round    int
	Frontier int
}

// MsgRoundComplete is sent when a round has produced the next frontier.
type MsgRoundComplete struct {
	Round      int
	Discovered int
	Total      int
}
