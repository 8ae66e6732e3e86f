package session

// Command is a discrete player request produced by the input layer.
type Command uint8

const (
	CmdNone Command = iota
	CmdMoveUp
	CmdMoveDown
	CmdMoveLeft
	CmdMoveRight
	CmdToggleFlag
	CmdExpose
	CmdQuit
)

var commandNames = [...]string{
	CmdNone:       "none",
	CmdMoveUp:     "move-up",
	CmdMoveDown:   "move-down",
	CmdMoveLeft:   "move-left",
	CmdMoveRight:  "move-right",
	CmdToggleFlag: "toggle-flag",
	CmdExpose:     "expose",
	CmdQuit:       "quit",
}

func (c Command) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return "unknown"
}
