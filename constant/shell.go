package constant

// Fixed shell messages. Scripts and tests match on these verbatim.
const (
	Welcome        = "Welcome to Console-Based File Explorer"
	WelcomeHint    = "Type 'help' to see all commands."
	Goodbye        = "Exiting File Explorer. Goodbye!"
	UnknownCommand = "Unknown command. Type 'help' for options."
	DirMarker      = "[DIR]"
	Separator      = "-"
)
