package icon

// Icon identifies a symbol in the registry.
type Icon int

const (
	Success Icon = iota
	Fail
	Progress
	Search
	Lock
	Info
	History
)

var icons = map[Icon]*iconDef{
	Success: {
		emoji:   "✅",
		nerd:    "",
		plain:   "✓",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "🟩",
	},
	Fail: {
		emoji:   "❌",
		nerd:    "",
		plain:   "✗",
		kaomoji: "(╥﹏╥)",
		squares: "🟥",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "…",
		kaomoji: "( ・_・)ノ",
		squares: "🟦",
	},
	Search: {
		emoji:   "🔍",
		nerd:    "",
		plain:   "?",
		kaomoji: "(￣ー￣)",
		squares: "🟪",
	},
	Lock: {
		emoji:   "🔒",
		nerd:    "",
		plain:   "#",
		kaomoji: "(¬_¬)",
		squares: "🟫",
	},
	Info: {
		emoji:   "📄",
		nerd:    "",
		plain:   "i",
		kaomoji: "(・ω・)",
		squares: "⬜",
	},
	History: {
		emoji:   "📜",
		nerd:    "",
		plain:   "~",
		kaomoji: "(´-ω-`)",
		squares: "🟨",
	},
}
