package notifications

type style struct {
	icon             string
	title            string
	foreground       string
	background       string
	borderForeground string
}

func (s Severity) style() style {
	switch s {
	case Error:
		return style{
			icon:             "✕",
			title:            "Error",
			foreground:       "#f38ba8",
			background:       "#1e1e2e",
			borderForeground: "#f38ba8",
		}
	default:
		return style{
			icon:             "🔔",
			title:            "Info",
			foreground:       "#a6e3a1",
			background:       "#1e1e2e",
			borderForeground: "#a6e3a1",
		}
	}
}
