package commands

// Button is an inline action control: a link when URL is set, otherwise a callback carrying Data.
type Button struct {
	Label string
	URL   string
	Data  string
}

// Response is what a responder asks the transport to deliver.
type Response struct {
	Text    string
	Buttons []Button
	// Image, when set, is sent as a photo with Text as its caption.
	Image []byte
	// Notice marks a plain-text early exit (failure or nothing found). Notices are never Markdown.
	Notice bool
}

func notice(text string) Response {
	return Response{Text: text, Notice: true}
}
