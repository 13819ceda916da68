package commands

import (
	"strings"

	"myonion-telegram-bot/lib/translation"
)

// Start and Help are written directly in MarkdownV2.

func (r *Responder) Start() Response {
	return Response{
		Text: translation.Translate("👋 *Welcome to the MyOnion Token Bot\\!* 🍔\n\n" +
			"💡 Send me a *token symbol or name*, and I'll fetch its details instantly\\!\n\n" +
			"🔹 Try searching for `/layld` or `layld` to get started\\!\n"),
		Buttons: []Button{{
			Label: translation.Translate("📊 MyOnion.fun"),
			URL:   strings.TrimSuffix(r.settings.SiteURL, "/"),
		}},
	}
}

func (r *Responder) Help() Response {
	return Response{
		Text: translation.Translate("🤖 *How to Use the Bot:*\n\n"+
			"🔍 *Search Tokens:* Send a token symbol, name, or contract address\\.\n"+
			"💬 *Command Search:* Use `/p <query>` or `/<symbol>`\\.\n"+
			"📈 *Trending Tokens:* Use /trending to see the hottest tokens\\.\n"+
			"🏆 *Leaderboard:* Use /leaderboard to see the top tokens\\.\n"+
			"ℹ️ *More Info:* Visit [MyOnion\\.fun](%s) for detailed insights\\.",
			linkTarget(strings.TrimSuffix(r.settings.SiteURL, "/"))),
	}
}

// linkTarget escapes the two characters MarkdownV2 reserves inside an inline link URL.
func linkTarget(url string) string {
	url = strings.ReplaceAll(url, `\`, `\\`)
	return strings.ReplaceAll(url, ")", `\)`)
}
