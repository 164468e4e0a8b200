package telegram

import (
	"github.com/StounhandJ/aweme_resolver/internal/utils"
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"
)

// Получение ID отправителя сообщения или события
func GetUserID(update telego.Update) int64 {
	if update.Message != nil {
		if update.Message.From != nil && !update.Message.From.IsBot {
			return update.Message.From.ID
		}

		return update.Message.Chat.ID
	}

	if update.CallbackQuery != nil {
		return update.CallbackQuery.From.ID
	}

	return 0
}

// Получение ID чата
func GetChatID(update telego.Update) int64 {
	if update.Message != nil {
		return update.Message.Chat.ID
	}

	return 0
}

// Отправка HTML сообщения в чат, откуда пришло обновление
func SendMessage(ctx *th.Context, update telego.Update, text string) int {
	chatID := GetChatID(update)
	if chatID == 0 {
		chatID = GetUserID(update)
	}

	msg, err := ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
		ChatID:    tu.ID(chatID),
		Text:      utils.Truncate(text, 4096),
		ParseMode: "HTML",
		LinkPreviewOptions: &telego.LinkPreviewOptions{
			IsDisabled: true,
		},
	})
	if err != nil {
		utils.Log.Error(err)

		return 0
	}

	return msg.MessageID
}
