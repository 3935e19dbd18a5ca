package controllers

import (
	"context"
	"net/url"

	tgmBotAPI "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

//go:generate mockery --case=snake --name=ClientCtrl
//go:generate mockery --case=snake --name=TgmCtrl

type ClientCtrl interface {
	Fetch(ctx context.Context, u *url.URL) (string, error)
}

type TgmCtrl interface {
	Send(text string) error
	CheckChatID(chatID int64) bool
	GetUpdates() tgmBotAPI.UpdatesChannel
}
