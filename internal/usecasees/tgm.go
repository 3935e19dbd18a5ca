package usecasees

import (
	"context"
	"fmt"
	"fuelprice/internal/controllers"
	"fuelprice/models"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

type tgmUseCase struct {
	priceUseCase  *priceUseCase
	tgmController controllers.TgmCtrl
	loc           *time.Location
	logger        *logrus.Logger
}

func NewTgmUseCase(
	priceUseCase *priceUseCase,
	tgmController controllers.TgmCtrl,
	loc *time.Location,
	logger *logrus.Logger,
) *tgmUseCase {
	return &tgmUseCase{
		priceUseCase:  priceUseCase,
		tgmController: tgmController,
		loc:           loc,
		logger:        logger,
	}
}

// CommandProcessor serves /ping, /city <name> and /state <name> from the
// configured chat until the updates channel closes.
func (u *tgmUseCase) CommandProcessor() {
	for update := range u.tgmController.GetUpdates() {
		if update.Message == nil || update.Message.Chat == nil {
			continue
		}

		if !u.tgmController.CheckChatID(update.Message.Chat.ID) {
			continue
		}

		arg := strings.TrimSpace(update.Message.CommandArguments())

		switch update.Message.Command() {
		case "ping":
			u.pingProc()
		case "city":
			u.viewProc(ViewCity, arg)
		case "state":
			u.viewProc(ViewState, arg)
		}
	}
}

func (u *tgmUseCase) pingProc() {
	if err := u.tgmController.Send(
		fmt.Sprintf(
			"PONG [ %s ]",
			time.Now().In(u.loc).Format(time.RFC822),
		)); err != nil {
		u.logger.WithField("method", "pingProc").Debug(err)
	}
}

func (u *tgmUseCase) viewProc(view View, name string) {
	if name == "" {
		u.send("viewProc", fmt.Sprintf("usage: /%s <name>", view))
		return
	}

	var records []models.PriceRecord
	var err error

	switch view {
	case ViewCity:
		records, err = u.priceUseCase.ByCity(context.Background(), name)
	case ViewState:
		records, err = u.priceUseCase.ByState(context.Background(), name)
	}

	if err != nil {
		u.send("viewProc", fmt.Sprintf("[ %s ]\n%s", name, err))
		return
	}

	u.send("viewProc", formatRecords(name, records))
}

func (u *tgmUseCase) send(method, text string) {
	if err := u.tgmController.Send(text); err != nil {
		u.logger.WithField("method", method).Debug(err)
	}
}

func formatRecords(name string, records []models.PriceRecord) string {
	if len(records) == 0 {
		return fmt.Sprintf("[ %s ]\nno prices found", name)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[ %s ] %s\n", name, records[0].CapturedOn)

	for _, r := range records {
		fmt.Fprintf(&b, "%s\t%s\t%s\n", r.Price, r.Change, r.Trend)
	}

	return strings.TrimSuffix(b.String(), "\n")
}
