package usecasees

import (
	"context"
	"fmt"
	"fuelprice/internal/controllers"
	"fuelprice/internal/parser"
	"fuelprice/internal/usecasees/structs"
	"fuelprice/models"
	"net/url"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type priceUseCase struct {
	clientController controllers.ClientCtrl
	tgmController    controllers.TgmCtrl

	assembler *Assembler
	urls      PageURLs
	layout    PageLayout

	metrics *structs.Metrics
	logger  *logrus.Logger
}

// NewPriceUseCase wires the scrape pipeline. tgm may be nil when alerts
// are not configured.
func NewPriceUseCase(
	client controllers.ClientCtrl,
	tgm controllers.TgmCtrl,
	assembler *Assembler,
	urls PageURLs,
	metrics *structs.Metrics,
	logger *logrus.Logger,
) *priceUseCase {
	return &priceUseCase{
		clientController: client,
		tgmController:    tgm,
		assembler:        assembler,
		urls:             urls,
		layout:           DefaultPageLayout,
		metrics:          metrics,
		logger:           logger,
	}
}

func (u *priceUseCase) AllStates(ctx context.Context) ([]models.PriceRecord, error) {
	return u.run(ctx, ViewAllStates, "", u.urls.AllStates())
}

func (u *priceUseCase) ByCity(ctx context.Context, city string) ([]models.PriceRecord, error) {
	return u.run(ctx, ViewCity, city, u.urls.City(city))
}

func (u *priceUseCase) ByState(ctx context.Context, state string) ([]models.PriceRecord, error) {
	return u.run(ctx, ViewState, state, u.urls.State(state))
}

func (u *priceUseCase) run(ctx context.Context, view View, label string, pageURL *url.URL) ([]models.PriceRecord, error) {
	logger := u.logger.
		WithField("method", "run").
		WithField("view", view.ToString()).
		WithField("url", pageURL.String())

	content, err := u.clientController.Fetch(ctx, pageURL)
	if err != nil {
		u.metrics.FetchFailures.WithLabelValues(view.ToString()).Inc()
		logger.WithError(err).Error("fetch failed")
		u.alert(view, pageURL, err)

		return nil, err
	}

	rows, err := parser.ParseTable(content)
	if err != nil {
		return nil, errors.Wrap(err, "parse table")
	}

	records := make([]models.PriceRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, models.NewPriceRecord(row.Name, row.Price, row.Change))
	}

	batch := u.layout.Slice(view, label, records)

	out, err := u.assembler.Assemble(ctx, view.Collection(), batch)
	if err != nil {
		logger.WithError(err).Error("store failed")
		return nil, err
	}

	u.metrics.RecordsStored.WithLabelValues(view.ToString()).Add(float64(len(out)))

	logger.
		WithField("parsed", len(records)).
		WithField("stored", len(out)).
		Info("batch captured")

	return out, nil
}

func (u *priceUseCase) alert(view View, pageURL *url.URL, cause error) {
	if u.tgmController == nil {
		return
	}

	if err := u.tgmController.Send(fmt.Sprintf("[ Fetch Failed ]\n%s\n%s\n%s", view, pageURL, cause)); err != nil {
		u.logger.WithField("method", "alert").Debug(err)
	}
}
