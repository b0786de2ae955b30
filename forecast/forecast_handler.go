package forecast

import (
	"context"
	"errors"
	"time"

	"github.com/leona-app/analytics/common"
	"github.com/leona-app/analytics/model"
	"github.com/leona-app/analytics/utils"
	"go.uber.org/zap"
)

// ForecastCombined predicts the next feeding regardless of milk type, plus
// a secondary estimate with breastfeeding excluded so the product can show
// volume projections with and without nursing sessions. Both are the same
// pipeline over two different channel filters.
//
// The secondary estimate is optional: when the bottle channels alone lack
// history it is omitted, not an error.
func ForecastCombined(ctx context.Context, series *model.FeedingSeries,
	now time.Time, cfg *Config) (*model.CombinedForecast, error) {
	logger := utils.GetLogger(ctx)

	defer func() {
		if err := recover(); err != nil {
			logger.Error("ForecastCombined recover panic error!", zap.Any("err", err),
				zap.String("panic info", utils.GetPanicInfo()), zap.String("series", series.DebugString()))
		}
	}()

	allMilk, err := ForecastNext(ctx, series, MilkChannels, now, cfg)
	if err != nil {
		return nil, err
	}

	res := &model.CombinedForecast{AllMilk: allMilk}

	bottleOnly, err := ForecastNext(ctx, series, BottleChannels, now, cfg)
	if err != nil {
		if !errors.Is(err, common.ErrorNotEnoughHistory) {
			return nil, err
		}
		logger.Info("bottle-only history too short, skip secondary estimate")
		return res, nil
	}

	res.WithoutBreastfeeding = bottleOnly
	return res, nil
}
