package forecast

import "github.com/leona-app/analytics/model"

// ChannelPredicate selects which feeding channels participate in a
// forecast. The same windowed-statistics pipeline runs over any predicate,
// so channel combinations are filters, not separate algorithms.
type ChannelPredicate func(model.Channel) bool

func SingleChannel(channel model.Channel) ChannelPredicate {
	return func(c model.Channel) bool { return c == channel }
}

func AnyOf(channels ...model.Channel) ChannelPredicate {
	return func(c model.Channel) bool {
		for _, channel := range channels {
			if c == channel {
				return true
			}
		}
		return false
	}
}

var (
	// MilkChannels is "next feeding regardless of type": nursing, formula
	// and expressed milk together.
	MilkChannels = AnyOf(model.ChannelBreastfeeding, model.ChannelFormula, model.ChannelExpressedMilk)

	// BottleChannels excludes breastfeeding, leaving the channels whose
	// records carry a milliliter volume.
	BottleChannels = AnyOf(model.ChannelFormula, model.ChannelExpressedMilk)
)
