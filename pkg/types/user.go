package types

type AcquisitionChannel string

const (
	AcquisitionChannelOrganic    AcquisitionChannel = "organic"
	AcquisitionChannelPaidSearch AcquisitionChannel = "paid_search"
	AcquisitionChannelSocial     AcquisitionChannel = "social"
	AcquisitionChannelReferral   AcquisitionChannel = "referral"
	AcquisitionChannelContent    AcquisitionChannel = "content"
)

// ActivePeriod selects the trailing window used for active user counts.
type ActivePeriod string

const (
	ActivePeriodDaily   ActivePeriod = "daily"
	ActivePeriodWeekly  ActivePeriod = "weekly"
	ActivePeriodMonthly ActivePeriod = "monthly"
)

// Days returns the window length. Unknown periods fall back to monthly.
func (p ActivePeriod) Days() int {
	switch p {
	case ActivePeriodDaily:
		return 1
	case ActivePeriodWeekly:
		return 7
	default:
		return 30
	}
}
