package analytics

import (
	"time"

	"github.com/fatflowers/jobmetrics/internal/app/service/dataset"
	"github.com/fatflowers/jobmetrics/internal/models"
	"github.com/fatflowers/jobmetrics/pkg/config"
	"github.com/fatflowers/jobmetrics/pkg/types"
)

var epoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

func dayN(n int) time.Time { return epoch.AddDate(0, 0, n) }

func ptr[T any](v T) *T { return &v }

func user(id string, signupDay int, channel types.AcquisitionChannel, segment string, cac float64) *models.User {
	return &models.User{
		UserID:             id,
		SignupDate:         dayN(signupDay),
		AcquisitionChannel: channel,
		UserSegment:        segment,
		CAC:                cac,
	}
}

func sub(userID string, startDay int, endDay *int, plan types.PlanType, mrr float64) *models.Subscription {
	s := &models.Subscription{
		UserID:            userID,
		SubscriptionStart: dayN(startDay),
		PlanType:          plan,
		BillingCycle:      types.BillingCycleMonthly,
		MRR:               mrr,
	}
	if endDay != nil {
		s.SubscriptionEnd = ptr(dayN(*endDay))
	}
	return s
}

func scan(userID string, scanDay int, matchRate float64) *models.Scan {
	return &models.Scan{UserID: userID, ScanDate: dayN(scanDay), MatchRate: matchRate}
}

// revenue returns one row per day in [fromDay, toDay] with a constant MRR.
func revenue(fromDay, toDay int, mrr float64, active int) []*models.RevenueDay {
	var out []*models.RevenueDay
	for d := fromDay; d <= toDay; d++ {
		out = append(out, &models.RevenueDay{Date: dayN(d), MRR: mrr, ActiveSubscriptions: active})
	}
	return out
}

func analyzerOf(ds *dataset.Dataset) *Analyzer {
	return New(ds, Options{Thresholds: config.DefaultThresholds()})
}

// sampleDataset is a small but complete dataset used across tests.
func sampleDataset() *dataset.Dataset {
	return &dataset.Dataset{
		Users: []*models.User{
			user("u1", 0, types.AcquisitionChannelOrganic, "job_seeker", 0),
			user("u2", 3, types.AcquisitionChannelPaidSearch, "career_changer", 60),
			user("u3", 10, types.AcquisitionChannelPaidSearch, "professional", 40),
			user("u4", 40, types.AcquisitionChannelSocial, "job_seeker", 30),
			user("u5", 45, types.AcquisitionChannelOrganic, "recent_grad", 0),
		},
		Subscriptions: []*models.Subscription{
			sub("u1", 2, nil, types.PlanTypeProfessional, 49.99),
			sub("u2", 5, ptr(50), types.PlanTypeBasic, 29.99),
			sub("u4", 42, nil, types.PlanTypePremium, 99.99),
		},
		Scans: []*models.Scan{
			scan("u1", 0, 70), scan("u1", 1, 80), scan("u1", 40, 75),
			scan("u2", 4, 60), scan("u2", 6, 62),
			scan("u3", 11, 90),
			scan("u4", 41, 55), scan("u4", 58, 65), scan("u4", 59, 68),
			scan("u5", 59, 85),
		},
		Revenue: revenue(0, 59, 150, 2),
	}
}
