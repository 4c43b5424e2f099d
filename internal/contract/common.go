package contract

import "github.com/alexanderramin/mnemo/internal/scheduler"

type DailyPlan = scheduler.DailyPlan

type RankedItem = scheduler.RankedItem

type TagWeakness = scheduler.TagWeakness

type StreakStats = scheduler.StreakStats
