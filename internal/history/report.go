package history

import (
	"fmt"
	"sort"
	"strings"

	"github.com/saulo-duarte/menteviva-api/internal/checkin"
	util "github.com/saulo-duarte/menteviva-api/internal/utils"
)

type CategoryCount struct {
	Key        string  `json:"key"`
	Label      string  `json:"label"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage,omitempty"`
}

type Report struct {
	TotalCheckins        int             `json:"total_checkins"`
	Execution            []CategoryCount `json:"execution"`
	Difficulty           []CategoryCount `json:"difficulty"`
	Sabotage             []CategoryCount `json:"sabotage"`
	TotalSabotages       int             `json:"total_sabotages"`
	Motivation           []CategoryCount `json:"motivation"`
	MostDifficultMoment  *CategoryCount  `json:"most_difficult_moment,omitempty"`
	MostFrequentSabotage *CategoryCount  `json:"most_frequent_sabotage,omitempty"`
	QuickInsight         string          `json:"quick_insight"`
}

const (
	insightNoData   = "Faça seu primeiro check-in para ver os relatórios."
	insightTooFew   = "Continue registrando seus check-ins para receber insights personalizados sobre sua jornada!"
	insightEmerging = "Seus padrões estão começando a emergir. Continue focado e observe como seus sentimentos e o ambiente impactam seu hábito."
)

// BuildReport groups check-ins by category. Category order inside each
// breakdown is the order in which categories first appear, except for
// sabotage which is sorted by count (ties keep first-appearance order).
func BuildReport(checkins []checkin.Checkin) Report {
	execution := util.NewTally[checkin.ExecutionStatus]()
	difficulty := util.NewTally[checkin.DifficultyMoment]()
	sabotage := util.NewTally[checkin.SabotageType]()
	motivation := util.NewTally[checkin.MotivationType]()

	for _, c := range checkins {
		execution.Add(c.ExecutionStatus)
		if c.ExecutionStatus != checkin.ExecutionCompleted && c.DifficultyMoment != checkin.DifficultyNone {
			difficulty.Add(c.DifficultyMoment)
		}
		if c.SabotageType != checkin.SabotageNone {
			sabotage.Add(c.SabotageType)
		}
		if c.MotivationType != checkin.MotivationNotApplicable {
			motivation.Add(c.MotivationType)
		}
	}

	r := Report{
		TotalCheckins:  len(checkins),
		Execution:      counts(execution, checkin.ExecutionStatus.Label),
		Difficulty:     counts(difficulty, checkin.DifficultyMoment.Label),
		Sabotage:       shares(sabotage),
		TotalSabotages: sabotage.Total(),
		Motivation:     counts(motivation, checkin.MotivationType.Label),
	}

	if k, n, ok := difficulty.MostFrequent(); ok {
		r.MostDifficultMoment = &CategoryCount{Key: string(k), Label: k.Label(), Count: n}
	}
	if k, n, ok := sabotage.MostFrequent(); ok {
		r.MostFrequentSabotage = &CategoryCount{Key: string(k), Label: k.ShortLabel(), Count: n}
	}
	r.QuickInsight = quickInsight(r)
	return r
}

func counts[K ~string](t *util.Tally[K], label func(K) string) []CategoryCount {
	out := make([]CategoryCount, 0, t.Len())
	for _, e := range t.Entries() {
		out = append(out, CategoryCount{Key: string(e.Key), Label: label(e.Key), Count: e.Count})
	}
	return out
}

func shares(t *util.Tally[checkin.SabotageType]) []CategoryCount {
	total := t.Total()
	out := make([]CategoryCount, 0, t.Len())
	for _, e := range t.Entries() {
		cc := CategoryCount{Key: string(e.Key), Label: e.Key.ShortLabel(), Count: e.Count}
		if total > 0 {
			cc.Percentage = float64(e.Count) / float64(total) * 100
		}
		out = append(out, cc)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

func quickInsight(r Report) string {
	switch {
	case r.TotalCheckins == 0:
		return insightNoData
	case r.TotalCheckins < 3:
		return insightTooFew
	case r.MostDifficultMoment != nil && r.MostFrequentSabotage != nil:
		return fmt.Sprintf(
			"Parece que seu maior desafio acontece durante a **%s**, muitas vezes ligado a **%s**. "+
				"Que tal planejar uma pequena ação preventiva nesse período, como um lembrete ou uma pausa de 5 minutos antes de começar?",
			strings.ToLower(r.MostDifficultMoment.Label), strings.ToLower(r.MostFrequentSabotage.Label),
		)
	case r.MostDifficultMoment != nil:
		return fmt.Sprintf(
			"Notamos que a **%s** é o período que exige mais da sua energia. "+
				"Reconhecer isso já é um grande passo! Como você pode se preparar melhor para esse momento do dia?",
			strings.ToLower(r.MostDifficultMoment.Label),
		)
	default:
		return insightEmerging
	}
}
