package checkin

type ExecutionStatus string

const (
	ExecutionCompleted ExecutionStatus = "COMPLETED"
	ExecutionPartial   ExecutionStatus = "PARTIAL"
	ExecutionMissed    ExecutionStatus = "MISSED"
)

var executionLabels = map[ExecutionStatus]string{
	ExecutionCompleted: "Cumpri integralmente",
	ExecutionPartial:   "Cumpri parcialmente",
	ExecutionMissed:    "Não cumpri",
}

func (s ExecutionStatus) IsValid() bool { _, ok := executionLabels[s]; return ok }
func (s ExecutionStatus) Label() string { return executionLabels[s] }

type DifficultyMoment string

const (
	DifficultyMorning   DifficultyMoment = "MORNING"
	DifficultyAfternoon DifficultyMoment = "AFTERNOON"
	DifficultyNight     DifficultyMoment = "NIGHT"
	DifficultyNone      DifficultyMoment = "NONE"
)

var difficultyLabels = map[DifficultyMoment]string{
	DifficultyMorning:   "Manhã",
	DifficultyAfternoon: "Tarde",
	DifficultyNight:     "Noite",
	DifficultyNone:      "Não senti dificuldade",
}

func (d DifficultyMoment) IsValid() bool { _, ok := difficultyLabels[d]; return ok }
func (d DifficultyMoment) Label() string { return difficultyLabels[d] }

type SabotageType string

const (
	SabotageInternal SabotageType = "INTERNAL"
	SabotageExternal SabotageType = "EXTERNAL"
	SabotageEnergy   SabotageType = "ENERGY"
	SabotageSocial   SabotageType = "SOCIAL"
	SabotageNone     SabotageType = "NONE"
)

var sabotageLabels = map[SabotageType]string{
	SabotageInternal: "Minha própria mente me atrapalhou (ansiedade, autocrítica)",
	SabotageExternal: "O ambiente ao redor me tirou o foco (distrações)",
	SabotageEnergy:   "Cansaço ou falta de energia me venceram",
	SabotageSocial:   "Senti o peso da opinião ou expectativa dos outros",
	SabotageNone:     "Hoje o dia fluiu bem, sem grandes barreiras",
}

// sabotageShortLabels are the report captions.
var sabotageShortLabels = map[SabotageType]string{
	SabotageInternal: "Mental/Emocional",
	SabotageExternal: "Distrações Externas",
	SabotageEnergy:   "Falta de Energia",
	SabotageSocial:   "Influência Social",
	SabotageNone:     "Nenhuma",
}

func (s SabotageType) IsValid() bool      { _, ok := sabotageLabels[s]; return ok }
func (s SabotageType) Label() string      { return sabotageLabels[s] }
func (s SabotageType) ShortLabel() string { return sabotageShortLabels[s] }

type MotivationType string

const (
	MotivationGrowth        MotivationType = "GROWTH"
	MotivationJoy           MotivationType = "JOY"
	MotivationSupport       MotivationType = "SUPPORT"
	MotivationGoal          MotivationType = "GOAL"
	MotivationAutomatic     MotivationType = "AUTOMATIC"
	MotivationNotApplicable MotivationType = "NOT_APPLICABLE"
)

var motivationLabels = map[MotivationType]string{
	MotivationGrowth:        "Fiz por mim, pelo meu crescimento pessoal",
	MotivationJoy:           "A alegria de simplesmente fazer a atividade me moveu",
	MotivationSupport:       "O apoio e reconhecimento de outros me incentivou",
	MotivationGoal:          "Pensei na recompensa ou no resultado final",
	MotivationAutomatic:     "Fiz no automático, sem pensar muito",
	MotivationNotApplicable: "Não se aplica (hábito não realizado)",
}

func (m MotivationType) IsValid() bool { _, ok := motivationLabels[m]; return ok }
func (m MotivationType) Label() string { return motivationLabels[m] }

type EnergyLevel string

const (
	EnergyBetter        EnergyLevel = "BETTER"
	EnergySame          EnergyLevel = "SAME"
	EnergyWorse         EnergyLevel = "WORSE"
	EnergyNotApplicable EnergyLevel = "NOT_APPLICABLE"
)

var energyLabels = map[EnergyLevel]string{
	EnergyBetter:        "Melhor",
	EnergySame:          "Igual",
	EnergyWorse:         "Pior",
	EnergyNotApplicable: "Não se aplica (hábito não realizado)",
}

func (e EnergyLevel) IsValid() bool { _, ok := energyLabels[e]; return ok }
func (e EnergyLevel) Label() string { return energyLabels[e] }

type NextDayPlan string

const (
	PlanRepeat   NextDayPlan = "REPEAT"
	PlanAdjust   NextDayPlan = "ADJUST"
	PlanSimplify NextDayPlan = "SIMPLIFY"
	PlanPause    NextDayPlan = "PAUSE"
)

var planLabels = map[NextDayPlan]string{
	PlanRepeat:   "Repetir a estratégia que funcionou",
	PlanAdjust:   "Ajustar o ambiente ou horário para facilitar",
	PlanSimplify: "Simplificar o hábito para garantir a execução",
	PlanPause:    "Fazer uma pausa consciente para recarregar",
}

func (p NextDayPlan) IsValid() bool { _, ok := planLabels[p]; return ok }
func (p NextDayPlan) Label() string { return planLabels[p] }
