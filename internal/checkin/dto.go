package checkin

type CreateCheckinDTO struct {
	ExecutionStatus  ExecutionStatus  `json:"execution_status"`
	DifficultyMoment DifficultyMoment `json:"difficulty_moment"`
	SabotageType     SabotageType     `json:"sabotage_type"`
	MotivationType   MotivationType   `json:"motivation_type"`
	EnergyLevel      EnergyLevel      `json:"energy_level"`
	NextDayPlan      NextDayPlan      `json:"next_day_plan"`
	Learnings        string           `json:"learnings"`
}

// Normalize applies the same coupling between fields that the check-in form
// enforces: a completed day has no difficulty moment, a missed day has no
// motivation or energy reading.
func (d *CreateCheckinDTO) Normalize() {
	switch d.ExecutionStatus {
	case ExecutionCompleted:
		d.DifficultyMoment = DifficultyNone
		if d.MotivationType == MotivationNotApplicable {
			d.MotivationType = MotivationGrowth
		}
		if d.EnergyLevel == EnergyNotApplicable {
			d.EnergyLevel = EnergySame
		}
	case ExecutionMissed:
		d.MotivationType = MotivationNotApplicable
		d.EnergyLevel = EnergyNotApplicable
		if d.DifficultyMoment == DifficultyNone {
			d.DifficultyMoment = DifficultyMorning
		}
	case ExecutionPartial:
		if d.DifficultyMoment == DifficultyNone {
			d.DifficultyMoment = DifficultyMorning
		}
		if d.MotivationType == MotivationNotApplicable {
			d.MotivationType = MotivationGrowth
		}
		if d.EnergyLevel == EnergyNotApplicable {
			d.EnergyLevel = EnergySame
		}
	}
}
