package game

// ForageSkill is the skill name foraging checks against.
const ForageSkill = "foraging"

// forageBaseChance is the success chance for an untrained forager.
const forageBaseChance = 0.05

// ForageResult describes the outcome of one foraging attempt.
type ForageResult struct {
	Found bool
	// Yield names the item definition to spawn on success.
	Yield string
	// Calories the spawned food should restore.
	Calories int
	// Depleted reports that the node has nothing left after this attempt.
	Depleted bool
}

// ForageChance is the success probability for a given skill tier and node
// quality. Untrained foragers get a flat floor; training and quality each
// raise it from a better baseline.
func ForageChance(skill SkillLevel, quality int) float64 {
	if quality < 1 {
		quality = 1
	}
	s := skill.Value()
	if s == 0 {
		return forageBaseChance
	}
	chance := 0.2 + 0.15*float64(s-1) + 0.1*float64(quality-1)
	if chance > 1 {
		chance = 1
	}
	return chance
}

// forageCalories is the calorie content of a find: better skill and better
// nodes yield richer finds, floored at 1.
func forageCalories(skill SkillLevel, quality int) int {
	if quality < 1 {
		quality = 1
	}
	s := skill.Value()
	if s < 1 {
		s = 1
	}
	cal := 1 + (s - 1) + (quality - 1)
	if cal < 1 {
		cal = 1
	}
	return cal
}

// Forage attempts one harvest from a resource node. roll is a uniform
// sample in [0,1); the caller supplies it so outcomes stay testable.
// Successful attempts deplete the node's abundance.
func (l *Living) Forage(node *ItemInstance, roll float64) (*ForageResult, error) {
	def := node.Def()
	if def == nil || !def.HasFlag(ItemFlagResource) {
		return nil, ErrNotForageable
	}
	if node.Abundance <= 0 {
		return nil, ErrNothingLeft
	}

	skill := l.SkillLevel(ForageSkill)
	if roll >= ForageChance(skill, def.Quality) {
		return &ForageResult{}, nil
	}

	node.Abundance--
	return &ForageResult{
		Found:    true,
		Yield:    string(def.Yield),
		Calories: forageCalories(skill, def.Quality),
		Depleted: node.Abundance == 0,
	}, nil
}
