package game

// SkillLevel is a coarse proficiency tier.
type SkillLevel string

const (
	SkillUntrained  SkillLevel = "untrained"
	SkillNovice     SkillLevel = "novice"
	SkillJourneyman SkillLevel = "journeyman"
	SkillMaster     SkillLevel = "master"
)

var skillLevels = []SkillLevel{SkillUntrained, SkillNovice, SkillJourneyman, SkillMaster}

func (s SkillLevel) Valid() bool {
	for _, l := range skillLevels {
		if s == l {
			return true
		}
	}
	return false
}

// Value maps the tier to a numeric rank: untrained 0 through master 3.
func (s SkillLevel) Value() int {
	for i, l := range skillLevels {
		if s == l {
			return i
		}
	}
	return 0
}

// ParseSkillLevel returns the tier for a name, or false if unknown.
func ParseSkillLevel(name string) (SkillLevel, bool) {
	s := SkillLevel(name)
	return s, s.Valid()
}

// SkillLevel returns the entity's tier in the named skill. Unknown skills
// are untrained.
func (l *Living) SkillLevel(name string) SkillLevel {
	if s, ok := l.Char.Skills[name]; ok && s.Valid() {
		return s
	}
	return SkillUntrained
}

// SetSkill records the entity's tier in a skill. Setting untrained removes
// the entry.
func (l *Living) SetSkill(name string, level SkillLevel) {
	if l.Char.Skills == nil {
		l.Char.Skills = map[string]SkillLevel{}
	}
	if level == SkillUntrained {
		delete(l.Char.Skills, name)
		return
	}
	l.Char.Skills[name] = level
}
