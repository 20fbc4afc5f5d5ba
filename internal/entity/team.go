package entity

// Team is the player's ordered list of creatures.
// Active points at the creature currently leading or fighting.
type Team struct {
	Members []*Creature
	Active  int
}

// NewTeam creates a team led by the first member.
func NewTeam(members ...*Creature) *Team {
	return &Team{Members: members}
}

// ActiveMember returns the creature at the active index, or nil for an empty team.
func (t *Team) ActiveMember() *Creature {
	if t.Active < 0 || t.Active >= len(t.Members) {
		return nil
	}
	return t.Members[t.Active]
}

// FirstAlive returns the index of the first member with HP, or -1.
func (t *Team) FirstAlive() int {
	for i, m := range t.Members {
		if m.IsAlive() {
			return i
		}
	}
	return -1
}

// IsDefeated returns true if no member has HP remaining.
func (t *Team) IsDefeated() bool {
	return t.FirstAlive() == -1
}

// AliveCount returns the number of members with HP remaining.
func (t *Team) AliveCount() int {
	count := 0
	for _, m := range t.Members {
		if m.IsAlive() {
			count++
		}
	}
	return count
}

// HealAll restores every member to full HP.
func (t *Team) HealAll() {
	for _, m := range t.Members {
		m.Restore()
	}
}

// SetActive makes member i the lead. Fainted or out-of-range members are refused.
func (t *Team) SetActive(i int) bool {
	if i < 0 || i >= len(t.Members) || !t.Members[i].IsAlive() {
		return false
	}
	t.Active = i
	return true
}

// TotalHP returns the sum of all members' current HP.
func (t *Team) TotalHP() int {
	total := 0
	for _, m := range t.Members {
		total += m.HP
	}
	return total
}
