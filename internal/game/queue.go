package game

// EncounterQueue is the ordered list of entries of one encounter. Entries
// before Active are resolved and are never touched again.
type EncounterQueue struct {
	Entries []Combatant
	Active  int
}

// Current returns the active entry, or nil once the queue is exhausted.
func (q *EncounterQueue) Current() *Combatant {
	if q == nil || q.Active < 0 || q.Active >= len(q.Entries) {
		return nil
	}
	return &q.Entries[q.Active]
}

// Exhausted reports whether every entry has been resolved.
func (q *EncounterQueue) Exhausted() bool {
	return q == nil || q.Active >= len(q.Entries)
}

// Advance moves the cursor past the active entry. It reports whether the
// queue is exhausted afterwards.
func (q *EncounterQueue) Advance() bool {
	if q.Active < len(q.Entries) {
		q.Active++
	}
	return q.Exhausted()
}

// Pending returns the indices from the cursor to the end.
func (q *EncounterQueue) Pending() []int {
	if q.Exhausted() {
		return nil
	}
	out := make([]int, 0, len(q.Entries)-q.Active)
	for i := q.Active; i < len(q.Entries); i++ {
		out = append(out, i)
	}
	return out
}

// EnemyCount counts enemy entries, resolved or not.
func (q *EncounterQueue) EnemyCount() int {
	n := 0
	for i := range q.Entries {
		if q.Entries[i].IsEnemy() {
			n++
		}
	}
	return n
}

// Clone returns a deep copy; Combatant holds no references.
func (q *EncounterQueue) Clone() *EncounterQueue {
	if q == nil {
		return nil
	}
	return &EncounterQueue{
		Entries: append([]Combatant(nil), q.Entries...),
		Active:  q.Active,
	}
}
