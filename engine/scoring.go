package engine

// Reward constants shared by both reward policies.
const (
	RewardMeld       = 100 // a pick completed a meld
	RewardKeepPair   = 80  // a pick left the distinct ranks unchanged
	RewardNoProgress = -80 // a drop left the distinct ranks unchanged
	RewardStep       = -1  // basic policy: any non-meld action
	ScoreDeltaWeight = -3  // multiplier applied to a stash score change
)

// stashSnapshot captures the quantities both reward policies compare.
type stashSnapshot struct {
	distinct int
	score    int
}

func snapshot(p *Player) stashSnapshot {
	return stashSnapshot{distinct: p.distinctValues(), score: p.StashScore()}
}

// pickReward scores a pick. Under RewardShaped an unchanged distinct-rank
// count earns RewardKeepPair even though the stash score rose; this mirrors
// dropReward with the opposite sign and is kept as-is.
func (r RewardPolicy) pickReward(melded bool, before, after stashSnapshot) int {
	if melded {
		return RewardMeld
	}
	if r == RewardBasic {
		return RewardStep
	}
	if after.distinct == before.distinct {
		return RewardKeepPair
	}
	return ScoreDeltaWeight * (after.score - before.score)
}

// dropReward scores a drop.
func (r RewardPolicy) dropReward(before, after stashSnapshot) int {
	if r == RewardBasic {
		return RewardStep
	}
	if after.distinct == before.distinct {
		return RewardNoProgress
	}
	return ScoreDeltaWeight * (after.score - before.score)
}
