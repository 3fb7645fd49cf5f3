package interact

import (
	"testing"

	"go.uber.org/zap"

	"github.com/interactd/server/internal/world"
)

func TestExcludedTypeIDs(t *testing.T) {
	for _, id := range []int32{179830, 179831, 179785, 179786} {
		if !Excluded(id) {
			t.Errorf("type id %d should be excluded", id)
		}
	}
	for _, id := range []int32{0, 1, 179832, 103713} {
		if Excluded(id) {
			t.Errorf("type id %d should not be excluded", id)
		}
	}
}

func TestEligiblePlayerSummon(t *testing.T) {
	ws := world.NewState(zap.NewNop())
	player := &world.Entity{Kind: world.KindPlayer}
	pid := ws.Spawn(player)

	pet := &world.Entity{Kind: world.KindCreature, Vitality: 50, SummonedBy: pid}
	ws.Spawn(pet)
	if Eligible(ws, pet) {
		t.Error("player-summoned creature should be ineligible")
	}

	wild := &world.Entity{Kind: world.KindCreature, Vitality: 50}
	ws.Spawn(wild)
	if !Eligible(ws, wild) {
		t.Error("wild creature should be eligible")
	}
}

func TestEligibleSummonerVariants(t *testing.T) {
	ws := world.NewState(zap.NewNop())

	// Summoner is a creature, not a player: still eligible.
	boss := &world.Entity{Kind: world.KindCreature, Vitality: 500}
	bossID := ws.Spawn(boss)
	minion := &world.Entity{Kind: world.KindCreature, Vitality: 20, SummonedBy: bossID}
	ws.Spawn(minion)
	if !Eligible(ws, minion) {
		t.Error("creature-summoned entity should be eligible")
	}

	// Summoner despawned: the summon tie is unresolvable, treat as wild.
	orphan := &world.Entity{Kind: world.KindCreature, Vitality: 20, SummonedBy: 9999}
	ws.Spawn(orphan)
	if !Eligible(ws, orphan) {
		t.Error("entity with unresolvable summoner should be eligible")
	}
}

func TestEligibleBlacklistedWorldObject(t *testing.T) {
	ws := world.NewState(zap.NewNop())

	crate := &world.Entity{Kind: world.KindWorldObject, TypeID: 179830, PosRecord: &world.PosRecord{}}
	ws.Spawn(crate)
	if Eligible(ws, crate) {
		t.Error("blacklisted world object should be ineligible")
	}

	vein := &world.Entity{Kind: world.KindWorldObject, TypeID: 103713, PosRecord: &world.PosRecord{}}
	ws.Spawn(vein)
	if !Eligible(ws, vein) {
		t.Error("ordinary world object should be eligible")
	}

	// The blacklist only binds world objects; a creature sharing a type id
	// is untouched.
	odd := &world.Entity{Kind: world.KindCreature, Vitality: 10, TypeID: 179830}
	ws.Spawn(odd)
	if !Eligible(ws, odd) {
		t.Error("creature with a blacklisted type id should be eligible")
	}
}
