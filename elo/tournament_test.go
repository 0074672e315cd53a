package elo

import (
	"errors"
	"math"
	"testing"

	"github.com/lixenwraith/neat-arena/config"
	"github.com/lixenwraith/neat-arena/simerr"
)

func TestApplyUpdate_EqualRatings(t *testing.T) {
	cfg := config.DefaultEloConfig()
	ri := Rating{Name: "a", Rating: 1200}
	rj := Rating{Name: "b", Rating: 1200}

	applyUpdate(&ri, &rj, true, cfg)

	if ri.Rating != 1216 {
		t.Errorf("winner rating = %v, want 1216", ri.Rating)
	}
	if rj.Rating != 1184 {
		t.Errorf("loser rating = %v, want 1184", rj.Rating)
	}
	if ri.Wins != 1 || rj.Losses != 1 {
		t.Errorf("win/loss counts = %d/%d, want 1/1", ri.Wins, rj.Losses)
	}
}

func TestApplyUpdate_UpsetMovesMore(t *testing.T) {
	cfg := config.DefaultEloConfig()
	underdog := Rating{Rating: 1000}
	favorite := Rating{Rating: 1400}

	applyUpdate(&underdog, &favorite, true, cfg)

	// E_underdog = 1/(1+10^(400/400)) = 1/11
	wantGain := cfg.K * (1.0 - 1.0/11.0)
	if math.Abs(underdog.Rating-(1000+wantGain)) > 1e-9 {
		t.Errorf("underdog rating = %v, want %v", underdog.Rating, 1000+wantGain)
	}
	// Updates are zero-sum.
	if math.Abs((underdog.Rating+favorite.Rating)-2400) > 1e-9 {
		t.Errorf("ratings not zero-sum: %v + %v", underdog.Rating, favorite.Rating)
	}
}

func TestRun_TooFewParticipants(t *testing.T) {
	_, err := Run(config.DefaultEvoConfig(), config.DefaultEloConfig(), []Participant{{Name: "only"}}, 1)
	if !errors.Is(err, simerr.ErrNoParticipants) {
		t.Fatalf("err = %v, want ErrNoParticipants", err)
	}
}

func TestRun_NaiveRoundRobin(t *testing.T) {
	evoCfg := config.DefaultEvoConfig()
	evoCfg.MaxTicks = 50
	evoCfg.MapWidth = 100
	evoCfg.MapHeight = 100
	eloCfg := config.DefaultEloConfig()

	participants := []Participant{
		{Name: "naive_a"},
		{Name: "naive_b"},
		{Name: "naive_c"},
	}

	ratings, err := Run(evoCfg, eloCfg, participants, 2)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(ratings) != 3 {
		t.Fatalf("got %d ratings, want 3", len(ratings))
	}

	// Pairwise updates are zero-sum, so the total is conserved.
	total := 0.0
	games := 0
	for _, r := range ratings {
		total += r.Rating
		games += r.Wins + r.Losses
	}
	if math.Abs(total-3*eloCfg.InitialRating) > 1e-6 {
		t.Errorf("rating total = %v, want %v", total, 3*eloCfg.InitialRating)
	}
	if games != 6 {
		t.Errorf("total win+loss entries = %d, want 6 (3 pairs, 2 sides)", games)
	}
	for i := 1; i < len(ratings); i++ {
		if ratings[i-1].Rating < ratings[i].Rating {
			t.Errorf("ratings not sorted descending at %d", i)
		}
	}
}
