package perft

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	chesserrors "github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/hashing"
	"github.com/lgbarn/chess-engine-go/internal/testutil"
)

const (
	fenEndgame  = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	fenPromo    = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	fenTricky   = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
	fenMidgame  = "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10"
	fenEnPassEv = "8/8/8/8/k2Pp2Q/8/8/3K4 b - d3 0 1"
)

// Published perft results.
var perftTests = []struct {
	name   string
	fen    string
	counts []uint64 // counts[i] is depth i+1
}{
	{"initial", engine.InitialFEN, []uint64{20, 400, 8902, 197281}},
	{"kiwipete", testutil.Kiwipete, []uint64{48, 2039, 97862}},
	{"endgame", fenEndgame, []uint64{14, 191, 2812, 43238}},
	{"promotions", fenPromo, []uint64{6, 264, 9467}},
	{"tricky", fenTricky, []uint64{44, 1486, 62379}},
	{"midgame", fenMidgame, []uint64{46, 2079, 89890}},
}

func TestCount(t *testing.T) {
	for _, tt := range perftTests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutil.MustBoard(t, tt.fen)
			for i, want := range tt.counts {
				depth := i + 1
				if testing.Short() && want > 10000 {
					continue
				}
				if got := Count(board, depth); got != want {
					t.Errorf("Count(depth %d) = %d, want %d", depth, got, want)
				}
			}
		})
	}
}

func TestCount_DepthZero(t *testing.T) {
	testutil.AssertEqual(t, Count(engine.NewInitialBoard(), 0), uint64(1))
}

// The pinned en passant capture d3 is illegal: removing both pawns would
// expose the black king on the rank.
func TestCount_EnPassantDiscoveredCheck(t *testing.T) {
	board := testutil.MustBoard(t, fenEnPassEv)
	for _, m := range engine.LegalMoves(board, board.ToMove) {
		if m.String() == "e4d3" {
			t.Fatalf("e4d3 en passant is offered although it exposes the king")
		}
	}
}

func TestCountCached_MatchesUncached(t *testing.T) {
	cache := hashing.NewPerftCache(0)
	for _, tt := range perftTests {
		board := testutil.MustBoard(t, tt.fen)
		depth := min(3, len(tt.counts))
		if got, want := CountCached(board, depth, cache), tt.counts[depth-1]; got != want {
			t.Errorf("%s: CountCached(depth %d) = %d, want %d", tt.name, depth, got, want)
		}
	}
}

// 1.Nf3 Nc6 2.Nc3 and 1.Nc3 Nc6 2.Nf3 reach the same board after three
// plies, so a depth 4 count must answer the last ply from the cache.
func TestCountCached_HitsOnTransposition(t *testing.T) {
	if testing.Short() {
		t.Skip("depth 4 count")
	}
	cache := hashing.NewPerftCache(0)
	got := CountCached(engine.NewInitialBoard(), 4, cache)
	testutil.AssertEqual(t, got, uint64(197281))

	hits, misses := cache.Stats()
	if hits == 0 {
		t.Errorf("cache hits = 0 (misses %d), want hits from transposed move orders", misses)
	}
}

// Single-ply nodes are cached too, so a repeated shallow count is answered
// without generating moves.
func TestCountCached_DepthOne(t *testing.T) {
	cache := hashing.NewPerftCache(0)
	board := engine.NewInitialBoard()

	testutil.AssertEqual(t, CountCached(board, 1, cache), uint64(20))
	testutil.AssertEqual(t, CountCached(board, 1, cache), uint64(20))

	hits, misses := cache.Stats()
	testutil.AssertEqual(t, hits, uint64(1))
	testutil.AssertEqual(t, misses, uint64(1))
}

func TestDivide(t *testing.T) {
	board := testutil.MustBoard(t, testutil.Kiwipete)
	before := *board

	for _, cached := range []bool{false, true} {
		cfg := config.NewConfigBuilder().
			WithPerftWorkers(4).
			WithPerftCache(cached, 0).
			Build()

		entries, err := Divide(context.Background(), board, 2, cfg)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, Total(entries), uint64(2039))

		moves := engine.LegalMoves(board, board.ToMove)
		if len(entries) != len(moves) {
			t.Fatalf("Divide() returned %d entries, want %d", len(entries), len(moves))
		}
		for i, e := range entries {
			if !e.Move.SameRequest(moves[i]) {
				t.Errorf("entries[%d].Move = %v, want %v (generation order)", i, e.Move, moves[i])
			}
		}
	}

	testutil.AssertEqual(t, *board, before)
}

func TestDivide_DepthOne(t *testing.T) {
	entries, err := Divide(context.Background(), engine.NewInitialBoard(), 1, nil)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(entries), 20)
	for _, e := range entries {
		if e.Nodes != 1 {
			t.Errorf("%v: Nodes = %d at depth 1, want 1", e.Move, e.Nodes)
		}
	}
}

func TestDivide_Errors(t *testing.T) {
	board := engine.NewInitialBoard()

	_, err := Divide(context.Background(), board, 0, nil)
	testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidConfig)

	cfg := config.NewConfig()
	cfg.Perft.Workers = 0
	_, err = Divide(context.Background(), board, 2, cfg)
	testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidConfig)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Divide(ctx, board, 3, nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Divide(cancelled) error = %v, want context.Canceled", err)
	}
}

func TestDivide_Logs(t *testing.T) {
	buf := &bytes.Buffer{}
	cfg := config.NewConfigBuilder().
		WithLogWriter(buf).
		WithLogLevel(slog.LevelDebug).
		WithPerftCache(true, 100).
		Build()

	_, err := Divide(context.Background(), engine.NewInitialBoard(), 3, cfg)
	testutil.AssertNoError(t, err)

	out := buf.String()
	for _, want := range []string{"perft divide", "nodes=8902", "perft cache"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func BenchmarkCount(b *testing.B) {
	board := testutil.MustBoard(b, testutil.Kiwipete)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Count(board, 2)
	}
}

func BenchmarkDivide(b *testing.B) {
	board := engine.NewInitialBoard()
	cfg := config.NewConfigBuilder().WithPerftWorkers(4).Build()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Divide(context.Background(), board, 3, cfg); err != nil {
			b.Fatal(err)
		}
	}
}
