// Command cdclsolve is a minimal driver over the internal/sat primitives: it
// parses a DIMACS CNF file, runs a naive decide/propagate/backjump loop
// using internal/order's lowest-index heuristic, and reports SAT or UNSAT.
// It exists to exercise the core end to end; it is not a competitive
// solver, and it doesn't try to be one.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/cdclsat/satkernel/internal/dimacs"
	"github.com/cdclsat/satkernel/internal/order"
	"github.com/cdclsat/satkernel/internal/sat"
)

var flagCPUProfile = flag.Bool(
	"cpuprof",
	false,
	"save pprof CPU profile in cpuprof",
)

type config struct {
	instanceFile string
	cpuProfile   bool
}

func parseConfig() (*config, error) {
	flag.Parse()
	if flag.NArg() == 0 || flag.Arg(0) == "" {
		return nil, fmt.Errorf("missing instance file")
	}
	return &config{
		instanceFile: flag.Arg(0),
		cpuProfile:   *flagCPUProfile,
	}, nil
}

// solve drives s to a fixpoint: decide, propagate, and on conflict backjump
// to the learned clause's assertion level and assert it. It returns true if
// every variable ends up instantiated without deriving the empty clause,
// false if the empty clause was derived (the formula is unsatisfiable).
func solve(s *sat.State, ord *order.NaiveOrder) bool {
	if c := firstConflict(s); c != nil {
		if !resolve(s, c) {
			return false
		}
	}
	for {
		lit, ok := ord.Next(s)
		if !ok {
			return true
		}
		if c := s.DecideLiteral(lit); c != nil {
			if !resolve(s, c) {
				return false
			}
		}
	}
}

// firstConflict runs the initial, pre-decision unit resolution pass and
// returns the conflict clause it produced, or nil if none occurred.
func firstConflict(s *sat.State) *sat.Clause {
	if s.UnitResolution() {
		return nil
	}
	return s.AssertedClause()
}

// resolve backjumps from the current decision level down to c's assertion
// level, asserts c, and repeats for whatever conflict that produces. It
// returns false as soon as an asserted clause turns out to be empty: the
// formula has no model.
func resolve(s *sat.State, c *sat.Clause) bool {
	for c != nil {
		for !s.AtAssertionLevel(c) {
			s.UndoDecideLiteral()
		}
		if c.Size() == 0 {
			return false
		}
		c = s.AssertClause(c)
	}
	return true
}

func run(cfg *config) error {
	problem, err := dimacs.ParseFile(cfg.instanceFile)
	if err != nil {
		return fmt.Errorf("could not parse instance: %s", err)
	}

	s, err := sat.NewState(problem.NumVars, problem.Clauses)
	if err != nil {
		return fmt.Errorf("could not build solver state: %s", err)
	}
	ord := order.NewNaiveOrder(problem.NumVars)

	fmt.Printf("c variables: %d\n", problem.NumVars)
	fmt.Printf("c clauses:   %d\n", len(problem.Clauses))

	t := time.Now()
	satisfiable := solve(s, ord)
	elapsed := time.Since(t)

	fmt.Printf("c time (sec):    %f\n", elapsed.Seconds())
	fmt.Printf("c learned:       %d\n", s.LearnedClauseCount())
	if satisfiable {
		fmt.Println("s SATISFIABLE")
	} else {
		fmt.Println("s UNSATISFIABLE")
	}
	return nil
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.cpuProfile {
		f, err := os.Create("cpuprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}
