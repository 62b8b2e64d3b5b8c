package order

import (
	"testing"

	"github.com/cdclsat/satkernel/internal/sat"
)

func TestNaiveOrderPicksLowestIndexFirst(t *testing.T) {
	s, err := sat.NewState(3, [][]int{{1, 2, 3}})
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	ord := NewNaiveOrder(3)

	l, ok := ord.Next(s)
	if !ok {
		t.Fatalf("Next() = (_, false), want a free variable")
	}
	if want := sat.PosLiteral(1); l != want {
		t.Errorf("Next() = %v, want %v", l, want)
	}
}

func TestNaiveOrderSkipsInstantiatedVariables(t *testing.T) {
	s, err := sat.NewState(3, [][]int{{1, 2, 3}})
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	if c := s.DecideLiteral(sat.PosLiteral(1)); c != nil {
		t.Fatalf("DecideLiteral(L+1) returned an unexpected conflict")
	}
	ord := NewNaiveOrder(3)

	l, ok := ord.Next(s)
	if !ok {
		t.Fatalf("Next() = (_, false), want a free variable")
	}
	if want := sat.PosLiteral(2); l != want {
		t.Errorf("Next() = %v, want %v (variable 1 is already instantiated)", l, want)
	}
}

func TestNaiveOrderExhausted(t *testing.T) {
	s, err := sat.NewState(1, [][]int{{1}})
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	if c := s.DecideLiteral(sat.PosLiteral(1)); c != nil {
		t.Fatalf("DecideLiteral(L+1) returned an unexpected conflict")
	}
	ord := NewNaiveOrder(1)

	if _, ok := ord.Next(s); ok {
		t.Errorf("Next() = (_, true) after every variable was instantiated, want false")
	}
}
