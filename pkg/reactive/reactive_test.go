package reactive

import "testing"

func withTestOwner(t *testing.T, fn func(o *Owner)) {
	t.Helper()
	o := NewOwner(nil)
	defer o.Dispose()
	WithOwner(o, func() { fn(o) })
}

func TestDiamondRunsDependentEffectOnce(t *testing.T) {
	withTestOwner(t, func(o *Owner) {
		src := NewSignal(1)
		var left, right *Derived[int]
		var runs int

		WithOwner(o, func() {
			left = NewDerived(func() int { return src.Get() * 2 })
			right = NewDerived(func() int { return src.Get() * 3 })
			NewEffect(func() func() {
				runs++
				_ = left.Get() + right.Get()
				return nil
			})
		})

		if runs != 1 {
			t.Fatalf("expected 1 run after creation, got %d", runs)
		}

		src.Set(2)
		if runs != 2 {
			t.Fatalf("expected 2 runs after one source change through a diamond, got %d", runs)
		}
	})
}

func TestBatchCoalescesMultipleWritesIntoOneFlush(t *testing.T) {
	withTestOwner(t, func(o *Owner) {
		a := NewSignal(1)
		b := NewSignal(1)
		var runs int

		WithOwner(o, func() {
			NewEffect(func() func() {
				runs++
				_ = a.Get() + b.Get()
				return nil
			})
		})
		runs = 0

		Batch(func() {
			a.Set(2)
			b.Set(2)
		})

		if runs != 1 {
			t.Fatalf("expected exactly 1 run after a batch of 2 writes, got %d", runs)
		}
	})
}

func TestEffectDoesNotRerunWhenDerivedValueIsUnchanged(t *testing.T) {
	withTestOwner(t, func(o *Owner) {
		src := NewSignal(1)
		var computeCount int
		var derived *Derived[int]
		var effectRuns int

		WithOwner(o, func() {
			derived = NewDerived(func() int {
				computeCount++
				v := src.Get()
				if v < 0 {
					v = -v
				}
				return v
			})
			NewEffect(func() func() {
				effectRuns++
				_ = derived.Get()
				return nil
			})
		})

		if computeCount != 1 || effectRuns != 1 {
			t.Fatalf("expected 1 compute and 1 effect run after creation, got %d/%d", computeCount, effectRuns)
		}

		src.Set(-1) // abs(-1) == abs(1): derived recomputes but produces the same value
		if computeCount != 2 {
			t.Fatalf("expected derived to recompute once more, got %d", computeCount)
		}
		if effectRuns != 1 {
			t.Fatalf("expected effect NOT to re-run when derived's value didn't change, got %d runs", effectRuns)
		}
	})
}

func TestOwnerDisposalStopsFurtherEffectRuns(t *testing.T) {
	o := NewOwner(nil)
	src := NewSignal(1)
	var runs int
	var cleanups int

	child := NewOwner(o)
	WithOwner(child, func() {
		NewEffect(func() func() {
			runs++
			_ = src.Get()
			return func() { cleanups++ }
		})
	})

	if runs != 1 {
		t.Fatalf("expected 1 run after creation, got %d", runs)
	}

	child.Dispose()
	if cleanups != 1 {
		t.Fatalf("expected disposal to run the effect's last cleanup, got %d", cleanups)
	}

	src.Set(2)
	if runs != 1 {
		t.Fatalf("expected no further runs after owner disposal, got %d", runs)
	}

	o.Dispose()
}

func TestCycleLimitExceededOnSelfFeedingEffect(t *testing.T) {
	o := NewOwner(nil)
	defer o.Dispose()

	prevLimit := Debug.CycleLimit
	Debug.CycleLimit = 5
	defer func() { Debug.CycleLimit = prevLimit }()

	var panicked any
	func() {
		defer func() { panicked = recover() }()
		WithOwner(o, func() {
			counter := NewSignal(0)
			NewEffect(func() func() {
				v := counter.Get()
				if v < 1000 {
					counter.Set(v + 1)
				}
				return nil
			})
		})
	}()

	if panicked == nil {
		t.Fatal("expected a CycleLimitExceededError panic from a self-feeding effect")
	}
	if _, ok := panicked.(*CycleLimitExceededError); !ok {
		t.Fatalf("expected *CycleLimitExceededError, got %T: %v", panicked, panicked)
	}
}

func TestDisposedSignalGetReturnsLastValueWithoutPanic(t *testing.T) {
	o := NewOwner(nil)
	var s *Signal[int]
	WithOwner(o, func() { s = NewSignal(42) })
	o.Dispose()

	got := s.Get()
	if got != 42 {
		t.Errorf("Get() after disposal = %d, want last value 42", got)
	}
	if got := s.Peek(); got != 42 {
		t.Errorf("Peek() after disposal = %d, want last value 42", got)
	}
}

func TestDisposedSignalSetIsIgnoredWithoutPanic(t *testing.T) {
	o := NewOwner(nil)
	var s *Signal[int]
	WithOwner(o, func() { s = NewSignal(1) })
	o.Dispose()

	s.Set(99)
	if got := s.Peek(); got != 1 {
		t.Errorf("Peek() after disposed Set = %d, want unchanged value 1", got)
	}
}

func TestDisposedDerivedGetReturnsLastValueWithoutPanic(t *testing.T) {
	o := NewOwner(nil)
	var d *Derived[int]
	WithOwner(o, func() {
		src := NewSignal(5)
		d = NewDerived(func() int { return src.Get() * 2 })
		d.Get() // resolve once while live
	})
	o.Dispose()

	if got := d.Get(); got != 10 {
		t.Errorf("Get() after disposal = %d, want last resolved value 10", got)
	}
}

func TestStrictEffectModePanicsOnEffectWrite(t *testing.T) {
	o := NewOwner(nil)
	defer o.Dispose()

	prevDevMode, prevMode := Debug.DevMode, Debug.EffectStrictMode
	Debug.DevMode = true
	Debug.EffectStrictMode = StrictEffectPanic
	defer func() { Debug.DevMode, Debug.EffectStrictMode = prevDevMode, prevMode }()

	var panicked any
	func() {
		defer func() { panicked = recover() }()
		WithOwner(o, func() {
			other := NewSignal(0)
			NewEffect(func() func() {
				other.Set(1)
				return nil
			})
		})
	}()

	if panicked == nil {
		t.Fatal("expected a UserError panic from an effect writing a signal under StrictEffectPanic")
	}
	if _, ok := panicked.(*UserError); !ok {
		t.Fatalf("expected *UserError, got %T: %v", panicked, panicked)
	}
}

func TestStrictEffectModeOffByDefaultAllowsEffectWrites(t *testing.T) {
	withTestOwner(t, func(o *Owner) {
		other := NewSignal(0)
		var ran bool
		WithOwner(o, func() {
			NewEffect(func() func() {
				other.Set(1)
				ran = true
				return nil
			})
		})
		if !ran || other.Peek() != 1 {
			t.Fatalf("expected the effect to run and write through, ran=%v value=%d", ran, other.Peek())
		}
	})
}

func TestUntrackPreventsDependencyTracking(t *testing.T) {
	withTestOwner(t, func(o *Owner) {
		tracked := NewSignal(1)
		untracked := NewSignal(10)
		var runs int

		WithOwner(o, func() {
			NewEffect(func() func() {
				runs++
				_ = tracked.Get()
				Untrack(func() { _ = untracked.Get() })
				return nil
			})
		})

		untracked.Set(20)
		if runs != 1 {
			t.Fatalf("expected untracked read not to trigger a re-run, got %d runs", runs)
		}

		tracked.Set(2)
		if runs != 2 {
			t.Fatalf("expected tracked read to trigger a re-run, got %d runs", runs)
		}
	})
}
