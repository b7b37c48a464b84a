// Package reactive implements the graph, scheduler and owner layers of the
// signal core: source cells (Signal), derived cells (Derived), effects
// (Effect), owner-scoped lifetimes (Owner), and the level-ordered,
// flag-tagged scheduler that keeps dependent computations glitch-free and
// runs each one at most once per flush.
package reactive
