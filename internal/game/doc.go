// Package game implements the rules engine for a Texas Hold'em table:
// betting legality, street advancement, side-pot settlement, and showdown
// evaluation.
//
// The main type is GameService, which owns the authoritative state of one
// hand and exposes the full lifecycle:
//
//	g := game.NewGameService(game.WithBlinds(5, 10), game.WithSeed(42))
//	g.StartHand([]game.SeatConfig{{Seat: 1, Stack: 1000}, {Seat: 2, Stack: 1000}})
//	g.PlayerAction(1, game.Call, 0)
//	g.PlayerAction(2, game.Check, 0)
//	// ... streets deal automatically as rounds complete ...
//	result, _ := g.EvaluateWinners()
//
// GameService delegates to specialized pieces in this package:
//
//   - LegalActions / ExecuteAction: betting validation and chip movement
//   - NextActiveSeat / RoundComplete / Deal*: street transitions
//   - SidePots / CalculateWinners: pot partitioning and settlement
//
// One GameService owns one hand's mutable state. Operations run to
// completion and are not safe for concurrent callers; serializing actions
// per table is the transport layer's job. Rejected operations never mutate
// state, and chips are conserved exactly: summed awards always equal summed
// contributions.
package game
