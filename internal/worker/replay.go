package worker

import (
	"github.com/lgbarn/pgn-replay-go/internal/engine"
	"github.com/lgbarn/pgn-replay-go/internal/errors"
	"github.com/lgbarn/pgn-replay-go/internal/verify"
)

// ReplayFunc returns a ProcessFunc that plays each game from its starting
// position to the end of its record, stopping at the first bad token. With
// crossCheck set the game is also verified against the reference engine.
func ReplayFunc(resolver engine.Resolver, crossCheck bool) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		result := ProcessResult{Index: item.Index, Game: item.Game}

		board := engine.NewBoardForGame(item.Game)
		for ply, tok := range item.Game.Tokens() {
			if err := resolver.ApplyNotation(board, tok); err != nil {
				result.Err = &errors.GameError{
					Err:      err,
					GameNum:  item.Index + 1,
					PlyNum:   ply + 1,
					MoveText: tok,
					File:     item.Game.Name,
				}
				break
			}
			result.Plies++
		}
		result.Board = board

		if crossCheck && result.Err == nil {
			report, err := verify.Game(item.Game, resolver)
			if err != nil {
				result.Err = errors.Wrapf(err, "game %d", item.Index+1)
				return result
			}
			result.Report = report
		}
		return result
	}
}
