package bot

import "rpsplus/game"

// Strategy decides the bot's next move from the visible match state. A
// conforming strategy never returns MoveInvalid and plays bomb at most once
// per match (the match downgrades a second bomb to an invalid move anyway).
type Strategy interface {
	ChooseMove(m *game.Match, role game.Player) game.Move
}

var normalMoves = []game.Move{game.MoveRock, game.MovePaper, game.MoveScissors}

// counterOf maps each normal move to the move that beats it.
var counterOf = map[game.Move]game.Move{
	game.MoveRock:     game.MovePaper,
	game.MovePaper:    game.MoveScissors,
	game.MoveScissors: game.MoveRock,
}
