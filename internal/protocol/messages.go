package protocol

import (
	"fmt"
	"strings"
)

// Literal markers clients key off to drive their state machines. The
// question markers tell a client a response is expected.
const (
	MarkerFirstQuestion = "Here's your question:"
	MarkerRound         = "Round"
	MarkerDisqualified  = "disqualified"
	MarkerWinner        = "Congratulations"
	MarkerCancelled     = "only registered player"
)

// FirstRoundMessage announces the opening question of a game
func FirstRoundMessage(prompt string) string {
	return fmt.Sprintf("Welcome to the Trivia Contest!\n%s\n%s\n", MarkerFirstQuestion, prompt)
}

// RoundMessage announces a subsequent round, naming the surviving players
func RoundMessage(round int, names []string, prompt string) string {
	return fmt.Sprintf("\n%s %d, played by %s:\n%s\n", MarkerRound, round, JoinNames(names), prompt)
}

// DisqualifiedMessage notifies a player of permanent removal from the game
func DisqualifiedMessage() string {
	return "You have been disqualified (loser)\n"
}

// GameOverMessage announces the winner followed by the end-of-game statistics
func GameOverMessage(winnerName string, statsLines []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Game over!\n%s to the winner: %s\n\n", MarkerWinner, winnerName)
	for _, line := range statsLines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// CancelledMessage notifies the sole admitted player that no game will run
func CancelledMessage() string {
	return fmt.Sprintf("You are the %s, the game is over.\n", MarkerCancelled)
}

// JoinNames renders a roster as prose: "ana", "ana and bo", "ana, bo and cy"
func JoinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}
