package quiz

import (
	"errors"
	"fmt"
	"strconv"
)

// Play runs the question loop on a console until every question is
// answered or the learner ends the session with empty input. Ending early
// is not an error.
func Play(s *Session, c Console) error {
	c.Print(fmt.Sprintf("\nInfo: There are %d questions. Good luck!", s.Total()))
	for !s.Finished() {
		round := s.Draw()
		var submitted string
		var err error
		if round.Options == nil {
			submitted, err = Ask(c, round.Head, round.Multiple)
		} else {
			submitted, err = AskOptions(c, round.Head, round.Options, round.Multiple)
		}
		if errors.Is(err, ErrEndOfSession) {
			return nil
		}
		if err != nil {
			return err
		}
		outcome := s.Submit(round, submitted)
		if outcome.Correct {
			c.Print(fmt.Sprintf("%s Progress: %d out of %d questions answered correctly.",
				c.Success("Right!"), outcome.Answered, outcome.Total))
		} else {
			c.Print(fmt.Sprintf("%s The right answer is %s.", c.Failure("Wrong!"), outcome.Reveal))
		}
	}
	c.Print(fmt.Sprintf("\n%s You %s.",
		c.Success("Congratulations on completing the questionnaire!"),
		mistakePhrase(s.Mistakes(), c)))
	return nil
}

func mistakePhrase(mistakes int, c Console) string {
	switch mistakes {
	case 0:
		return "did not make any mistakes"
	case 1:
		return "made " + c.Failure("1") + " mistake"
	default:
		return "made " + c.Failure(strconv.Itoa(mistakes)) + " mistakes"
	}
}
