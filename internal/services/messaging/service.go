package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// service implements the Service interface
type service struct {
	// Random number generator for selecting random messages
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	if config != nil && config.Rand != nil {
		return &service{rand: config.Rand}, nil
	}

	// Create a new random source with the current time as seed
	source := rand.NewSource(time.Now().UnixNano())

	return &service{
		rand: rand.New(source),
	}, nil
}

func (s *service) pick(options []string) string {
	return options[s.rand.Intn(len(options))]
}

// GetJoinMessage returns a message for when someone joins a game night
func (s *service) GetJoinMessage(ctx context.Context, input *GetJoinMessageInput) (*GetJoinMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	// Set default tone if not specified
	tone := input.PreferredTone
	if tone == "" {
		tone = ToneFunny
	}

	var messages []string
	if input.AlreadyJoined {
		messages = []string{
			fmt.Sprintf("%s, you're already at the table. Go rank some games!", input.DisplayName),
			fmt.Sprintf("Still here, %s. Your chair hasn't gone anywhere.", input.DisplayName),
			fmt.Sprintf("%s is so excited they joined twice. Once counts, promise.", input.DisplayName),
		}
	} else {
		messages = []string{
			fmt.Sprintf("%s pulls up a chair! 🎲", input.DisplayName),
			fmt.Sprintf("Welcome, %s! Rank your favourites and dislike the ones you'd rather not.", input.DisplayName),
			fmt.Sprintf("%s has entered the game night. The shelf trembles.", input.DisplayName),
			fmt.Sprintf("Another player! %s, what are we playing tonight?", input.DisplayName),
			fmt.Sprintf("%s joins the table. Someone shuffle something.", input.DisplayName),
		}
	}

	return &GetJoinMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

// GetRecommendationMessage returns the headline for a recommendation
func (s *service) GetRecommendationMessage(ctx context.Context, input *GetRecommendationMessageInput) (*GetRecommendationMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	switch {
	case input.CandidateCount == 0:
		return &GetRecommendationMessageOutput{
			Title:   "The shelf is empty",
			Message: "Add some candidate games before asking for a recommendation.",
			Tone:    ToneNeutral,
		}, nil

	case input.TopPickName == "":
		messages := []string{
			"Nothing on the shelf fits tonight. Try loosening the filters.",
			"Every game got filtered or vetoed. Loosen the filters or reconsider those dislikes.",
			"No eligible games. Maybe the player count or time range is too strict?",
		}
		return &GetRecommendationMessageOutput{
			Title:   "No eligible games",
			Message: s.pick(messages),
			Tone:    ToneEncouraging,
		}, nil

	case input.Promoted:
		messages := []string{
			fmt.Sprintf("The host has spoken: **%s** it is.", input.TopPickName),
			fmt.Sprintf("**%s** was pinned to the top. Democracy is overrated.", input.TopPickName),
			fmt.Sprintf("Host's pick: **%s**. Objections may be filed with the host.", input.TopPickName),
		}
		return &GetRecommendationMessageOutput{
			Title:   "Host's pick",
			Message: s.pick(messages),
			Tone:    ToneFunny,
		}, nil
	}

	messages := []string{
		fmt.Sprintf("The table has voted: **%s**!", input.TopPickName),
		fmt.Sprintf("Looks like tonight is a **%s** night.", input.TopPickName),
		fmt.Sprintf("**%s** comes out on top. Someone grab the box.", input.TopPickName),
		fmt.Sprintf("The people want **%s**.", input.TopPickName),
	}
	message := s.pick(messages)

	if input.VetoedCount > 0 {
		vetoes := []string{
			fmt.Sprintf("%d game(s) didn't survive the veto round.", input.VetoedCount),
			fmt.Sprintf("%d game(s) were vetoed. They know what they did.", input.VetoedCount),
		}
		message = fmt.Sprintf("%s %s", message, s.pick(vetoes))
	}

	return &GetRecommendationMessageOutput{
		Title:   "Tonight's pick",
		Message: message,
		Tone:    ToneCelebration,
	}, nil
}

// GetCommitMessage returns a message for when the group locks in a game
func (s *service) GetCommitMessage(ctx context.Context, input *GetCommitMessageInput) (*GetCommitMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	titles := []string{
		"Locked in!",
		"It's decided!",
		"Game on!",
	}

	var messages []string
	if input.PreviousCount > 0 {
		messages = []string{
			fmt.Sprintf("**%s** again? This crew picked it %d time(s) before with this exact setup.", input.ItemName, input.PreviousCount),
			fmt.Sprintf("Same table, same filters, same shelf: **%s** wins again (%d previous).", input.ItemName, input.PreviousCount),
		}
	} else {
		messages = []string{
			fmt.Sprintf("**%s** is locked in. Set up the table!", input.ItemName),
			fmt.Sprintf("Tonight we play **%s**. May the odds be ever in your favour.", input.ItemName),
			fmt.Sprintf("**%s** it is. No take-backs.", input.ItemName),
		}
	}

	return &GetCommitMessageOutput{
		Title:   s.pick(titles),
		Message: s.pick(messages),
	}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var title string
	var messages []string

	switch input.ErrorType {
	case ErrorTypeNoSession:
		title = "No game night here"
		messages = []string{
			"There's no game night in this channel. Start one with `/gamenight start`.",
			"Nobody has set up the table yet. Try `/gamenight start`.",
		}
	case ErrorTypeSessionExists:
		title = "Already running"
		messages = []string{
			"A game night is already running in this channel. Join it with `/gamenight join`.",
		}
	case ErrorTypeNotJoined:
		title = "Not at the table"
		messages = []string{
			"You need to join first. Use `/gamenight join`.",
			"Grab a chair with `/gamenight join` before voting.",
		}
	case ErrorTypeSessionFull:
		title = "Table's full"
		messages = []string{
			"This game night is at capacity. Maybe bring a bigger table next time.",
		}
	case ErrorTypeUnknownGame:
		title = "Unknown game"
		messages = []string{
			"That game isn't in tonight's candidate pool.",
			"Never heard of it. Is it on the shelf?",
		}
	case ErrorTypeInvalidFilters:
		title = "Invalid filters"
		messages = []string{
			"Those filters don't make sense. Check the player count and ranges.",
		}
	case ErrorTypeNothingToLock:
		title = "Nothing to lock in"
		messages = []string{
			"There's no eligible game to commit. Loosen the filters first.",
		}
	case ErrorTypeSlotTaken:
		title = "Seat taken"
		messages = []string{
			"Somebody already claimed that seat.",
		}
	default:
		title = "Something went wrong"
		messages = []string{
			"Something went wrong. Try again in a moment.",
			"The dice rolled off the table. Please try again.",
		}
	}

	return &GetErrorMessageOutput{
		Title:   title,
		Message: s.pick(messages),
	}, nil
}
