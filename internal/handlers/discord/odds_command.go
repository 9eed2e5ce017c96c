package discord

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/KirkDiggler/probably-dice/internal/services/messaging"
	"github.com/KirkDiggler/probably-dice/internal/services/odds"
	"github.com/bwmarrin/discordgo"
)

// Subcommand names
const (
	subcommandRoll         = "roll"
	subcommandDistribution = "distribution"
	subcommandSimulate     = "simulate"
	subcommandHistory      = "history"
	subcommandClear        = "clear"
)

// OddsCommand handles the /odds command
type OddsCommand struct {
	BaseCommand
	oddsService      odds.Service
	messagingService messaging.Service
}

// diceArgs holds the parsed options of an /odds subcommand
type diceArgs struct {
	DiceCount int
	Sides     int
	Target    int
	Trials    int
}

// NewOddsCommand creates a new odds command handler. The messaging service is optional.
func NewOddsCommand(oddsService odds.Service, messagingService messaging.Service) *OddsCommand {
	minOne := 1.0
	minZero := 0.0

	diceOption := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        "dice",
		Description: "Number of dice",
		Required:    true,
		MinValue:    &minOne,
	}
	sidesOption := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        "sides",
		Description: "Number of sides on each die",
		Required:    true,
		MinValue:    &minOne,
	}
	targetOption := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        "target",
		Description: "Total to roll",
		Required:    true,
		MinValue:    &minZero,
	}

	return &OddsCommand{
		BaseCommand: BaseCommand{
			Name:        "odds",
			Description: "Exact dice probabilities",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandRoll,
					Description: "Chance of rolling an exact total",
					Options:     []*discordgo.ApplicationCommandOption{diceOption, sidesOption, targetOption},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandDistribution,
					Description: "Chance of every total",
					Options:     []*discordgo.ApplicationCommandOption{diceOption, sidesOption},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandSimulate,
					Description: "Roll the dice many times and compare with the exact odds",
					Options: []*discordgo.ApplicationCommandOption{
						diceOption,
						sidesOption,
						targetOption,
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "trials",
							Description: "Number of rolls (default 1000)",
							MinValue:    &minOne,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandHistory,
					Description: "Recent odds asked in this channel",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandClear,
					Description: "Forget the odds asked in this channel",
				},
			},
		},
		oddsService:      oddsService,
		messagingService: messagingService,
	}
}

// Handle processes a Discord interaction for the odds command
func (c *OddsCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	if len(data.Options) == 0 {
		return errors.New("missing subcommand")
	}

	userID, username := interactionUser(i)
	asker := odds.Asker{
		ChannelID: i.ChannelID,
		UserID:    userID,
		UserName:  username,
	}

	subcommand := data.Options[0]
	args, err := parseDiceArgs(subcommand.Options)
	if err != nil {
		return RespondWithError(s, i, err.Error())
	}

	// Handle the appropriate subcommand
	switch subcommand.Name {
	case subcommandRoll:
		return c.handleRoll(s, i, asker, args)
	case subcommandDistribution:
		return c.handleDistribution(s, i, asker, args.DiceCount, args.Sides)
	case subcommandSimulate:
		return c.handleSimulate(s, i, asker, args)
	case subcommandHistory:
		return c.handleHistory(s, i, i.ChannelID)
	case subcommandClear:
		return c.handleClear(s, i, i.ChannelID)
	default:
		return errors.New("unknown subcommand")
	}
}

// handleRoll handles the roll subcommand
func (c *OddsCommand) handleRoll(s *discordgo.Session, i *discordgo.InteractionCreate, asker odds.Asker, args diceArgs) error {
	output, err := c.oddsService.CalculateOdds(context.Background(), &odds.CalculateOddsInput{
		Asker:     asker,
		DiceCount: args.DiceCount,
		Sides:     args.Sides,
		Target:    args.Target,
	})
	if err != nil {
		log.Printf("Error calculating odds: %v", err)
		return RespondWithError(s, i, errorMessage(err))
	}

	distributionButton := discordgo.Button{
		Label:    "Show distribution",
		Style:    discordgo.SecondaryButton,
		CustomID: ButtonShowDistribution + output.Notation,
		Emoji: &discordgo.ComponentEmoji{
			Name: "📊",
		},
	}

	embed := renderOdds(output)
	c.addOddsRemark(embed, output)

	return RespondWithEmbedAndButtons(s, i, embed, []discordgo.MessageComponent{distributionButton})
}

// handleDistribution handles the distribution subcommand and the distribution button
func (c *OddsCommand) handleDistribution(s *discordgo.Session, i *discordgo.InteractionCreate, asker odds.Asker, diceCount, sides int) error {
	output, err := c.oddsService.GetDistribution(context.Background(), &odds.GetDistributionInput{
		Asker:     asker,
		DiceCount: diceCount,
		Sides:     sides,
	})
	if err != nil {
		log.Printf("Error computing distribution: %v", err)
		return RespondWithError(s, i, errorMessage(err))
	}

	return RespondWithEmbed(s, i, renderDistribution(output))
}

// handleSimulate handles the simulate subcommand
func (c *OddsCommand) handleSimulate(s *discordgo.Session, i *discordgo.InteractionCreate, asker odds.Asker, args diceArgs) error {
	output, err := c.oddsService.SimulateRolls(context.Background(), &odds.SimulateRollsInput{
		Asker:     asker,
		DiceCount: args.DiceCount,
		Sides:     args.Sides,
		Target:    args.Target,
		Trials:    args.Trials,
	})
	if err != nil {
		log.Printf("Error simulating rolls: %v", err)
		return RespondWithError(s, i, errorMessage(err))
	}

	embed := renderSimulation(output, args.Target)
	c.addSimulationRemark(embed, output)

	return RespondWithEmbed(s, i, embed)
}

// handleHistory handles the history subcommand
func (c *OddsCommand) handleHistory(s *discordgo.Session, i *discordgo.InteractionCreate, channelID string) error {
	output, err := c.oddsService.GetHistory(context.Background(), &odds.GetHistoryInput{
		ChannelID: channelID,
	})
	if err != nil {
		log.Printf("Error getting history for channel %s: %v", channelID, err)
		return RespondWithError(s, i, errorMessage(err))
	}

	return RespondWithEmbed(s, i, renderHistory(output.Queries))
}

// handleClear handles the clear subcommand
func (c *OddsCommand) handleClear(s *discordgo.Session, i *discordgo.InteractionCreate, channelID string) error {
	output, err := c.oddsService.ClearHistory(context.Background(), &odds.ClearHistoryInput{
		ChannelID: channelID,
	})
	if err != nil {
		log.Printf("Error clearing history for channel %s: %v", channelID, err)
		return RespondWithError(s, i, errorMessage(err))
	}

	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Forgot %d queries.", output.Deleted))
}

// addOddsRemark puts a remark about the odds in the embed footer
func (c *OddsCommand) addOddsRemark(embed *discordgo.MessageEmbed, output *odds.CalculateOddsOutput) {
	if c.messagingService == nil {
		return
	}

	msg, err := c.messagingService.GetOddsMessage(context.Background(), &messaging.GetOddsMessageInput{
		Probability: output.Probability,
		Impossible:  output.Impossible,
	})
	if err != nil {
		log.Printf("Error getting odds message: %v", err)
		return
	}

	embed.Footer = &discordgo.MessageEmbedFooter{Text: msg.Message}
}

// addSimulationRemark puts a remark about the simulated luck in the embed footer
func (c *OddsCommand) addSimulationRemark(embed *discordgo.MessageEmbed, output *odds.SimulateRollsOutput) {
	if c.messagingService == nil {
		return
	}

	msg, err := c.messagingService.GetSimulationMessage(context.Background(), &messaging.GetSimulationMessageInput{
		Observed: output.Observed,
		Expected: output.Expected,
	})
	if err != nil {
		log.Printf("Error getting simulation message: %v", err)
		return
	}

	embed.Footer = &discordgo.MessageEmbedFooter{Text: msg.Message}
}

// parseDiceArgs reads the integer options of a subcommand
func parseDiceArgs(options []*discordgo.ApplicationCommandInteractionDataOption) (diceArgs, error) {
	var args diceArgs
	for _, option := range options {
		if option.Type != discordgo.ApplicationCommandOptionInteger {
			return args, fmt.Errorf("option %s must be a number", option.Name)
		}

		value := int(option.IntValue())
		switch option.Name {
		case "dice":
			args.DiceCount = value
		case "sides":
			args.Sides = value
		case "target":
			args.Target = value
		case "trials":
			args.Trials = value
		default:
			return args, fmt.Errorf("unknown option %s", option.Name)
		}
	}
	return args, nil
}

// errorMessage turns a service error into something a player can act on
func errorMessage(err error) string {
	switch {
	case errors.Is(err, odds.ErrInvalidDice):
		return "Dice and sides must be at least 1 and the target can't be negative."
	case errors.Is(err, odds.ErrTooManyDice),
		errors.Is(err, odds.ErrTooManySides),
		errors.Is(err, odds.ErrTooManyTrials):
		return fmt.Sprintf("That's too big for me: %v", err)
	case errors.Is(err, odds.ErrInvalidTrials):
		return "Trials must be at least 1."
	case errors.Is(err, odds.ErrHistoryDisabled):
		return "History isn't enabled on this bot."
	case errors.Is(err, odds.ErrMissingChannel):
		return "History is only kept for channels."
	default:
		return "Something went wrong, try again later."
	}
}
